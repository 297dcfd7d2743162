// Package input reads numeric series for the resample and plot commands,
// either as a JSON array validated against an embedded schema or as an
// integer range such as "0..275".
package input

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// StdinPath selects standard input in place of a file path.
const StdinPath = "-"

const rangeSeparator = ".."

// Sentinel errors.
var (
	ErrInvalidSeries = errors.New("invalid series")
	ErrInvalidRange  = errors.New("invalid range")
)

//go:embed series-schema.json
var seriesSchema []byte

// ReadSeries decodes a JSON array of numbers from r.
func ReadSeries(r io.Reader) ([]float64, error) {
	var doc any

	dec := json.NewDecoder(r)
	dec.UseNumber()

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidSeries, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(seriesSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("validate series: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			msgs = append(msgs, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
		}

		return nil, fmt.Errorf("%w: %s", ErrInvalidSeries, strings.Join(msgs, "; "))
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: not an array", ErrInvalidSeries)
	}

	series := make([]float64, len(items))

	for i, item := range items {
		num, isNum := item.(json.Number)
		if !isNum {
			return nil, fmt.Errorf("%w: item %d is not a number", ErrInvalidSeries, i)
		}

		series[i], err = num.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidSeries, i, err)
		}
	}

	return series, nil
}

// ReadFile reads a series from path, or from stdin when path is StdinPath.
func ReadFile(path string, stdin io.Reader) ([]float64, error) {
	if path == StdinPath {
		return ReadSeries(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()

	series, err := ReadSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return series, nil
}

// ParseRange expands "a..b" into the integers from a to b inclusive, counting
// down when b < a.
func ParseRange(expr string) ([]float64, error) {
	lo, hi, ok := strings.Cut(expr, rangeSeparator)
	if !ok {
		return nil, fmt.Errorf("%w: %q: want FROM..TO", ErrInvalidRange, expr)
	}

	from, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRange, expr, err)
	}

	to, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRange, expr, err)
	}

	step := 1
	if to < from {
		step = -1
	}

	n := (to-from)*step + 1
	if n <= 0 {
		return nil, fmt.Errorf("%w: %q: too many values", ErrInvalidRange, expr)
	}

	series := make([]float64, n)
	for i := range series {
		series[i] = float64(from + i*step)
	}

	return series, nil
}
