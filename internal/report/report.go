// Package report renders line, resample and partition results as tables,
// JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/stretch/pkg/alg/partition"
	"github.com/Sumatoshi-tech/stretch/pkg/config"
)

// ErrUnknownFormat is returned for an output format the writer cannot render.
var ErrUnknownFormat = errors.New("unknown output format")

const (
	jsonIndent = "  "
	yamlIndent = 2
)

// Writer renders results to an output stream in one format.
type Writer struct {
	out     io.Writer
	format  string
	heading *color.Color
	muted   *color.Color
}

// New creates a Writer. Color mode is one of config.ColorModes; "auto"
// colors only when out is a terminal and NO_COLOR is unset.
func New(out io.Writer, format, colorMode string) (*Writer, error) {
	switch format {
	case config.FormatTable, config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	heading := color.New(color.FgCyan, color.Bold)
	muted := color.New(color.FgHiBlack)

	if useColor(out, colorMode) {
		heading.EnableColor()
		muted.EnableColor()
	} else {
		heading.DisableColor()
		muted.DisableColor()
	}

	return &Writer{out: out, format: format, heading: heading, muted: muted}, nil
}

func useColor(out io.Writer, colorMode string) bool {
	switch colorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Line is the result of walking a line between two points.
type Line struct {
	From   [2]int `json:"from"   yaml:"from"`
	To     [2]int `json:"to"     yaml:"to"`
	Values []int  `json:"values" yaml:"values"`
}

// Resample is a series and its resampled form.
type Resample struct {
	SourceLength int       `json:"source_length" yaml:"source_length"`
	Length       int       `json:"length"        yaml:"length"`
	Indices      []int     `json:"indices"       yaml:"indices"`
	Values       []float64 `json:"values"        yaml:"values"`
}

// Part is one partition of a split.
type Part struct {
	Index int `json:"index" yaml:"index"`
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
	Size  int `json:"size"  yaml:"size"`
}

// Partition is the split of Total elements into Parts ranges.
type Partition struct {
	Total  int    `json:"total"  yaml:"total"`
	Parts  int    `json:"parts"  yaml:"parts"`
	Bounds []int  `json:"bounds" yaml:"bounds"`
	Ranges []Part `json:"ranges" yaml:"ranges"`
}

// NewPartition builds a Partition report from boundaries and their ranges.
func NewPartition(total int, bounds []int, ranges []partition.Range) Partition {
	parts := make([]Part, len(ranges))
	for i, r := range ranges {
		parts[i] = Part{Index: i, Start: r.Start, End: r.End, Size: r.Len()}
	}

	return Partition{Total: total, Parts: len(ranges), Bounds: bounds, Ranges: parts}
}

// WriteLine renders a line walk. The table has one row per x step.
func (w *Writer) WriteLine(l Line) error {
	if w.format != config.FormatTable {
		return w.encode(l)
	}

	step := 1
	if l.To[0] < l.From[0] {
		step = -1
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "x", "y"})

	for i, y := range l.Values {
		tbl.AppendRow(table.Row{i, l.From[0] + i*step, y})
	}

	tbl.AppendFooter(table.Row{"", "Total", humanize.Comma(int64(len(l.Values)))})

	title := fmt.Sprintf("line (%d,%d) -> (%d,%d)", l.From[0], l.From[1], l.To[0], l.To[1])

	return w.render(title, tbl)
}

// WriteResample renders a resampled series with the source index of each value.
func (w *Writer) WriteResample(r Resample) error {
	if w.format != config.FormatTable {
		return w.encode(r)
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "source", "value"})

	for i, v := range r.Values {
		src := ""
		if i < len(r.Indices) {
			src = humanize.Comma(int64(r.Indices[i]))
		}

		tbl.AppendRow(table.Row{i, src, humanize.Ftoa(v)})
	}

	tbl.AppendFooter(table.Row{"", "Total", humanize.Comma(int64(len(r.Values)))})

	title := fmt.Sprintf("resample %s -> %s",
		humanize.Comma(int64(r.SourceLength)), humanize.Comma(int64(r.Length)))

	return w.render(title, tbl)
}

// WritePartition renders one row per partition range.
func (w *Writer) WritePartition(p Partition) error {
	if w.format != config.FormatTable {
		return w.encode(p)
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"#", "start", "end", "size"})

	for _, part := range p.Ranges {
		tbl.AppendRow(table.Row{
			part.Index,
			humanize.Comma(int64(part.Start)),
			humanize.Comma(int64(part.End)),
			humanize.Comma(int64(part.Size)),
		})
	}

	tbl.AppendFooter(table.Row{"", "", "Total", humanize.Comma(int64(p.Total))})

	title := fmt.Sprintf("partition %s elements into %d", humanize.Comma(int64(p.Total)), p.Parts)

	return w.render(title, tbl)
}

// Message writes a muted informational line. Structured formats skip it so
// their output stays machine-readable.
func (w *Writer) Message(format string, args ...any) {
	if w.format != config.FormatTable {
		return
	}

	w.muted.Fprintf(w.out, format+"\n", args...)
}

func (w *Writer) render(title string, tbl table.Writer) error {
	_, err := w.heading.Fprintln(w.out, title)
	if err != nil {
		return fmt.Errorf("write heading: %w", err)
	}

	_, err = fmt.Fprintln(w.out, tbl.Render())
	if err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

func (w *Writer) encode(v any) error {
	switch w.format {
	case config.FormatJSON:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", jsonIndent)

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(yamlIndent)

		err := enc.Encode(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}

		err = enc.Close()
		if err != nil {
			return fmt.Errorf("flush yaml: %w", err)
		}
	}

	return nil
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}
