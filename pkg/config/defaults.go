package config

// EnvPrefix is the environment variable prefix, e.g. STRETCH_OUTPUT_FORMAT.
const EnvPrefix = "STRETCH"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{FormatTable, FormatJSON, FormatYAML}

// ColorModes lists the accepted output.color values.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Default values.
const (
	DefaultOutputFormat    = FormatTable
	DefaultOutputColor     = ColorAuto
	DefaultResampleLength  = 0
	DefaultLogLevel        = "info"
	DefaultShutdownTimeout = "5s"
)
