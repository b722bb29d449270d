// Package formatting renders console listings (find results, help
// overviews) for display. The core interpreter is display-agnostic and
// returns plain lines; front-ends that want richer output feed the
// structured matches through a Formatter instead.
package formatting

import "convar/pkg/cvar"

// OutputFormat represents the desired output format.
type OutputFormat string

const (
	FormatTable OutputFormat = "table" // rich table output
	FormatPlain OutputFormat = "plain" // the interpreter's raw listing lines
)

// Options configures formatter behavior.
type Options struct {
	Format OutputFormat
	Color  bool // enable colored headers and accents
}

// Formatter renders node listings for display.
type Formatter interface {
	// FormatMatches renders a find/help result set.
	FormatMatches(matches []cvar.Match) string

	// SetOptions updates the formatter options.
	SetOptions(options Options)
	// GetOptions returns the current formatter options.
	GetOptions() Options
}

// NewFormatter creates a formatter for the requested format. Unknown
// formats fall back to plain output.
func NewFormatter(options Options) Formatter {
	switch options.Format {
	case FormatTable:
		return NewTableFormatter(options)
	default:
		return NewPlainFormatter(options)
	}
}
