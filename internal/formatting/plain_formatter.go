package formatting

import (
	"fmt"
	"strings"

	"convar/pkg/cvar"
)

// PlainFormatter renders listings in the interpreter's own line
// format, suitable for dumb terminals and piped output.
type PlainFormatter struct {
	options Options
}

// NewPlainFormatter creates a new plain formatter.
func NewPlainFormatter(options Options) Formatter {
	return &PlainFormatter{options: options}
}

// FormatMatches renders each node as "name: value (default: d)" with
// a tab-indented description line, matching the core's own listing.
func (f *PlainFormatter) FormatMatches(matches []cvar.Match) string {
	if len(matches) == 0 {
		return "(no matches)"
	}

	var b strings.Builder
	for i, m := range matches {
		if i > 0 {
			b.WriteByte('\n')
		}
		switch n := m.Node.(type) {
		case cvar.Property:
			fmt.Fprintf(&b, "%s: %s (default: %s)", m.Name, n.Get(), n.Default())
		case cvar.Action:
			fmt.Fprintf(&b, "%s (action)", m.Name)
		default:
			b.WriteString(m.Name)
		}
		if d := m.Node.Description(); d != "" {
			fmt.Fprintf(&b, "\n\t%s", d)
		}
	}
	return b.String()
}

// SetOptions updates the formatter options.
func (f *PlainFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options.
func (f *PlainFormatter) GetOptions() Options {
	return f.options
}
