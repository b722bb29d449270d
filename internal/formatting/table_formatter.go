package formatting

import (
	"fmt"

	"convar/pkg/cvar"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const maxDescriptionWidth = 48

// TableFormatter renders listings as a rounded go-pretty table.
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{options: options}
}

// FormatMatches renders one row per node: name, current value, default
// and description. Actions show "(action)" in the value column.
func (f *TableFormatter) FormatMatches(matches []cvar.Match) string {
	if len(matches) == 0 {
		return f.colorize("(no matches)", text.FgYellow)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		f.colorize("NAME", text.FgHiCyan),
		f.colorize("VALUE", text.FgHiCyan),
		f.colorize("DEFAULT", text.FgHiCyan),
		f.colorize("DESCRIPTION", text.FgHiCyan),
	})
	for _, m := range matches {
		desc := truncateDescription(m.Node.Description(), maxDescriptionWidth)
		switch n := m.Node.(type) {
		case cvar.Property:
			value := n.Get()
			if !n.IsDefault() {
				value = f.colorize(value, text.FgHiYellow)
			}
			t.AppendRow(table.Row{m.Name, value, n.Default(), desc})
		case cvar.Action:
			t.AppendRow(table.Row{m.Name, f.colorize("(action)", text.FgHiBlue), "", desc})
		default:
			t.AppendRow(table.Row{m.Name, fmt.Sprintf("%v", m.Node), "", desc})
		}
	}

	return t.Render()
}

// SetOptions updates the formatter options.
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options.
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

func (f *TableFormatter) colorize(s string, color text.Color) string {
	if !f.options.Color {
		return s
	}
	return color.Sprint(s)
}
