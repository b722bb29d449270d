package config

// ConsoleConfig is the top-level configuration structure for the
// console front-end.
type ConsoleConfig struct {
	// Prompt is printed before each input line.
	Prompt string `yaml:"prompt,omitempty"`
	// HistoryFile persists REPL input history across sessions.
	// An empty value disables history persistence.
	HistoryFile string `yaml:"historyFile,omitempty"`
	// PathSeparator joins node path segments (default ".").
	PathSeparator string `yaml:"pathSeparator,omitempty"`
	// MaxDepth bounds configuration nesting when building the tree.
	MaxDepth int `yaml:"maxDepth,omitempty"`
	// Output selects how find/help listings are rendered: "table" or "plain".
	Output string `yaml:"output,omitempty"`
	// Color enables ANSI colors in REPL messages.
	Color bool `yaml:"color,omitempty"`
	// Verbose enables debug output in the REPL.
	Verbose bool `yaml:"verbose,omitempty"`
}

const (
	// OutputTable renders listings as a go-pretty table.
	OutputTable = "table"
	// OutputPlain renders listings as the interpreter's raw lines.
	OutputPlain = "plain"
)
