package repl

import (
	"github.com/chzyer/readline"
)

// builtins are handled by the REPL itself, before the interpreter.
var builtins = []string{"exit", "quit", "clear"}

// createCompleter builds tab completion over the current node tree:
// every fully-qualified node name completes at the start of the line
// and after the reset/help verbs.
func (r *REPL) createCompleter() readline.AutoCompleter {
	nodeNames := func(string) []string {
		names, err := r.console.Names()
		if err != nil {
			r.logger.Debug("completion unavailable: %v", err)
			return nil
		}
		return names
	}

	items := []readline.PrefixCompleterInterface{
		readline.PcItem("reset", readline.PcItemDynamic(nodeNames)),
		readline.PcItem("help", readline.PcItemDynamic(nodeNames)),
		readline.PcItem("find"),
		readline.PcItemDynamic(nodeNames),
	}
	for _, b := range builtins {
		items = append(items, readline.PcItem(b))
	}

	return readline.NewPrefixCompleter(items...)
}
