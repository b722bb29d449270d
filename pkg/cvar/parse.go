package cvar

import (
	"strings"
	"unicode"
)

// verb classifies one input line. Parsing never touches the tree; the
// split between get, set and invoke for the path form is decided later
// against the resolved node.
type verb int

const (
	verbPath verb = iota // "<path> [value-tokens...]"
	verbReset
	verbFind
	verbHelp
)

type command struct {
	verb    verb
	path    []string // name segments, for verbPath and reset/help targets
	query   string   // find substring
	payload string   // raw text after the path token, whitespace preserved
	args    []string // tokenized payload, for action invocation
	empty   bool
}

// parseLine classifies a single command line. The reserved verbs win
// over identically-named root nodes; a node literally named "reset",
// "find" or "help" is unreachable by name alone; such a node stays
// reachable through the programmatic API.
func (c *Console) parseLine(line string) command {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return command{empty: true}
	}

	head, rest := splitToken(trimmed)
	switch strings.ToLower(head) {
	case "reset":
		cmd := command{verb: verbReset}
		if target, _ := splitToken(rest); target != "" {
			cmd.path = c.splitPath(target)
		}
		return cmd
	case "find":
		query, _ := splitToken(rest)
		return command{verb: verbFind, query: query}
	case "help":
		cmd := command{verb: verbHelp}
		if target, _ := splitToken(rest); target != "" {
			cmd.path = c.splitPath(target)
		}
		return cmd
	}

	return command{
		verb:    verbPath,
		path:    c.splitPath(head),
		payload: rest,
		args:    strings.Fields(rest),
	}
}

func (c *Console) splitPath(token string) []string {
	return strings.Split(token, c.sep)
}

// splitToken splits off the first whitespace-delimited token and
// returns it together with the trimmed remainder of the line.
func splitToken(s string) (string, string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
