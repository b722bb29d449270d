package cvar

import (
	"context"
	"fmt"
	"strings"
)

const (
	// DefaultPathSeparator joins and splits path segments in commands
	// and fully-qualified names.
	DefaultPathSeparator = "."

	// DefaultMaxDepth bounds group nesting, guarding against cyclic
	// Visitor graphs.
	DefaultMaxDepth = 16
)

// Console interprets command lines against a single configuration
// object. It holds only the Visitor reference handed to New; the node
// tree is rebuilt from the live object for every command and dropped
// again before the call returns, so the caller is free to mutate the
// object between commands. Access during a command must be serialized
// by the caller.
type Console struct {
	root     Visitor
	sep      string
	maxDepth int
}

// Option configures a Console.
type Option func(*Console)

// WithPathSeparator replaces the default "." separator for paths and
// fully-qualified names.
func WithPathSeparator(sep string) Option {
	return func(c *Console) {
		if sep != "" {
			c.sep = sep
		}
	}
}

// WithMaxDepth replaces the default group nesting limit.
func WithMaxDepth(n int) Option {
	return func(c *Console) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// New creates a Console over root. One Console serves one
// configuration object.
func New(root Visitor, opts ...Option) *Console {
	c := &Console{
		root:     root,
		sep:      DefaultPathSeparator,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Separator returns the configured path separator.
func (c *Console) Separator() string { return c.sep }

// Eval interprets one command line and returns its output lines.
// Empty input is a no-op. Errors are local to the call: the value
// state and the console remain fully usable afterwards.
func (c *Console) Eval(ctx context.Context, line string) ([]string, error) {
	cmd := c.parseLine(line)
	if cmd.empty {
		return nil, nil
	}
	root, err := c.build()
	if err != nil {
		return nil, err
	}
	switch cmd.verb {
	case verbReset:
		return c.evalReset(root, cmd.path)
	case verbFind:
		return c.renderFind(root, cmd.query), nil
	case verbHelp:
		return c.evalHelp(root, cmd.path)
	default:
		return c.evalPath(ctx, root, cmd)
	}
}

// Execute is Eval with the error folded into the output as a single
// "error: ..." line, ready for display by a front-end.
func (c *Console) Execute(ctx context.Context, line string) []string {
	lines, err := c.Eval(ctx, line)
	if err != nil {
		lines = append(lines, "error: "+err.Error())
	}
	return lines
}

func (c *Console) build() (*group, error) {
	return buildTree(c.root, c.sep, c.maxDepth)
}

// evalPath dispatches the "<path> [value-tokens...]" form: get for a
// property without payload, set for a property with payload, invoke
// for an action (tokens forwarded either way).
func (c *Console) evalPath(ctx context.Context, root *group, cmd command) ([]string, error) {
	n, err := resolveNode(root, cmd.path, c.sep)
	if err != nil {
		return nil, err
	}
	switch node := n.(type) {
	case Action:
		buf := &lineBuffer{}
		err := node.Invoke(ctx, cmd.args, buf)
		return buf.flush(), err
	case Property:
		if cmd.payload == "" {
			return []string{node.Get()}, nil
		}
		if err := node.Set(cmd.payload); err != nil {
			return nil, err
		}
		return []string{node.Get()}, nil
	}
	return nil, fmt.Errorf("%q: %w", strings.Join(cmd.path, c.sep), ErrNotFound)
}

func (c *Console) evalReset(root *group, path []string) ([]string, error) {
	if len(path) == 0 {
		return c.resetGroup(root, ""), nil
	}
	n, grp, err := resolveTarget(root, path, c.sep)
	if err != nil {
		return nil, err
	}
	if grp != nil {
		return c.resetGroup(grp, strings.Join(path, c.sep)), nil
	}
	p, ok := n.(Property)
	if !ok {
		// Resetting an action is a no-op, not an error.
		return nil, nil
	}
	p.Reset()
	return []string{fmt.Sprintf("%s = %s", strings.Join(path, c.sep), p.Get())}, nil
}

// resetGroup restores every property under g to its default and
// reports one confirmation line per property.
func (c *Console) resetGroup(g *group, prefix string) []string {
	var lines []string
	walkGroup(g, prefix, c.sep, func(fqn string, n Node) {
		if p, ok := n.(Property); ok {
			p.Reset()
			lines = append(lines, fmt.Sprintf("%s = %s", fqn, p.Get()))
		}
	})
	return lines
}

func (c *Console) renderFind(root *group, query string) []string {
	matches := findMatches(root, c.sep, query)
	if len(matches) == 0 {
		return []string{"(no matches)"}
	}
	var lines []string
	for _, m := range matches {
		lines = append(lines, detailLines(m)...)
	}
	return lines
}

// detailLines renders one node the way find and help listings show it.
func detailLines(m Match) []string {
	var lines []string
	switch n := m.Node.(type) {
	case Property:
		lines = append(lines, fmt.Sprintf("%s: %s (default: %s)", m.Name, n.Get(), n.Default()))
	case Action:
		lines = append(lines, fmt.Sprintf("%s (action)", m.Name))
	}
	if d := m.Node.Description(); d != "" {
		lines = append(lines, "\t"+d)
	}
	return lines
}

var helpSummary = []string{
	"<name>           print the current value of a property",
	"<name> <value>   set a property",
	"<name> [args]    invoke an action",
	"reset [name]     restore a property, a group or everything to defaults",
	"find [text]      list nodes whose full name contains text",
	"help [name]      show this overview, or details for one node",
}

func (c *Console) evalHelp(root *group, path []string) ([]string, error) {
	if len(path) == 0 {
		lines := append([]string{}, helpSummary...)
		lines = append(lines, "")
		return append(lines, c.renderFind(root, "")...), nil
	}
	n, grp, err := resolveTarget(root, path, c.sep)
	if err != nil {
		return nil, err
	}
	if grp != nil {
		return c.renderSubtree(grp, strings.Join(path, c.sep)), nil
	}
	return detailLines(Match{Name: strings.Join(path, c.sep), Node: n}), nil
}

func (c *Console) renderSubtree(g *group, prefix string) []string {
	var lines []string
	walkGroup(g, prefix, c.sep, func(fqn string, n Node) {
		lines = append(lines, detailLines(Match{Name: fqn, Node: n})...)
	})
	if len(lines) == 0 {
		return []string{"(no matches)"}
	}
	return lines
}
