package cvar

import (
	"fmt"
	"strings"
)

// Visitor is the contract a configuration object implements to expose
// its properties and actions to the console. VisitNodes must report
// the same nodes in the same order for the same configuration state;
// listing order is observable behavior.
type Visitor interface {
	VisitNodes(b *Builder)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(b *Builder)

func (f VisitorFunc) VisitNodes(b *Builder) { f(b) }

// group is one level of the transient node tree. Child nodes and child
// groups each keep their registration order.
type group struct {
	name   string
	nodes  []Node
	groups []*group
}

func (g *group) node(name string) Node {
	for _, n := range g.nodes {
		if n.Name() == name {
			return n
		}
	}
	return nil
}

func (g *group) subgroup(name string) *group {
	for _, sub := range g.groups {
		if sub.name == name {
			return sub
		}
	}
	return nil
}

// Builder collects the nodes a Visitor reports for one group of the
// tree snapshot. Sibling name collisions and excessive nesting are
// recorded as errors and surface from the build; a Builder with a
// recorded error ignores further registrations.
type Builder struct {
	grp      *group
	prefix   string
	sep      string
	depth    int
	maxDepth int
	names    map[string]struct{}
	err      *error
}

// Add registers a single property or action in the current group.
func (b *Builder) Add(n Node) {
	if *b.err != nil || n == nil {
		return
	}
	if !b.claim(n.Name()) {
		return
	}
	b.grp.nodes = append(b.grp.nodes, n)
}

// Group attaches v's nodes as a nested group under name.
func (b *Builder) Group(name string, v Visitor) {
	if *b.err != nil {
		return
	}
	if b.depth+1 >= b.maxDepth {
		*b.err = fmt.Errorf("%q: %w", b.qualify(name), ErrDepthExceeded)
		return
	}
	if !b.claim(name) {
		return
	}
	child := &group{name: name}
	v.VisitNodes(&Builder{
		grp:      child,
		prefix:   b.qualify(name),
		sep:      b.sep,
		depth:    b.depth + 1,
		maxDepth: b.maxDepth,
		names:    make(map[string]struct{}),
		err:      b.err,
	})
	b.grp.groups = append(b.grp.groups, child)
}

// Merge flattens v's nodes into the current group instead of nesting
// them, for configuration objects that want to contribute to their
// parent's namespace.
func (b *Builder) Merge(v Visitor) {
	if *b.err != nil {
		return
	}
	v.VisitNodes(b)
}

func (b *Builder) claim(name string) bool {
	if name == "" || strings.Contains(name, b.sep) {
		*b.err = fmt.Errorf("invalid node name %q in group %q", name, b.prefix)
		return false
	}
	if _, dup := b.names[name]; dup {
		*b.err = fmt.Errorf("%q: %w", b.qualify(name), ErrDuplicateName)
		return false
	}
	b.names[name] = struct{}{}
	return true
}

func (b *Builder) qualify(name string) string {
	if b.prefix == "" {
		return name
	}
	return b.prefix + b.sep + name
}

// buildTree materializes a fresh snapshot of the node tree from the
// live configuration object. The snapshot is owned by the current
// command and must not outlive it.
func buildTree(root Visitor, sep string, maxDepth int) (*group, error) {
	g := &group{}
	var err error
	root.VisitNodes(&Builder{
		grp:      g,
		sep:      sep,
		maxDepth: maxDepth,
		names:    make(map[string]struct{}),
		err:      &err,
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}
