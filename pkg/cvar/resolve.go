package cvar

import (
	"fmt"
	"strings"
)

// Match is one hit of a find query: a node together with its
// fully-qualified name.
type Match struct {
	Name string
	Node Node
}

// resolveNode walks the tree by exact name match at every segment and
// requires the final segment to name a Node. Names are unique within a
// group by construction, so there is never more than one candidate.
func resolveNode(root *group, path []string, sep string) (Node, error) {
	n, grp, err := resolveTarget(root, path, sep)
	if err != nil {
		return nil, err
	}
	if grp != nil {
		return nil, notFound(path, sep)
	}
	return n, nil
}

// resolveTarget is resolveNode relaxed to also accept a group as the
// final segment, which reset uses for subtree resets. Exactly one of
// the returned node and group is non-nil on success.
func resolveTarget(root *group, path []string, sep string) (Node, *group, error) {
	if len(path) == 0 {
		return nil, nil, notFound(path, sep)
	}
	g := root
	for _, seg := range path[:len(path)-1] {
		if g = g.subgroup(seg); g == nil {
			return nil, nil, notFound(path, sep)
		}
	}
	last := path[len(path)-1]
	if n := g.node(last); n != nil {
		return n, nil, nil
	}
	if sub := g.subgroup(last); sub != nil {
		return nil, sub, nil
	}
	return nil, nil, notFound(path, sep)
}

func notFound(path []string, sep string) error {
	return fmt.Errorf("%q: %w", strings.Join(path, sep), ErrNotFound)
}

// walkGroup visits every node under g in deterministic order: direct
// nodes first, then each subgroup recursively, everything in
// registration order.
func walkGroup(g *group, prefix, sep string, fn func(fqn string, n Node)) {
	for _, n := range g.nodes {
		fn(joinName(prefix, n.Name(), sep), n)
	}
	for _, sub := range g.groups {
		walkGroup(sub, joinName(prefix, sub.name, sep), sep, fn)
	}
}

func joinName(prefix, name, sep string) string {
	if prefix == "" {
		return name
	}
	return prefix + sep + name
}

// findMatches returns every node whose fully-qualified name contains
// query, case-insensitively, in tree visitation order. An empty query
// matches everything. Zero matches is a valid, empty result.
func findMatches(root *group, sep, query string) []Match {
	q := strings.ToLower(query)
	var out []Match
	walkGroup(root, "", sep, func(fqn string, n Node) {
		if q == "" || strings.Contains(strings.ToLower(fqn), q) {
			out = append(out, Match{Name: fqn, Node: n})
		}
	})
	return out
}
