package cvar

import (
	"context"
	"fmt"
	"strings"
)

// The methods below are the programmatic counterpart of Eval, used by
// front-ends that want structured access to the tree (tab completion,
// table rendering) or by host code that drives properties directly.
// Each call rebuilds the tree from the live configuration object.

// Get renders the current value of the named property.
func (c *Console) Get(name string) (string, error) {
	p, err := c.propertyByName(name)
	if err != nil {
		return "", err
	}
	return p.Get(), nil
}

// Set coerces value into the named property's type and assigns it.
func (c *Console) Set(name, value string) error {
	p, err := c.propertyByName(name)
	if err != nil {
		return err
	}
	return p.Set(value)
}

// Reset restores the named property, or every property under the named
// group, to its default.
func (c *Console) Reset(name string) error {
	root, err := c.build()
	if err != nil {
		return err
	}
	_, err = c.evalReset(root, c.splitPath(name))
	return err
}

// ResetAll restores every property in the tree to its default.
func (c *Console) ResetAll() error {
	root, err := c.build()
	if err != nil {
		return err
	}
	c.resetGroup(root, "")
	return nil
}

// Call invokes the named action with args, writing its output to out.
func (c *Console) Call(ctx context.Context, name string, args []string, out Output) error {
	root, err := c.build()
	if err != nil {
		return err
	}
	n, err := resolveNode(root, c.splitPath(name), c.sep)
	if err != nil {
		return err
	}
	a, ok := n.(Action)
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrNotAnAction)
	}
	return a.Invoke(ctx, args, out)
}

// Find returns every node whose fully-qualified name contains query,
// case-insensitively, in deterministic tree order. An empty query
// returns the whole tree.
func (c *Console) Find(query string) ([]Match, error) {
	root, err := c.build()
	if err != nil {
		return nil, err
	}
	return findMatches(root, c.sep, query), nil
}

// Names returns the fully-qualified names of all nodes in tree order.
func (c *Console) Names() ([]string, error) {
	matches, err := c.Find("")
	if err != nil {
		return nil, err
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Name
	}
	return names, nil
}

func (c *Console) propertyByName(name string) (Property, error) {
	root, err := c.build()
	if err != nil {
		return nil, err
	}
	n, err := resolveNode(root, c.splitPath(name), c.sep)
	if err != nil {
		return nil, err
	}
	p, ok := n.(Property)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotAProperty)
	}
	return p, nil
}

// LineWriter is an Output implementation for callers outside this
// package that invoke actions via Call and want the emitted lines back.
type LineWriter struct {
	buf lineBuffer
}

func (w *LineWriter) Printf(format string, args ...any)  { w.buf.Printf(format, args...) }
func (w *LineWriter) Println(format string, args ...any) { w.buf.Println(format, args...) }

// Lines returns everything written so far, terminating any partial line.
func (w *LineWriter) Lines() []string { return w.buf.flush() }

// String joins the collected lines with newlines.
func (w *LineWriter) String() string { return strings.Join(w.buf.flush(), "\n") }
