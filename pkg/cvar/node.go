package cvar

import (
	"context"

	"github.com/zclconf/go-cty/cty"
)

// Node is a single entry in the configuration tree: either a Property
// (a named, typed value backed by a field of the caller's configuration
// object) or an Action (a named invocable operation).
type Node interface {
	Name() string
	Description() string
}

// Property is a Node carrying a live value and a default. The live
// value is a reference into the caller-owned configuration object; the
// property never copies or retains it beyond one command's execution.
type Property interface {
	Node

	// Type returns the cty type tag input text is coerced into.
	Type() cty.Type

	// Get renders the current value as text.
	Get() string

	// Set parses text into the property's native type and assigns it.
	// On failure it returns a *TypeError and leaves the value unchanged.
	Set(text string) error

	// Reset assigns the stored default to the live reference.
	Reset()

	// Default renders the default value as text.
	Default() string

	// IsDefault reports whether the live value equals the default.
	IsDefault() bool
}

// Output is the write-back handle passed to actions so they can emit
// console output while running, e.g. to stream self-test results.
type Output interface {
	Printf(format string, args ...any)
	Println(format string, args ...any)
}

// ActionFunc is the operation behind an Action node. It receives the
// remaining command tokens and an Output for emitting lines.
type ActionFunc func(ctx context.Context, args []string, out Output) error

// Action is an invocable Node with no stored value.
type Action interface {
	Node
	Invoke(ctx context.Context, args []string, out Output) error
}

// Scalar is the closed set of supported property value types. New
// kinds are added here explicitly; there is no coercion across kinds.
type Scalar interface {
	~bool | ~int | ~float64 | ~string
}

type property[T Scalar] struct {
	name string
	desc string
	ref  *T
	def  T
	typ  cty.Type
}

// NewProperty creates a Property named name backed by ref. The default
// def is re-supplied by the Visitor on every tree build; the tree never
// owns the value.
func NewProperty[T Scalar](name, desc string, ref *T, def T) Property {
	return &property[T]{
		name: name,
		desc: desc,
		ref:  ref,
		def:  def,
		typ:  scalarType[T](),
	}
}

func (p *property[T]) Name() string        { return p.name }
func (p *property[T]) Description() string { return p.desc }
func (p *property[T]) Type() cty.Type      { return p.typ }

func (p *property[T]) Get() string     { return renderScalar(*p.ref) }
func (p *property[T]) Default() string { return renderScalar(p.def) }
func (p *property[T]) IsDefault() bool { return *p.ref == p.def }
func (p *property[T]) Reset()          { *p.ref = p.def }

func (p *property[T]) Set(text string) error {
	v, err := parseScalar[T](text)
	if err != nil {
		return &TypeError{Name: p.name, Type: p.typ, Text: text, Err: err}
	}
	*p.ref = v
	return nil
}

type action struct {
	name string
	desc string
	fn   ActionFunc
}

// NewAction creates an Action node invoking fn. The function value is
// owned by the node; it may capture arbitrary outer state but must not
// restructure the tree while a command is executing.
func NewAction(name, desc string, fn ActionFunc) Action {
	return &action{name: name, desc: desc, fn: fn}
}

func (a *action) Name() string        { return a.name }
func (a *action) Description() string { return a.desc }

func (a *action) Invoke(ctx context.Context, args []string, out Output) error {
	if a.fn == nil {
		return nil
	}
	return a.fn(ctx, args, out)
}
