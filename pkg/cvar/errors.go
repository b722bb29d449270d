package cvar

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Sentinel errors returned by command evaluation and tree construction.
// They are always wrapped with the offending name; match them with
// errors.Is.
var (
	// ErrNotFound indicates a path segment or final name matched nothing.
	ErrNotFound = errors.New("unknown property or action")

	// ErrNotAProperty indicates a value operation was attempted on an action.
	ErrNotAProperty = errors.New("not a property")

	// ErrNotAnAction indicates an invocation was attempted on a property.
	ErrNotAnAction = errors.New("not an action")

	// ErrDuplicateName indicates two siblings in one group share a name.
	// This is a construction-time defect in the Visitor implementation,
	// not a runtime ambiguity.
	ErrDuplicateName = errors.New("duplicate node name")

	// ErrDepthExceeded indicates nested groups went past the configured
	// maximum recursion depth, usually a cycle in the Visitor graph.
	ErrDepthExceeded = errors.New("configuration nesting too deep")
)

// TypeError reports text that could not be coerced into a property's
// native type. The property's value is left untouched.
type TypeError struct {
	Name string   // property name
	Type cty.Type // the type the text was coerced toward
	Text string   // the rejected input
	Err  error    // the underlying conversion error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Text, e.Name, e.Err)
}

func (e *TypeError) Unwrap() error { return e.Err }
