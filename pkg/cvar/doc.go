// Package cvar implements a runtime configuration tree and command
// interpreter: it exposes named, typed values (properties) and named
// operations (actions) owned by an arbitrary caller-supplied object as
// a hierarchical namespace that can be read, mutated, reset and
// invoked from single-line text commands.
//
// The caller's configuration object stays the single source of truth.
// It opts in by implementing the Visitor contract, reporting its
// properties and actions into a Builder; the console rebuilds that
// node tree from the live object on every command and discards it
// before returning, so values changed by other code between commands
// are always picked up.
//
// The package performs no I/O of its own. Each command produces an
// ordered slice of output lines for the front-end to display, and any
// failure is local to that one command.
package cvar
