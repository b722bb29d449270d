// Package repl implements the interactive terminal front-end for the
// configuration console: a readline loop with persistent history and
// tab completion over the node tree. It collects one line per command,
// hands it to the interpreter, and displays the returned lines; it
// never touches configuration values itself.
package repl
