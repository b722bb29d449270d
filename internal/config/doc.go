// Package config loads the console front-end settings.
//
// Settings live in a single console.yaml file. Loading is
// defaults-first: a missing file yields the default configuration
// without error, a malformed file fails loudly. The core interpreter
// in pkg/cvar takes its options (path separator, max depth) from here;
// everything else configures the REPL presentation layer.
package config
