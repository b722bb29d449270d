// Package logging provides structured logging for convar's command
// front-ends, built on Go's standard slog package.
//
// Log entries carry a subsystem identifier for categorization
// (Bootstrap, Config, REPL, Console) alongside the level, timestamp
// and message. Initialize once at startup with InitForCLI, then log
// through the package-level functions:
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "starting console")
//	logging.Debug("Config", "loaded settings from %s", path)
//	logging.Error("REPL", err, "command failed")
//
// Level filtering happens at the handler, so filtered-out messages
// cost no allocation. The package is safe for concurrent use. Note
// that command results are not log output: the REPL prints those
// through its own user-facing output writer, without timestamps.
package logging
