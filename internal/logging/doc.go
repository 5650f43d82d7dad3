// Package logging provides logging utilities for the cubefit CLI.
//
// Two kinds of output are kept apart:
//   - Debug logging: structured records via slog
//   - User output: short status lines for the person at the terminal
//
// # Debug Logging
//
// Setup installs the handler and makes it the slog default. Packages that
// take a *slog.Logger (the packer, the slotter) get a child logger:
//
//	engine.New(settings, logging.With("component", "engine"))
//	logging.Debug("config loaded", "path", path)
//	logging.Warn("import warning", "file", path, "warning", w)
//
// # User Output
//
//	logging.UserInfo("Packing %d items into %s", n, c.Label)
//	logging.UserSuccess("Report written to %s", path)
//	logging.UserWarning("Line %d skipped", line)
//	logging.UserError("Pack failed: %v", err)
//
// UserInfo and UserSuccess go to Stdout, UserWarning and UserError to
// Stderr. Both writers can be swapped, which the CLI tests rely on.
package logging
