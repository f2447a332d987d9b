// Package app is the composition root for bargain.
//
// Run wires the pieces together in order:
//
//  1. config.Load reads ~/.config/bargain/config.toml and BARGAIN_* overrides
//  2. newLogger opens the JSON log file, or a no-op logger when logging is off
//  3. cheapshark.NewClient builds the HTTP client with a logging transport
//  4. catalog.NewAcquirer turns API records into deal summaries
//  5. prefs.Load restores the saved theme and sort order
//  6. ui.Run starts the TUI and blocks until the user quits
//
// Configuration and logger errors are fatal. Network errors never are: the
// UI reports them and offers a retry.
package app
