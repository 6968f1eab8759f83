// Package cli provides the interactive CryptoTracker command-line client.
//
// It wires configuration, the persistent credential store, the session
// manager, API services, the router with its views and an interactive REPL.
// Typical flow: restore the session from the store, show the entry or landing
// view, start a background connectivity watcher, and execute user commands.
//
// Key features:
//   - Login / Register / Forgot / Reset / Logout
//   - Views for the dashboard, holdings, trades, P&L, profile and exchanges,
//     with the AI assistant and exchange connection requiring a session
//   - Demo mode serving sample data without requests
//   - Online / offline indicator in the prompt
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
