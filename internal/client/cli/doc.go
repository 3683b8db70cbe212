// Package cli provides the interactive Assessment command-line client.
//
// It wires configuration, the local state database, the persistent cookie
// jar, the HTTP gateway and the session components, then runs a REPL in
// which every command is a navigation or a form action. Typical flow:
// resolve the session once, redirect to the sign-in view if needed, start
// the background session watcher and execute user commands.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, StartSessionWatcher and runREPL for details.
package cli
