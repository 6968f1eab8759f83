package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Logout(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Go(ctx context.Context, path string) error
	Demo(ctx context.Context, on bool) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the CryptoTracker CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help           - show available commands
//	  - go <path>      - open a view, e.g. go /holdings
//	  - demo on|off    - toggle demo data
//	  - status         - show session, connectivity and demo state
//	  - exit | quit    - leave the program
//
//	Not logged in:
//	  - login          - authenticate
//	  - register       - create an account
//	  - forgot         - request a password reset link
//	  - reset          - set a new password with a reset token
//
//	Logged in:
//	  - profile        - edit name and email
//	  - logout         - log out
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ct %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: go <path>, demo on|off, status, profile, logout, exit")
			} else {
				printlnFn("Available commands: login, register, forgot, reset, go <path>, demo on|off, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset":
			_ = a.Reset(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.EditProfile(ctx)

		case "go":
			if len(args) != 1 {
				printlnFn("Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case "demo":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				printlnFn("Usage: demo on|off")
				continue
			}
			_ = a.Demo(ctx, args[0] == "on")

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
