package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Contests(ctx context.Context) error
	Problems(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Tag(ctx context.Context, tag string) error
	Statement(ctx context.Context, args []string) error
	Submit(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	Credentials(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CForge CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current session handle (from statusFn) and accepts:
//
//	help                           — show available commands
//	login                          — verify a handle and start a session
//	contests                       — list upcoming contests
//	problems                       — show the problem archive
//	search [text]                  — filter problems (no text clears)
//	tag <name>                     — toggle a tag filter on or off
//	statement <contest> <index>    — show a problem statement
//	submit <contest> <index> [lang]— submit a solution (simulated run)
//	subs <contest> <index>         — submission history for a problem
//	profile                        — show the signed-in user's profile
//	apikey                         — enter API credentials for signed calls
//	exit | quit                    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cf> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: login, contests, problems, search [text], tag <name>,")
			printlnFn("  statement <contest> <index>, submit <contest> <index> [lang],")
			printlnFn("  subs <contest> <index>, profile, apikey, exit")

		case "login":
			_ = a.Login(ctx)

		case "contests":
			_ = a.Contests(ctx)

		case "problems":
			_ = a.Problems(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "tag":
			if len(args) == 0 {
				printlnFn("Usage: tag <name>")
				continue
			}
			_ = a.Tag(ctx, strings.Join(args, " "))

		case "statement":
			_ = a.Statement(ctx, args)

		case "submit":
			_ = a.Submit(ctx, args)

		case "subs":
			_ = a.History(ctx, args)

		case "profile":
			if !a.isLoggedIn() {
				printlnFn("Sign in first: login")
				continue
			}
			_ = a.Profile(ctx)

		case "apikey":
			_ = a.Credentials(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
