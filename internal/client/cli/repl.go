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
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	SetSize(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Rsvp(ctx context.Context, args []string) error
	My(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the EventHive CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                        show available commands
//	  - l | list [upcoming|past] [query...]
//	                                show the dashboard, optionally switching
//	                                tab and filtering by a search query
//	  - next | prev                 move between dashboard pages
//	  - size <n>                    switch the page size (5, 10 or 20)
//	  - show <id>                   show a single event
//	  - export <id>                 save an event as an .ics file
//	  - exit | quit                 leave the program
//
//	Not logged in:
//	  - login                       authenticate with an emailed OTP
//
//	Logged in:
//	  - whoami                      show the current session
//	  - create                      create a new event
//	  - edit <id>                   edit an event
//	  - delete <id>                 delete an event
//	  - rsvp <id>                   RSVP to an event
//	  - my [rsvps|created]          personal listings
//	  - logout                      log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("eh> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, next, prev, size, show, create, edit, delete, rsvp, my, export, whoami, logout, exit")
			} else {
				printlnFn("Available commands: (l)ist, next, prev, size, show, export, login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "l", "list":
			_ = a.List(ctx, args)

		case "next", "n":
			_ = a.Next(ctx)

		case "prev", "p":
			_ = a.Prev(ctx)

		case "size":
			_ = a.SetSize(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "rsvp":
			_ = a.Rsvp(ctx, args)

		case "my":
			_ = a.My(ctx, args)

		case "export":
			_ = a.Export(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
