package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

func newScanner() *bufio.Scanner {
	return bufio.NewScanner(os.Stdin)
}

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Category(ctx context.Context, name string) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Remove(ctx context.Context) error
	Show(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the storefront CLI.
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
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list | l       — list products matching the current filter
//	  - search [term]  — set the search term (no argument clears it)
//	  - category [c]   — set the category filter ("All" clears it)
//	  - add            — create a product
//	  - show           — show a single product (interactive ID prompt)
//	  - edit           — update a product
//	  - delete         — delete a product
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Catalog commands require a logged-in session; attempts while logged out
// get a short hint instead. Errors returned by command handlers are ignored
// here; handlers print their own messages. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("brewmart %s> ", statusFn()))
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
				printlnFn("Available commands: (l)ist, search [term], category [name], add, show, edit, delete, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			if !requireLogin(a) {
				continue
			}
			_ = a.List(ctx)

		case "search":
			if !requireLogin(a) {
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "category":
			if !requireLogin(a) {
				continue
			}
			_ = a.Category(ctx, strings.Join(args, " "))

		case "add":
			if !requireLogin(a) {
				continue
			}
			_ = a.Add(ctx)

		case "show":
			if !requireLogin(a) {
				continue
			}
			_ = a.Show(ctx)

		case "edit":
			if !requireLogin(a) {
				continue
			}
			_ = a.Edit(ctx)

		case "delete":
			if !requireLogin(a) {
				continue
			}
			_ = a.Remove(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if a.isLoggedIn() {
		return true
	}
	printlnFn("Please log in first (type 'login' or 'signup').")
	return false
}
