package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Calendar(ctx context.Context, args []string) error
	Prev(ctx context.Context) error
	Next(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Analyze(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Refresh(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, analyze <text>, help, exit"
	helpMember = "Available commands: calendar [YYYY-MM], prev, next, list [mood], show <id>, new, edit <id>, " +
		"delete <id>, analyze <text>, refresh, profile, editprofile, deleteaccount, logout, help, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done. Command
// errors are reported through describeError and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("moodiary %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)

		case "calendar", "cal":
			cmdErr = a.Calendar(ctx, args)
		case "prev":
			cmdErr = a.Prev(ctx)
		case "next":
			cmdErr = a.Next(ctx)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "show":
			if len(args) == 0 {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(ctx, args)
		case "new", "write":
			cmdErr = a.New(ctx)
		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			cmdErr = a.Edit(ctx, args)
		case "delete", "rm":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, args)
		case "analyze":
			cmdErr = a.Analyze(ctx, args)
		case "refresh", "sync":
			cmdErr = a.Refresh(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)
		case "editprofile":
			cmdErr = a.EditProfile(ctx)
		case "deleteaccount":
			cmdErr = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmd, cmdErr))
		}
	}
}
