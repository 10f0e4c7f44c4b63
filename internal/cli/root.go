package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) getStatus() string {
	if a.principal == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.principal.Email)
}

// Root runs the command loop. Handlers report problems to the user
// themselves; nothing a handler returns may stop the loop.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to LuxAuto (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "lux %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			a.printHelp()

		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "profile":
			a.Profile(ctx)

		case "contact":
			a.Contact(ctx)
		case "check":
			a.CheckReservation(ctx)

		case "messages", "m":
			if a.requireLogin() {
				a.Messages(ctx)
			}
		case "read":
			if a.requireLogin() {
				a.ReadMessage(ctx, parts[1:])
			}
		case "delete":
			if a.requireLogin() {
				a.DeleteMessage(ctx, parts[1:])
			}
		case "replies":
			if a.requireLogin() {
				a.Replies(ctx)
			}
		case "export":
			if a.requireLogin() {
				a.Export(ctx)
			}
		case "clearmessages":
			if a.requireLogin() {
				a.ClearMessages(ctx)
			}
		case "sell":
			if a.requireLogin() {
				a.Sell(ctx)
			}

		case "exit", "quit":
			return

		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", cmd)
		}

		if ctx.Err() != nil {
			return
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: (m)essages, read, delete, replies, export, clearmessages, sell, contact, check, profile, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, contact, check, exit")
	}
}

// requireLogin gates member-only commands the way the pages gated on the
// stored session.
func (a *App) requireLogin() bool {
	if a.isLoggedIn() {
		return true
	}
	fmt.Fprintln(a.out, "Please login first (type 'login' or 'register')")
	return false
}
