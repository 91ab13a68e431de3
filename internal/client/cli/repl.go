package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isFreelancer(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Avatar(ctx context.Context, path string) error
	Reset(ctx context.Context) error

	Browse(ctx context.Context, category string) error
	ShowGig(ctx context.Context, id string) error
	MyGigs(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// runREPL reads commands from reader and dispatches them to a until the
// user types "exit"/"quit", input ends, or ctx is done.
//
//	Everyone:
//	  help, gigs [category], gig <id>, exit | quit
//	Guests:
//	  register, login, reset
//	Signed in:
//	  whoami, profile, avatar <path>, logout
//	Freelancers:
//	  mygigs, create, edit <id>, delete <id>
//
// Handler errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gig %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(ctx, a))

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "avatar":
			if len(args) != 1 {
				printlnFn("Usage: avatar <image path>")
				continue
			}
			_ = a.Avatar(ctx, args[0])
		case "reset":
			_ = a.Reset(ctx)

		case "gigs":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			_ = a.Browse(ctx, category)
		case "gig":
			if len(args) != 1 {
				printlnFn("Usage: gig <id>")
				continue
			}
			_ = a.ShowGig(ctx, args[0])
		case "mygigs":
			_ = a.MyGigs(ctx)
		case "create":
			_ = a.Create(ctx)
		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])
		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func helpText(ctx context.Context, a execIface) string {
	cmds := []string{"help", "gigs [category]", "gig <id>"}
	switch {
	case a.isFreelancer(ctx):
		cmds = append(cmds, "mygigs", "create", "edit <id>", "delete <id>", "whoami", "profile", "avatar <path>", "logout")
	case a.isLoggedIn(ctx):
		cmds = append(cmds, "whoami", "profile", "avatar <path>", "logout")
	default:
		cmds = append(cmds, "register", "login", "reset")
	}
	cmds = append(cmds, "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
