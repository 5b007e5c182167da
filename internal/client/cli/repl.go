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
	WhoAmI(ctx context.Context) error
	Accounts(ctx context.Context) error
	Use(ctx context.Context, id string) error
	Balance(ctx context.Context) error
	Spent(ctx context.Context) error
	Transactions(ctx context.Context, limit string) error
	Webhooks(ctx context.Context) error
	Reload(ctx context.Context) error
	AddWebhook(ctx context.Context, url string) error
	RemoveWebhook(ctx context.Context, id string) error
}

const helpText = "Available commands: whoami, accounts, use <id>, balance, spent, " +
	"transactions [limit], webhooks, reload, addwebhook <url>, rmwebhook <id>, exit"

// runREPL reads commands from scanner and dispatches them to a until EOF
// or "exit"/"quit". Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "whoami":
			err = a.WhoAmI(ctx)
		case "accounts", "ls":
			err = a.Accounts(ctx)
		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <account id>")
				continue
			}
			err = a.Use(ctx, args[0])
		case "balance":
			err = a.Balance(ctx)
		case "spent":
			err = a.Spent(ctx)
		case "transactions":
			limit := ""
			if len(args) > 0 {
				limit = args[0]
			}
			err = a.Transactions(ctx, limit)
		case "webhooks":
			err = a.Webhooks(ctx)
		case "reload":
			err = a.Reload(ctx)
		case "addwebhook":
			if len(args) == 0 {
				printlnFn("Usage: addwebhook <url>")
				continue
			}
			err = a.AddWebhook(ctx, args[0])
		case "rmwebhook":
			if len(args) == 0 {
				printlnFn("Usage: rmwebhook <webhook id>")
				continue
			}
			err = a.RemoveWebhook(ctx, args[0])
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
