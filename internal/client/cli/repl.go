package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/drawioconv/internal/client/landing"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Start(ctx context.Context) error
	Select(ctx context.Context, path string) error
	Convert(ctx context.Context) error
	Wait(ctx context.Context) error
	Download(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the converter CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF, when ctx ends, or when the
// user types "exit" or "quit".
//
// Commands
//
//	help            show available commands
//	start           show the workflow section
//	select <path>   choose a .drawio file (the rest of the line is the path)
//	convert         upload the selected file for conversion
//	wait            block until the running conversion finishes
//	download        save the converted archive
//	status          show the stepper and current state
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		printlnFn(fmt.Sprintf("drawio %s> ", statusFn()))

		var line string
		select {
		case <-ctx.Done():
			printlnFn("Bye!")
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText())

		case landing.StartCmd:
			_ = a.Start(ctx)

		case "select":
			path := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), cmd))
			if path == "" {
				printlnFn("Usage: select <path>")
				continue
			}
			_ = a.Select(ctx, path)

		case "convert":
			_ = a.Convert(ctx)

		case "wait":
			_ = a.Wait(ctx)

		case "download":
			_ = a.Download(ctx)

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
