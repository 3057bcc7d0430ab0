package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
)

const shellPrompt = "heroquest> "

func newShellCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session with undo and redo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, ap *app) error {
				return runShell(ctx, ap, cmd.InOrStdin())
			})
		},
	}
}

// runShell reads commands from in until end of input, "exit" or ctx is
// canceled. A failing command prints its error and the session continues.
func runShell(ctx context.Context, ap *app, in io.Reader) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	ap.out.linef(`Type "help" for commands, "exit" to leave.`)
	if h := ap.store.CurrentHero(); h != nil {
		ap.out.linef("Active hero: %s", h.Name)
	}

	for {
		fmt.Fprint(ap.out.out, shellPrompt)

		var line string
		select {
		case <-ctx.Done():
			ap.out.linef("")
			return nil
		case l, ok := <-lines:
			if !ok {
				ap.out.linef("")
				return nil
			}
			line = l
		}

		args, err := splitArgs(line)
		if err != nil {
			ap.out.linef("Error: %v", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch name := strings.ToLower(args[0]); name {
		case "exit", "quit":
			return nil
		case "help", "?":
			printShellHelp(ap.out)
		default:
			if err := dispatch(ctx, ap, name, args[1:]); err != nil {
				ap.out.linef("Error: %v", err)
			}
		}
	}
}

// readLines scans in on its own goroutine until done is closed. A blocked
// read cannot be interrupted, so on a terminal the goroutine stays parked in
// Scan until the process exits.
func readLines(in io.Reader, done <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()
	return lines
}

func dispatch(ctx context.Context, ap *app, name string, args []string) error {
	a, ok := findAction(name)
	if !ok {
		return errors.InvalidArgumentf("unknown command %q", name)
	}
	if len(args) < a.minArgs || (a.maxArgs >= 0 && len(args) > a.maxArgs) {
		return errors.InvalidArgumentf("usage: %s %s", a.name, a.usage)
	}
	return a.run(ctx, ap, args)
}

func printShellHelp(p *printer) {
	rows := make([][]string, 0, len(actions())+1)
	for _, a := range actions() {
		rows = append(rows, []string{strings.TrimSpace(a.name + " " + a.usage), a.short})
	}
	rows = append(rows, []string{"exit", "Save and leave the shell"})
	p.table([]string{"Command", ""}, rows)
}

// splitArgs splits line on whitespace. Single or double quotes group words,
// so `create "Sir Ragnar" barbarian` yields three arguments.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quote != 0 {
		return nil, errors.InvalidArgumentf("unterminated %c quote", quote)
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
