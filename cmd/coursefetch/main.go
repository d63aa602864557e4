package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/coursefetch"
	"github.com/fwojciec/coursefetch/fs"
	"github.com/fwojciec/coursefetch/goquery"
	cfslog "github.com/fwojciec/coursefetch/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read when a page argument is "-". Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("coursefetch"),
		kong.Description("Extract and plan downloads of course supplement links"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"base_url": coursefetch.DefaultBaseURL},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'coursefetch --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	deps.Extractor = goquery.NewSupplementExtractor()
	if logger != nil {
		deps.Extractor = cfslog.NewLoggingExtractor(deps.Extractor, logger)
	}

	if command(kongCtx) == "plan" {
		deps.Planner = fs.NewPlanner(
			fs.WithBaseURL(coursefetch.FixURL(cli.Plan.Base)),
			fs.WithPrefix(cli.Plan.Prefix),
			fs.WithDryRun(cli.Plan.DryRun),
		)
		if logger != nil {
			deps.Planner = cfslog.NewLoggingPlanner(deps.Planner, logger)
		}
	}

	return kongCtx.Run(deps)
}

// command returns the name of the selected subcommand without its arguments.
func command(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
