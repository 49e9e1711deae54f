package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mran/startog"
	"github.com/mran/startog/fs"
	"github.com/mran/startog/fuzzy"
	sthttp "github.com/mran/startog/http"
	"github.com/mran/startog/ristretto"
	stslog "github.com/mran/startog/slog"
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
	// Input for interactive commands. Defaults to os.Stdin.
	Stdin io.Reader

	// Source overrides the project source selected by --source.
	// Set before calling Run() for end-to-end testing.
	Source startog.ProjectSource

	// Writer overrides the report writer selected by --output.
	Writer startog.ReportWriter

	indexer *ristretto.Indexer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.indexer != nil {
		m.indexer.Close()
	}
	return nil
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
		kong.Name("startog"),
		kong.Description("Search and filter a showcase of starred GitHub projects."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'startog --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	source := m.Source
	if source == nil {
		source = newSource(cli.Source, cli)
	}

	builder := stslog.NewLoggingIndexer(
		fuzzy.NewIndexer(
			fuzzy.WithThreshold(cli.Threshold),
			fuzzy.WithIgnoreDiacritics(cli.IgnoreDiacritics),
		),
		deps.Logger,
	)
	m.indexer, err = ristretto.NewIndexer(builder, ristretto.DefaultMaxIndexes)
	if err != nil {
		return fmt.Errorf("failed to create index cache: %w", err)
	}
	defer m.Close()

	deps.Showcase = &Showcase{
		Source:  stslog.NewLoggingSource(source, deps.Logger),
		Indexer: m.indexer,
		Logger:  deps.Logger,
	}

	deps.Writer = m.Writer
	if deps.Writer == nil {
		deps.Writer = fs.NewWriter(cli.Export.Output)
	}

	return kongCtx.Run(deps)
}

// newSource picks the loader for the --source value.
func newSource(location string, cli *CLI) startog.ProjectSource {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return sthttp.NewSource(location, sthttp.WithTimeout(cli.Timeout))
	}
	return fs.NewSource(location)
}
