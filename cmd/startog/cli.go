package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/mran/startog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Showcase *Showcase
	Writer   startog.ReportWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source           string        `short:"s" env:"STARTOG_SOURCE" default:"projects.json" help:"Project list file path or URL"`
	Timeout          time.Duration `env:"STARTOG_TIMEOUT" default:"10s" help:"Timeout for loading from a URL"`
	Threshold        float64       `env:"STARTOG_THRESHOLD" default:"0.3" help:"Fuzzy match threshold (0 exact, 1 anything)"`
	IgnoreDiacritics bool          `env:"STARTOG_IGNORE_DIACRITICS" help:"Match accented letters as their base letters"`
	Verbose          bool          `short:"v" env:"STARTOG_VERBOSE" help:"Enable debug logging"`

	Tags   TagsCmd   `cmd:"" help:"List the most frequent tags"`
	Search SearchCmd `cmd:"" help:"Search and filter projects"`
	Browse BrowseCmd `cmd:"" help:"Interactively search and toggle tags"`
	Export ExportCmd `cmd:"" help:"Write matching projects as a markdown report"`
}

// TagsCmd is the "tags" subcommand.
type TagsCmd struct {
	Limit int `short:"n" default:"30" help:"Number of tags to show"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string   `arg:"" optional:"" help:"Fuzzy search term"`
	Tag   []string `short:"t" name:"tag" help:"Require tag (repeatable)"`
	Full  bool     `help:"Show full project cards"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Query  string   `arg:"" optional:"" help:"Fuzzy search term"`
	Tag    []string `short:"t" name:"tag" help:"Require tag (repeatable)"`
	Output string   `short:"o" default:"starProject.md" help:"Markdown file to write"`
}
