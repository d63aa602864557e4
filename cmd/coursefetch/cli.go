package main

import (
	"context"
	"io"

	"github.com/fwojciec/coursefetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor coursefetch.SupplementExtractor
	Planner   coursefetch.TargetPlanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log operations to stderr"`

	Links  LinksCmd  `cmd:"" help:"List supplement links of a course page grouped by extension"`
	Plan   PlanCmd   `cmd:"" help:"Map supplement links of a course page to local files"`
	Clean  CleanCmd  `cmd:"" help:"Sanitize a string for use as a filename"`
	FixURL FixURLCmd `cmd:"" name:"fixurl" help:"Trim a URL and add a default scheme"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	Page     string `arg:"" optional:"" default:"-" help:"HTML file to read, or - for stdin"`
	Base     string `default:"${base_url}" env:"COURSEFETCH_BASE_URL" help:"Base URL for relative links (empty for the default origin)"`
	Absolute bool   `short:"a" help:"Resolve relative links against the base URL"`
	Format   bool   `short:"f" help:"Add a column with the resource format named by each link"`
}

// PlanCmd is the "plan" subcommand.
type PlanCmd struct {
	Page   string `arg:"" help:"HTML file to read, or - for stdin"`
	Dir    string `arg:"" help:"Output directory for supplements"`
	Base   string `default:"${base_url}" env:"COURSEFETCH_BASE_URL" help:"Base URL for relative links"`
	Prefix string `help:"Prefix for every file name (e.g. lecture number)"`
	DryRun bool   `short:"n" help:"Do not create the output directory"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Name    string `arg:"" help:"String to sanitize"`
	Minimal bool   `short:"m" help:"Only replace characters no filesystem accepts"`
}

// FixURLCmd is the "fixurl" subcommand.
type FixURLCmd struct {
	URL string `arg:"" help:"URL to normalize"`
}
