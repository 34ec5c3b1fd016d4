package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sriram-PR/md-toc/pkg/config"
	applog "github.com/Sriram-PR/md-toc/pkg/log"
	"github.com/Sriram-PR/md-toc/pkg/models"
	"github.com/Sriram-PR/md-toc/pkg/process"
	"github.com/Sriram-PR/md-toc/pkg/utils"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, builds the table of contents and writes it to stdout.
// Returns exit code (0 = success, 1 = error).
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("md-toc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "Path to YAML config file (optional)")
	logLevel := fs.String("loglevel", "warn", "Log level (debug, info, warn, error, fatal)")
	parserFlag := fs.String("parser", "", "Heading parser: lines or goldmark (overrides config)")
	showVersion := fs.Bool("version", false, "Show version info")

	fs.Usage = func() {
		printUsageTo(stderr)
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *showVersion {
		fmt.Fprintf(stdout, "md-toc %s\n", version)
		return 0
	}

	log, err := applog.New(*logLevel, stderr)
	if err != nil {
		log.Warnf("Invalid log level '%s', using default 'warn'. Error: %v", *logLevel, err)
	}

	if fs.NArg() != 1 {
		err := fmt.Errorf("%w: expected exactly one markdown file, got %d arguments", utils.ErrUsage, fs.NArg())
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fs.Usage()
		return 1
	}
	path := fs.Arg(0)
	entry := log.WithField("file", path)

	lines, err := readLines(path)
	if err != nil {
		entry.WithField("category", utils.CategorizeError(err)).Debug("Cannot read input")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	appCfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if *parserFlag != "" {
		appCfg.Parser = models.ParserKind(*parserFlag)
	}
	warnings, err := appCfg.Validate()
	for _, w := range warnings {
		log.Warn(w)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	opts, err := process.OptionsFromConfig(appCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	entry.Debugf("Config: Parser:%s, Levels:%d-%d, SkipTitles:%v, Exclude:%d",
		opts.Parser, opts.MinLevel, opts.MaxLevel, opts.SkipTitles, len(opts.Exclude))

	toc := process.NewBuilder(opts, entry).Build(lines)

	fmt.Fprintln(stdout, appCfg.Header())
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, toc)
	return 0
}

// printUsageTo writes usage information to the provided writer.
func printUsageTo(w io.Writer) {
	fmt.Fprintln(w, `md-toc - Markdown table of contents generator

Usage:
  md-toc [options] <file.md>

Prints a "## Table of Contents" section with GitHub-compatible anchor links
for every heading in the file.`)
}

// loadConfig loads and parses the config file. An empty path yields the
// zero config, which validates to the default settings.
func loadConfig(path string) (*config.AppConfig, error) {
	var cfg config.AppConfig
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w: %w", utils.ErrFilesystem, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w: %v", utils.ErrParsing, err)
	}

	return &cfg, nil
}

// readLines checks that path is an existing regular file and returns its lines.
func readLines(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", utils.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", utils.ErrFilesystem, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", utils.ErrInputNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrFilesystem, err)
	}
	return process.SplitLines(string(data)), nil
}
