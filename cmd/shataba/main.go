// Package main provides the shataba binary entry point.
// Shataba validates tabular field values against the controlled
// vocabularies of a resource model and strips values that are not
// members of the permitted sets before upload.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/MAEASaM/shataba/config"
	"github.com/spf13/cobra"
)

const (
	// Version is the release version of the shataba binary.
	Version = "0.1.0"
	appName = "shataba"
)

// options collects the root command flags shared by run and watch.
type options struct {
	configPath  string
	input       string
	outputDir   string
	model       string
	collections string
	schemaPath  string
	concepts    string
	summary     bool
	logLevel    string
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "shataba",
		Short: "Vocabulary validation and cleaning for resource data",
		Long: `Shataba links each concept field of a resource-model schema to its
permitted vocabulary via the collections RDF/XML export and the concept
catalog, then validates CSV exports against those vocabularies.

Offending values are removed from the cleaned output and reported;
values differing only in case or punctuation from a permitted value are
kept as-is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(opts)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), opts.input)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	pf.StringVarP(&opts.input, "input", "i", "", "Input CSV path or glob pattern (** supported)")
	pf.StringVarP(&opts.outputDir, "output-dir", "o", "", "Output directory for cleaned data and reports")
	pf.StringVar(&opts.model, "model", "", "Resource model type (actor, administrative_model, chronology, information, maeasam_grid, remote_sensing, site)")
	pf.StringVar(&opts.collections, "collections", "", "Collections RDF/XML file")
	pf.StringVar(&opts.schemaPath, "resource-model", "", "Resource model JSON file")
	pf.StringVar(&opts.concepts, "concepts", "", "Concepts JSON file")
	pf.BoolVar(&opts.summary, "summary", false, "Print the concept field mapping summary")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, Version)
		},
	})

	cmd.AddCommand(watchCmd(opts))

	return cmd
}

// newApp configures logging, loads the layered config, and applies
// flag overrides.
func newApp(opts *options) (*App, error) {
	logger := newLogger(opts.logLevel)
	slog.SetDefault(logger)

	cfg, err := loadConfig(opts, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:     cfg,
		logger:  logger,
		summary: opts.summary,
		stdout:  os.Stdout,
	}, nil
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig(opts *options, logger *slog.Logger) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFromFile(opts.configPath)
	} else {
		cfg, err = config.NewLoader(logger).Load()
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Flags take precedence over every config layer.
	if opts.outputDir != "" {
		cfg.Output.Dir = opts.outputDir
	}
	if opts.model != "" {
		cfg.References.Model = config.ModelType(opts.model)
	}
	if opts.collections != "" {
		cfg.References.Collections = opts.collections
	}
	if opts.schemaPath != "" {
		cfg.References.Schema = opts.schemaPath
	}
	if opts.concepts != "" {
		cfg.References.Concepts = opts.concepts
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
