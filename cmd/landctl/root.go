package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/landkit/internal/logger"
	"github.com/joshuapare/landkit/land/index"
	"github.com/joshuapare/landkit/land/registry"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	jsonOut   bool
	indexName string
	verifyOps bool
	logLevel  string
	logFormat string
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "landctl",
	Short: "Drive an in-memory land parcel registry",
	Long: `landctl runs command scripts against an in-memory land parcel registry.
Parcels are indexed by (city, address) and by (region, id); ownership changes
are stamped so parcels of one owner list in acquisition order.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&indexName, "index", "slice", "Index implementation: slice or btree")
	rootCmd.PersistentFlags().
		BoolVar(&verifyOps, "verify", false, "Check registry invariants after every mutation")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "", "Log registry activity at this level (debug, info, warn, error)")
	rootCmd.PersistentFlags().
		StringVar(&logFormat, "log-format", "text", "Log record format: text or json")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Append log records to this file instead of stderr")
}

func execute() {
	err := rootCmd.Execute()
	if cerr := logger.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging turns on the structured logger when --log-level or
// --log-file is given. --verbose alone implies debug, --log-file alone info.
func setupLogging(_ *cobra.Command, _ []string) error {
	var jsonLogs bool
	switch logFormat {
	case "text", "":
	case "json":
		jsonLogs = true
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", logFormat)
	}

	level := logLevel
	if level == "" && verbose {
		level = "debug"
	}
	if level == "" && logFile != "" {
		level = "info"
	}
	if level == "" {
		return logger.Init(logger.Options{})
	}
	lvl, err := logger.ParseLevel(level)
	if err != nil {
		return err
	}
	return logger.Init(logger.Options{
		Enabled: true,
		LogFile: logFile,
		JSON:    jsonLogs,
		Level:   lvl,
	})
}

// newRegistry builds an empty registry honouring --index.
func newRegistry() (*registry.Registry, error) {
	kind, ok := index.ParseKind(indexName)
	if !ok {
		return nil, fmt.Errorf("unknown index %q (want slice or btree)", indexName)
	}
	opts := registry.DefaultOptions()
	opts.IndexKind = kind
	return registry.New(opts), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
