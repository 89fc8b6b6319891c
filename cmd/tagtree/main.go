// Command tagtree is a CLI front end for the tagtree library: it reads a
// CBOR or JSON document from a file or stdin, and converts, queries,
// mutates, or patches it using the value/cbor/json/pointer/patch packages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information, injected at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var (
	flagFormat     string
	flagPretty     bool
	flagDepthLimit int
	flagVerbose    bool
	flagConfig     string

	// logger defaults to discarding output until initConfig (run as the
	// root command's PersistentPreRunE) replaces it with one honoring
	// --verbose; tests that call package functions directly without
	// going through cobra keep a safe, non-nil logger.
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

var rootCmd = &cobra.Command{
	Use:           "tagtree",
	Short:         "tagtree - inspect and transform CBOR/JSON structured data",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initConfig(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagFormat, "format", "", "input/output format: cbor or json (default: guessed from file extension, else json)")
	pf.BoolVar(&flagPretty, "pretty", false, "pretty-print JSON output")
	pf.IntVar(&flagDepthLimit, "depth-limit", 0, "maximum container nesting depth (0 uses the codec default)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log coerced/unsupported values encountered while encoding")
	pf.StringVar(&flagConfig, "config", "", "path to config file (default: ~/.config/tagtree/config.yaml)")
}

func newLogger() *slog.Logger {
	level := slog.LevelError
	if flagVerbose {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newSetCmd())
	rootCmd.AddCommand(newPatchCmd())
	rootCmd.AddCommand(newMergeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
