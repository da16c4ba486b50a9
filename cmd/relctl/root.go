package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relctl/relctl/pkg/config"
	"github.com/relctl/relctl/pkg/output"
)

var (
	configPath string
	debugMode  bool
	noColor    bool
)

// errAlreadyReported marks failures the command has printed with styling,
// so Execute does not print them a second time.
var errAlreadyReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "relctl",
	Short: "Release manager with a cosmic banner",
	Long: `Relctl cuts releases the boring way and announces them the pretty way.

It bumps the version in your project manifest, runs your check commands,
commits and tags the result, and pushes it - all under a bordered banner
whose text is painted with a diagonal truecolor gradient.

Configuration is read from .relctl.yaml in the repository root; every
field has a sensible default, so no config file is required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the release config file")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(releaseCmd)
	rootCmd.AddCommand(previewCmd)
}

// newPrinter builds the shared Printer with the root flags applied.
func newPrinter() *output.Printer {
	p := output.New()
	p.SetDebug(debugMode)
	if noColor {
		p.SetColor(false)
	}
	return p
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errAlreadyReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
