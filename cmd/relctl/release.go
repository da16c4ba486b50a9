package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/relctl/relctl/pkg/config"
	"github.com/relctl/relctl/pkg/release"
)

var (
	releaseYes        bool
	releaseSkipChecks bool
	releaseNoPush     bool
)

var releaseCmd = &cobra.Command{
	Use:   "release [version]",
	Short: "Cut a release: bump, check, commit, tag, push",
	Long: `Runs the full release flow in the current repository.

Reads the current version from the project manifest, asks for (or takes as
an argument) the new version, rewrites the manifest, runs the configured
check commands, and - after showing pending changes and confirming -
commits, tags vVERSION, and pushes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		newVersion := ""
		if len(args) == 1 {
			newVersion = args[0]
		}
		return runRelease(newVersion)
	},
}

func init() {
	releaseCmd.Flags().BoolVarP(&releaseYes, "yes", "y", false, "Skip the confirmation prompt")
	releaseCmd.Flags().BoolVar(&releaseSkipChecks, "skip-checks", false, "Skip the configured check commands")
	releaseCmd.Flags().BoolVar(&releaseNoPush, "no-push", false, "Commit and tag locally without pushing")
}

func runRelease(newVersion string) error {
	printer := newPrinter()

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	clampBannerWidth(cfg)

	b, err := bannerConfig(cfg)
	if err != nil {
		return err
	}
	cfg.Banner.Logo = b.Logo
	cfg.Banner.Tagline = b.Tagline

	orch := release.New(cfg, printer, release.Options{
		NewVersion: newVersion,
		SkipChecks: releaseSkipChecks,
		AutoYes:    releaseYes,
		NoPush:     releaseNoPush,
	})

	if err := orch.Run(context.Background()); err != nil {
		printer.Error(err.Error())
		return errAlreadyReported
	}
	return nil
}

// clampBannerWidth shrinks the banner when the terminal is narrower than
// the configured width, so the border does not wrap. The rendering core
// never inspects the terminal; only this outer layer does.
func clampBannerWidth(cfg *config.Release) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	// Below ~20 columns the frame itself no longer fits; keep the floor.
	if w >= 20 && w < cfg.Banner.Width {
		cfg.Banner.Width = w
	}
}
