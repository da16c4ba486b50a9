package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relctl/relctl/pkg/ansi"
	"github.com/relctl/relctl/pkg/banner"
	"github.com/relctl/relctl/pkg/config"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the configured banner without releasing anything",
	Long: `Renders the gradient banner exactly as the release command would show
it, so palettes and logos can be tuned without touching the repository.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview()
	},
}

func runPreview() error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	clampBannerWidth(cfg)

	b, err := bannerConfig(cfg)
	if err != nil {
		return err
	}

	out, err := banner.Render(b)
	if err != nil {
		return err
	}
	if noColor {
		fmt.Println(ansi.Strip(out))
		return nil
	}
	fmt.Println(out + "\x1b[0m")
	return nil
}
