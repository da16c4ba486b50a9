package main

import (
	"github.com/relctl/relctl/pkg/banner"
	"github.com/relctl/relctl/pkg/config"
)

// Default logo used when the config file does not provide one.
// Based on Doom font from patorjk.com/software/taag
var defaultLogo = []string{
	`          _      _   _ `,
	` _ __ ___| | ___| |_| |`,
	`| '__/ _ \ |/ __| __| |`,
	`| | |  __/ | (__| |_| |`,
	`|_|  \___|_|\___|\__,_|`,
}

const defaultTagline = "🌌 Ship Your Release with Pure Color and Art 🌌"

// bannerConfig resolves the banner settings, filling in the stock logo and
// tagline when the config file leaves them out.
func bannerConfig(cfg *config.Release) (banner.Config, error) {
	b, err := cfg.BannerConfig()
	if err != nil {
		return banner.Config{}, err
	}
	if len(b.Logo) == 0 {
		b.Logo = defaultLogo
	}
	if b.Tagline == "" {
		b.Tagline = defaultTagline
	}
	return b, nil
}
