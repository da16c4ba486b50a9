package config

import (
	"github.com/relctl/relctl/pkg/banner"
	"github.com/relctl/relctl/pkg/gradient"
)

// Release represents the complete relctl configuration, normally loaded
// from a .relctl.yaml at the repository root.
type Release struct {
	Project  string   `yaml:"project"`
	Repo     string   `yaml:"repo,omitempty"`     // e.g. github.com/acme/widget
	Manifest string   `yaml:"manifest"`           // file carrying version = "X.Y.Z"
	Branch   string   `yaml:"branch"`             // branch releases must be cut from
	Checks   []string `yaml:"checks,omitempty"`   // commands run before committing
	Stage    []string `yaml:"stage,omitempty"`    // files staged for the release commit
	Message  string   `yaml:"message,omitempty"`  // commit message, {version} substituted
	Banner   Banner   `yaml:"banner,omitempty"`
}

// Banner configures the gradient banner. Colors are "#rrggbb" strings.
type Banner struct {
	Width   int      `yaml:"width,omitempty"`
	Logo    []string `yaml:"logo,omitempty"`
	Tagline string   `yaml:"tagline,omitempty"`
	Title   string   `yaml:"title,omitempty"`
	Palette []string `yaml:"palette,omitempty"`
	Border  string   `yaml:"border,omitempty"`
	Accent  string   `yaml:"accent,omitempty"`
	Label   string   `yaml:"label,omitempty"`
}

// SetDefaults fills in default values for optional fields.
func (r *Release) SetDefaults() {
	if r.Manifest == "" {
		r.Manifest = "Cargo.toml"
	}
	if r.Branch == "" {
		r.Branch = "main"
	}
	if len(r.Checks) == 0 {
		r.Checks = []string{"cargo check", "cargo test"}
	}
	if len(r.Stage) == 0 {
		r.Stage = []string{"Cargo.toml", "Cargo.lock"}
	}
	if r.Message == "" {
		r.Message = ":rocket: Release version {version}"
	}
	if r.Banner.Width == 0 {
		r.Banner.Width = banner.DefaultConfig().Width
	}
	if r.Banner.Title == "" {
		r.Banner.Title = "Release Manager"
	}
}

// BannerConfig resolves the YAML banner section into a renderable config,
// falling back to the stock palette and colors where unset.
func (r *Release) BannerConfig() (banner.Config, error) {
	cfg := banner.DefaultConfig()

	if r.Banner.Width > 0 {
		cfg.Width = r.Banner.Width
	}
	if r.Banner.Title != "" {
		cfg.Title = r.Banner.Title
	}
	cfg.Logo = r.Banner.Logo
	cfg.Tagline = r.Banner.Tagline

	if len(r.Banner.Palette) > 0 {
		palette := make([]gradient.Color, 0, len(r.Banner.Palette))
		for _, hex := range r.Banner.Palette {
			c, err := banner.ParseHexColor(hex)
			if err != nil {
				return banner.Config{}, err
			}
			palette = append(palette, c)
		}
		cfg.Palette = palette
	}

	if r.Banner.Border != "" {
		c, err := banner.ParseHexColor(r.Banner.Border)
		if err != nil {
			return banner.Config{}, err
		}
		cfg.Border = c
	}
	if r.Banner.Accent != "" {
		c, err := banner.ParseHexColor(r.Banner.Accent)
		if err != nil {
			return banner.Config{}, err
		}
		cfg.Accent = c
	}
	if r.Banner.Label != "" {
		c, err := banner.ParseHexColor(r.Banner.Label)
		if err != nil {
			return banner.Config{}, err
		}
		cfg.Label = c
	}

	return cfg, nil
}
