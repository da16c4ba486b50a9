package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".relctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
project: widget
repo: github.com/acme/widget
manifest: Cargo.toml
branch: main
checks:
  - cargo check
  - cargo test
stage:
  - Cargo.toml
  - Cargo.lock
banner:
  width: 60
  tagline: ship with style
  palette: ["#4b0082", "#ff1493", "#4b0082"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Project != "widget" {
		t.Errorf("Project = %q, want widget", cfg.Project)
	}
	if cfg.Banner.Width != 60 {
		t.Errorf("Banner.Width = %d, want 60", cfg.Banner.Width)
	}
	if len(cfg.Checks) != 2 {
		t.Errorf("Checks = %v, want 2 commands", cfg.Checks)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `project: widget`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Manifest != "Cargo.toml" {
		t.Errorf("Manifest default = %q, want Cargo.toml", cfg.Manifest)
	}
	if cfg.Branch != "main" {
		t.Errorf("Branch default = %q, want main", cfg.Branch)
	}
	if cfg.Banner.Width != 80 {
		t.Errorf("Banner.Width default = %d, want 80", cfg.Banner.Width)
	}
	if !strings.Contains(cfg.Message, "{version}") {
		t.Errorf("Message default missing {version}: %q", cfg.Message)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "project: [unclosed")

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("RELCTL_TEST_BRANCH", "release")
	path := writeConfig(t, `
project: widget
branch: ${RELCTL_TEST_BRANCH}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Branch != "release" {
		t.Errorf("Branch = %q, want expanded env value", cfg.Branch)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.Manifest != "Cargo.toml" || cfg.Branch != "main" {
		t.Errorf("expected defaulted config, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Release)
		wantErr string
	}{
		{"message without version placeholder", func(r *Release) { r.Message = "release!" }, "message"},
		{"single palette color", func(r *Release) { r.Banner.Palette = []string{"#112233"} }, "banner.palette"},
		{"non-hex palette color", func(r *Release) { r.Banner.Palette = []string{"red", "#112233"} }, "banner.palette[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Release
			r.SetDefaults()
			tt.mutate(&r)

			err := Validate(&r)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestBannerConfig_CustomPalette(t *testing.T) {
	var r Release
	r.SetDefaults()
	r.Banner.Palette = []string{"#000000", "#ffffff"}
	r.Banner.Border = "#4b0082"

	cfg, err := r.BannerConfig()
	if err != nil {
		t.Fatalf("BannerConfig: %v", err)
	}

	if len(cfg.Palette) != 2 {
		t.Fatalf("palette = %v, want 2 stops", cfg.Palette)
	}
	if cfg.Palette[1].R != 255 || cfg.Palette[1].G != 255 || cfg.Palette[1].B != 255 {
		t.Errorf("second stop = %v, want white", cfg.Palette[1])
	}
}

func TestBannerConfig_BadHex(t *testing.T) {
	var r Release
	r.SetDefaults()
	r.Banner.Accent = "#zzz"

	if _, err := r.BannerConfig(); err == nil {
		t.Error("expected error for bad hex color")
	}
}
