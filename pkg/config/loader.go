package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no --config flag is given.
const DefaultPath = ".relctl.yaml"

// Load reads and parses a release configuration file.
func Load(path string) (*Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var release Release
	if err := yaml.Unmarshal(data, &release); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	// Expand environment variables in string values
	expandEnvVars(&release)

	// Apply defaults
	release.SetDefaults()

	// Validate the configuration
	if err := Validate(&release); err != nil {
		return nil, err
	}

	return &release, nil
}

// LoadOrDefault loads path if it exists, otherwise returns a defaulted
// configuration so relctl works without a config file, like the original
// zero-config script.
func LoadOrDefault(path string) (*Release, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		var release Release
		release.SetDefaults()
		return &release, nil
	}
	return Load(path)
}

// expandEnvVars expands environment variables in the configuration.
func expandEnvVars(r *Release) {
	r.Project = os.ExpandEnv(r.Project)
	r.Repo = os.ExpandEnv(r.Repo)
	r.Manifest = os.ExpandEnv(r.Manifest)
	r.Branch = os.ExpandEnv(r.Branch)

	for i := range r.Checks {
		r.Checks[i] = os.ExpandEnv(r.Checks[i])
	}
	for i := range r.Stage {
		r.Stage[i] = os.ExpandEnv(r.Stage[i])
	}
}
