// Package release drives the release process: version bumping, git
// preflight and tagging, and pre-release checks.
package release

import (
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/semver/v3"
)

// ErrVersionNotFound is returned when the manifest has no version line.
var ErrVersionNotFound = fmt.Errorf("no version line found in manifest")

// versionLine matches a `version = "X.Y.Z"` assignment at line start, as
// found in Cargo.toml and similar manifests.
var versionLine = regexp.MustCompile(`(?m)^(version\s*=\s*)"(\d+\.\d+\.\d+)"`)

// ReadVersion extracts the current version string from the manifest.
func ReadVersion(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading manifest: %w", err)
	}

	m := versionLine.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrVersionNotFound, path)
	}
	return string(m[2]), nil
}

// WriteVersion rewrites every line-start version assignment in place,
// leaving every other byte untouched.
func WriteVersion(path, newVersion string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	if !versionLine.Match(data) {
		return fmt.Errorf("%w: %s", ErrVersionNotFound, path)
	}

	updated := versionLine.ReplaceAll(data, []byte(`${1}"`+newVersion+`"`))

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, updated, info.Mode()); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ValidateVersion accepts plain X.Y.Z semantic versions only; prerelease
// and build suffixes are rejected, matching the release flow's tag scheme.
func ValidateVersion(s string) error {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return fmt.Errorf("invalid version %q: use plain X.Y.Z", s)
	}
	return nil
}

// SuggestNext returns the patch bump of current, offered as the prompt
// default.
func SuggestNext(current string) (string, error) {
	v, err := semver.StrictNewVersion(current)
	if err != nil {
		return "", fmt.Errorf("current version %q: %w", current, err)
	}
	next := v.IncPatch()
	return next.String(), nil
}
