package release

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/relctl/relctl/pkg/config"
	"github.com/relctl/relctl/pkg/output"
)

// ErrCancelled is returned when the user declines the confirmation prompt.
var ErrCancelled = errors.New("release cancelled")

// Options tune a single release run.
type Options struct {
	Dir        string // repository root, "." by default
	NewVersion string // skip the interactive prompt when set
	SkipChecks bool
	AutoYes    bool
	NoPush     bool // commit and tag locally only
}

// Orchestrator sequences a release: banner, preflight, bump, checks,
// confirmation, commit, tag, push.
type Orchestrator struct {
	cfg     *config.Release
	printer *output.Printer
	opts    Options
}

// New creates an Orchestrator.
func New(cfg *config.Release, printer *output.Printer, opts Options) *Orchestrator {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Orchestrator{cfg: cfg, printer: printer, opts: opts}
}

// Run drives the whole release. Any error is fatal; there is no partial
// retry. The worktree is only mutated after all preflight checks pass.
func (o *Orchestrator) Run(ctx context.Context) error {
	bannerCfg, err := o.cfg.BannerConfig()
	if err != nil {
		return err
	}
	if err := o.printer.Banner(bannerCfg); err != nil {
		return err
	}

	project := o.cfg.Project
	if project == "" {
		project = "this project"
	}
	o.printer.Step(fmt.Sprintf("Starting release process for %s", project))

	for _, tool := range o.requiredTools() {
		o.printer.Debug("checking tool", "tool", tool)
		if err := CheckTool(tool); err != nil {
			return err
		}
	}

	repo, err := Open(o.opts.Dir)
	if err != nil {
		return err
	}
	if err := repo.CheckBranch(o.cfg.Branch); err != nil {
		return err
	}
	if err := repo.CheckClean(); err != nil {
		return fmt.Errorf("%w: commit or stash before releasing", err)
	}
	o.printer.Debug("preflight passed", "branch", o.cfg.Branch)

	manifest := filepath.Join(o.opts.Dir, o.cfg.Manifest)
	current, err := ReadVersion(manifest)
	if err != nil {
		return err
	}
	o.printer.Info("read current version", "manifest", o.cfg.Manifest, "version", current)

	newVersion, err := o.resolveNewVersion(current)
	if err != nil {
		return err
	}
	if err := ValidateVersion(newVersion); err != nil {
		return err
	}

	if err := WriteVersion(manifest, newVersion); err != nil {
		return err
	}
	o.printer.Success(fmt.Sprintf("Updated version in %s to %s", o.cfg.Manifest, newVersion))

	runner := &Runner{Dir: o.opts.Dir, Out: o.printer.Writer(), Err: o.printer.Writer()}
	if !o.opts.SkipChecks {
		for _, check := range o.cfg.Checks {
			o.printer.Step("Running " + check)
			o.printer.Debug("running check", "command", check, "dir", o.opts.Dir)
			if err := runner.Run(ctx, check); err != nil {
				return err
			}
		}
		o.printer.Success("All checks passed")
	}

	if err := o.confirmChanges(repo); err != nil {
		return err
	}

	o.printer.Step("Committing and pushing changes")
	message := strings.ReplaceAll(o.cfg.Message, "{version}", newVersion)
	if err := repo.CommitAndTag(newVersion, message, o.cfg.Stage); err != nil {
		return err
	}
	if o.opts.NoPush {
		o.printer.Warning("Skipping push; remember to push the commit and tag")
	} else {
		if err := runner.Push(ctx); err != nil {
			return fmt.Errorf("git push failed: %w", err)
		}
		o.printer.Success(fmt.Sprintf("Changes committed and pushed for version %s", newVersion))
	}

	o.printer.Success(fmt.Sprintf("\n🎉✨ %s v%s has been successfully released! ✨🎉", project, newVersion))
	return nil
}

// requiredTools is git plus the first word of each configured check.
func (o *Orchestrator) requiredTools() []string {
	tools := []string{"git"}
	seen := map[string]bool{"git": true}
	for _, check := range o.cfg.Checks {
		fields := strings.Fields(check)
		if len(fields) == 0 || seen[fields[0]] {
			continue
		}
		tools = append(tools, fields[0])
		seen[fields[0]] = true
	}
	return tools
}

func (o *Orchestrator) resolveNewVersion(current string) (string, error) {
	if o.opts.NewVersion != "" {
		return o.opts.NewVersion, nil
	}

	suggested, err := SuggestNext(current)
	if err != nil {
		return "", err
	}
	answer, err := o.printer.Prompt(fmt.Sprintf(
		"Current version is %s. What should the new version be? [%s]", current, suggested))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return suggested, nil
	}
	return answer, nil
}

func (o *Orchestrator) confirmChanges(repo *Repo) error {
	changes, err := repo.Changes()
	if err != nil {
		return err
	}

	o.printer.Warning("The following files will be modified:")
	fileChanges := make([]output.FileChange, len(changes))
	for i, c := range changes {
		fileChanges[i] = output.FileChange{Path: c.Path, Status: c.Status}
	}
	o.printer.Changes(fileChanges)

	if o.opts.AutoYes {
		return nil
	}
	ok, err := o.printer.Confirm("Do you want to proceed with these changes?")
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}
