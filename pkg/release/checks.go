package release

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CheckTool verifies that a binary is available on PATH.
func CheckTool(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s is not installed: %w", name, err)
	}
	return nil
}

// Runner executes configured check commands and git pushes, streaming
// their output to the user.
type Runner struct {
	Dir string
	Out io.Writer
	Err io.Writer
}

// Run executes a space-separated command line in the runner's directory.
// Check commands are plain tool invocations ("cargo test"), so no shell
// quoting is supported.
func (r *Runner) Run(ctx context.Context, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return fmt.Errorf("empty command")
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Out
	cmd.Stderr = r.Err

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", command, err)
	}
	return nil
}

// Push publishes the release commit and its tags. It shells out to git
// rather than pushing through go-git so the user's credential helpers and
// remote configuration apply unchanged.
func (r *Runner) Push(ctx context.Context) error {
	if err := r.Run(ctx, "git push"); err != nil {
		return err
	}
	return r.Run(ctx, "git push --tags")
}
