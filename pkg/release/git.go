package release

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Preflight sentinels, surfaced to the user as fatal.
var (
	ErrWrongBranch   = errors.New("not on the release branch")
	ErrDirtyWorktree = errors.New("worktree has uncommitted changes")
)

// Repo wraps a local git repository for the release flow.
type Repo struct {
	repo *git.Repository
}

// Open opens the repository at path.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("opening git repository: %w", err)
	}
	return &Repo{repo: repo}, nil
}

// CurrentBranch returns the short name of the checked-out branch.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return "", fmt.Errorf("HEAD is detached at %s", head.Hash().String()[:7])
	}
	return head.Name().Short(), nil
}

// CheckBranch errors with ErrWrongBranch unless the given branch is
// checked out.
func (r *Repo) CheckBranch(want string) error {
	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if branch != want {
		return fmt.Errorf("%w: on %q, need %q", ErrWrongBranch, branch, want)
	}
	return nil
}

// CheckClean errors with ErrDirtyWorktree when tracked files have
// uncommitted modifications. Untracked files do not block a release.
func (r *Repo) CheckClean() error {
	status, err := r.status()
	if err != nil {
		return err
	}
	for _, s := range status {
		if s.Worktree == git.Untracked {
			continue
		}
		if s.Worktree != git.Unmodified || s.Staging != git.Unmodified {
			return ErrDirtyWorktree
		}
	}
	return nil
}

// Change is one pending worktree entry, shown to the user before the
// release commit.
type Change struct {
	Path   string
	Status string
}

// Changes lists pending worktree changes, sorted by path.
func (r *Repo) Changes() ([]Change, error) {
	status, err := r.status()
	if err != nil {
		return nil, err
	}

	var changes []Change
	for path, s := range status {
		code := s.Worktree
		if code == git.Unmodified {
			code = s.Staging
		}
		if code == git.Unmodified {
			continue
		}
		changes = append(changes, Change{Path: path, Status: statusWord(code)})
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

func (r *Repo) status() (git.Status, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("reading worktree status: %w", err)
	}
	return status, nil
}

func statusWord(code git.StatusCode) string {
	switch code {
	case git.Modified:
		return "modified"
	case git.Added:
		return "added"
	case git.Deleted:
		return "deleted"
	case git.Renamed:
		return "renamed"
	case git.Copied:
		return "copied"
	case git.Untracked:
		return "untracked"
	default:
		return "changed"
	}
}

// CommitAndTag stages the given files, commits with the message, and tags
// the commit vVERSION. Files missing from the worktree are skipped so a
// stage list like [Cargo.toml, Cargo.lock] works for projects without a
// lockfile.
func (r *Repo) CommitAndTag(version, message string, files []string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening worktree: %w", err)
	}

	staged := 0
	for _, f := range files {
		if _, err := wt.Add(f); err != nil {
			continue
		}
		staged++
	}
	if staged == 0 {
		return fmt.Errorf("nothing to stage from %v", files)
	}

	commit, err := wt.Commit(message, &git.CommitOptions{
		Author: r.signature(),
	})
	if err != nil {
		return fmt.Errorf("committing release: %w", err)
	}

	if _, err := r.repo.CreateTag("v"+version, commit, nil); err != nil {
		return fmt.Errorf("tagging v%s: %w", version, err)
	}
	return nil
}

// signature builds the commit author from repo config, with a fallback so
// commits never fail on a machine without user.name set.
func (r *Repo) signature() *object.Signature {
	sig := &object.Signature{
		Name:  "relctl",
		Email: "relctl@localhost",
		When:  time.Now(),
	}
	cfg, err := r.repo.ConfigScoped(gitconfig.SystemScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
