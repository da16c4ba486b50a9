package release

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a repo with one committed manifest and returns its path.
// The default branch is "master" (go-git default).
func initRepo(t *testing.T) string {
	t.Helper()

	workDir := t.TempDir()
	repo, err := git.PlainInit(workDir, false)
	if err != nil {
		t.Fatalf("git init: %v", err)
	}

	manifest := filepath.Join(workDir, "Cargo.toml")
	if err := os.WriteFile(manifest, []byte(manifestFixture), 0644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("Cargo.toml"); err != nil {
		t.Fatalf("git add: %v", err)
	}
	_, err = wt.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "test",
			Email: "test@test.com",
		},
	})
	if err != nil {
		t.Fatalf("git commit: %v", err)
	}

	return workDir
}

func TestOpen_NotARepo(t *testing.T) {
	if _, err := Open(t.TempDir()); err == nil {
		t.Error("expected error opening a non-repo directory")
	}
}

func TestCurrentBranch(t *testing.T) {
	dir := initRepo(t)
	repo, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	branch, err := repo.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch: %v", err)
	}
	if branch != "master" {
		t.Errorf("branch = %q, want master", branch)
	}
}

func TestCheckBranch(t *testing.T) {
	dir := initRepo(t)
	repo, _ := Open(dir)

	if err := repo.CheckBranch("master"); err != nil {
		t.Errorf("CheckBranch(master) = %v, want nil", err)
	}
	if err := repo.CheckBranch("main"); err == nil {
		t.Error("CheckBranch(main) = nil, want ErrWrongBranch")
	}
}

func TestCheckClean(t *testing.T) {
	dir := initRepo(t)
	repo, _ := Open(dir)

	if err := repo.CheckClean(); err != nil {
		t.Errorf("fresh repo should be clean, got %v", err)
	}

	// Untracked files do not block a release.
	if err := os.WriteFile(filepath.Join(dir, "scratch.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.CheckClean(); err != nil {
		t.Errorf("untracked file should not block, got %v", err)
	}

	// Modifying a tracked file does.
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("changed"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := repo.CheckClean(); err == nil {
		t.Error("modified tracked file should fail CheckClean")
	}
}

func TestChanges(t *testing.T) {
	dir := initRepo(t)
	repo, _ := Open(dir)

	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("changed"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "new.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes, err := repo.Changes()
	if err != nil {
		t.Fatalf("Changes: %v", err)
	}
	if len(changes) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(changes), changes)
	}
	// Sorted by path: Cargo.toml before new.txt.
	if changes[0].Path != "Cargo.toml" || changes[0].Status != "modified" {
		t.Errorf("changes[0] = %+v, want modified Cargo.toml", changes[0])
	}
	if changes[1].Path != "new.txt" || changes[1].Status != "untracked" {
		t.Errorf("changes[1] = %+v, want untracked new.txt", changes[1])
	}
}

func TestCommitAndTag(t *testing.T) {
	dir := initRepo(t)
	repo, _ := Open(dir)

	if err := WriteVersion(filepath.Join(dir, "Cargo.toml"), "2.0.0"); err != nil {
		t.Fatalf("WriteVersion: %v", err)
	}

	// Cargo.lock is in the stage list but absent; it must be skipped.
	err := repo.CommitAndTag("2.0.0", ":rocket: Release version 2.0.0", []string{"Cargo.toml", "Cargo.lock"})
	if err != nil {
		t.Fatalf("CommitAndTag: %v", err)
	}

	if err := repo.CheckClean(); err != nil {
		t.Errorf("worktree should be clean after commit, got %v", err)
	}

	raw, err := git.PlainOpen(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}

	head, err := raw.Head()
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	commit, err := raw.CommitObject(head.Hash())
	if err != nil {
		t.Fatalf("commit object: %v", err)
	}
	if commit.Message != ":rocket: Release version 2.0.0" {
		t.Errorf("commit message = %q", commit.Message)
	}

	tag, err := raw.Reference(plumbing.NewTagReferenceName("v2.0.0"), true)
	if err != nil {
		t.Fatalf("tag v2.0.0 not found: %v", err)
	}
	if tag.Hash() != head.Hash() {
		t.Error("tag does not point at the release commit")
	}
}
