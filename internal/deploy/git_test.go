package deploy

import (
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/pkg/errors"
)

func TestHeadCommit(t *testing.T) {
	fs := memfs.New()

	repo, err := git.Init(memory.NewStorage(), fs)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	worktree, err := repo.Worktree()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := util.WriteFile(fs, "README.md", []byte("superlists"), 0o644); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := worktree.Add("README.md"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	hash, err := worktree.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Edith",
			Email: "edith@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	commit, err := HeadCommit(repo)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := hash.String(), commit; e != g {
		t.Errorf("commit: expected '%s', got '%s'", e, g)
	}
}

func TestLocalCommitOutsideRepository(t *testing.T) {
	if _, err := LocalCommit(t.TempDir()); err == nil {
		t.Errorf("LocalCommit(): expected an error, got nil")
	}
}
