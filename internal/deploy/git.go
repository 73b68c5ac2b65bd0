package deploy

import (
	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// LocalCommit returns the hash of the commit checked out in the repository
// holding the given path.
func LocalCommit(path string) (string, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", errors.Wrapf(err, "could not open git repository '%s'", path)
	}

	return HeadCommit(repo)
}

func HeadCommit(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "could not resolve HEAD")
	}

	return head.Hash().String(), nil
}
