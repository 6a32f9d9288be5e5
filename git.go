package main

import (
	"errors"

	git "github.com/go-git/go-git/v5"
)

// repoState reports whether root sits inside a git work tree and, if so,
// whether that tree has uncommitted changes. The result only feeds the
// pre-run warning; inspection failures are returned for the caller to log.
func repoState(root string) (tracked, dirty bool, err error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	wt, err := repo.Worktree()
	if err != nil {
		return true, false, err
	}
	status, err := wt.Status()
	if err != nil {
		return true, false, err
	}
	return true, !status.IsClean(), nil
}
