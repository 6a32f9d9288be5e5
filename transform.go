package main

import (
	"path/filepath"
	"strings"
	"unicode"
)

// processFile runs one file through read → strip → header → write-back.
// It returns whether the file was (or, in dry-run mode, would be) modified.
// A returned error means the file was left as read; the caller counts it
// and moves on to the next file.
func processFile(path, root string, rep *reporter) (bool, error) {
	rule, ok := ruleForPath(path)
	if !ok {
		// The walker filters by extension; this is a safety check only.
		return false, nil
	}

	original, enc, err := readTextFile(path)
	if err != nil {
		return false, err
	}

	cleaned := stripComments(original, rule)
	rel := displayPath(path, root)

	final := cleaned
	header, err := buildHeader(path, root, rule)
	if err != nil {
		// Defensive: proceed without a header rather than dropping the file.
		rep.Warn("Skipping header for %s: %v", rel, err)
	} else {
		// Left-trimming the body keeps the header exactly on line 1 with no
		// blank line after it.
		final = header + "\n" + strings.TrimLeftFunc(cleaned, unicode.IsSpace)
	}

	if final == original {
		return false, nil
	}

	commentsRemoved := strings.TrimSpace(cleaned) != strings.TrimSpace(original)

	if dryRun {
		if commentsRemoved {
			rep.Info("[dry-run] Would remove comments and update header: %s", rel)
		} else {
			rep.Info("[dry-run] Would update header: %s", rel)
		}
		return true, nil
	}

	if err := writeTextFile(path, final, enc); err != nil {
		return false, err
	}

	if commentsRemoved {
		rep.Info("Removed comments and updated header: %s", rel)
	} else {
		rep.Info("Updated header: %s", rel)
	}
	return true, nil
}

// displayPath renders path relative to root with forward slashes for log
// lines. Falls back to the absolute path if root does not contain it.
func displayPath(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
