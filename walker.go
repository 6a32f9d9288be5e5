package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// skipDirNames are directory names never descended into. Any directory name
// starting with a dot is skipped as well.
var skipDirNames = map[string]bool{
	".git":         true,
	".vscode":      true,
	"node_modules": true,
	"__pycache__":  true,
	"venv":         true,
	".venv":        true,
	"dist":         true,
	"build":        true,
	"assets":       true,
}

func skipDirName(name string) bool {
	return skipDirNames[name] || strings.HasPrefix(name, ".")
}

func skipDirList() []string {
	names := make([]string, 0, len(skipDirNames))
	for name := range skipDirNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunStats tracks the aggregate counters for one traversal.
type RunStats struct {
	Scanned int
	Changed int
	Errors  int
}

// walkTree enumerates every recognized file under root and runs each one
// through processFile. Per-file failures are logged and counted; the walk
// never stops for them.
func walkTree(root string, rep *reporter) RunStats {
	var stats RunStats

	var matcher gitignore.IgnoreMatcher
	if !noIgnore {
		giPath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(giPath); err == nil {
			m, err := gitignore.NewGitIgnore(giPath)
			if err != nil {
				rep.Warn("Could not parse %s: %v", giPath, err)
			} else {
				matcher = m
			}
		}
	}

	logBanner(root, rep)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			rep.Warn("Cannot access %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && skipDirName(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := ruleForPath(path); !ok {
			return nil
		}
		if matcher != nil && matcher.Match(path, false) {
			return nil
		}

		stats.Scanned++
		modified, perr := processFile(path, root, rep)
		if perr != nil {
			rep.Error("Error processing %s: %v", displayPath(path, root), perr)
			stats.Errors++
			return nil
		}
		if modified {
			stats.Changed++
		}
		return nil
	})
	if err != nil {
		rep.Error("Traversal failed: %v", err)
		stats.Errors++
	}

	logSummary(stats, rep)
	return stats
}

func logBanner(root string, rep *reporter) {
	rep.Info("Starting processing in directory: %s", root)
	rep.Info("Targeting extensions: %s", strings.Join(targetExtensions(), ", "))
	rep.Info("Skipping directories: %s", strings.Join(skipDirList(), ", "))
	rep.Note("--- NOTE ---")
	rep.Note("Existing comments matching patterns will be removed.")
	rep.Note("A header comment with the relative file path will be added/updated.")
	rep.Caution("JS comment removal uses regex; review changes carefully.")
	if dryRun {
		rep.Note("Dry run: no files will be written.")
	}
	rep.Info("---")
}

func logSummary(stats RunStats, rep *reporter) {
	rep.Info("---")
	rep.Info("Processing finished.")
	rep.Info("Total files scanned matching extensions: %d", stats.Scanned)
	rep.Info("Files modified: %d", stats.Changed)
	if stats.Errors > 0 {
		rep.Error("Errors occurred during processing: %d", stats.Errors)
	}
}
