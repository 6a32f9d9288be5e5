package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter() (*reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return newReporter(&out, &errOut), &out, &errOut
}

func setDryRun(t *testing.T, v bool) {
	t.Helper()
	prev := dryRun
	dryRun = v
	t.Cleanup(func() { dryRun = prev })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestProcessFile_StripsAndAddsHeader(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()
	path := filepath.Join(root, "js", "app.js")
	writeFile(t, path, "// top comment\nfoo(); // inline\nconst u = \"http://example.com\";\n")

	rep, out, _ := newTestReporter()
	modified, err := processFile(path, root, rep)
	require.NoError(t, err)
	assert.True(t, modified)

	got := readFile(t, path)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "/* js/app.js */", lines[0], "header is exactly line 1")
	assert.NotContains(t, got, "top comment")
	assert.NotContains(t, got, "inline")
	assert.Contains(t, got, "http://example.com")
	assert.Contains(t, out.String(), "Removed comments and updated header: js/app.js")
}

func TestProcessFile_HeaderOnlyUpdate(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()
	path := filepath.Join(root, "index.html")
	writeFile(t, path, "<html><body>hello</body></html>\n")

	rep, out, _ := newTestReporter()
	modified, err := processFile(path, root, rep)
	require.NoError(t, err)
	assert.True(t, modified)

	assert.Equal(t, "<!-- index.html -->\n<html><body>hello</body></html>\n", readFile(t, path))
	assert.Contains(t, out.String(), "Updated header: index.html")
	assert.NotContains(t, out.String(), "Removed comments")
}

func TestProcessFile_Idempotent(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()
	path := filepath.Join(root, "main.css")
	writeFile(t, path, "/* old banner */\nbody { color: red; }\n")

	rep, _, _ := newTestReporter()
	modified, err := processFile(path, root, rep)
	require.NoError(t, err)
	require.True(t, modified)
	first := readFile(t, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	mtime := info.ModTime()

	modified, err = processFile(path, root, rep)
	require.NoError(t, err)
	assert.False(t, modified, "second run is a no-op")
	assert.Equal(t, first, readFile(t, path))

	info, err = os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, mtime, info.ModTime(), "no write happened on the second run")
}

func TestProcessFile_HeaderIsFirstLineAfterLeadingBlank(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()
	path := filepath.Join(root, "a.css")
	writeFile(t, path, "\n\n   body { }\n")

	rep, _, _ := newTestReporter()
	_, err := processFile(path, root, rep)
	require.NoError(t, err)

	assert.Equal(t, "/* a.css */\nbody { }\n", readFile(t, path), "body is left-trimmed so the header has no blank line after it")
}

func TestProcessFile_DryRunWritesNothing(t *testing.T) {
	setDryRun(t, true)
	root := t.TempDir()
	path := filepath.Join(root, "app.js")
	content := "foo(); // comment\n"
	writeFile(t, path, content)

	rep, out, _ := newTestReporter()
	modified, err := processFile(path, root, rep)
	require.NoError(t, err)
	assert.True(t, modified, "dry run still counts the file as changed")
	assert.Equal(t, content, readFile(t, path))
	assert.Contains(t, out.String(), "[dry-run] Would remove comments and update header: app.js")
}

func TestProcessFile_MissingFile(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()

	rep, _, _ := newTestReporter()
	modified, err := processFile(filepath.Join(root, "gone.js"), root, rep)
	assert.Error(t, err)
	assert.False(t, modified)
}

func TestProcessFile_UnrecognizedExtension(t *testing.T) {
	setDryRun(t, false)
	root := t.TempDir()
	path := filepath.Join(root, "notes.txt")
	writeFile(t, path, "// not a script\n")

	rep, _, _ := newTestReporter()
	modified, err := processFile(path, root, rep)
	require.NoError(t, err)
	assert.False(t, modified)
	assert.Equal(t, "// not a script\n", readFile(t, path))
}
