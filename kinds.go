package main

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// FileKind classifies a source file by its comment syntax.
type FileKind int

const (
	KindMarkup FileKind = iota
	KindStyle
	KindScript
)

func (k FileKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindStyle:
		return "style"
	case KindScript:
		return "script"
	}
	return "unknown"
}

// commentPattern is one removal rule: everything the regexp matches is
// replaced with repl. Rules are applied in slice order, left to right,
// non-overlapping.
type commentPattern struct {
	re   *regexp.Regexp
	repl string
}

// kindRule bundles the removal rules and the header template for one kind.
// The template has a single %s slot for the slash-separated relative path.
type kindRule struct {
	Kind         FileKind
	Patterns     []commentPattern
	HeaderFormat string
}

// Block comments are matched from the earliest opening delimiter to the
// nearest closing delimiter, across lines. Script line comments are only
// stripped when the "//" is not preceded by a colon, so URLs such as
// "http://example.com" survive. Go's regexp has no lookbehind, so the guard
// is written as a captured prefix that the replacement puts back.
//
// This is line-noise removal via delimiter pairs, not a lexer: delimiters
// inside string literals will be stripped too.
var (
	reMarkupBlock = regexp.MustCompile(`(?s)<!--.*?-->`)
	reBlock       = regexp.MustCompile(`(?s)/\*.*?\*/`)
	reLine        = regexp.MustCompile(`(?m)(^|[^:])//.*$`)
)

// kindRules maps lowercase extensions to their rules. Built once; never
// mutated at runtime. For scripts the block pattern must run before the
// line pattern.
var kindRules = map[string]kindRule{
	".html": {
		Kind:         KindMarkup,
		Patterns:     []commentPattern{{reMarkupBlock, ""}},
		HeaderFormat: "<!-- %s -->",
	},
	".css": {
		Kind:         KindStyle,
		Patterns:     []commentPattern{{reBlock, ""}},
		HeaderFormat: "/* %s */",
	},
	".js": {
		Kind:         KindScript,
		Patterns:     []commentPattern{{reBlock, ""}, {reLine, "$1"}},
		HeaderFormat: "/* %s */",
	},
}

// ruleForPath returns the rule for a path's extension, if the extension is
// one of the recognized kinds.
func ruleForPath(path string) (kindRule, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	rule, ok := kindRules[ext]
	return rule, ok
}

// targetExtensions returns the recognized extensions, sorted, for banners.
func targetExtensions() []string {
	exts := make([]string, 0, len(kindRules))
	for ext := range kindRules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// stripComments applies the rule's removal patterns to content, in order.
func stripComments(content string, rule kindRule) string {
	cleaned := content
	for _, p := range rule.Patterns {
		cleaned = p.re.ReplaceAllString(cleaned, p.repl)
	}
	return cleaned
}

// buildHeader formats the file's root-relative path into the kind's header
// template. The path always uses forward slashes, regardless of platform.
func buildHeader(path, root string, rule kindRule) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("cannot express %s relative to %s: %w", path, root, err)
	}
	if rule.HeaderFormat == "" {
		return "", fmt.Errorf("no header format registered for %s files", rule.Kind)
	}
	return fmt.Sprintf(rule.HeaderFormat, filepath.ToSlash(rel)), nil
}
