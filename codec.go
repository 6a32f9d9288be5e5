package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// errUndecodable is reported when no candidate codec can decode a file.
// With latin-1 as the final candidate this branch is defensive: latin-1
// maps every byte value, so it cannot fail on file bytes.
var errUndecodable = errors.New("no candidate codec could decode file")

// codec is one entry in the ordered decode-candidate list. A file is always
// written back with the codec that decoded it; the two never mix.
type codec struct {
	Name   string
	Decode func([]byte) (string, error)
	Encode func(string) ([]byte, error)
}

// codecs is the fixed candidate order: strict UTF-8 first, then latin-1 as
// the byte-preserving fallback.
var codecs = []codec{
	{
		Name: "utf-8",
		Decode: func(b []byte) (string, error) {
			if !utf8.Valid(b) {
				return "", errors.New("invalid UTF-8 byte sequence")
			}
			return string(b), nil
		},
		Encode: func(s string) ([]byte, error) {
			return []byte(s), nil
		},
	},
	{
		Name: "latin-1",
		Decode: func(b []byte) (string, error) {
			out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), b)
			if err != nil {
				return "", err
			}
			return string(out), nil
		},
		Encode: func(s string) ([]byte, error) {
			out, _, err := transform.Bytes(charmap.ISO8859_1.NewEncoder(), []byte(s))
			if err != nil {
				return nil, err
			}
			return out, nil
		},
	},
}

// readTextFile reads path and decodes it with the first candidate codec that
// succeeds. I/O failures and decode failures are the same class to the
// caller: skip the file, count the error.
func readTextFile(path string) (string, codec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", codec{}, fmt.Errorf("reading %s: %w", path, err)
	}
	for _, c := range codecs {
		content, err := c.Decode(b)
		if err == nil {
			return content, c, nil
		}
	}
	return "", codec{}, fmt.Errorf("%s: %w", path, errUndecodable)
}

// writeTextFile encodes content with enc and writes it over path, keeping
// the file's existing permission bits.
func writeTextFile(path, content string, enc codec) error {
	b, err := enc.Encode(content)
	if err != nil {
		return fmt.Errorf("encoding %s as %s: %w", path, enc.Name, err)
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, b, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
