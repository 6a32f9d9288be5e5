package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmProceed asks a y/N question on out and reads one line from in.
// Only an explicit "y" or "yes" (any case, surrounding whitespace ignored)
// proceeds; anything else, including EOF, declines.
func confirmProceed(in io.Reader, out io.Writer, root string) (bool, error) {
	fmt.Fprintf(out, "About to modify files in place under %s.\n", root)
	fmt.Fprint(out, "Proceed? [y/N]: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
