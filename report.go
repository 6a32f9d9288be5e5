package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
)

// reporter writes leveled, colored console output and keeps a plain
// transcript so the run report can also be delivered to a file or the
// clipboard afterwards. Errors and warnings go to the error stream.
type reporter struct {
	out    io.Writer
	errOut io.Writer
	buf    strings.Builder

	blue   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
}

func newReporter(out, errOut io.Writer) *reporter {
	return &reporter{
		out:    out,
		errOut: errOut,
		blue:   color.New(color.FgBlue),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
	}
}

func (r *reporter) record(text string) {
	r.buf.WriteString(text)
	r.buf.WriteString("\n")
}

// Info prints a plain line to standard output.
func (r *reporter) Info(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	fmt.Fprintln(r.out, text)
	r.record(text)
}

// Note prints an advisory line (blue) to standard output.
func (r *reporter) Note(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.blue.Fprintln(r.out, text)
	r.record(text)
}

// Success prints a green line to standard output.
func (r *reporter) Success(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.green.Fprintln(r.out, text)
	r.record(text)
}

// Caution prints a yellow line to standard output. Used for advisory notes
// that belong in the run transcript rather than the error stream.
func (r *reporter) Caution(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.yellow.Fprintln(r.out, text)
	r.record(text)
}

// Warn prints a yellow line to the error stream.
func (r *reporter) Warn(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.yellow.Fprintln(r.errOut, text)
	r.record(text)
}

// Error prints a red line to the error stream.
func (r *reporter) Error(format string, args ...any) {
	text := fmt.Sprintf(format, args...)
	r.red.Fprintln(r.errOut, text)
	r.record(text)
}

// Transcript returns everything reported so far, without colors.
func (r *reporter) Transcript() string {
	return r.buf.String()
}

// Deliver sends the transcript to the requested extra destinations. Console
// output has already happened line by line, so stdout needs nothing here.
func (r *reporter) Deliver(file string, toClipboard bool) error {
	if file != "" {
		if err := os.WriteFile(file, []byte(r.Transcript()), 0o644); err != nil {
			return fmt.Errorf("writing report to %s: %w", file, err)
		}
		fmt.Fprintf(r.out, "Report saved to %s\n", file)
	}
	if toClipboard {
		if err := clipboard.WriteAll(r.Transcript()); err != nil {
			return fmt.Errorf("copying report to clipboard: %w", err)
		}
		fmt.Fprintln(r.out, "Report copied to clipboard.")
	}
	return nil
}
