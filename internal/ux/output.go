package ux

import (
	"fmt"
	"io"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Success prints a green check line.
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s%s✓ %s%s\n", Bold, Green, fmt.Sprintf(format, args...), Reset)
}

// Warn prints a yellow warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s⚠ %s%s\n", Yellow, fmt.Sprintf(format, args...), Reset)
}

// Fail prints a red cross line.
func Fail(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s✗ %s%s\n", Red, fmt.Sprintf(format, args...), Reset)
}

// Hint prints a dimmed follow-up command.
func Hint(w io.Writer, label, command string) {
	fmt.Fprintf(w, "\n%s%s:%s %s\n", Yellow, label, Reset, command)
}
