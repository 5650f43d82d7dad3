package logging

import (
	"fmt"
	"io"
	"os"
)

// Destinations for user-facing output.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// UserInfo prints an info message to Stdout.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(Stdout, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message to Stdout.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(Stdout, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message to Stderr.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(Stderr, "⚠ "+format+"\n", args...)
}

// UserError prints an error message to Stderr.
func UserError(format string, args ...any) {
	fmt.Fprintf(Stderr, "✗ "+format+"\n", args...)
}
