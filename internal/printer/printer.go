package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

func init() {
	// Force color output even when not connected to TTY
	// Users can disable with NO_COLOR environment variable
	if os.Getenv("NO_COLOR") == "" {
		color.NoColor = false
	}
}

var (
	green   = color.New(color.FgGreen)
	magenta = color.New(color.FgMagenta)
	red     = color.New(color.FgRed, color.Bold)
	cyan    = color.New(color.FgCyan)

	out    io.Writer = color.Output
	errOut io.Writer = color.Error
)

// SetOutput redirects normal and error output. Passing nil restores the defaults.
// Returns a function that restores the previous writers.
func SetOutput(stdout, stderr io.Writer) (restore func()) {
	prevOut, prevErr := out, errOut
	if stdout == nil {
		stdout = color.Output
	}
	if stderr == nil {
		stderr = color.Error
	}
	out, errOut = stdout, stderr
	return func() { out, errOut = prevOut, prevErr }
}

// Success prints a success message in green with a checkmark prefix
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(out, msg)
}

// Info prints an informational message in the default color
func Info(format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}

// Warning prints a warning in magenta. Warnings report a request that changed
// nothing, such as a book that was already checked out.
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠️") {
		msg = "⚠️  " + msg
	}
	magenta.Fprint(out, msg)
}

// Error creates a formatted error message with title, explanation, and suggestions
// Prints the formatted error to stderr with colors and returns a simple error for Cobra
func Error(title string, explanation string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(errOut, "%s\n", explanation)
	}

	printSuggestions(suggestions)

	// Return simple error for Cobra (won't be printed due to SilenceErrors)
	return fmt.Errorf("%s", title)
}

// ErrorWithContext creates a formatted error with context details
func ErrorWithContext(title string, explanation string, context map[string]string, suggestions []string) error {
	red.Fprintf(errOut, "%s\n\n", title)

	if explanation != "" {
		fmt.Fprintf(errOut, "%s\n", explanation)
	}

	if len(context) > 0 {
		fmt.Fprintf(errOut, "\n")
		for key, value := range context {
			fmt.Fprintf(errOut, "  %s: %s\n", key, value)
		}
	}

	printSuggestions(suggestions)

	return fmt.Errorf("%s", title)
}

func printSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(errOut, "\n")
	if len(suggestions) == 1 {
		fmt.Fprintf(errOut, "%s\n", suggestions[0])
		return
	}
	fmt.Fprintf(errOut, "Either:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(errOut, "  %d. %s\n", i+1, suggestion)
	}
}

// Step prints a step message with emphasis
func Step(format string, a ...any) {
	cyan.Fprintf(out, "→ %s", fmt.Sprintf(format, a...))
}
