// Package output provides styled terminal output for the pyskel CLI.
//
// Functions use lipgloss for styling but abstract away the details from
// callers. Verbose messages are printed only when the --verbose flag
// enabled them via SetVerbose.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Verbose reports whether verbose output is enabled.
func Verbose() bool {
	return verboseMode
}

// Success prints a success message with 🐍 emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Created project: My-Project")
func Success(msg string) {
	fmt.Println(successStyle.Render("🐍 " + msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func Error(msg string) {
	fmt.Println(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("cd My-Project")
//	output.Step("uv sync")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Debug prints a message with 🔍 emoji only if verbose mode is enabled.
//
// Example:
//
//	output.Debug("Validating `my-project` as Train-Case")
func Debug(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("🔍 " + msg))
	}
}
