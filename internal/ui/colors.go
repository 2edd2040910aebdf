package ui

// ANSI color and style constants for CLI output
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[31m"
)

// Error wraps s in red for stderr diagnostics
func Error(s string) string {
	return ColorRed + s + ColorReset
}
