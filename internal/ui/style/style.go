// Package style provides shared UI styling primitives for consistent visual
// presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal  = lipgloss.Color("#0E9384")
	Slate = lipgloss.Color("#667085")
	Ink   = lipgloss.Color("#101828")
	Green = lipgloss.Color("#12B76A")
	Red   = lipgloss.Color("#D92D20")
	Amber = lipgloss.Color("#F79009")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles used by command output.
var (
	// Header styles section titles in command output.
	Header = lipgloss.NewStyle().Bold(true).Foreground(Teal)
	// Key styles cache entry keys and labels.
	Key = lipgloss.NewStyle().Foreground(Ink)
	// Muted styles secondary text such as type tags and docs.
	Muted = lipgloss.NewStyle().Foreground(Slate)
	// Good styles success markers.
	Good = lipgloss.NewStyle().Foreground(Green)
	// Bad styles failure markers.
	Bad = lipgloss.NewStyle().Foreground(Red)
)
