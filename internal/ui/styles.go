package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"      // Cyan/green - for titles, highlights
	ColorHighlight = "205"     // Magenta - for focus, borders
	ColorPreset    = "#3B82F6" // Blue - active preset button
	ColorButton    = "236"     // Dark gray - button background
	ColorMuted     = "241"     // Gray - for dimmed text, hints
	ColorText      = "252"     // Light gray - for normal text
	ColorDim       = "243"     // Darker gray - inert controls, neutral sort glyph
	ColorUp        = "78"      // Green - positive change
	ColorDown      = "203"     // Red - negative change
)

// Styles contains shared style definitions used across views and overlays.
var Styles = struct {
	// Header styles
	HeaderTitle  lipgloss.Style // Bold white column title
	HeaderCount  lipgloss.Style // Dim count badge
	SortActive   lipgloss.Style // Directional sort glyph
	SortNeutral  lipgloss.Style // Dimmer neutral sort glyph
	Preset       lipgloss.Style // Inactive preset button
	PresetActive lipgloss.Style // Selected preset button
	Tool         lipgloss.Style // Wired toolbar button
	ToolInert    lipgloss.Style // Placeholder toolbar button
	Focus        lipgloss.Style // Applied on top of the focused control

	// Board styles
	Title     lipgloss.Style // App title bar
	Lane      lipgloss.Style // Unfocused lane frame
	LaneFocus lipgloss.Style // Focused lane frame
	Row       lipgloss.Style
	Cell      lipgloss.Style // Grid-mode cell
	Up        lipgloss.Style
	Down      lipgloss.Style

	// Text styles
	Muted lipgloss.Style // Dimmed text (muted color)
	Hint  lipgloss.Style // Help/hint text (muted color)
	Empty lipgloss.Style // Empty state text (muted, italic)

	// Overlay styles
	Box      lipgloss.Style // Standard box with rounded border (accent border)
	BoxTitle lipgloss.Style
}{
	HeaderTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15")),
	HeaderCount: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	SortActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	SortNeutral: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Preset: lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(ColorButton)).
		Foreground(lipgloss.Color(ColorText)),
	PresetActive: lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Background(lipgloss.Color(ColorPreset)).
		Foreground(lipgloss.Color("15")),
	Tool: lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(ColorButton)).
		Foreground(lipgloss.Color(ColorText)),
	ToolInert: lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color(ColorButton)).
		Foreground(lipgloss.Color(ColorDim)),
	Focus: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(ColorHighlight)),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Lane: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorButton)).
		PaddingLeft(1),
	LaneFocus: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		PaddingLeft(1),
	Row: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Cell: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("234")),
	Up: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorUp)),
	Down: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDown)),

	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),

	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	BoxTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}
