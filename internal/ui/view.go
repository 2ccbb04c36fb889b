package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition: a widget or screen region with its own
// Init/Update/View cycle. Update returns the view to keep, which lets
// overlays replace themselves.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
