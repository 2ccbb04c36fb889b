package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay chrome: border plus padding horizontally, border plus title and
// hint lines vertically.
const (
	overlayChromeX = 4
	overlayChromeY = 4
)

// TextOverlay shows scrollable read-only text in a box.
type TextOverlay struct {
	Title    string
	viewport viewport.Model
}

// Ensure TextOverlay implements View.
var _ View = (*TextOverlay)(nil)

// NewTextOverlay sizes the box to fit a width x height terminal. Sizes of 0
// fall back to 80x24.
func NewTextOverlay(title, content string, width, height int) *TextOverlay {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	vp := viewport.New(max(width-overlayChromeX, 10), max(height-overlayChromeY, 3))
	vp.SetContent(content)
	return &TextOverlay{Title: title, viewport: vp}
}

// Init implements View.
func (o *TextOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys and the wheel scroll the text.
func (o *TextOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		o.viewport.Width = max(size.Width-overlayChromeX, 10)
		o.viewport.Height = max(size.Height-overlayChromeY, 3)
		return o, nil
	}
	var cmd tea.Cmd
	o.viewport, cmd = o.viewport.Update(msg)
	return o, cmd
}

// View implements View.
func (o *TextOverlay) View() string {
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		Styles.BoxTitle.Render(o.Title),
		o.viewport.View(),
		Styles.Hint.Render("↑/↓ scroll · esc close"),
	))
}
