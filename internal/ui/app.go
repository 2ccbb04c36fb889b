package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pulseboard/internal/rendering"
)

// AppModel is the root model: the board, plus overlays opened from SPC
// leader bindings.
type AppModel struct {
	Mode       AppMode
	Board      *BoardView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Renderer   *rendering.HeaderRenderer // nil disables the markup preview

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model around board.
func NewAppModel(board *BoardView, renderer *rendering.HeaderRenderer) *AppModel {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("ctrl+c", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.BindForMode("SPC m", func() tea.Msg { return ShowMarkupMsg{} }, "Header markup", ModeBoard)
	reg.BindForMode("SPC a", func() tea.Msg { return ShowActivityMsg{} }, "Activity", ModeBoard)
	return &AppModel{
		Mode:       ModeBoard,
		Board:      board,
		KeyHandler: NewKeyHandler(reg),
		Renderer:   renderer,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Board.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for i := range a.Overlays.Stack {
			a.Overlays.Stack[i].View, _ = a.Overlays.Stack[i].View.Update(msg)
		}
	case ShowMarkupMsg:
		props := a.Board.FocusedProps()
		a.openOverlay(ModeMarkup, "Markup · "+props.Title, a.markup())
		return a, nil
	case ShowActivityMsg:
		a.openOverlay(ModeActivity, "Activity", a.activity())
		return a, nil
	case DismissOverlayMsg:
		a.closeOverlay()
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				return a, func() tea.Msg { return DismissOverlayMsg{} }
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
	}

	_, cmd := a.Board.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Board.View()
	if top, ok := a.Overlays.Peek(); ok {
		base = top.View.View()
		if a.width > 0 && a.height > 0 {
			base = lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, base)
		}
	}
	if help := RenderKeybindHelp(a.KeyHandler, a.Mode); help != "" {
		base += "\n" + help
	}
	return base
}

func (a *AppModel) openOverlay(mode AppMode, title, content string) {
	a.Overlays.Push(Overlay{
		View:    NewTextOverlay(title, content, a.width, a.height),
		Mode:    mode,
		Dismiss: "esc",
	})
	a.Mode = mode
}

func (a *AppModel) closeOverlay() {
	a.Overlays.Pop()
	a.Mode = a.Overlays.Mode()
}

// markup renders the focused lane's header as HTML.
func (a *AppModel) markup() string {
	if a.Renderer == nil {
		return Styles.Empty.Render("markup preview unavailable")
	}
	out, err := a.Renderer.RenderString(a.Board.FocusedProps())
	if err != nil {
		return fmt.Sprintf("render failed: %v", err)
	}
	return out
}

func (a *AppModel) activity() string {
	events := a.Board.Activity.Recent(0)
	if len(events) == 0 {
		return Styles.Empty.Render("no activity yet")
	}
	lines := make([]string, len(events))
	for i, ev := range events {
		lines[i] = ev.String()
	}
	return strings.Join(lines, "\n")
}
