package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a popup view shown over the board, with the mode it puts the
// app in and the key that dismisses it.
type Overlay struct {
	View    View
	Mode    AppMode
	Dismiss string // e.g. "esc"
}

// IsDismissKey reports whether key closes this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack holds open overlays; the topmost receives input.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o on top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// Mode returns the mode of the top overlay, or ModeBoard when none is open.
func (s *OverlayStack) Mode() AppMode {
	if top, ok := s.Peek(); ok {
		return top.Mode
	}
	return ModeBoard
}

// UpdateTop passes msg to the top overlay and keeps the view it returns.
// The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	v, cmd := top.View.Update(msg)
	top.View = v
	return cmd, true
}
