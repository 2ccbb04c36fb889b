package ui

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string
}

// PanelAt returns the panel under screen cell (x, y) and the cell's
// panel-local coordinates. ok is false when no panel is hit.
func PanelAt(l Layout, x, y, width, height int) (p Panel, lx, ly int, ok bool) {
	for _, p := range l.Panels() {
		if lx, ly, ok := p.Contains(x, y, width, height); ok {
			return p, lx, ly, true
		}
	}
	return Panel{}, 0, 0, false
}
