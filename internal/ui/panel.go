package ui

// BoundsFunc returns a panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View at a fixed region of the screen.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether screen cell (x, y) falls inside the panel. The
// returned local coordinates are relative to the panel's top-left corner.
func (p Panel) Contains(x, y, width, height int) (lx, ly int, ok bool) {
	px, py, pw, ph := p.Bounds(width, height)
	if x < px || x >= px+pw || y < py || y >= py+ph {
		return 0, 0, false
	}
	return x - px, y - py, true
}
