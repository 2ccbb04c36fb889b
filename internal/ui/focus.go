package ui

// FocusManager tracks and rotates focus across the board's lanes.
type FocusManager struct {
	Current  string   // ID of the focused lane
	Order    []string // Tab order
	OnChange func(from, to string)
}

// Index returns the position of the focused ID in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next moves focus forward, wrapping at the end. Returns the new focus ID.
func (f *FocusManager) Next() string {
	return f.step(1)
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusManager) Prev() string {
	return f.step(-1)
}

func (f *FocusManager) step(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.Index()
	if idx < 0 && delta < 0 {
		idx = 0
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
