package ui

// AppMode is what currently owns the screen.
type AppMode int

const (
	ModeBoard    AppMode = iota // lanes and headers
	ModeMarkup                  // HTML preview of the focused header
	ModeActivity                // recent header interactions
)

func (m AppMode) String() string {
	switch m {
	case ModeBoard:
		return "Board"
	case ModeMarkup:
		return "Markup"
	case ModeActivity:
		return "Activity"
	default:
		return "Unknown"
	}
}
