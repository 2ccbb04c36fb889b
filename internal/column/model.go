package column

import "fmt"

// Control identifies an interactive element of the header, in focus order.
type Control int

const (
	ControlTitle Control = iota
	ControlP1
	ControlP2
	ControlP3
	ControlViewToggle
	ControlVisibility
	ControlChart
	ControlFilter
	ControlSettings
)

// ControlCount is the number of controls in a header.
const ControlCount = int(ControlSettings) + 1

func (c Control) String() string {
	switch c {
	case ControlTitle:
		return "title"
	case ControlP1:
		return "P1"
	case ControlP2:
		return "P2"
	case ControlP3:
		return "P3"
	case ControlViewToggle:
		return "view"
	case ControlVisibility:
		return "visibility"
	case ControlChart:
		return "chart"
	case ControlFilter:
		return "filter"
	case ControlSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// preset maps a preset button control to its preset.
func (c Control) preset() (Preset, bool) {
	switch c {
	case ControlP1:
		return PresetP1, true
	case ControlP2:
		return PresetP2, true
	case ControlP3:
		return PresetP3, true
	}
	return PresetNone, false
}

// PresetButton is one of the three preset buttons.
type PresetButton struct {
	Control Control
	Preset  Preset
	Active  bool
}

// ToolButton is one of the fixed-size toolbar icon buttons.
type ToolButton struct {
	Control Control
	Icon    Icon
	Wired   bool // false for the inert placeholders
}

// Model is the render-ready description of a header, derived from Props alone.
type Model struct {
	Title      string
	CountLabel string
	Sortable   bool
	SortIcon   Icon
	SortActive bool // SortIcon is a directional glyph rather than the dim neutral one
	Presets    [3]PresetButton
	Toolbar    [5]ToolButton
}

// Build derives the header model from props. It is a pure function.
func Build(p Props) Model {
	m := Model{
		Title:      p.Title,
		CountLabel: fmt.Sprintf("%d 0", p.Count),
		Sortable:   p.Sortable(),
		SortIcon:   SortIcon(p.SortKey, p.CurrentSort),
	}
	m.SortActive = m.SortIcon == IconSortAsc || m.SortIcon == IconSortDesc

	for i, preset := range Presets {
		m.Presets[i] = PresetButton{
			Control: ControlP1 + Control(i),
			Preset:  preset,
			Active:  p.Preset == preset,
		}
	}

	viewIcon := IconGrid
	if p.View == ViewList {
		viewIcon = IconList
	}
	m.Toolbar = [5]ToolButton{
		{Control: ControlViewToggle, Icon: viewIcon, Wired: true},
		{Control: ControlVisibility, Icon: IconVisibility},
		{Control: ControlChart, Icon: IconChart},
		{Control: ControlFilter, Icon: IconFilter},
		{Control: ControlSettings, Icon: IconSettings},
	}
	return m
}

// SortIcon picks the sort glyph for a column. No key means no icon.
func SortIcon(key string, current *SortState) Icon {
	if key == "" {
		return IconNone
	}
	if current != nil && current.Column == key {
		switch current.Direction {
		case SortAsc:
			return IconSortAsc
		case SortDesc:
			return IconSortDesc
		}
	}
	return IconSortable
}

// NextSort returns the sort a click on the column keyed by key requests.
// An inactive column starts ascending; the active column flips direction.
// ok is false when key is empty.
func NextSort(key string, current *SortState) (next SortState, ok bool) {
	if key == "" {
		return SortState{}, false
	}
	if current != nil && current.Column == key {
		return SortState{Column: key, Direction: current.Direction.Opposite()}, true
	}
	return SortState{Column: key, Direction: SortAsc}, true
}

// Activate forwards a click on control c to the matching callback in p.
// Returns true if a callback was invoked. Inert controls and missing
// callbacks return false.
func Activate(p Props, c Control) bool {
	switch c {
	case ControlTitle:
		next, ok := NextSort(p.SortKey, p.CurrentSort)
		if !ok || p.OnSort == nil {
			return false
		}
		p.OnSort(next.Column, next.Direction)
		return true
	case ControlP1, ControlP2, ControlP3:
		preset, _ := c.preset()
		if p.OnPresetChange == nil {
			return false
		}
		p.OnPresetChange(preset)
		return true
	case ControlViewToggle:
		if p.OnViewToggle == nil {
			return false
		}
		p.OnViewToggle()
		return true
	}
	return false
}
