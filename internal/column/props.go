package column

// SortDirection is the direction of the active sort.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Opposite returns the other direction. Anything that is not SortAsc flips to SortAsc.
func (d SortDirection) Opposite() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// SortState is the externally owned sort descriptor.
// An empty Column means no column is sorted.
type SortState struct {
	Column    string
	Direction SortDirection
}

// Preset is one of the three mutually exclusive presets, or PresetNone.
type Preset string

const (
	PresetNone Preset = ""
	PresetP1   Preset = "P1"
	PresetP2   Preset = "P2"
	PresetP3   Preset = "P3"
)

// Presets lists the selectable presets in display order.
var Presets = [3]Preset{PresetP1, PresetP2, PresetP3}

// ViewMode selects grid or list layout. The zero value is grid.
type ViewMode int

const (
	ViewGrid ViewMode = iota
	ViewList
)

func (m ViewMode) String() string {
	switch m {
	case ViewGrid:
		return "grid"
	case ViewList:
		return "list"
	default:
		return "unknown"
	}
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewList {
		return ViewGrid
	}
	return ViewList
}

// Props is everything a column header renders from. Every field is optional:
// Count defaults to 0, View to grid, and a nil callback leaves its control inert.
type Props struct {
	Title       string
	Count       int
	SortKey     string     // empty disables the sort click target
	CurrentSort *SortState // nil when the parent has no sort

	Preset Preset
	View   ViewMode

	OnSort         func(column string, direction SortDirection)
	OnPresetChange func(preset Preset)
	OnViewToggle   func()
}

// Sortable reports whether the header has a sort click target.
func (p Props) Sortable() bool {
	return p.SortKey != ""
}

// IsSorted reports whether this header's column is the active sort column.
func (p Props) IsSorted() bool {
	return p.SortKey != "" && p.CurrentSort != nil && p.CurrentSort.Column == p.SortKey
}

// Key is the comparable part of Props: everything that affects rendered output.
// Callbacks are excluded; they never change what is drawn.
type Key struct {
	Title   string
	Count   int
	SortKey string
	HasSort bool
	Sort    SortState
	Preset  Preset
	View    ViewMode
}

// Key returns the memoization key for p.
func (p Props) Key() Key {
	k := Key{
		Title:   p.Title,
		Count:   p.Count,
		SortKey: p.SortKey,
		Preset:  p.Preset,
		View:    p.View,
	}
	if p.CurrentSort != nil {
		k.HasSort = true
		k.Sort = *p.CurrentSort
	}
	return k
}
