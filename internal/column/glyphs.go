package column

// Icon identifies a glyph drawn by the header.
type Icon int

const (
	IconNone Icon = iota
	IconSortAsc
	IconSortDesc
	IconSortable
	IconGrid
	IconList
	IconVisibility
	IconChart
	IconFilter
	IconSettings
)

var iconGlyphs = map[Icon]string{
	IconSortAsc:    "↑",
	IconSortDesc:   "↓",
	IconSortable:   "⇅",
	IconGrid:       "▦",
	IconList:       "☰",
	IconVisibility: "◉",
	IconChart:      "▥",
	IconFilter:     "▽",
	IconSettings:   "⚙",
}

// names follow the lucide icon set so markup consumers can swap in SVGs.
var iconNames = map[Icon]string{
	IconSortAsc:    "arrow-up",
	IconSortDesc:   "arrow-down",
	IconSortable:   "arrow-up-down",
	IconGrid:       "layout-grid",
	IconList:       "list",
	IconVisibility: "eye",
	IconChart:      "bar-chart-3",
	IconFilter:     "filter",
	IconSettings:   "settings",
}

// Glyph returns the single-cell terminal glyph, or "" for IconNone.
func (i Icon) Glyph() string {
	return iconGlyphs[i]
}

// Name returns the icon's symbolic name, or "" for IconNone.
func (i Icon) Name() string {
	return iconNames[i]
}
