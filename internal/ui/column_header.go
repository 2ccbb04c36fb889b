package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pulseboard/internal/column"
	"pulseboard/internal/ui/textutil"
)

// MinHeaderWidth fits the toolbar row (five 3-cell buttons and their gaps).
const MinHeaderWidth = 20

// Header rows, top to bottom.
const (
	headerRowTitle = iota
	headerRowPresets
	headerRowToolbar
	HeaderHeight
)

// ColumnHeader draws column.Props in the terminal and forwards clicks and keys
// to the props' callbacks. Between frames it keeps only its render cache and a
// focus cursor; everything it draws comes from the latest props.
type ColumnHeader struct {
	Width   int  // 0 renders at natural width
	Focused bool // draw the focus cursor

	props  column.Props
	cursor column.Control

	memo    headerMemo
	renders int
}

type headerKey struct {
	props   column.Key
	width   int
	focused bool
	cursor  column.Control
}

type headerMemo struct {
	valid   bool
	key     headerKey
	out     string
	regions []hitRegion
}

// hitRegion is the clickable area of one control.
type hitRegion struct {
	control column.Control
	row     int
	span    textutil.Span
}

// Ensure ColumnHeader implements View.
var _ View = (*ColumnHeader)(nil)

// NewColumnHeader creates a header for p.
func NewColumnHeader(p column.Props) *ColumnHeader {
	return &ColumnHeader{props: p}
}

// SetProps replaces the props. The next View re-renders only if something
// visible changed; callbacks always take effect immediately.
func (h *ColumnHeader) SetProps(p column.Props) {
	h.props = p
}

// Props returns the current props.
func (h *ColumnHeader) Props() column.Props {
	return h.props
}

// Cursor returns the control under the focus cursor.
func (h *ColumnHeader) Cursor() column.Control {
	return h.cursor
}

// ResetCursor moves the focus cursor back to the title.
func (h *ColumnHeader) ResetCursor() {
	h.cursor = column.ControlTitle
}

// RenderCount reports how many times the header actually rendered (cache misses).
func (h *ColumnHeader) RenderCount() int {
	return h.renders
}

// Init implements View.
func (h *ColumnHeader) Init() tea.Cmd {
	return nil
}

// Update implements View. Mouse coordinates are relative to the header's top-left cell.
func (h *ColumnHeader) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		h.HandleKey(msg.String())
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			h.HandleClick(msg.X, msg.Y)
		}
	}
	return h, nil
}

// HandleKey moves the focus cursor (left/right, h/l) or activates the control
// under it (enter). Returns true if the key was consumed.
func (h *ColumnHeader) HandleKey(k string) bool {
	switch k {
	case "right", "l":
		h.moveCursor(1)
	case "left", "h":
		h.moveCursor(-1)
	case "enter":
		h.Activate(h.cursor)
	default:
		return false
	}
	return true
}

// HandleClick activates the control at (x, y), relative to the header.
// The cursor follows the click. Returns true if a callback fired.
func (h *ColumnHeader) HandleClick(x, y int) bool {
	h.render()
	for _, r := range h.memo.regions {
		if r.row == y && r.span.Contains(x) {
			h.cursor = r.control
			return h.Activate(r.control)
		}
	}
	return false
}

// Activate forwards to the callback behind c. Returns true if one fired.
func (h *ColumnHeader) Activate(c column.Control) bool {
	return column.Activate(h.props, c)
}

// View implements View.
func (h *ColumnHeader) View() string {
	return h.render()
}

func (h *ColumnHeader) moveCursor(delta int) {
	n := column.ControlCount
	h.cursor = column.Control(((int(h.cursor)+delta)%n + n) % n)
}

func (h *ColumnHeader) render() string {
	key := headerKey{
		props:   h.props.Key(),
		width:   h.Width,
		focused: h.Focused,
		cursor:  h.cursor,
	}
	if h.memo.valid && h.memo.key == key {
		return h.memo.out
	}
	out, regions := renderHeader(column.Build(h.props), h.Width, h.Focused, h.cursor)
	h.memo = headerMemo{valid: true, key: key, out: out, regions: regions}
	h.renders++
	return out
}

// fitTitleRow clips the title and count label so the title row stays within
// width. The count gives way first, down to an ellipsis, while the title keeps
// up to half the row.
func fitTitleRow(m column.Model, width int) (title, count string) {
	avail := width
	if m.SortIcon != column.IconNone {
		avail -= textutil.Width(m.SortIcon.Glyph()) + 1
	}
	titleWidth := textutil.Width(m.Title)
	reserve := 0
	if titleWidth > 0 {
		reserve = min(titleWidth, width/2) + 1
	}
	label := textutil.Truncate(m.CountLabel, max(avail-reserve, 1))
	title = m.Title
	if titleWidth > 0 {
		title = textutil.Truncate(m.Title, avail-textutil.Width(label)-1)
	}
	return title, Styles.HeaderCount.Render(label)
}

// renderHeader lays out the three header rows and records where each control landed.
func renderHeader(m column.Model, width int, focused bool, cursor column.Control) (string, []hitRegion) {
	if width > 0 && width < MinHeaderWidth {
		width = MinHeaderWidth
	}
	focusOn := func(c column.Control, st lipgloss.Style) lipgloss.Style {
		if focused && cursor == c {
			return st.Underline(true).Foreground(Styles.Focus.GetForeground())
		}
		return st
	}
	var regions []hitRegion

	// Title, count, sort glyph
	count := Styles.HeaderCount.Render(m.CountLabel)
	var icon string
	if m.SortIcon != column.IconNone {
		st := Styles.SortNeutral
		if m.SortActive {
			st = Styles.SortActive
		}
		icon = st.Render(m.SortIcon.Glyph())
	}
	title := m.Title
	if width > 0 {
		title, count = fitTitleRow(m, width)
	}
	parts := make([]string, 0, 3)
	if title != "" {
		parts = append(parts, focusOn(column.ControlTitle, Styles.HeaderTitle).Render(title))
	}
	parts = append(parts, count)
	if icon != "" {
		parts = append(parts, icon)
	}
	titleRow := strings.Join(parts, " ")
	if m.Sortable {
		regions = append(regions, hitRegion{
			control: column.ControlTitle,
			row:     headerRowTitle,
			span:    textutil.Span{Start: 0, End: textutil.Width(titleRow)},
		})
	}

	// Preset buttons
	presets := make([]string, len(m.Presets))
	for i, b := range m.Presets {
		st := Styles.Preset
		if b.Active {
			st = Styles.PresetActive
		}
		presets[i] = focusOn(b.Control, st).Render(string(b.Preset))
	}
	for i, span := range textutil.Spans(presets, " ") {
		regions = append(regions, hitRegion{control: m.Presets[i].Control, row: headerRowPresets, span: span})
	}

	// Toolbar
	tools := make([]string, len(m.Toolbar))
	for i, b := range m.Toolbar {
		st := Styles.ToolInert
		if b.Wired {
			st = Styles.Tool
		}
		tools[i] = focusOn(b.Control, st).Render(b.Icon.Glyph())
	}
	for i, span := range textutil.Spans(tools, " ") {
		regions = append(regions, hitRegion{control: m.Toolbar[i].Control, row: headerRowToolbar, span: span})
	}

	out := lipgloss.JoinVertical(lipgloss.Left,
		titleRow,
		strings.Join(presets, " "),
		strings.Join(tools, " "),
	)
	if width > 0 {
		out = lipgloss.NewStyle().Width(width).Render(out)
	}
	return out, regions
}
