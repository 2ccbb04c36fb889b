package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pulseboard/internal/activity"
	"pulseboard/internal/column"
	"pulseboard/internal/config"
	"pulseboard/internal/pairs"
	"pulseboard/internal/telemetry"
	"pulseboard/internal/ui/textutil"
)

// boardTop is the row the lane headers start on (title bar plus a blank line).
const boardTop = 2

// laneChrome is the columns a lane frame adds: left border and padding.
const laneChrome = 2

// Lane configures one board column.
type Lane struct {
	Title   string
	Stage   pairs.Stage
	SortKey string
	Preset  column.Preset
	Width   int
}

// BoardView owns the sort, preset and view-mode state for a row of lanes and
// renders each lane's header from it. Headers only ask for changes; the
// board applies them and re-derives every header's props on the next frame.
type BoardView struct {
	Lanes    []Lane
	Sort     *column.SortState // one active sort for the whole board
	Mode     column.ViewMode
	Pairs    []pairs.Pair
	Activity *activity.Log
	Recorder *telemetry.Recorder // nil disables tracing

	headers []*ColumnHeader
	focus   FocusManager
	width   int
	height  int
}

// Ensure BoardView implements View and Layout.
var (
	_ View   = (*BoardView)(nil)
	_ Layout = (*BoardView)(nil)
)

// NewBoardView creates a board over rows with one header per lane.
func NewBoardView(lanes []Lane, rows []pairs.Pair) *BoardView {
	b := &BoardView{
		Lanes:    lanes,
		Pairs:    rows,
		Activity: activity.NewLog(0),
		headers:  make([]*ColumnHeader, len(lanes)),
	}
	order := make([]string, len(lanes))
	for i := range lanes {
		if b.Lanes[i].Width < MinHeaderWidth {
			b.Lanes[i].Width = MinHeaderWidth
		}
		b.headers[i] = NewColumnHeader(column.Props{})
		order[i] = laneID(i)
	}
	b.focus = FocusManager{Order: order, OnChange: b.focusChanged}
	if len(order) > 0 {
		b.focus.Current = order[0]
	}
	return b
}

// NewBoardFromConfig builds a board from a validated config.
func NewBoardFromConfig(cfg *config.Config, rows []pairs.Pair) *BoardView {
	lanes := make([]Lane, len(cfg.Columns))
	for i, c := range cfg.Columns {
		preset, _ := column.ParsePreset(c.Preset)
		lanes[i] = Lane{
			Title:   c.Title,
			Stage:   pairs.Stage(c.Stage),
			SortKey: c.SortKey,
			Preset:  preset,
			Width:   c.Width,
		}
	}
	b := NewBoardView(lanes, rows)
	b.Sort = cfg.InitialSort()
	b.Mode = cfg.ViewMode()
	return b
}

func laneID(i int) string {
	return fmt.Sprintf("lane-%d", i)
}

// FocusedLane returns the index of the focused lane, or -1 with no lanes.
func (b *BoardView) FocusedLane() int {
	for i := range b.Lanes {
		if laneID(i) == b.focus.Current {
			return i
		}
	}
	return -1
}

// focusChanged parks the cursor of the lane losing focus on its title, so
// returning to a lane always starts from the same control.
func (b *BoardView) focusChanged(from, to string) {
	for i := range b.Lanes {
		if laneID(i) == from {
			b.headers[i].ResetCursor()
		}
	}
	log.Printf("board: focus %s -> %s", from, to)
}

// Header returns the header widget for lane i.
func (b *BoardView) Header(i int) *ColumnHeader {
	b.sync()
	return b.headers[i]
}

// LaneRows returns lane i's pairs in display order.
func (b *BoardView) LaneRows(i int) []pairs.Pair {
	lane := b.Lanes[i]
	rows := pairs.InStage(b.Pairs, lane.Stage)
	if b.Sort != nil && lane.SortKey != "" && b.Sort.Column == lane.SortKey {
		pairs.Sort(rows, lane.SortKey, b.Sort.Direction == column.SortDesc)
	}
	return rows
}

// HeaderProps derives lane i's header props from board state.
func (b *BoardView) HeaderProps(i int) column.Props {
	lane := b.Lanes[i]
	return column.Props{
		Title:       lane.Title,
		Count:       len(b.LaneRows(i)),
		SortKey:     lane.SortKey,
		CurrentSort: b.Sort,
		Preset:      lane.Preset,
		View:        b.Mode,
		OnSort: func(col string, dir column.SortDirection) {
			b.Sort = &column.SortState{Column: col, Direction: dir}
			b.record(activity.KindSort, b.Lanes[i].Title, fmt.Sprintf("%s %s", col, dir), map[string]string{
				"column":    col,
				"direction": string(dir),
			})
		},
		OnPresetChange: func(p column.Preset) {
			b.Lanes[i].Preset = p
			b.record(activity.KindPreset, b.Lanes[i].Title, string(p), map[string]string{
				"preset": string(p),
			})
		},
		OnViewToggle: func() {
			b.Mode = b.Mode.Toggle()
			b.record(activity.KindView, b.Lanes[i].Title, b.Mode.String(), map[string]string{
				"mode": b.Mode.String(),
			})
		},
	}
}

// FocusedProps returns the props of the focused lane's header.
func (b *BoardView) FocusedProps() column.Props {
	i := b.FocusedLane()
	if i < 0 {
		return column.Props{}
	}
	return b.HeaderProps(i)
}

func (b *BoardView) record(kind activity.Kind, lane, detail string, attrs map[string]string) {
	log.Printf("board: %s %s: %s", kind, lane, detail)
	b.Activity.Record(activity.Event{Kind: kind, Column: lane, Detail: detail})
	attrs["lane"] = lane
	b.Recorder.Record(context.Background(), string(kind), attrs)
}

// sync pushes fresh props into every header.
func (b *BoardView) sync() {
	focused := b.FocusedLane()
	for i, h := range b.headers {
		h.SetProps(b.HeaderProps(i))
		h.Width = b.Lanes[i].Width
		h.Focused = i == focused
	}
}

// Panels implements Layout: one panel per lane header.
func (b *BoardView) Panels() []Panel {
	panels := make([]Panel, len(b.Lanes))
	x := 0
	for i, lane := range b.Lanes {
		px, w := x+laneChrome, lane.Width
		panels[i] = Panel{
			ID:   laneID(i),
			View: b.headers[i],
			Bounds: func(_, _ int) (int, int, int, int) {
				return px, boardTop, w, HeaderHeight
			},
		}
		x += lane.Width + laneChrome + 1
	}
	return panels
}

// FocusOrder implements Layout.
func (b *BoardView) FocusOrder() []string {
	return b.focus.Order
}

// Init implements View.
func (b *BoardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *BoardView) Update(msg tea.Msg) (View, tea.Cmd) {
	b.sync()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
	case tea.KeyMsg:
		b.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			b.handleClick(msg)
		}
	}
	return b, nil
}

func (b *BoardView) handleKey(msg tea.KeyMsg) {
	i := b.FocusedLane()
	if i < 0 {
		return
	}
	h := b.headers[i]
	switch msg.String() {
	case "tab":
		b.focus.Next()
	case "shift+tab":
		b.focus.Prev()
	case "s":
		h.Activate(column.ControlTitle)
	case "1":
		h.Activate(column.ControlP1)
	case "2":
		h.Activate(column.ControlP2)
	case "3":
		h.Activate(column.ControlP3)
	case "v":
		h.Activate(column.ControlViewToggle)
	default:
		h.Update(msg)
	}
}

func (b *BoardView) handleClick(msg tea.MouseMsg) {
	p, lx, ly, ok := PanelAt(b, msg.X, msg.Y, b.width, b.height)
	if !ok {
		return
	}
	b.focus.SetFocus(p.ID)
	local := msg
	local.X, local.Y = lx, ly
	p.View.Update(local)
}

// View implements View.
func (b *BoardView) View() string {
	b.sync()
	var out strings.Builder
	out.WriteString(Styles.Title.Render("pulseboard"))
	out.WriteString("  " + Styles.Hint.Render("tab: lane  ←/→: control  enter/click: activate  s 1 2 3 v  [SPC] commands"))
	out.WriteString("\n\n")

	focused := b.FocusedLane()
	lanes := make([]string, 0, len(b.Lanes)*2)
	for i := range b.Lanes {
		if i > 0 {
			lanes = append(lanes, " ")
		}
		frame := Styles.Lane
		if i == focused {
			frame = Styles.LaneFocus
		}
		lanes = append(lanes, frame.Render(b.renderLane(i)))
	}
	out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, lanes...))
	return out.String()
}

func (b *BoardView) renderLane(i int) string {
	width := b.Lanes[i].Width
	parts := []string{
		b.headers[i].View(),
		Styles.Muted.Render(strings.Repeat("─", width)),
	}
	rows := b.LaneRows(i)
	switch {
	case len(rows) == 0:
		parts = append(parts, Styles.Empty.Render(textutil.PadRight("no pairs", width)))
	case b.Mode == column.ViewList:
		for _, r := range rows {
			parts = append(parts, renderListRow(r, width))
		}
	default:
		parts = append(parts, renderGridRows(rows, width)...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func changeMarker(p pairs.Pair) string {
	switch {
	case p.Change > 0:
		return Styles.Up.Render("▲")
	case p.Change < 0:
		return Styles.Down.Render("▼")
	default:
		return Styles.Muted.Render("·")
	}
}

func renderListRow(p pairs.Pair, width int) string {
	text := fmt.Sprintf("%-5s V %-7s MC %-7s %s",
		p.Symbol, pairs.FormatUSD(p.Volume), pairs.FormatUSD(p.MarketCap), pairs.FormatAge(p.Age))
	return changeMarker(p) + " " + Styles.Row.Render(textutil.PadRight(text, width-2))
}

func renderGridRows(rows []pairs.Pair, width int) []string {
	cellWidth := (width - 1) / 2
	var lines []string
	for i := 0; i < len(rows); i += 2 {
		cells := make([]string, 0, 2)
		for _, p := range rows[i:min(i+2, len(rows))] {
			text := fmt.Sprintf("%s %s", p.Symbol, pairs.FormatUSD(p.MarketCap))
			cells = append(cells, changeMarker(p)+Styles.Cell.Render(textutil.PadRight(text, cellWidth-1)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return lines
}
