package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/rendering"
)

func newTestApp(t *testing.T) (*AppModel, tea.Model) {
	t.Helper()
	r, err := rendering.NewHeaderRenderer()
	require.NoError(t, err)
	a := NewAppModel(newTestBoard(), r)
	return a, a.AsTeaModel()
}

// press feeds keys through the model, running any returned command once so
// leader bindings deliver their message.
func press(m tea.Model, keys ...string) {
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			continue
		}
		if msg := cmd(); msg != nil {
			m.Update(msg)
		}
	}
}

func TestApp_QuitBindings(t *testing.T) {
	_, m := newTestApp(t)

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestApp_BoardKeysPassThrough(t *testing.T) {
	a, m := newTestApp(t)

	press(m, "s", "v")
	require.NotNil(t, a.Board.Sort)
	assert.Equal(t, "age", a.Board.Sort.Column)
	assert.Equal(t, "list", a.Board.Mode.String())
}

func TestApp_MarkupOverlay(t *testing.T) {
	a, m := newTestApp(t)

	press(m, " ", "m")
	require.Equal(t, 1, a.Overlays.Len())
	assert.Equal(t, ModeMarkup, a.Mode)

	out := m.View()
	assert.Contains(t, out, "Markup · New Pairs")
	assert.Contains(t, out, `<h3 class="title">New Pairs</h3>`)

	// Board keys do not leak through while the overlay is open.
	press(m, "v")
	assert.Equal(t, "grid", a.Board.Mode.String())

	press(m, "esc")
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, ModeBoard, a.Mode)
	assert.Contains(t, m.View(), "Final Stretch")
}

func TestApp_MarkupWithoutRenderer(t *testing.T) {
	a := NewAppModel(newTestBoard(), nil)
	m := a.AsTeaModel()

	m.Update(ShowMarkupMsg{})
	assert.Contains(t, m.View(), "markup preview unavailable")
}

func TestApp_ActivityOverlay(t *testing.T) {
	a, m := newTestApp(t)

	press(m, " ", "a")
	assert.Contains(t, m.View(), "no activity yet")
	m.Update(DismissOverlayMsg{})

	press(m, "tab", "s", "2")
	press(m, " ", "a")
	assert.Equal(t, ModeActivity, a.Mode)
	out := m.View()
	assert.Contains(t, out, "Final Stretch: volume asc")
	assert.Contains(t, out, "Final Stretch: P2")
	assert.Less(t, strings.Index(out, "P2"), strings.Index(out, "volume asc"), "newest first")
}

func TestApp_LeaderBindingsScopedToBoard(t *testing.T) {
	a, m := newTestApp(t)

	press(m, " ", "a")
	press(m, " ", "m")
	assert.Equal(t, 1, a.Overlays.Len(), "SPC m should not stack on the activity overlay")
	assert.Equal(t, ModeActivity, a.Mode)
}

func TestApp_LeaderShowsHelp(t *testing.T) {
	_, m := newTestApp(t)

	press(m, " ")
	out := m.View()
	assert.Contains(t, out, "Header markup")
	assert.Contains(t, out, "Activity")
}

func TestApp_MouseReachesBoard(t *testing.T) {
	a, m := newTestApp(t)

	m.Update(click(laneX(0)+6, boardTop+1))
	assert.Equal(t, "P2", string(a.Board.Lanes[0].Preset))
}

func TestApp_EscDismissesThroughMessage(t *testing.T) {
	a, m := newTestApp(t)
	press(m, " ", "a")
	require.Equal(t, 1, a.Overlays.Len())

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.IsType(t, DismissOverlayMsg{}, msg)
	assert.Equal(t, 1, a.Overlays.Len(), "overlay stays until the message is handled")

	m.Update(msg)
	assert.Equal(t, 0, a.Overlays.Len())
	assert.Equal(t, ModeBoard, a.Mode)
}
