package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sortCall captures OnSort invocations.
type sortCall struct {
	column    string
	direction SortDirection
}

func recordSorts(p *Props) *[]sortCall {
	var calls []sortCall
	p.OnSort = func(column string, direction SortDirection) {
		calls = append(calls, sortCall{column, direction})
	}
	return &calls
}

func TestActivate_TitleWithoutSortKeyIsNoop(t *testing.T) {
	p := Props{Title: "Volume"}
	calls := recordSorts(&p)

	assert.False(t, Activate(p, ControlTitle))
	assert.Empty(t, *calls)
}

func TestActivate_TitleInactiveColumnSortsAscending(t *testing.T) {
	for name, current := range map[string]*SortState{
		"no sort":      nil,
		"empty column": {Column: "", Direction: SortDesc},
		"other column": {Column: "age", Direction: SortDesc},
	} {
		t.Run(name, func(t *testing.T) {
			p := Props{Title: "Volume", SortKey: "volume", CurrentSort: current}
			calls := recordSorts(&p)

			require.True(t, Activate(p, ControlTitle))
			assert.Equal(t, []sortCall{{"volume", SortAsc}}, *calls)
		})
	}
}

func TestActivate_TitleActiveColumnFlipsDirection(t *testing.T) {
	p := Props{SortKey: "volume", CurrentSort: &SortState{Column: "volume", Direction: SortAsc}}
	calls := recordSorts(&p)
	Activate(p, ControlTitle)

	p.CurrentSort = &SortState{Column: "volume", Direction: SortDesc}
	Activate(p, ControlTitle)

	assert.Equal(t, []sortCall{{"volume", SortDesc}, {"volume", SortAsc}}, *calls)
}

func TestActivate_RepeatedClicksNeverClearSort(t *testing.T) {
	p := Props{SortKey: "age"}
	var seen []SortDirection
	p.OnSort = func(column string, direction SortDirection) {
		seen = append(seen, direction)
		p.CurrentSort = &SortState{Column: column, Direction: direction}
	}
	for range 5 {
		Activate(p, ControlTitle)
	}
	assert.Equal(t, []SortDirection{SortAsc, SortDesc, SortAsc, SortDesc, SortAsc}, seen)
}

func TestActivate_TitleWithoutCallbackIsInert(t *testing.T) {
	p := Props{SortKey: "volume"}
	assert.False(t, Activate(p, ControlTitle))
}

func TestActivate_PresetAlwaysReportsButtonLabel(t *testing.T) {
	var got []Preset
	p := Props{Preset: PresetP2, OnPresetChange: func(preset Preset) { got = append(got, preset) }}

	Activate(p, ControlP1)
	Activate(p, ControlP2) // re-selecting the active preset still calls back
	Activate(p, ControlP3)

	assert.Equal(t, []Preset{PresetP1, PresetP2, PresetP3}, got)
	assert.Equal(t, PresetP2, p.Preset, "props are owned by the parent")
}

func TestActivate_ViewToggle(t *testing.T) {
	toggles := 0
	p := Props{OnViewToggle: func() { toggles++ }}

	assert.True(t, Activate(p, ControlViewToggle))
	p.View = ViewList
	assert.True(t, Activate(p, ControlViewToggle))
	assert.Equal(t, 2, toggles)
}

func TestActivate_InertToolbarButtons(t *testing.T) {
	called := false
	p := Props{
		SortKey:        "x",
		OnSort:         func(string, SortDirection) { called = true },
		OnPresetChange: func(Preset) { called = true },
		OnViewToggle:   func() { called = true },
	}
	for _, c := range []Control{ControlVisibility, ControlChart, ControlFilter, ControlSettings} {
		assert.False(t, Activate(p, c), c.String())
	}
	assert.False(t, called)
}

func TestActivate_NoCallbacksNoPanics(t *testing.T) {
	p := Props{Title: "X", SortKey: "x"}
	for c := range ControlCount {
		assert.False(t, Activate(p, Control(c)))
	}
}

func TestSortIcon(t *testing.T) {
	asc := &SortState{Column: "volume", Direction: SortAsc}
	desc := &SortState{Column: "volume", Direction: SortDesc}
	other := &SortState{Column: "age", Direction: SortAsc}

	assert.Equal(t, IconSortAsc, SortIcon("volume", asc))
	assert.Equal(t, IconSortDesc, SortIcon("volume", desc))
	assert.Equal(t, IconSortable, SortIcon("volume", other))
	assert.Equal(t, IconSortable, SortIcon("volume", nil))
	assert.Equal(t, IconNone, SortIcon("", nil))
	assert.Equal(t, IconNone, SortIcon("", &SortState{}))
}

func TestBuild_VolumeScenario(t *testing.T) {
	m := Build(Props{
		Title:       "Volume",
		Count:       42,
		SortKey:     "volume",
		CurrentSort: &SortState{Column: "volume", Direction: SortAsc},
	})

	assert.Equal(t, "Volume", m.Title)
	assert.Equal(t, "42 0", m.CountLabel)
	assert.True(t, m.Sortable)
	assert.Equal(t, IconSortAsc, m.SortIcon)
	assert.True(t, m.SortActive)
}

func TestBuild_TitleOnlyDefaults(t *testing.T) {
	m := Build(Props{Title: "X"})

	assert.Equal(t, "0 0", m.CountLabel)
	assert.False(t, m.Sortable)
	assert.Equal(t, IconNone, m.SortIcon)
	for _, b := range m.Presets {
		assert.False(t, b.Active, b.Preset)
	}
	assert.Equal(t, IconGrid, m.Toolbar[0].Icon)
}

func TestBuild_ExactlyOnePresetActive(t *testing.T) {
	for _, preset := range Presets {
		m := Build(Props{Preset: preset})
		active := 0
		for _, b := range m.Presets {
			if b.Active {
				active++
				assert.Equal(t, preset, b.Preset)
			}
		}
		assert.Equal(t, 1, active, preset)
	}
}

func TestBuild_ToolbarLayout(t *testing.T) {
	m := Build(Props{View: ViewList})

	require.Len(t, m.Toolbar, 5)
	assert.Equal(t, IconList, m.Toolbar[0].Icon)
	assert.True(t, m.Toolbar[0].Wired)
	for _, b := range m.Toolbar[1:] {
		assert.False(t, b.Wired, b.Control.String())
	}
}

func TestBuild_IsPure(t *testing.T) {
	p := Props{Title: "Age", Count: 7, SortKey: "age", CurrentSort: &SortState{Column: "age", Direction: SortDesc}, Preset: PresetP3}
	assert.Equal(t, Build(p), Build(p))
	assert.Equal(t, p.Key(), p.Key())
}

func TestKey_IgnoresCallbacks(t *testing.T) {
	a := Props{Title: "A", SortKey: "a"}
	b := a
	b.OnSort = func(string, SortDirection) {}
	assert.Equal(t, a.Key(), b.Key())

	b.CurrentSort = &SortState{Column: "a", Direction: SortAsc}
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestParse(t *testing.T) {
	p, err := ParsePreset("p2")
	require.NoError(t, err)
	assert.Equal(t, PresetP2, p)

	_, err = ParsePreset("P4")
	assert.ErrorIs(t, err, ErrInvalidPreset)

	d, err := ParseSortDirection("DESC")
	require.NoError(t, err)
	assert.Equal(t, SortDesc, d)

	_, err = ParseSortDirection("up")
	assert.ErrorIs(t, err, ErrInvalidDirection)

	v, err := ParseViewMode("")
	require.NoError(t, err)
	assert.Equal(t, ViewGrid, v)

	_, err = ParseViewMode("table")
	assert.ErrorIs(t, err, ErrInvalidViewMode)
}
