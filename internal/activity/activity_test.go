package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecentNewestFirst(t *testing.T) {
	l := NewLog(10)
	l.Record(Event{Kind: KindSort, Column: "New Pairs", Detail: "age asc"})
	l.Record(Event{Kind: KindPreset, Column: "New Pairs", Detail: "P2"})

	got := l.Recent(0)
	require.Len(t, got, 2)
	assert.Equal(t, KindPreset, got[0].Kind)
	assert.Equal(t, KindSort, got[1].Kind)
	assert.False(t, got[0].Timestamp.IsZero(), "Record stamps events")
}

func TestLog_DropsOldestWhenFull(t *testing.T) {
	l := NewLog(3)
	for _, d := range []string{"a", "b", "c", "d", "e"} {
		l.Record(Event{Kind: KindView, Detail: d})
	}

	assert.Equal(t, 3, l.Len())
	var details []string
	for _, ev := range l.Recent(0) {
		details = append(details, ev.Detail)
	}
	assert.Equal(t, []string{"e", "d", "c"}, details)
	assert.Len(t, l.Recent(2), 2)
}

func TestLog_KeepsExplicitTimestamp(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	l := NewLog(0)
	l.Record(Event{Kind: KindSort, Column: "Migrated", Detail: "mcap desc", Timestamp: ts})

	ev := l.Recent(1)[0]
	assert.Equal(t, ts, ev.Timestamp)
	assert.Equal(t, "03:04:05 sort   Migrated: mcap desc", ev.String())
}

func TestLog_NilIsSafe(t *testing.T) {
	var l *Log
	l.Record(Event{Kind: KindSort})
	assert.Zero(t, l.Len())
	assert.Empty(t, l.Recent(5))
}
