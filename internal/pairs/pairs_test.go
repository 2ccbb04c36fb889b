package pairs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func symbols(ps []Pair) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Symbol
	}
	return out
}

func TestInStage(t *testing.T) {
	all := Sample()
	total := 0
	for _, s := range []Stage{StageNew, StageStretch, StageMigrated} {
		ps := InStage(all, s)
		require.NotEmpty(t, ps, s)
		for _, p := range ps {
			assert.Equal(t, s, p.Stage)
		}
		total += len(ps)
	}
	assert.Equal(t, len(all), total)
}

func TestSort(t *testing.T) {
	ps := InStage(Sample(), StageNew)

	Sort(ps, KeyVolume, false)
	assert.Equal(t, []string{"KELP", "MOTH", "ZAP", "ORBI"}, symbols(ps))

	Sort(ps, KeyVolume, true)
	assert.Equal(t, []string{"ORBI", "ZAP", "MOTH", "KELP"}, symbols(ps))

	Sort(ps, KeySymbol, false)
	assert.Equal(t, []string{"KELP", "MOTH", "ORBI", "ZAP"}, symbols(ps))
}

func TestSort_StableOnTies(t *testing.T) {
	ps := []Pair{
		{Symbol: "A", Holders: 1},
		{Symbol: "B", Holders: 0},
		{Symbol: "C", Holders: 1},
	}
	Sort(ps, KeyHolders, true)
	assert.Equal(t, []string{"A", "C", "B"}, symbols(ps))
}

func TestSort_UnknownKeyKeepsOrder(t *testing.T) {
	ps := InStage(Sample(), StageMigrated)
	before := symbols(ps)
	Sort(ps, "nope", false)
	assert.Equal(t, before, symbols(ps))
	assert.False(t, IsKey("nope"))
	assert.True(t, IsKey(KeyMarketCap))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "$640", FormatUSD(640))
	assert.Equal(t, "$12.4K", FormatUSD(12_400))
	assert.Equal(t, "$2.4M", FormatUSD(2_400_000))
	assert.Equal(t, "$1.0B", FormatUSD(1e9))

	assert.Equal(t, "42s", FormatAge(42*time.Second))
	assert.Equal(t, "17m", FormatAge(17*time.Minute))
	assert.Equal(t, "5h", FormatAge(5*time.Hour))
	assert.Equal(t, "2d", FormatAge(51*time.Hour))
}
