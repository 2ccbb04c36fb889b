// Package pairs holds the token pair rows a board lane lists, plus the
// ordering the board applies when a lane's header requests a sort.
package pairs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Stage is the lifecycle lane a pair belongs to.
type Stage string

const (
	StageNew      Stage = "new"
	StageStretch  Stage = "stretch"
	StageMigrated Stage = "migrated"
)

// Pair is one listed token pair.
type Pair struct {
	Symbol    string
	Name      string
	Stage     Stage
	Age       time.Duration
	Volume    float64 // USD, trailing 24h
	MarketCap float64 // USD
	Holders   int
	Change    float64 // percent, trailing 1h
}

// Sort keys understood by Sort.
const (
	KeySymbol    = "symbol"
	KeyAge       = "age"
	KeyVolume    = "volume"
	KeyMarketCap = "mcap"
	KeyHolders   = "holders"
	KeyChange    = "change"
)

var compareBy = map[string]func(a, b Pair) int{
	KeySymbol:    func(a, b Pair) int { return strings.Compare(strings.ToLower(a.Symbol), strings.ToLower(b.Symbol)) },
	KeyAge:       func(a, b Pair) int { return cmp.Compare(a.Age, b.Age) },
	KeyVolume:    func(a, b Pair) int { return cmp.Compare(a.Volume, b.Volume) },
	KeyMarketCap: func(a, b Pair) int { return cmp.Compare(a.MarketCap, b.MarketCap) },
	KeyHolders:   func(a, b Pair) int { return cmp.Compare(a.Holders, b.Holders) },
	KeyChange:    func(a, b Pair) int { return cmp.Compare(a.Change, b.Change) },
}

// IsKey reports whether key is a sort key Sort understands.
func IsKey(key string) bool {
	_, ok := compareBy[key]
	return ok
}

// Sort orders ps in place by key. Ties keep their relative order.
// Unknown keys leave ps untouched.
func Sort(ps []Pair, key string, desc bool) {
	compare, ok := compareBy[key]
	if !ok {
		return
	}
	slices.SortStableFunc(ps, func(a, b Pair) int {
		if desc {
			return compare(b, a)
		}
		return compare(a, b)
	})
}

// InStage returns a copy of the pairs in stage s, in source order.
func InStage(ps []Pair, s Stage) []Pair {
	out := make([]Pair, 0, len(ps))
	for _, p := range ps {
		if p.Stage == s {
			out = append(out, p)
		}
	}
	return out
}

// FormatUSD renders a dollar amount compactly: $950, $12.4K, $3.1M.
func FormatUSD(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("$%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("$%.1fK", v/1e3)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatAge renders an age as its largest whole unit: 45s, 12m, 3h, 2d.
func FormatAge(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd", int(d/(24*time.Hour)))
	case d >= time.Hour:
		return fmt.Sprintf("%dh", int(d/time.Hour))
	case d >= time.Minute:
		return fmt.Sprintf("%dm", int(d/time.Minute))
	default:
		return fmt.Sprintf("%ds", int(d/time.Second))
	}
}

// Sample returns a fixed set of pairs across all stages.
func Sample() []Pair {
	return []Pair{
		{Symbol: "MOTH", Name: "Moth Coin", Stage: StageNew, Age: 42 * time.Second, Volume: 1_840, MarketCap: 6_200, Holders: 14, Change: 12.5},
		{Symbol: "ZAP", Name: "Zapdos", Stage: StageNew, Age: 3 * time.Minute, Volume: 12_400, MarketCap: 18_900, Holders: 61, Change: -4.2},
		{Symbol: "KELP", Name: "Kelp Forest", Stage: StageNew, Age: 9 * time.Minute, Volume: 640, MarketCap: 4_100, Holders: 7, Change: 0},
		{Symbol: "ORBI", Name: "Orbit", Stage: StageNew, Age: 17 * time.Minute, Volume: 27_300, MarketCap: 41_000, Holders: 132, Change: 38.1},
		{Symbol: "BRIK", Name: "Brick", Stage: StageStretch, Age: 48 * time.Minute, Volume: 88_000, MarketCap: 61_500, Holders: 402, Change: 7.7},
		{Symbol: "FERN", Name: "Fern", Stage: StageStretch, Age: 2 * time.Hour, Volume: 54_200, MarketCap: 69_800, Holders: 388, Change: -12.9},
		{Symbol: "GLOW", Name: "Glowworm", Stage: StageStretch, Age: 5 * time.Hour, Volume: 130_700, MarketCap: 72_300, Holders: 911, Change: 2.3},
		{Symbol: "APEX", Name: "Apex", Stage: StageMigrated, Age: 26 * time.Hour, Volume: 2_400_000, MarketCap: 3_100_000, Holders: 5_870, Change: -1.4},
		{Symbol: "DUNE", Name: "Dune", Stage: StageMigrated, Age: 3 * time.Hour, Volume: 710_000, MarketCap: 940_000, Holders: 2_204, Change: 19.6},
		{Symbol: "CRAB", Name: "Crab Walk", Stage: StageMigrated, Age: 51 * time.Hour, Volume: 96_000, MarketCap: 1_250_000, Holders: 3_018, Change: 0.8},
	}
}
