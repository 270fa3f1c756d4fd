// Package leveling maps numeric progress values onto named tiers for
// gamified display: level titles over the 1..100 level domain and
// achievement tiers over net-worth amounts.
package leveling

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier is one named range. Min and Max are inclusive bounds.
type Tier struct {
	Min   int64  `yaml:"min"`
	Max   int64  `yaml:"max"`
	Label string `yaml:"label"`
}

// Table is an ordered list of tiers. A valid table covers its domain
// fully and disjointly; TierFor clamps out-of-range values to the
// boundary tiers instead of erroring.
type Table []Tier

// TierFor returns the first tier whose range contains v. Values below
// the table clamp to the first tier, values above to the last.
func (t Table) TierFor(v int64) Tier {
	if len(t) == 0 {
		return Tier{}
	}
	for _, tier := range t {
		if v >= tier.Min && v <= tier.Max {
			return tier
		}
	}
	if v < t[0].Min {
		return t[0]
	}
	return t[len(t)-1]
}

// Validate checks that the table fully and disjointly covers
// [min, max]: ascending contiguous ranges with no gaps or overlaps.
func (t Table) Validate(min, max int64) error {
	if len(t) == 0 {
		return fmt.Errorf("empty tier table")
	}
	if t[0].Min != min {
		return fmt.Errorf("table starts at %d, domain starts at %d", t[0].Min, min)
	}
	for i, tier := range t {
		if tier.Min > tier.Max {
			return fmt.Errorf("tier %q: min %d > max %d", tier.Label, tier.Min, tier.Max)
		}
		if i > 0 && tier.Min != t[i-1].Max+1 {
			return fmt.Errorf("tier %q: starts at %d, previous ends at %d", tier.Label, tier.Min, t[i-1].Max)
		}
	}
	if t[len(t)-1].Max != max {
		return fmt.Errorf("table ends at %d, domain ends at %d", t[len(t)-1].Max, max)
	}
	return nil
}

// LevelTiers titles the supported level domain 1..100.
var LevelTiers = Table{
	{Min: 1, Max: 9, Label: "Novice"},
	{Min: 10, Max: 24, Label: "Apprentice"},
	{Min: 25, Max: 49, Label: "Journeyman"},
	{Min: 50, Max: 74, Label: "Expert"},
	{Min: 75, Max: 89, Label: "Master"},
	{Min: 90, Max: 100, Label: "Grandmaster"},
}

// NetWorthTiers classifies net worth (whole currency units) into
// achievement tiers. The open upper bound is approximated by a large
// sentinel max.
var NetWorthTiers = Table{
	{Min: 0, Max: 9_999, Label: "Bronze"},
	{Min: 10_000, Max: 49_999, Label: "Silver"},
	{Min: 50_000, Max: 99_999, Label: "Gold"},
	{Min: 100_000, Max: 499_999, Label: "Platinum"},
	{Min: 500_000, Max: 999_999, Label: "Diamond"},
	{Min: 1_000_000, Max: 1<<62 - 1, Label: "Obsidian"},
}

// TierForLevel titles a level via LevelTiers, clamping out-of-range
// levels to the nearest boundary tier.
func TierForLevel(level int) Tier {
	return LevelTiers.TierFor(int64(level))
}

// TierForNetWorth classifies a net-worth amount via NetWorthTiers.
// Negative net worth clamps to the lowest tier.
func TierForNetWorth(netWorth decimal.Decimal) Tier {
	return NetWorthTiers.TierFor(netWorth.IntPart())
}
