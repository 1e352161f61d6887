// Package capacity computes per-slot mod drain under polarity rules and
// aggregates a loadout's total cost against its capacity budget.
package capacity

import (
	"math"

	"github.com/voidrig/arsenal/internal/game/mods"
	"github.com/voidrig/arsenal/internal/game/polarity"
)

// DefaultBaseCapacity is the unmodified capacity budget of a piece of
// equipment at rank 30.
const DefaultBaseCapacity = 30

// EffectiveDrain computes the signed capacity cost of a mod placed in a
// slot. The result is negative for capacity-adding slot types (the mod
// grants budget) and non-negative for consuming slots.
//
// The rank is clamped to the fusion limit, the magnitude is
// |baseDrain| + rank, and the polarity relationship resolves it:
// a match doubles the magnitude on capacity slots and halves it (rounded
// up) on consuming slots; a mismatch shifts it 25% against the player,
// rounded to the nearest integer; an absent or neutral pairing leaves it
// unchanged.
func EffectiveDrain(baseDrain, modRank, fusionLimit int, slotPol, modPol polarity.Polarity, slotType mods.SlotType) int {
	rank := modRank
	if rank > fusionLimit {
		rank = fusionLimit
	}
	if rank < 0 {
		rank = 0
	}
	magnitude := baseDrain
	if magnitude < 0 {
		magnitude = -magnitude
	}
	magnitude += rank

	addsCapacity := slotType.AddsCapacity()
	switch polarity.Classify(slotPol, modPol) {
	case polarity.RelationMatch:
		if addsCapacity {
			magnitude *= 2
		} else {
			magnitude = (magnitude + 1) / 2
		}
	case polarity.RelationMismatch:
		if addsCapacity {
			magnitude = int(math.Round(float64(magnitude) * 0.75))
		} else {
			magnitude = int(math.Round(float64(magnitude) * 1.25))
		}
	}

	if addsCapacity {
		return -magnitude
	}
	return magnitude
}

// Budget is a loadout's aggregated capacity state. Remaining may be
// negative: an over-capacity loadout is a displayable state, not an error.
type Budget struct {
	// BaseCapacity is the effective budget after any doubler.
	BaseCapacity int
	// CapacityBonus is the total budget granted by capacity slots.
	CapacityBonus int
	// TotalDrain is the total cost of mods in consuming slots.
	TotalDrain int
	// Remaining is BaseCapacity + CapacityBonus - TotalDrain.
	Remaining int
}

// Total aggregates the capacity budget for a full loadout. Empty slots
// contribute nothing. hasDoubler doubles the base budget, modeling an
// installed reactor or catalyst.
func Total(slots []mods.ModSlot, baseCapacity int, hasDoubler bool) Budget {
	b := Budget{BaseCapacity: baseCapacity}
	if hasDoubler {
		b.BaseCapacity *= 2
	}
	for _, s := range slots {
		if s.Empty() {
			continue
		}
		drain := EffectiveDrain(s.Mod.BaseDrain, s.EffectiveRank(), s.Mod.FusionLimit, s.Polarity, s.Mod.Polarity, s.Type)
		if drain < 0 {
			b.CapacityBonus += -drain
		} else {
			b.TotalDrain += drain
		}
	}
	b.Remaining = b.BaseCapacity + b.CapacityBonus - b.TotalDrain
	return b
}
