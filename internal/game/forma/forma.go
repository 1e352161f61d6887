// Package forma computes the minimum count of each forma variant needed to
// move a piece of equipment from its default polarity layout to a desired
// one. Polarities are compared as multisets: relocating a polarity between
// slots is free, only net-new and net-abandoned polarities cost material.
package forma

import (
	"github.com/voidrig/arsenal/internal/game/mods"
	"github.com/voidrig/arsenal/internal/game/polarity"
)

// Count holds the required forma of each variant.
type Count struct {
	// Regular covers the six ordinary polarities plus clears of abandoned
	// defaults.
	Regular int
	// Universal covers new universal polarities on consuming slots.
	Universal int
	// Umbra covers new umbra polarities.
	Umbra int
	// Stance covers new universal polarities on capacity slots
	// (aura/stance/posture), which take a distinct material.
	Stance int
	// Total is the sum of all variants.
	Total int
}

// countPolarities tallies the concrete polarities in a slot layout.
func countPolarities(slots []mods.ModSlot) map[polarity.Polarity]int {
	counts := make(map[polarity.Polarity]int)
	for _, s := range slots {
		if s.Polarity != polarity.None {
			counts[s.Polarity]++
		}
	}
	return counts
}

// capacityUniversalCount tallies capacity-type slots carrying the
// universal polarity.
func capacityUniversalCount(slots []mods.ModSlot) int {
	n := 0
	for _, s := range slots {
		if s.Type.AddsCapacity() && s.Polarity == polarity.Universal {
			n++
		}
	}
	return n
}

// Cost diffs the default layout against the desired one and returns the
// minimum forma needed per variant. A polarity present in both layouts is
// reused for free regardless of which slot carries it; every net-new
// polarity costs its variant's material, and defaults abandoned without a
// replacement still cost a regular forma each to clear.
//
// Postcondition: all counts are >= 0 and Total is their sum; inputs are
// not mutated.
func Cost(defaultSlots, desiredSlots []mods.ModSlot) Count {
	defCounts := countPolarities(defaultSlots)
	wantCounts := countPolarities(desiredSlots)

	totalDefault, reused := 0, 0
	for p, n := range defCounts {
		totalDefault += n
		if w := wantCounts[p]; w < n {
			reused += w
		} else {
			reused += n
		}
	}
	unmatchedDefaults := totalDefault - reused

	unmatchedRegular := 0
	for p, w := range wantCounts {
		if !polarity.IsRegular(p) {
			continue
		}
		if extra := w - defCounts[p]; extra > 0 {
			unmatchedRegular += extra
		}
	}

	unmatchedUmbra := max(0, wantCounts[polarity.Umbra]-defCounts[polarity.Umbra])
	totalNewUniversal := max(0, wantCounts[polarity.Universal]-defCounts[polarity.Universal])

	// New universal polarities split by slot category: capacity slots take
	// the stance variant, consuming slots the universal variant. Moving a
	// universal from a consuming slot onto a capacity slot still needs the
	// capacity-slot material even though the overall universal count is
	// unchanged.
	newStance := max(0, capacityUniversalCount(desiredSlots)-capacityUniversalCount(defaultSlots))
	newUniversal := max(0, totalNewUniversal-newStance)

	excessClears := max(0, unmatchedDefaults-unmatchedRegular-totalNewUniversal-unmatchedUmbra)

	c := Count{
		Regular:   unmatchedRegular + excessClears,
		Universal: newUniversal,
		Umbra:     unmatchedUmbra,
		Stance:    newStance,
	}
	c.Total = c.Regular + c.Universal + c.Umbra + c.Stance
	return c
}
