package damage

import (
	"math"
	"sort"
)

// ElementMod is one elemental bonus contributed by a mod, tagged with the
// position of the slot that carries it. Slot position drives combination
// adjacency: the slot grid reads positions 1 through 8 in fixed order.
type ElementMod struct {
	// SlotIndex is the carrying slot's position in the grid.
	SlotIndex int
	// Element is the contributed primary element.
	Element Type
	// Value is the contributed damage magnitude.
	Value float64
}

// sequenceEntry is one position in the element combination sequence.
type sequenceEntry struct {
	element Type
	value   float64
}

// resultSet accumulates damage per type in insertion order.
type resultSet struct {
	order []Type
	total map[Type]float64
}

func newResultSet() *resultSet {
	return &resultSet{total: make(map[Type]float64)}
}

func (r *resultSet) add(t Type, v float64) {
	if _, seen := r.total[t]; !seen {
		r.order = append(r.order, t)
	}
	r.total[t] += v
}

// entries returns the positive totals rounded to one decimal place, in
// insertion order. Zero and negative totals are dropped.
func (r *resultSet) entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, t := range r.order {
		v := math.Round(r.total[t]*10) / 10
		if v <= 0 {
			continue
		}
		out = append(out, Entry{Type: t, Value: v})
	}
	return out
}

// Combine computes the final per-type damage for a weapon. base is the
// weapon's innate damage array; elementMods are the elemental bonuses
// contributed by equipped mods; physicalMult holds optional per-physical-
// type multipliers (e.g. +120% Impact parses to 1.2) applied to positive
// physical base damage.
//
// Mod-contributed elements are ordered by slot position, innate primary
// elements are appended in Heat/Cold/Electricity/Toxin priority unless
// merged into an equal mod element, and a single left-to-right pass fuses
// adjacent primary pairs into their secondary type. A fused pair never
// combines again. Secondary damage already present on the weapon adds into
// the same output row as any mod-driven combination of that type.
//
// Postcondition: the result contains only positive values, rounded to one
// decimal, in stable insertion order; inputs are not mutated.
func Combine(base [TypeCount]float64, elementMods []ElementMod, physicalMult map[Type]float64) []Entry {
	out := newResultSet()

	// Physical seeds, scaled by their multipliers.
	for _, t := range [3]Type{Impact, Puncture, Slash} {
		v := base[t]
		if v <= 0 {
			continue
		}
		if m, ok := physicalMult[t]; ok {
			v *= 1 + m
		}
		out.add(t, v)
	}

	// Non-primary base damage (existing secondaries, Void, True, ...)
	// participates additively, never in combination.
	for t := Blast; t < TypeCount; t++ {
		if base[t] > 0 {
			out.add(t, base[t])
		}
	}

	// Up to two innate primaries, in fixed HCET priority order regardless
	// of array position.
	var innate []sequenceEntry
	for _, t := range primaryPriority {
		if base[t] > 0 && len(innate) < 2 {
			innate = append(innate, sequenceEntry{element: t, value: base[t]})
		}
	}

	// With no mod-contributed elements there is nothing to combine: innate
	// primaries pass through as their own damage types.
	if len(elementMods) == 0 {
		for _, in := range innate {
			out.add(in.element, in.value)
		}
		return out.entries()
	}

	// Mod elements ordered by slot position.
	sorted := make([]ElementMod, len(elementMods))
	copy(sorted, elementMods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SlotIndex < sorted[j].SlotIndex })

	seq := make([]sequenceEntry, 0, len(sorted)+len(innate))
	for _, em := range sorted {
		seq = append(seq, sequenceEntry{element: em.Element, value: em.Value})
	}

	// An innate element equal to a mod element folds into that entry
	// instead of taking its own trailing position.
	for _, in := range innate {
		merged := false
		for i := range seq {
			if seq[i].element == in.element {
				seq[i].value += in.value
				merged = true
				break
			}
		}
		if !merged {
			seq = append(seq, in)
		}
	}

	// Single left-to-right combine pass over adjacent pairs.
	for i := 0; i < len(seq); {
		if i+1 < len(seq) {
			if secondary, ok := Combined(seq[i].element, seq[i+1].element); ok {
				out.add(secondary, seq[i].value+seq[i+1].value)
				i += 2
				continue
			}
		}
		out.add(seq[i].element, seq[i].value)
		i++
	}

	return out.entries()
}
