// Package mods defines the mod and mod-slot data model together with the
// effect parser and aggregator that turn equipped mods into numeric stat
// deltas.
package mods

import "github.com/voidrig/arsenal/internal/game/polarity"

// Rarity is a mod's drop rarity tier.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Mod is an immutable per-item record supplied by the external data layer.
// Description holds one text block per rank from 0 through FusionLimit; each
// block is a newline-separated list of effect lines.
type Mod struct {
	// UniqueName is the stable data-layer identifier.
	UniqueName string `yaml:"unique_name"`
	// Name is the display name.
	Name string `yaml:"name"`
	// Polarity is the symbol stamped on the mod card; None if unpolarized.
	Polarity polarity.Polarity `yaml:"polarity,omitempty"`
	// Rarity is the drop rarity tier.
	Rarity Rarity `yaml:"rarity,omitempty"`
	// Type is the broad mod category (e.g. "warframe", "primary", "melee").
	Type string `yaml:"type,omitempty"`
	// CompatName restricts the mod to a specific item when non-empty.
	CompatName string `yaml:"compat_name,omitempty"`
	// BaseDrain is the unranked capacity drain. Negative for aura-style
	// mods whose magnitude grows with rank but which grant capacity.
	BaseDrain int `yaml:"base_drain"`
	// FusionLimit is the maximum rank, 0-indexed.
	FusionLimit int `yaml:"fusion_limit"`
	// Subtype further qualifies Type (e.g. a stance's weapon class).
	Subtype string `yaml:"subtype,omitempty"`
	// Description holds the rank-indexed effect text blocks.
	Description []string `yaml:"description,omitempty"`
	// ModSet names the set this mod belongs to, if any.
	ModSet string `yaml:"mod_set,omitempty"`
	// SetNumInSet is the mod's position within its set.
	SetNumInSet int `yaml:"set_num_in_set,omitempty"`
	// SetStats holds the set-bonus text per equipped-count tier.
	SetStats []string `yaml:"set_stats,omitempty"`
}

// ClampRank clamps r to the valid rank range [0, FusionLimit].
//
// Postcondition: 0 <= result <= m.FusionLimit.
func (m *Mod) ClampRank(r int) int {
	if r < 0 {
		return 0
	}
	if r > m.FusionLimit {
		return m.FusionLimit
	}
	return r
}

// SlotType identifies the kind of mod slot on a piece of equipment.
type SlotType string

const (
	// SlotGeneral is an ordinary consuming slot.
	SlotGeneral SlotType = "general"
	// SlotAura is a Warframe aura slot; it adds capacity instead of
	// consuming it.
	SlotAura SlotType = "aura"
	// SlotStance is a melee stance slot; it adds capacity.
	SlotStance SlotType = "stance"
	// SlotExilus is a utility slot; it consumes capacity.
	SlotExilus SlotType = "exilus"
	// SlotPosture is a companion posture slot; it adds capacity.
	SlotPosture SlotType = "posture"
)

// AddsCapacity reports whether the slot type contributes bonus capacity
// rather than consuming it.
func (t SlotType) AddsCapacity() bool {
	switch t {
	case SlotAura, SlotStance, SlotPosture:
		return true
	default:
		return false
	}
}

// ModSlot is one slot in a loadout. A slot with a nil Mod is empty and
// contributes nothing to any computation.
// Invariant: a mod occupies at most one slot in a loadout.
type ModSlot struct {
	// Index is the slot's position in the fixed slot grid.
	Index int
	// Type is the slot kind.
	Type SlotType
	// Polarity is the polarity forged into the slot; None if unpolarized.
	Polarity polarity.Polarity
	// Mod is the equipped mod, or nil for an empty slot.
	Mod *Mod
	// Rank is the equipped rank; nil means max rank.
	Rank *int
	// SetRank is the effective set-bonus rank, when the mod is part of a set.
	SetRank *int
}

// Empty reports whether no mod is equipped in the slot.
func (s ModSlot) Empty() bool {
	return s.Mod == nil
}

// EffectiveRank returns the rank the slot's mod is evaluated at: the
// explicit rank clamped to the mod's fusion limit, or the fusion limit
// itself when no rank is set.
//
// Postcondition: Returns 0 for an empty slot.
func (s ModSlot) EffectiveRank() int {
	if s.Mod == nil {
		return 0
	}
	if s.Rank == nil {
		return s.Mod.FusionLimit
	}
	return s.Mod.ClampRank(*s.Rank)
}
