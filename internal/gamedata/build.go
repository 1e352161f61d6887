package gamedata

import (
	"fmt"

	"github.com/voidrig/arsenal/internal/game/mods"
	"github.com/voidrig/arsenal/internal/game/polarity"
	"github.com/voidrig/arsenal/internal/game/riven"
)

// SlotRef is one slot line in a build file. Mod references the mod by
// display name or unique name; an empty Mod leaves the slot empty.
type SlotRef struct {
	Index    int    `yaml:"index"`
	Type     string `yaml:"type"`
	Polarity string `yaml:"polarity,omitempty"`
	Mod      string `yaml:"mod,omitempty"`
	Rank     *int   `yaml:"rank,omitempty"`
}

// Build is a player-authored loadout file.
type Build struct {
	Name      string `yaml:"name"`
	Kind      string `yaml:"kind"` // warframe, weapon, or companion
	Equipment string `yaml:"equipment"`
	// BaseCapacity overrides the configured default budget when present;
	// an explicit zero is honored, only an absent key falls through.
	BaseCapacity *int          `yaml:"base_capacity,omitempty"`
	HasDoubler   bool          `yaml:"has_doubler,omitempty"`
	Slots        []SlotRef     `yaml:"slots"`
	DefaultSlots []SlotRef     `yaml:"default_slots,omitempty"`
	Riven        *riven.Config `yaml:"riven,omitempty"`
}

// LoadBuild reads and structurally validates a build file.
//
// Postcondition: Returns a Build with a known kind and a non-empty
// equipment reference, or a non-nil error.
func LoadBuild(path string) (*Build, error) {
	b, err := loadOne[Build](path)
	if err != nil {
		return nil, err
	}
	switch b.Kind {
	case "warframe", "weapon", "companion":
	default:
		return nil, fmt.Errorf("build %s: unknown kind %q", path, b.Kind)
	}
	if b.Equipment == "" {
		return nil, fmt.Errorf("build %s: equipment must not be empty", path)
	}
	return b, nil
}

// resolveSlots turns slot references into engine slots, resolving mod
// names against the content index.
func resolveSlots(refs []SlotRef, content *Content) ([]mods.ModSlot, error) {
	slots := make([]mods.ModSlot, 0, len(refs))
	for _, r := range refs {
		slot := mods.ModSlot{
			Index:    r.Index,
			Type:     mods.SlotType(r.Type),
			Polarity: polarity.Polarity(r.Polarity),
			Rank:     r.Rank,
		}
		if slot.Type == "" {
			slot.Type = mods.SlotGeneral
		}
		if r.Mod != "" {
			m, ok := content.Mod(r.Mod)
			if !ok {
				return nil, fmt.Errorf("slot %d: unknown mod %q", r.Index, r.Mod)
			}
			slot.Mod = m
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// ResolveSlots resolves the build's equipped slot list.
func (b *Build) ResolveSlots(content *Content) ([]mods.ModSlot, error) {
	return resolveSlots(b.Slots, content)
}

// DefaultLayout returns the default polarity layout used for forma
// costing. Mods named in default slots are ignored; only polarity and
// slot type matter there.
func (b *Build) DefaultLayout() []mods.ModSlot {
	slots := make([]mods.ModSlot, 0, len(b.DefaultSlots))
	for _, r := range b.DefaultSlots {
		t := mods.SlotType(r.Type)
		if t == "" {
			t = mods.SlotGeneral
		}
		slots = append(slots, mods.ModSlot{
			Index:    r.Index,
			Type:     t,
			Polarity: polarity.Polarity(r.Polarity),
		})
	}
	return slots
}
