// Package equipment defines the immutable base-stat records for
// Warframes, weapons, and companions. Records are supplied by the
// external data layer and consumed read-only.
package equipment

import "github.com/voidrig/arsenal/internal/game/damage"

// Warframe holds a frame's unmodified base stats.
type Warframe struct {
	UniqueName  string  `yaml:"unique_name"`
	Name        string  `yaml:"name"`
	Health      float64 `yaml:"health"`
	Shield      float64 `yaml:"shield"`
	Armor       float64 `yaml:"armor"`
	Power       float64 `yaml:"power"`
	SprintSpeed float64 `yaml:"sprint_speed"`
}

// Weapon holds a weapon's unmodified base stats. BaseDamage, when present,
// is the per-type damage array indexed by damage.Type; it may be shorter
// than the full array in data files and is zero-padded by DamageArray.
type Weapon struct {
	UniqueName     string    `yaml:"unique_name"`
	Name           string    `yaml:"name"`
	Category       string    `yaml:"category"`
	TotalDamage    float64   `yaml:"total_damage"`
	CritChance     float64   `yaml:"critical_chance"`
	CritMultiplier float64   `yaml:"critical_multiplier"`
	ProcChance     float64   `yaml:"proc_chance"`
	FireRate       float64   `yaml:"fire_rate"`
	Multishot      float64   `yaml:"multishot"`
	MagazineSize   float64   `yaml:"magazine_size"`
	ReloadTime     float64   `yaml:"reload_time"`
	Disposition    float64   `yaml:"disposition"`
	BaseDamage     []float64 `yaml:"base_damage,omitempty"`

	// Melee-only fields; zero for ranged weapons.
	SlideAttack   float64 `yaml:"slide_attack,omitempty"`
	ComboDuration float64 `yaml:"combo_duration,omitempty"`
}

// IsMelee reports whether the weapon is a melee weapon.
func (w Weapon) IsMelee() bool {
	return w.Category == "melee"
}

// DamageArray returns the weapon's base damage as a fixed-size array.
// Missing trailing entries are zero; extra entries are dropped.
func (w Weapon) DamageArray() [damage.TypeCount]float64 {
	var arr [damage.TypeCount]float64
	for i, v := range w.BaseDamage {
		if i >= int(damage.TypeCount) {
			break
		}
		arr[i] = v
	}
	return arr
}

// Companion holds a companion's unmodified base stats.
type Companion struct {
	UniqueName string  `yaml:"unique_name"`
	Name       string  `yaml:"name"`
	Health     float64 `yaml:"health"`
	Shield     float64 `yaml:"shield"`
	Armor      float64 `yaml:"armor"`
}
