// Package stats composes the parser, aggregator, and damage engine into
// display-ready summaries: base/modded stat pairs for frames and
// companions, and a full damage report for weapons.
package stats

import (
	"math"
	"sort"

	"github.com/voidrig/arsenal/internal/game/damage"
	"github.com/voidrig/arsenal/internal/game/equipment"
	"github.com/voidrig/arsenal/internal/game/mods"
)

// Pair is one displayed stat: the unmodified base value and the value
// after mod effects.
type Pair struct {
	Base   float64
	Modded float64
}

func scaled(base, delta float64) Pair {
	return Pair{Base: base, Modded: base * (1 + delta)}
}

// WarframeSummary holds the computed stat pairs for a frame. Ability
// stats are ratios with a base of 1 (displayed as 100%).
type WarframeSummary struct {
	Health            Pair
	Shield            Pair
	Armor             Pair
	Power             Pair
	SprintSpeed       Pair
	AbilityStrength   Pair
	AbilityDuration   Pair
	AbilityEfficiency Pair
	AbilityRange      Pair
}

// SummarizeWarframe applies an aggregated effect bag to a frame's base
// stats.
func SummarizeWarframe(wf equipment.Warframe, bag mods.EffectBag) WarframeSummary {
	return WarframeSummary{
		Health:            scaled(wf.Health, bag[mods.StatHealth]),
		Shield:            scaled(wf.Shield, bag[mods.StatShield]),
		Armor:             scaled(wf.Armor, bag[mods.StatArmor]),
		Power:             scaled(wf.Power, bag[mods.StatPowerMax]),
		SprintSpeed:       scaled(wf.SprintSpeed, bag[mods.StatSprintSpeed]),
		AbilityStrength:   scaled(1, bag[mods.StatAbilityStrength]),
		AbilityDuration:   scaled(1, bag[mods.StatAbilityDuration]),
		AbilityEfficiency: scaled(1, bag[mods.StatAbilityEfficiency]),
		AbilityRange:      scaled(1, bag[mods.StatAbilityRange]),
	}
}

// CompanionSummary holds the computed stat pairs for a companion.
type CompanionSummary struct {
	Health Pair
	Shield Pair
	Armor  Pair
}

// SummarizeCompanion applies an aggregated effect bag to a companion's
// base stats.
func SummarizeCompanion(c equipment.Companion, bag mods.EffectBag) CompanionSummary {
	return CompanionSummary{
		Health: scaled(c.Health, bag[mods.StatHealth]),
		Shield: scaled(c.Shield, bag[mods.StatShield]),
		Armor:  scaled(c.Armor, bag[mods.StatArmor]),
	}
}

// WeaponReport is the full computed damage summary for a weapon loadout.
type WeaponReport struct {
	// Damage holds the final per-type entries after elemental combination.
	Damage []damage.Entry
	// TotalDamage is the summed base vs. modded per-shot damage.
	TotalDamage Pair
	CritChance  Pair
	CritMult    Pair
	FireRate    Pair
	Multishot   Pair
	Magazine    Pair
	ReloadTime  Pair
	// BurstDPS is average damage per second while the magazine lasts.
	BurstDPS float64
	// SustainedDPS folds reload time into the cycle.
	SustainedDPS float64
}

// elementStats maps the elemental effect fields to their damage types.
var elementStats = []struct {
	stat    mods.Stat
	element damage.Type
}{
	{mods.StatHeat, damage.Heat},
	{mods.StatCold, damage.Cold},
	{mods.StatElectricity, damage.Electricity},
	{mods.StatToxin, damage.Toxin},
}

// SummarizeWeapon aggregates the loadout's mods and computes the weapon's
// final damage table and rate stats. Elemental mod bonuses scale off the
// damage-modded base total and combine per slot position; physical bonuses
// scale their own damage type.
func SummarizeWeapon(w equipment.Weapon, slots []mods.ModSlot) WeaponReport {
	bag := mods.Aggregate(slots)

	baseTotal := w.TotalDamage
	moddedTotal := baseTotal * (1 + bag[mods.StatBaseDamage])

	// Per-slot elemental contributions, in grid order.
	ordered := make([]mods.ModSlot, len(slots))
	copy(ordered, slots)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Index < ordered[j].Index })

	var elementMods []damage.ElementMod
	for _, s := range ordered {
		if s.Empty() {
			continue
		}
		slotBag := mods.Parse(s.Mod, s.EffectiveRank())
		for _, es := range elementStats {
			if pct := slotBag[es.stat]; pct != 0 {
				elementMods = append(elementMods, damage.ElementMod{
					SlotIndex: s.Index,
					Element:   es.element,
					Value:     pct * moddedTotal,
				})
			}
		}
	}

	physMult := make(map[damage.Type]float64)
	for stat, typ := range map[mods.Stat]damage.Type{
		mods.StatImpact:   damage.Impact,
		mods.StatPuncture: damage.Puncture,
		mods.StatSlash:    damage.Slash,
	} {
		if v := bag[stat]; v != 0 {
			physMult[typ] = v
		}
	}

	base := w.DamageArray()
	if moddedTotal != baseTotal && baseTotal > 0 {
		scale := moddedTotal / baseTotal
		for i := range base {
			base[i] *= scale
		}
	}
	entries := damage.Combine(base, elementMods, physMult)

	perShot := 0.0
	for _, e := range entries {
		perShot += e.Value
	}

	critChance := w.CritChance * (1 + bag[mods.StatCritChance])
	critMult := w.CritMultiplier * (1 + bag[mods.StatCritMultiplier])
	fireRate := w.FireRate * (1 + bag[mods.StatFireRate])
	multishot := w.Multishot * (1 + bag[mods.StatMultishot])
	magazine := math.Round(w.MagazineSize * (1 + bag[mods.StatMagazineCapacity]))
	reload := w.ReloadTime
	if speed := 1 + bag[mods.StatReloadSpeed]; speed > 0 {
		reload = w.ReloadTime / speed
	}

	avgShot := perShot * (1 + critChance*(critMult-1)) * multishot
	burst, sustained := 0.0, 0.0
	if fireRate > 0 {
		burst = avgShot * fireRate
		cycle := magazine/fireRate + reload
		if cycle > 0 {
			sustained = avgShot * magazine / cycle
		}
	}

	return WeaponReport{
		Damage:       entries,
		TotalDamage:  Pair{Base: baseTotal, Modded: perShot},
		CritChance:   Pair{Base: w.CritChance, Modded: critChance},
		CritMult:     Pair{Base: w.CritMultiplier, Modded: critMult},
		FireRate:     Pair{Base: w.FireRate, Modded: fireRate},
		Multishot:    Pair{Base: w.Multishot, Modded: multishot},
		Magazine:     Pair{Base: w.MagazineSize, Modded: magazine},
		ReloadTime:   Pair{Base: w.ReloadTime, Modded: reload},
		BurstDPS:     burst,
		SustainedDPS: sustained,
	}
}
