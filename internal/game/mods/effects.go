package mods

import (
	"regexp"
	"strconv"
	"strings"
)

// Stat indexes one recognized effect field in an EffectBag.
type Stat int

const (
	StatBaseDamage Stat = iota
	StatMultishot
	StatCritChance
	StatCritMultiplier
	StatFireRate
	StatStatusChance
	StatMagazineCapacity
	StatReloadSpeed
	StatImpact
	StatPuncture
	StatSlash
	StatHeat
	StatCold
	StatElectricity
	StatToxin
	StatHealth
	StatShield
	StatArmor
	StatPowerMax
	StatSprintSpeed
	StatAbilityStrength
	StatAbilityDuration
	StatAbilityEfficiency
	StatAbilityRange

	statCount
)

// statLabels maps each Stat to its canonical display label.
var statLabels = [statCount]string{
	StatBaseDamage:        "Damage",
	StatMultishot:         "Multishot",
	StatCritChance:        "Critical Chance",
	StatCritMultiplier:    "Critical Damage",
	StatFireRate:          "Fire Rate",
	StatStatusChance:      "Status Chance",
	StatMagazineCapacity:  "Magazine Capacity",
	StatReloadSpeed:       "Reload Speed",
	StatImpact:            "Impact",
	StatPuncture:          "Puncture",
	StatSlash:             "Slash",
	StatHeat:              "Heat",
	StatCold:              "Cold",
	StatElectricity:       "Electricity",
	StatToxin:             "Toxin",
	StatHealth:            "Health",
	StatShield:            "Shield Capacity",
	StatArmor:             "Armor",
	StatPowerMax:          "Power Max",
	StatSprintSpeed:       "Sprint Speed",
	StatAbilityStrength:   "Ability Strength",
	StatAbilityDuration:   "Ability Duration",
	StatAbilityEfficiency: "Ability Efficiency",
	StatAbilityRange:      "Ability Range",
}

// String returns the stat's canonical display label.
func (s Stat) String() string {
	if s < 0 || s >= statCount {
		return "Unknown"
	}
	return statLabels[s]
}

// EffectBag holds one numeric delta per recognized stat, as a fraction
// (+30% parses to 0.3). The zero value is the empty bag.
type EffectBag [statCount]float64

// Add returns the field-wise sum of b and o.
func (b EffectBag) Add(o EffectBag) EffectBag {
	for i := range b {
		b[i] += o[i]
	}
	return b
}

// IsZero reports whether every field is exactly zero.
func (b EffectBag) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// rule binds one effect-line label to its target stat. Rules are tried in
// order; the first label match wins.
type rule struct {
	label string
	stat  Stat
}

// parseRules is the ordered matcher table. "Fire Rate" and "Attack Speed"
// are the ranged and melee names for the same mechanic and share a field.
var parseRules = []rule{
	{"Damage", StatBaseDamage},
	{"Multishot", StatMultishot},
	{"Critical Chance", StatCritChance},
	{"Critical Damage", StatCritMultiplier},
	{"Fire Rate", StatFireRate},
	{"Attack Speed", StatFireRate},
	{"Status Chance", StatStatusChance},
	{"Magazine Capacity", StatMagazineCapacity},
	{"Reload Speed", StatReloadSpeed},
	{"Impact", StatImpact},
	{"Puncture", StatPuncture},
	{"Slash", StatSlash},
	{"Heat", StatHeat},
	{"Cold", StatCold},
	{"Electricity", StatElectricity},
	{"Toxin", StatToxin},
	{"Health", StatHealth},
	{"Shield Capacity", StatShield},
	{"Armor", StatArmor},
	{"Power Max", StatPowerMax},
	{"Sprint Speed", StatSprintSpeed},
	{"Ability Strength", StatAbilityStrength},
	{"Ability Duration", StatAbilityDuration},
	{"Ability Efficiency", StatAbilityEfficiency},
	{"Ability Range", StatAbilityRange},
}

var (
	// effectLine matches the structural shape of an effect line:
	// explicit sign, decimal magnitude, percent, label.
	effectLine = regexp.MustCompile(`^([+-])(\d+(?:\.\d+)?)%\s+(.+)$`)
	// markupTag matches inline markup tokens such as elemental color
	// markers, which precede element labels in raw game data.
	markupTag = regexp.MustCompile(`<[^>]*>`)
)

// Parse turns the mod's effect text at the given rank into an EffectBag.
// The text block at index min(rank, FusionLimit) is split into lines; each
// line of the shape "<sign><number>% <Label>" (after stripping markup tags)
// contributes sign*number/100 to the matched stat. Lines matching no rule
// are ignored, so flavor text and unrecognized stats never fail the parse.
//
// Postcondition: never panics; a nil mod or unusable description yields
// the zero bag.
func Parse(mod *Mod, rank int) EffectBag {
	var bag EffectBag
	if mod == nil || len(mod.Description) == 0 {
		return bag
	}
	idx := mod.ClampRank(rank)
	if idx >= len(mod.Description) {
		idx = len(mod.Description) - 1
	}
	for _, line := range strings.Split(mod.Description[idx], "\n") {
		stat, delta, ok := parseEffectLine(line)
		if !ok {
			continue
		}
		bag[stat] += delta
	}
	return bag
}

// parseEffectLine matches one effect line against the rule table.
func parseEffectLine(line string) (Stat, float64, bool) {
	line = strings.TrimSpace(markupTag.ReplaceAllString(line, ""))
	m := effectLine.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return 0, 0, false
	}
	if m[1] == "-" {
		value = -value
	}
	label := strings.TrimSpace(m[3])
	for _, r := range parseRules {
		if strings.EqualFold(r.label, label) {
			return r.stat, value / 100, true
		}
	}
	return 0, 0, false
}
