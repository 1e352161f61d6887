// Package damage models the per-type damage array and the elemental
// combination rules that merge adjacent primary elements into secondary
// damage types.
package damage

// Type indexes one damage type in a weapon's 20-entry base damage array.
type Type int

const (
	Impact Type = iota
	Puncture
	Slash
	Heat
	Cold
	Electricity
	Toxin
	Blast
	Radiation
	Gas
	Magnetic
	Viral
	Corrosive
	Void
	Tau
	Cinematic
	ShieldDrain
	HealthDrain
	EnergyDrain
	True

	// TypeCount is the length of the base damage array.
	TypeCount
)

var typeNames = [TypeCount]string{
	"Impact", "Puncture", "Slash", "Heat", "Cold", "Electricity", "Toxin",
	"Blast", "Radiation", "Gas", "Magnetic", "Viral", "Corrosive", "Void",
	"Tau", "Cinematic", "Shield Drain", "Health Drain", "Energy Drain", "True",
}

// String returns the display name of the damage type.
func (t Type) String() string {
	if t < 0 || t >= TypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// IsPhysical reports whether t is one of the three physical damage types.
func (t Type) IsPhysical() bool {
	return t == Impact || t == Puncture || t == Slash
}

// IsPrimaryElement reports whether t is a combinable primary element.
func (t Type) IsPrimaryElement() bool {
	switch t {
	case Heat, Cold, Electricity, Toxin:
		return true
	default:
		return false
	}
}

// primaryPriority is the fixed ordering applied to a weapon's innate
// primary elements before they join the combination sequence: Heat, Cold,
// Electricity, Toxin.
var primaryPriority = [4]Type{Heat, Cold, Electricity, Toxin}

// pairKey is an unordered primary-element pair.
type pairKey struct{ low, high Type }

func keyFor(a, b Type) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{low: a, high: b}
}

// combinations maps each of the six primary pairs to the secondary damage
// type it forms. Pair membership is unordered.
var combinations = map[pairKey]Type{
	keyFor(Heat, Cold):         Blast,
	keyFor(Electricity, Toxin): Corrosive,
	keyFor(Heat, Toxin):        Gas,
	keyFor(Cold, Electricity):  Magnetic,
	keyFor(Electricity, Heat):  Radiation,
	keyFor(Cold, Toxin):        Viral,
}

// Combined returns the secondary type formed by two primary elements, or
// false when the pair does not combine (including equal elements).
func Combined(a, b Type) (Type, bool) {
	if a == b {
		return 0, false
	}
	t, ok := combinations[keyFor(a, b)]
	return t, ok
}

// Entry is one row of final computed damage.
type Entry struct {
	// Type is the damage type.
	Type Type
	// Value is the computed damage, rounded to one decimal place.
	Value float64
}
