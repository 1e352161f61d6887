// Package polarity defines the slot/mod polarity symbols and the
// classification of a slot-polarity/mod-polarity pairing. Both the capacity
// engine and the forma counter depend on the same classifier so the matching
// rules live here exactly once.
package polarity

// Polarity identifies one of the eight polarity symbols stamped on slots
// and mods.
type Polarity string

const (
	// Madurai is the "V" polarity common on damage mods.
	Madurai Polarity = "madurai"
	// Vazarin is the "D" polarity common on defensive mods.
	Vazarin Polarity = "vazarin"
	// Naramon is the "dash" polarity common on utility mods.
	Naramon Polarity = "naramon"
	// Zenurik is the "=" polarity found on some ability mods.
	Zenurik Polarity = "zenurik"
	// Unairu is the "ward" polarity.
	Unairu Polarity = "unairu"
	// Penjaga is the "Y" polarity found on companion mods.
	Penjaga Polarity = "penjaga"
	// Umbra is the exceptional polarity: it behaves as a regular polarity
	// against everything except Universal, which it is neutral against.
	Umbra Polarity = "umbra"
	// Universal matches any regular polarity and is neutral against Umbra.
	Universal Polarity = "universal"
	// None marks a slot or mod with no polarity.
	None Polarity = ""
)

// Relation classifies a slot-polarity/mod-polarity pairing.
type Relation int

const (
	// RelationNone means at least one side carries no polarity.
	RelationNone Relation = iota
	// RelationMatch means the pairing grants the matched-polarity discount.
	RelationMatch
	// RelationNeutral means the pairing is neither a bonus nor a penalty
	// (Universal against Umbra).
	RelationNeutral
	// RelationMismatch means the pairing incurs the mismatch penalty.
	RelationMismatch
)

// String returns the relation name for logging and test output.
func (r Relation) String() string {
	switch r {
	case RelationMatch:
		return "match"
	case RelationNeutral:
		return "neutral"
	case RelationMismatch:
		return "mismatch"
	default:
		return "none"
	}
}

// IsRegular reports whether p is one of the six ordinary polarities,
// i.e. neither special symbol and not absent.
func IsRegular(p Polarity) bool {
	switch p {
	case None, Universal, Umbra:
		return false
	default:
		return true
	}
}

// Classify returns the relation between two polarities. The classification
// is symmetric: Classify(a, b) == Classify(b, a) for all inputs.
//
// Postcondition: Returns RelationNone iff either polarity is None.
func Classify(a, b Polarity) Relation {
	if a == None || b == None {
		return RelationNone
	}
	if a == b {
		return RelationMatch
	}
	if a == Universal || b == Universal {
		other := a
		if a == Universal {
			other = b
		}
		if other == Umbra {
			return RelationNeutral
		}
		return RelationMatch
	}
	return RelationMismatch
}
