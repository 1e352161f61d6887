package mods

// Aggregate folds the parsed effect bags of every occupied slot into a
// single total. Empty slots contribute nothing. Summation is commutative,
// so any permutation of the slot list yields an identical bag.
func Aggregate(slots []ModSlot) EffectBag {
	var total EffectBag
	for _, s := range slots {
		if s.Empty() {
			continue
		}
		total = total.Add(Parse(s.Mod, s.EffectiveRank()))
	}
	return total
}
