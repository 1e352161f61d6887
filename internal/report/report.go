// Package report renders a build evaluation into display text: capacity
// budget, stat summary, damage table, forma cost, and riven verification.
package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voidrig/arsenal/internal/game/capacity"
	"github.com/voidrig/arsenal/internal/game/forma"
	"github.com/voidrig/arsenal/internal/game/mods"
	"github.com/voidrig/arsenal/internal/game/riven"
	"github.com/voidrig/arsenal/internal/game/stats"
	"github.com/voidrig/arsenal/internal/gamedata"
)

// Render evaluates the build against the loaded content and returns the
// printable report. defaultBaseCapacity applies when the build file does
// not set its own budget.
func Render(b *gamedata.Build, content *gamedata.Content, defaultBaseCapacity int) (string, error) {
	slots, err := b.ResolveSlots(content)
	if err != nil {
		return "", fmt.Errorf("resolving slots: %w", err)
	}

	base := defaultBaseCapacity
	if b.BaseCapacity != nil {
		base = *b.BaseCapacity
	}
	budget := capacity.Total(slots, base, b.HasDoubler)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Report %s\n", uuid.NewString())
	fmt.Fprintf(&sb, "Build: %s (%s: %s)\n\n", b.Name, b.Kind, b.Equipment)

	fmt.Fprintf(&sb, "Capacity: %d used, %d bonus, %d of %d remaining\n",
		budget.TotalDrain, budget.CapacityBonus, budget.Remaining, budget.BaseCapacity)
	if budget.Remaining < 0 {
		fmt.Fprintf(&sb, "  over capacity by %d\n", -budget.Remaining)
	}
	sb.WriteString("\n")

	switch b.Kind {
	case "warframe":
		wf, ok := content.Warframe(b.Equipment)
		if !ok {
			return "", fmt.Errorf("unknown warframe %q", b.Equipment)
		}
		writeWarframe(&sb, stats.SummarizeWarframe(*wf, mods.Aggregate(slots)))
	case "weapon":
		w, ok := content.Weapon(b.Equipment)
		if !ok {
			return "", fmt.Errorf("unknown weapon %q", b.Equipment)
		}
		writeWeapon(&sb, stats.SummarizeWeapon(*w, slots))
		if b.Riven != nil {
			caps, ok := content.RivenCaps[w.Category]
			if !ok {
				return "", fmt.Errorf("no riven caps for category %q", w.Category)
			}
			// a weapon's own disposition overrides the category default
			if w.Disposition > 0 {
				caps.Disposition = w.Disposition
			}
			writeRiven(&sb, riven.Verify(*b.Riven, caps))
		}
	case "companion":
		cm, ok := content.Companion(b.Equipment)
		if !ok {
			return "", fmt.Errorf("unknown companion %q", b.Equipment)
		}
		s := stats.SummarizeCompanion(*cm, mods.Aggregate(slots))
		sb.WriteString("Stats:\n")
		writePair(&sb, "Health", s.Health)
		writePair(&sb, "Shield", s.Shield)
		writePair(&sb, "Armor", s.Armor)
		sb.WriteString("\n")
	}

	if len(b.DefaultSlots) > 0 {
		cost := forma.Cost(b.DefaultLayout(), slots)
		fmt.Fprintf(&sb, "Forma: %d regular, %d universal, %d umbra, %d stance (%d total)\n",
			cost.Regular, cost.Universal, cost.Umbra, cost.Stance, cost.Total)
	}

	return sb.String(), nil
}

func writePair(sb *strings.Builder, label string, p stats.Pair) {
	fmt.Fprintf(sb, "  %-18s %10.1f -> %.1f\n", label, p.Base, p.Modded)
}

func writeWarframe(sb *strings.Builder, s stats.WarframeSummary) {
	sb.WriteString("Stats:\n")
	writePair(sb, "Health", s.Health)
	writePair(sb, "Shield", s.Shield)
	writePair(sb, "Armor", s.Armor)
	writePair(sb, "Power", s.Power)
	writePair(sb, "Sprint Speed", s.SprintSpeed)
	writePair(sb, "Ability Strength", s.AbilityStrength)
	writePair(sb, "Ability Duration", s.AbilityDuration)
	writePair(sb, "Ability Efficiency", s.AbilityEfficiency)
	writePair(sb, "Ability Range", s.AbilityRange)
	sb.WriteString("\n")
}

func writeWeapon(sb *strings.Builder, r stats.WeaponReport) {
	sb.WriteString("Damage:\n")
	for _, e := range r.Damage {
		fmt.Fprintf(sb, "  %-12s %10.1f\n", e.Type, e.Value)
	}
	sb.WriteString("Stats:\n")
	writePair(sb, "Total Damage", r.TotalDamage)
	writePair(sb, "Critical Chance", r.CritChance)
	writePair(sb, "Critical Damage", r.CritMult)
	writePair(sb, "Fire Rate", r.FireRate)
	writePair(sb, "Multishot", r.Multishot)
	writePair(sb, "Magazine", r.Magazine)
	writePair(sb, "Reload Time", r.ReloadTime)
	fmt.Fprintf(sb, "  %-18s %10.1f\n", "Burst DPS", r.BurstDPS)
	fmt.Fprintf(sb, "  %-18s %10.1f\n", "Sustained DPS", r.SustainedDPS)
	sb.WriteString("\n")
}

func writeRiven(sb *strings.Builder, res riven.Result) {
	sb.WriteString("Riven:\n")
	if !res.Valid {
		fmt.Fprintf(sb, "  invalid: %s\n\n", res.Message)
		return
	}
	for _, s := range res.Config.Positive {
		fmt.Fprintf(sb, "  +%.1f %s\n", s.Value, s.Stat)
	}
	if res.Config.Negative != nil {
		fmt.Fprintf(sb, "  %.1f %s\n", res.Config.Negative.Value, res.Config.Negative.Stat)
	}
	if res.Adjusted {
		sb.WriteString("  (values clamped to valid range)\n")
	}
	sb.WriteString("\n")
}
