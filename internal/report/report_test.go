package report_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidrig/arsenal/internal/game/riven"
	"github.com/voidrig/arsenal/internal/gamedata"
	"github.com/voidrig/arsenal/internal/report"
)

func intPtr(v int) *int { return &v }

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func loadTestContent(t *testing.T) *gamedata.Content {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mods", "vitality.yaml"), `
name: Vitality
polarity: vazarin
base_drain: 2
fusion_limit: 5
description:
  - "+20% Health"
  - "+40% Health"
  - "+60% Health"
  - "+80% Health"
  - "+100% Health"
  - "+120% Health"
`)
	writeFile(t, filepath.Join(root, "mods", "hellfire.yaml"), `
name: Hellfire
polarity: naramon
base_drain: 4
fusion_limit: 5
description:
  - "+15% <DT_FIRE>Heat"
  - "+30% <DT_FIRE>Heat"
  - "+45% <DT_FIRE>Heat"
  - "+60% <DT_FIRE>Heat"
  - "+75% <DT_FIRE>Heat"
  - "+90% <DT_FIRE>Heat"
`)
	writeFile(t, filepath.Join(root, "warframes", "excalibur.yaml"), `
name: Excalibur
health: 100
shield: 100
armor: 225
power: 100
sprint_speed: 1.0
`)
	writeFile(t, filepath.Join(root, "weapons", "braton.yaml"), `
name: Braton
category: rifle
total_damage: 24
critical_chance: 0.12
critical_multiplier: 1.6
fire_rate: 8.75
multishot: 1
magazine_size: 45
reload_time: 2
disposition: 1.05
base_damage: [8.8, 8, 7.2]
`)
	writeFile(t, filepath.Join(root, "weapons", "latron.yaml"), `
name: Latron
category: rifle
total_damage: 55
critical_chance: 0.12
critical_multiplier: 2.0
fire_rate: 4.17
multishot: 1
magazine_size: 15
reload_time: 2.4
disposition: 1.2
base_damage: [38.5, 8.3, 8.2]
`)
	writeFile(t, filepath.Join(root, "companions", "carrier.yaml"), `
name: Carrier
health: 200
shield: 100
armor: 50
`)
	writeFile(t, filepath.Join(root, "riven_caps.yaml"), `
categories:
  - category: rifle
    disposition: 1.05
    stat_caps:
      damage: 165
      multishot: 90
    combos:
      - {positives: 2, has_negative: false, positive: 0.99}
`)
	c, err := gamedata.LoadContent(root)
	require.NoError(t, err)
	return c
}

func TestRender_WarframeBuild(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Tank",
		Kind:      "warframe",
		Equipment: "Excalibur",
		Slots: []gamedata.SlotRef{
			{Index: 1, Type: "general", Polarity: "vazarin", Mod: "Vitality"},
		},
		DefaultSlots: []gamedata.SlotRef{
			{Index: 1, Type: "general"},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "Report ")
	assert.Contains(t, out, "Build: Tank (warframe: Excalibur)")
	assert.Contains(t, out, "220.0") // 100 health * 2.2
	assert.Contains(t, out, "Forma: 1 regular")
}

func TestRender_WeaponBuildWithRiven(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Riven Braton",
		Kind:      "weapon",
		Equipment: "Braton",
		Riven: &riven.Config{
			Positive: []riven.Stat{
				{Stat: "damage", Value: 9000},
				{Stat: "multishot", Value: 50},
			},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "Riven:")
	assert.Contains(t, out, "clamped")
	// 165 * 1.05 disposition * 0.99 = 171.5
	assert.Contains(t, out, "+171.5 damage")
}

func TestRender_RivenUsesWeaponDisposition(t *testing.T) {
	// Latron's disposition (1.2) differs from the rifle category default
	// (1.05); the clamp must scale by the weapon's own value
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Riven Latron",
		Kind:      "weapon",
		Equipment: "Latron",
		Riven: &riven.Config{
			Positive: []riven.Stat{
				{Stat: "damage", Value: 9000},
				{Stat: "multishot", Value: 50},
			},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	// 165 * 1.2 disposition * 0.99 = 196.0
	assert.Contains(t, out, "+196.0 damage")
}

func TestRender_InvalidRivenReportedAsMessage(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Bad Riven",
		Kind:      "weapon",
		Equipment: "Braton",
		Riven: &riven.Config{
			Positive: []riven.Stat{
				{Stat: "damage", Value: 10},
				{Stat: "damage", Value: 20},
			},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "invalid: duplicate stat")
}

func TestRender_WeaponBuild(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Fire Braton",
		Kind:      "weapon",
		Equipment: "Braton",
		Slots: []gamedata.SlotRef{
			{Index: 1, Type: "general", Mod: "Hellfire"},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "Burst DPS")
}

func TestRender_CompanionBuild(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Vacuum Bot",
		Kind:      "companion",
		Equipment: "Carrier",
		Slots:     []gamedata.SlotRef{{Index: 1, Type: "general", Mod: "Vitality"}},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "440.0") // 200 health * 2.2
}

func TestRender_UnknownEquipment(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{Name: "X", Kind: "weapon", Equipment: "Ghost Gun"}
	_, err := report.Render(b, content, 30)
	assert.ErrorContains(t, err, "Ghost Gun")
}

func TestRender_OverCapacityNoted(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Greedy",
		Kind:      "warframe",
		Equipment: "Excalibur",
		// base capacity 1: vitality at max costs 7
		BaseCapacity: intPtr(1),
		Slots: []gamedata.SlotRef{
			{Index: 1, Type: "general", Mod: "Vitality"},
		},
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "over capacity")
}

func TestRender_ExplicitZeroBaseCapacityIsNotDefaulted(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:         "Bare",
		Kind:         "warframe",
		Equipment:    "Excalibur",
		BaseCapacity: intPtr(0),
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "0 of 0 remaining")
}

func TestRender_OmittedBaseCapacityUsesDefault(t *testing.T) {
	content := loadTestContent(t)
	b := &gamedata.Build{
		Name:      "Plain",
		Kind:      "warframe",
		Equipment: "Excalibur",
	}
	out, err := report.Render(b, content, 30)
	require.NoError(t, err)
	assert.Contains(t, out, "30 of 30 remaining")
}
