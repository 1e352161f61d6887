package gamedata

import (
	"fmt"
	"path/filepath"

	"github.com/voidrig/arsenal/internal/game/equipment"
	"github.com/voidrig/arsenal/internal/game/mods"
	"github.com/voidrig/arsenal/internal/game/riven"
)

// LoadMods reads all .yaml files in dir and parses each as a mod record.
//
// Postcondition: Returns all parsed mods (may be an empty slice) or a
// non-nil error.
func LoadMods(dir string) ([]*mods.Mod, error) {
	return loadAll[mods.Mod](dir)
}

// LoadWarframes reads all .yaml files in dir as Warframe base stats.
func LoadWarframes(dir string) ([]*equipment.Warframe, error) {
	return loadAll[equipment.Warframe](dir)
}

// LoadWeapons reads all .yaml files in dir as weapon base stats.
func LoadWeapons(dir string) ([]*equipment.Weapon, error) {
	return loadAll[equipment.Weapon](dir)
}

// LoadCompanions reads all .yaml files in dir as companion base stats.
func LoadCompanions(dir string) ([]*equipment.Companion, error) {
	return loadAll[equipment.Companion](dir)
}

// rivenCapsFile is the on-disk shape of the riven cap table: one entry
// per equipment category.
type rivenCapsFile struct {
	Categories []riven.CategoryCaps `yaml:"categories"`
}

// LoadRivenCaps reads the riven scaling table and indexes it by category.
//
// Postcondition: Returns a non-empty map or a non-nil error.
func LoadRivenCaps(path string) (map[string]riven.CategoryCaps, error) {
	file, err := loadOne[rivenCapsFile](path)
	if err != nil {
		return nil, err
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("riven caps %s: no categories", path)
	}
	caps := make(map[string]riven.CategoryCaps, len(file.Categories))
	for _, c := range file.Categories {
		caps[c.Category] = c
	}
	return caps, nil
}

// Content is the full loaded data set the CLI works from.
type Content struct {
	Mods       []*mods.Mod
	Warframes  []*equipment.Warframe
	Weapons    []*equipment.Weapon
	Companions []*equipment.Companion
	RivenCaps  map[string]riven.CategoryCaps

	modIndex map[string]*mods.Mod
}

// LoadContent loads the standard content layout under root: mods/,
// warframes/, weapons/, companions/, riven_caps.yaml.
func LoadContent(root string) (*Content, error) {
	modList, err := LoadMods(filepath.Join(root, "mods"))
	if err != nil {
		return nil, fmt.Errorf("loading mods: %w", err)
	}
	frames, err := LoadWarframes(filepath.Join(root, "warframes"))
	if err != nil {
		return nil, fmt.Errorf("loading warframes: %w", err)
	}
	weapons, err := LoadWeapons(filepath.Join(root, "weapons"))
	if err != nil {
		return nil, fmt.Errorf("loading weapons: %w", err)
	}
	companions, err := LoadCompanions(filepath.Join(root, "companions"))
	if err != nil {
		return nil, fmt.Errorf("loading companions: %w", err)
	}
	caps, err := LoadRivenCaps(filepath.Join(root, "riven_caps.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading riven caps: %w", err)
	}

	c := &Content{
		Mods:       modList,
		Warframes:  frames,
		Weapons:    weapons,
		Companions: companions,
		RivenCaps:  caps,
		modIndex:   make(map[string]*mods.Mod, len(modList)*2),
	}
	for _, m := range modList {
		c.modIndex[m.Name] = m
		if m.UniqueName != "" {
			c.modIndex[m.UniqueName] = m
		}
	}
	return c, nil
}

// Mod looks a mod up by display name or unique name.
func (c *Content) Mod(name string) (*mods.Mod, bool) {
	m, ok := c.modIndex[name]
	return m, ok
}

// Warframe looks a frame up by name.
func (c *Content) Warframe(name string) (*equipment.Warframe, bool) {
	for _, f := range c.Warframes {
		if f.Name == name || f.UniqueName == name {
			return f, true
		}
	}
	return nil, false
}

// Weapon looks a weapon up by name.
func (c *Content) Weapon(name string) (*equipment.Weapon, bool) {
	for _, w := range c.Weapons {
		if w.Name == name || w.UniqueName == name {
			return w, true
		}
	}
	return nil, false
}

// Companion looks a companion up by name.
func (c *Content) Companion(name string) (*equipment.Companion, bool) {
	for _, cm := range c.Companions {
		if cm.Name == name || cm.UniqueName == name {
			return cm, true
		}
	}
	return nil, false
}
