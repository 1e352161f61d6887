// Package riven validates randomized-stat mod configurations and clamps
// rolled values to the valid range for an equipment category. The numeric
// cap table is game-balance data supplied by the caller, never hard-coded
// here.
package riven

import (
	"fmt"

	"github.com/voidrig/arsenal/internal/game/polarity"
)

// Stat is a single rolled stat line on a riven configuration.
type Stat struct {
	// Stat is the stat key, matching a CategoryCaps entry.
	Stat string `yaml:"stat"`
	// Value is the rolled magnitude, signed.
	Value float64 `yaml:"value"`
	// IsNegative marks the stat as the drawback roll.
	IsNegative bool `yaml:"is_negative"`
}

// Config is a proposed riven configuration authored in an editor UI. It is
// untrusted input: Verify checks its shape before any numeric work.
type Config struct {
	// Polarity is the mod card's polarity.
	Polarity polarity.Polarity `yaml:"polarity"`
	// Positive holds 1 to 3 distinct positive stats.
	Positive []Stat `yaml:"positive"`
	// Negative is the optional drawback stat.
	Negative *Stat `yaml:"negative,omitempty"`
}

// ComboMultiplier scales stat caps for one combination of positive-stat
// count and drawback presence.
type ComboMultiplier struct {
	Positives   int     `yaml:"positives"`
	HasNegative bool    `yaml:"has_negative"`
	Positive    float64 `yaml:"positive"`
	Negative    float64 `yaml:"negative"`
}

// CategoryCaps is the replaceable scaling table for one equipment
// category: per-stat base caps, the category disposition, and the
// combination multipliers.
type CategoryCaps struct {
	Category    string             `yaml:"category"`
	Disposition float64            `yaml:"disposition"`
	StatCaps    map[string]float64 `yaml:"stat_caps"`
	Combos      []ComboMultiplier  `yaml:"combos"`
}

// combo finds the multiplier row for the given shape.
func (c CategoryCaps) combo(positives int, hasNegative bool) (ComboMultiplier, bool) {
	for _, m := range c.Combos {
		if m.Positives == positives && m.HasNegative == hasNegative {
			return m, true
		}
	}
	return ComboMultiplier{}, false
}

// Result reports the outcome of a verification. A structurally invalid
// submission yields Valid=false with a descriptive Message; it is data for
// the editor UI, not an error.
type Result struct {
	// Valid is false when the configuration's shape is rejected.
	Valid bool
	// Message describes the rejection when Valid is false.
	Message string
	// Adjusted is true when any value was clamped.
	Adjusted bool
	// Config is the verified configuration with clamped values.
	Config Config
}

func invalid(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

// Verify validates the configuration's shape and clamps each stat's
// magnitude to the maximum permitted by the category's cap table, scaled
// by disposition and the combination multiplier. Positive stats are forced
// non-negative and the drawback stat non-positive.
//
// Postcondition: cfg is not mutated; the returned Config is a fresh copy.
func Verify(cfg Config, caps CategoryCaps) Result {
	if n := len(cfg.Positive); n < 1 || n > 3 {
		return invalid("a riven carries 1 to 3 positive stats, got %d", n)
	}

	seen := make(map[string]bool, len(cfg.Positive)+1)
	for _, s := range cfg.Positive {
		if s.IsNegative {
			return invalid("positive stat %q is flagged as negative", s.Stat)
		}
		if seen[s.Stat] {
			return invalid("duplicate stat %q", s.Stat)
		}
		seen[s.Stat] = true
		if _, ok := caps.StatCaps[s.Stat]; !ok {
			return invalid("unknown stat %q for category %q", s.Stat, caps.Category)
		}
	}
	if cfg.Negative != nil {
		if !cfg.Negative.IsNegative {
			return invalid("negative stat %q is not flagged as negative", cfg.Negative.Stat)
		}
		if seen[cfg.Negative.Stat] {
			return invalid("duplicate stat %q", cfg.Negative.Stat)
		}
		if _, ok := caps.StatCaps[cfg.Negative.Stat]; !ok {
			return invalid("unknown stat %q for category %q", cfg.Negative.Stat, caps.Category)
		}
	}

	mult, ok := caps.combo(len(cfg.Positive), cfg.Negative != nil)
	if !ok {
		return invalid("no multiplier for %d positive stats (negative: %t) in category %q",
			len(cfg.Positive), cfg.Negative != nil, caps.Category)
	}

	out := Config{Polarity: cfg.Polarity, Positive: make([]Stat, len(cfg.Positive))}
	adjusted := false
	for i, s := range cfg.Positive {
		limit := caps.StatCaps[s.Stat] * caps.Disposition * mult.Positive
		clamped := clamp(s.Value, 0, limit)
		if clamped != s.Value {
			adjusted = true
		}
		out.Positive[i] = Stat{Stat: s.Stat, Value: clamped}
	}
	if cfg.Negative != nil {
		limit := caps.StatCaps[cfg.Negative.Stat] * caps.Disposition * mult.Negative
		clamped := clamp(cfg.Negative.Value, -limit, 0)
		if clamped != cfg.Negative.Value {
			adjusted = true
		}
		out.Negative = &Stat{Stat: cfg.Negative.Stat, Value: clamped, IsNegative: true}
	}

	return Result{Valid: true, Adjusted: adjusted, Config: out}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
