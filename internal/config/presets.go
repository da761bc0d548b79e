package config

import "sort"

// Presets are named animation speeds.
var Presets = map[string]*Config{
	"slow":    {IntervalMs: 150},
	"default": {IntervalMs: DefaultIntervalMs},
	"fast":    {IntervalMs: 30},
	"instant": {IntervalMs: 1},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns preset names ordered from slowest to fastest.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Presets[names[i]].IntervalMs > Presets[names[j]].IntervalMs
	})
	return names
}

// ApplyPreset copies the preset's interval onto c.
func (c *Config) ApplyPreset(name string) bool {
	p := GetPreset(name)
	if p == nil {
		return false
	}
	c.IntervalMs = p.IntervalMs
	return true
}
