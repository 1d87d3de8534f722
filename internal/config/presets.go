package config

import "sort"

// Preset is a named input for one algorithm.
type Preset struct {
	Array  []int `yaml:"array"`
	Target int   `yaml:"target"`
}

var Presets = map[string]map[string]*Preset{
	"bubble": {
		"reversed": {Array: []int{90, 80, 70, 60, 50, 40, 30, 20, 10}},
		"sorted":   {Array: []int{10, 20, 30, 40, 50, 60, 70, 80, 90}},
		"example":  {Array: []int{5, 3, 8, 1}},
	},
	"selection": {
		"pair":     {Array: []int{9, 1}},
		"reversed": {Array: []int{90, 80, 70, 60, 50, 40, 30, 20, 10}},
	},
	"insertion": {
		"nearly_sorted": {Array: []int{10, 20, 40, 30, 50, 70, 60, 80}},
		"reversed":      {Array: []int{80, 70, 60, 50, 40, 30, 20, 10}},
	},
	"shell": {
		"reversed": {Array: []int{160, 150, 140, 130, 120, 110, 100, 90, 80, 70, 60, 50, 40, 30, 20, 10}},
	},
	"merge": {
		"duplicates": {Array: []int{40, 10, 40, 30, 10, 20, 30, 20}},
	},
	"quick": {
		"sorted":   {Array: []int{10, 20, 30, 40, 50, 60, 70, 80}},
		"pivot":    {Array: []int{30, 80, 10, 60, 20, 90, 50}},
		"constant": {Array: []int{40, 40, 40, 40, 40}},
	},
	"linear": {
		"duplicates": {Array: []int{4, 4, 4}, Target: 4},
		"absent":     {Array: []int{12, 45, 7, 33, 91}, Target: 50},
	},
	"binary": {
		"present": {Array: []int{1, 3, 5, 7, 9}, Target: 7},
		"absent":  {Array: []int{1, 3, 5, 7, 9}, Target: 4},
		"large":   {Array: []int{5, 12, 18, 27, 33, 41, 56, 62, 74, 88, 93, 101, 117, 125, 139, 150}, Target: 125},
	},
}

func GetPreset(algorithm, preset string) *Preset {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	p, ok := algoPresets[preset]
	if !ok {
		return nil
	}
	return p
}

func ListPresets(algorithm string) []string {
	algoPresets, ok := Presets[algorithm]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(algoPresets))
	for name := range algoPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset input onto c.
func (p *Preset) Apply(c *Config) {
	c.Array = append([]int(nil), p.Array...)
	if p.Target != 0 {
		c.Search.Target = p.Target
	}
}
