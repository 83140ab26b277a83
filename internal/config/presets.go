package config

import "sort"

var Presets = map[string]map[string]*Config{
	ModeWalk: {
		"long": {
			Mode: ModeWalk, Lattice: "triangular",
			Walk: WalkConfig{Length: DefaultLength},
		},
		"trajectory": {
			Mode: ModeWalk, Lattice: "square",
			Walk: WalkConfig{Length: 10000, Accumulate: true},
		},
		"cubic": {
			Mode: ModeWalk, Lattice: "cubic",
			Walk: WalkConfig{Length: 10000, Accumulate: true},
		},
	},
	ModeDistance: {
		"scaling": {
			Mode: ModeDistance, Lattice: "square",
			Walk: WalkConfig{Length: 1000, Count: 1000},
		},
		"hexagonal": {
			Mode: ModeDistance, Lattice: "hexagonal",
			Walk: WalkConfig{Length: 1000, Count: 1000},
		},
	},
	ModePoint: {
		"classic": {
			Mode: ModePoint, Lattice: "square", Stickiness: 1,
			Point: PointConfig{InitRadius: 10, Width: 1000, Height: 1000},
		},
		"dense": {
			Mode: ModePoint, Lattice: "square", Stickiness: 0.1,
			Point: PointConfig{InitRadius: 10, Width: 1000, Height: 1000},
		},
		"fractal": {
			Mode: ModePoint, Lattice: "triangular", Stickiness: 1, Particles: 5000,
			Point: PointConfig{InitRadius: 10, Width: 1000, Height: 1000, Fractal: true},
		},
	},
	ModeLine: {
		"front": {
			Mode: ModeLine, Lattice: "square", Stickiness: 1,
			Line: LineConfig{HalfWidth: DefaultHalfWidth},
		},
		"wide": {
			Mode: ModeLine, Lattice: "triangular", Stickiness: 0.5,
			Line: LineConfig{HalfWidth: 400},
		},
		"truncated": {
			Mode: ModeLine, Lattice: "square", Stickiness: 0.5,
			Line: LineConfig{HalfWidth: DefaultHalfWidth, TruncatedDraw: true},
		},
	},
}

// GetPreset returns a copy of the named preset layered over DefaultConfig,
// so zero fields in the table keep their defaults.
func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	p, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return merge(DefaultConfig(), p)
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Modes() []string {
	modes := make([]string, 0, len(Presets))
	for m := range Presets {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

func merge(base, p *Config) *Config {
	out := *base
	out.Mode = p.Mode
	if p.Lattice != "" {
		out.Lattice = p.Lattice
	}
	if p.Stickiness != 0 {
		out.Stickiness = p.Stickiness
	}
	if p.Particles != 0 {
		out.Particles = p.Particles
	}
	if p.Walk.Length != 0 {
		out.Walk.Length = p.Walk.Length
	}
	if p.Walk.Count != 0 {
		out.Walk.Count = p.Walk.Count
	}
	out.Walk.Accumulate = p.Walk.Accumulate
	if p.Point.InitRadius != 0 {
		out.Point.InitRadius = p.Point.InitRadius
	}
	if p.Point.Width != 0 {
		out.Point.Width = p.Point.Width
	}
	if p.Point.Height != 0 {
		out.Point.Height = p.Point.Height
	}
	out.Point.Fractal = p.Point.Fractal
	if p.Line.HalfWidth != 0 {
		out.Line.HalfWidth = p.Line.HalfWidth
	}
	out.Line.TruncatedDraw = p.Line.TruncatedDraw
	return &out
}
