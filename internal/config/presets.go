package config

// Presets are named starting configurations. Only the pendulum section
// varies; window and validation settings come from the defaults.
var Presets = map[string]PendulumConfig{
	"classic": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 200, Angle: 1.0, Mass: 1.0, Gravity: 0.5,
	},
	"moon": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 200, Angle: 1.0, Mass: 1.0, Gravity: 0.1,
	},
	"jupiter": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 200, Angle: 1.0, Mass: 1.0, Gravity: 1.3,
	},
	"heavy": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 200, Angle: 1.0, Mass: 25.0, Gravity: 0.5,
	},
	"feather": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 200, Angle: 1.0, Mass: -2.0, Gravity: 0.5,
	},
	"longarm": {
		OriginX: DefaultOriginX, OriginY: DefaultOriginY,
		Radius: 380, Angle: 2.6, Mass: 1.0, Gravity: 0.8,
	},
}

func GetPreset(name string) *PendulumConfig {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
