package config

var Presets = map[string]*Config{
	// Pendulum swing-up: seed at the upright equilibrium.
	"pendulum_upright": {
		Provider: "constant", Algorithm: "SLQ", StateDim: 2, InputDim: 1,
		OperatingPoint: PointConfig{State: []float64{3.14159265, 0.0}, Input: []float64{0.0}},
		Horizon:        HorizonConfig{Start: 0.0, Final: 5.0, Partitions: 2},
		Schedule:       ScheduleConfig{Modes: []int{0}},
		InitState:      []float64{0.0, 0.0},
	},
	// Cartpole balance: ramp from the measured state to the origin.
	"cartpole_balance": {
		Provider: "interp", Algorithm: "SLQ", StateDim: 4, InputDim: 1,
		OperatingPoint: PointConfig{State: []float64{0.0, 0.0, 0.0, 0.0}, Input: []float64{0.0}},
		InterpSamples:  20,
		Horizon:        HorizonConfig{Start: 0.0, Final: 8.0, Partitions: 4},
		Schedule:       ScheduleConfig{Modes: []int{0}},
		InitState:      []float64{0.5, 0.0, 0.2, 0.0},
	},
	// Bouncing ball: flight and contact modes alternate, each with its
	// own operating point.
	"bouncing_ball": {
		Provider: "mode_points", Algorithm: "SLQ", StateDim: 2, InputDim: 1,
		OperatingPoint: PointConfig{State: []float64{1.0, 0.0}, Input: []float64{0.0}},
		ModePoints: []ModePointConfig{
			{Mode: 0, State: []float64{1.0, 0.0}, Input: []float64{0.0}},
			{Mode: 1, State: []float64{0.0, 0.0}, Input: []float64{9.81}},
		},
		Horizon:   HorizonConfig{Start: 0.0, Final: 3.0, Partitions: 3},
		Schedule:  ScheduleConfig{Events: []float64{1.0, 1.1, 2.0, 2.1}, Modes: []int{0, 1, 0, 1, 0}},
		InitState: []float64{1.0, 0.0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
