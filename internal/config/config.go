package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStateDim   = 2
	DefaultInputDim   = 1
	DefaultStart      = 0.0
	DefaultFinal      = 10.0
	DefaultPartitions = 1
	DefaultSamples    = 10
	DefaultAlgorithm  = "SLQ"
)

type Config struct {
	Provider  string `yaml:"provider"`
	Algorithm string `yaml:"algorithm"`
	StateDim  int    `yaml:"state_dim"`
	InputDim  int    `yaml:"input_dim"`

	OperatingPoint PointConfig       `yaml:"operating_point"`
	ModePoints     []ModePointConfig `yaml:"mode_points"`
	InterpSamples  int               `yaml:"interp_samples"`

	Horizon  HorizonConfig  `yaml:"horizon"`
	Schedule ScheduleConfig `yaml:"schedule"`

	InitState []float64 `yaml:"init_state"`
}

type PointConfig struct {
	State []float64 `yaml:"state"`
	Input []float64 `yaml:"input"`
}

type ModePointConfig struct {
	Mode  int       `yaml:"mode"`
	State []float64 `yaml:"state"`
	Input []float64 `yaml:"input"`
}

type HorizonConfig struct {
	Start      float64 `yaml:"start"`
	Final      float64 `yaml:"final"`
	Partitions int     `yaml:"partitions"`
	// Boundaries, when set, overrides Start/Final/Partitions with
	// explicit partition boundary times.
	Boundaries []float64 `yaml:"boundaries"`
}

type ScheduleConfig struct {
	Events []float64 `yaml:"events"`
	Modes  []int     `yaml:"modes"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider:  "constant",
		Algorithm: DefaultAlgorithm,
		StateDim:  DefaultStateDim,
		InputDim:  DefaultInputDim,
		OperatingPoint: PointConfig{
			State: make([]float64, DefaultStateDim),
			Input: make([]float64, DefaultInputDim),
		},
		InterpSamples: DefaultSamples,
		Horizon: HorizonConfig{
			Start:      DefaultStart,
			Final:      DefaultFinal,
			Partitions: DefaultPartitions,
		},
		Schedule:  ScheduleConfig{Modes: []int{0}},
		InitState: make([]float64, DefaultStateDim),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.StateDim < 1 {
		return fmt.Errorf("state_dim must be at least 1, got %d", c.StateDim)
	}
	if c.InputDim < 0 {
		return fmt.Errorf("input_dim must not be negative, got %d", c.InputDim)
	}
	if len(c.OperatingPoint.State) != c.StateDim {
		return fmt.Errorf("operating_point.state has %d entries, state_dim is %d", len(c.OperatingPoint.State), c.StateDim)
	}
	if len(c.OperatingPoint.Input) != c.InputDim {
		return fmt.Errorf("operating_point.input has %d entries, input_dim is %d", len(c.OperatingPoint.Input), c.InputDim)
	}
	for _, mp := range c.ModePoints {
		if len(mp.State) != c.StateDim || len(mp.Input) != c.InputDim {
			return fmt.Errorf("mode %d point dims (%d, %d) do not match (%d, %d)", mp.Mode, len(mp.State), len(mp.Input), c.StateDim, c.InputDim)
		}
	}
	if len(c.InitState) != 0 && len(c.InitState) != c.StateDim {
		return fmt.Errorf("init_state has %d entries, state_dim is %d", len(c.InitState), c.StateDim)
	}
	if len(c.Horizon.Boundaries) == 0 {
		if c.Horizon.Final <= c.Horizon.Start {
			return fmt.Errorf("horizon final %g not after start %g", c.Horizon.Final, c.Horizon.Start)
		}
		if c.Horizon.Partitions < 1 {
			return fmt.Errorf("horizon needs at least 1 partition, got %d", c.Horizon.Partitions)
		}
	}
	return nil
}

// GetInitState returns the configured initial state, defaulting to the
// state operating point when unset.
func (c *Config) GetInitState() []float64 {
	if len(c.InitState) == c.StateDim {
		return c.InitState
	}
	return c.OperatingPoint.State
}
