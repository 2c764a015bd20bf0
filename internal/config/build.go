package config

import (
	"fmt"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
	"github.com/arnav-shukla/switchseed/internal/partition"
	"github.com/arnav-shukla/switchseed/internal/seed"
)

var providerBuilders = map[string]func(*Config) (seed.Provider, error){
	"constant": func(c *Config) (seed.Provider, error) {
		return seed.NewOperatingPoint(hybrid.State(c.OperatingPoint.State), hybrid.Input(c.OperatingPoint.Input)), nil
	},
	"zero": func(c *Config) (seed.Provider, error) {
		return seed.NewZeroOperatingPoint(c.StateDim, c.InputDim), nil
	},
	"mode_points": func(c *Config) (seed.Provider, error) {
		byMode := make(map[int]seed.Point, len(c.ModePoints))
		for _, mp := range c.ModePoints {
			byMode[mp.Mode] = seed.Point{State: hybrid.State(mp.State), Input: hybrid.Input(mp.Input)}
		}
		def := seed.Point{State: hybrid.State(c.OperatingPoint.State), Input: hybrid.Input(c.OperatingPoint.Input)}
		return seed.NewModeOperatingPoints(def, byMode), nil
	},
	"interp": func(c *Config) (seed.Provider, error) {
		return seed.NewLinearInterpolation(hybrid.State(c.OperatingPoint.State), hybrid.Input(c.OperatingPoint.Input), c.InterpSamples)
	},
}

// BuildProvider constructs the configured seed provider.
func BuildProvider(c *Config) (seed.Provider, error) {
	build, ok := providerBuilders[c.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s (available: %v)", c.Provider, ListProviders())
	}
	return build(c)
}

// BuildSchedule constructs the configured mode schedule.
func BuildSchedule(c *Config) (*modes.Schedule, error) {
	if len(c.Schedule.Modes) == 0 {
		return modes.Single(0), nil
	}
	return modes.New(c.Schedule.Events, c.Schedule.Modes)
}

// BuildPartitions constructs the configured horizon partitioning.
func BuildPartitions(c *Config) (*partition.Times, error) {
	if len(c.Horizon.Boundaries) > 0 {
		return partition.New(c.Horizon.Boundaries)
	}
	return partition.Uniform(c.Horizon.Start, c.Horizon.Final, c.Horizon.Partitions)
}

// ListProviders returns the known provider kinds.
func ListProviders() []string {
	names := make([]string, 0, len(providerBuilders))
	for name := range providerBuilders {
		names = append(names, name)
	}
	return names
}
