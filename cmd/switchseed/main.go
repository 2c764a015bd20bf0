package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arnav-shukla/switchseed/internal/config"
	"github.com/arnav-shukla/switchseed/internal/engine"
	"github.com/arnav-shukla/switchseed/internal/export"
	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/viz"
)

var (
	configFile string
	preset     string
	provider   string
	algorithm  string
	startTime  float64
	finalTime  float64
	partitions int
	stateDim   int
	inputDim   int
	// Plot options
	component  int
	plotInput  bool
	plotWidth  int
	plotHeight int
	// Export target
	output string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "switchseed",
		Short: "seed trajectories for switched-system trajectory optimization",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a seed trajectory",
		RunE:  runGenerate,
	}
	addBuildFlags(generateCmd)
	generateCmd.Flags().IntVar(&component, "component", 0, "state component to plot")
	generateCmd.Flags().BoolVar(&plotInput, "input", false, "plot an input component instead of a state component")
	generateCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	generateCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height")

	modesCmd := &cobra.Command{
		Use:   "modes",
		Short: "show the mode schedule",
		RunE:  runModes,
	}
	addBuildFlags(modesCmd)
	modesCmd.Flags().IntVar(&plotWidth, "width", 70, "strip width")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "interactively inspect schedule, partitions and seeding",
		RunE:  runInspect,
	}
	addBuildFlags(inspectCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "generate and export the seed trajectory as JSON",
		RunE:  runExportJSON,
	}
	addBuildFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&output, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "generate and export the seed trajectory as CSV",
		RunE:  runExportCSV,
	}
	addBuildFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&output, "out", "", "output file (default stdout)")

	rootCmd.AddCommand(generateCmd, modesCmd, inspectCmd, presetsCmd, exportJSONCmd, exportCSVCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&provider, "provider", "", "provider kind (constant, zero, mode_points, interp)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "algorithm name hint")
	cmd.Flags().Float64Var(&startTime, "start", 0.0, "horizon start time")
	cmd.Flags().Float64Var(&finalTime, "final", 10.0, "horizon final time")
	cmd.Flags().IntVar(&partitions, "partitions", 1, "number of time partitions")
	cmd.Flags().IntVar(&stateDim, "state-dim", 2, "state dimension")
	cmd.Flags().IntVar(&inputDim, "input-dim", 1, "input dimension")
}

// resolveConfig merges preset, config file and flags, in that order of
// increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("provider") {
		cfg.Provider = provider
	}
	if cmd.Flags().Changed("algorithm") {
		cfg.Algorithm = algorithm
	}
	if cmd.Flags().Changed("start") {
		cfg.Horizon.Start = startTime
		cfg.Horizon.Boundaries = nil
	}
	if cmd.Flags().Changed("final") {
		cfg.Horizon.Final = finalTime
		cfg.Horizon.Boundaries = nil
	}
	if cmd.Flags().Changed("partitions") {
		cfg.Horizon.Partitions = partitions
		cfg.Horizon.Boundaries = nil
	}
	if cmd.Flags().Changed("state-dim") || cmd.Flags().Changed("input-dim") {
		cfg.StateDim = stateDim
		cfg.InputDim = inputDim
		cfg.OperatingPoint = config.PointConfig{
			State: make([]float64, stateDim),
			Input: make([]float64, inputDim),
		}
		cfg.ModePoints = nil
		cfg.InitState = make([]float64, stateDim)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func seedFromConfig(cfg *config.Config) (*hybrid.Trajectory, error) {
	prov, err := config.BuildProvider(cfg)
	if err != nil {
		return nil, err
	}
	sched, err := config.BuildSchedule(cfg)
	if err != nil {
		return nil, err
	}
	parts, err := config.BuildPartitions(cfg)
	if err != nil {
		return nil, err
	}

	e := engine.New(prov, parts, sched)
	if cfg.Algorithm != "" {
		e.SetAlgorithm(cfg.Algorithm)
	}
	return e.Seed(context.Background(), hybrid.State(cfg.GetInitState()))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	tr, err := seedFromConfig(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "sample\ttime\tstate\tinput")
	for i := range tr.Times {
		fmt.Fprintf(w, "%d\t%.4f\t%v\t%v\n", i, tr.Times[i], []float64(tr.States[i]), []float64(tr.Inputs[i]))
	}
	w.Flush()

	var plot string
	if plotInput {
		plot, err = viz.PlotInput(tr, component, plotWidth, plotHeight)
	} else {
		plot, err = viz.PlotState(tr, component, plotWidth, plotHeight)
	}
	if err != nil {
		return err
	}
	fmt.Println(plot)
	return nil
}

func runModes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sched, err := config.BuildSchedule(cfg)
	if err != nil {
		return err
	}
	parts, err := config.BuildPartitions(cfg)
	if err != nil {
		return err
	}

	start, final := parts.Horizon()
	fmt.Printf("horizon [%g, %g], %d partitions, %d modes\n\n", start, final, parts.Count(), sched.NumModes())

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "segment\tfrom\tto\tmode")
	events := sched.SwitchTimes()
	ids := sched.ModeIDs()
	segStart := start
	for i, id := range ids {
		segEnd := final
		if i < len(events) {
			segEnd = events[i]
		}
		fmt.Fprintf(w, "%d\t%g\t%g\t%d\n", i, segStart, segEnd, id)
		segStart = segEnd
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.ModeStrip(sched, start, final, plotWidth))
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	prov, err := config.BuildProvider(cfg)
	if err != nil {
		return err
	}
	sched, err := config.BuildSchedule(cfg)
	if err != nil {
		return err
	}
	parts, err := config.BuildPartitions(cfg)
	if err != nil {
		return err
	}
	return viz.RunInspector(sched, parts, prov, hybrid.State(cfg.GetInitState()))
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := seedFromConfig(cfg)
	if err != nil {
		return err
	}

	meta := export.Meta{Provider: cfg.Provider, Algorithm: cfg.Algorithm, Partitions: cfg.Horizon.Partitions}
	if output == "" {
		return export.WriteJSON(os.Stdout, meta, tr)
	}
	if err := export.JSON(output, meta, tr); err != nil {
		return err
	}
	fmt.Printf("exported %d samples to %s\n", tr.Len(), output)
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	tr, err := seedFromConfig(cfg)
	if err != nil {
		return err
	}

	if output == "" {
		return export.WriteCSV(os.Stdout, tr)
	}
	if err := export.CSV(output, tr); err != nil {
		return err
	}
	fmt.Printf("exported %d samples to %s\n", tr.Len(), output)
	return nil
}
