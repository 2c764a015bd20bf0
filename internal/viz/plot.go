package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
)

// PlotState renders one state component of a seed trajectory as an
// ASCII line plot.
func PlotState(tr *hybrid.Trajectory, component, width, height int) (string, error) {
	if tr.Len() == 0 {
		return "", fmt.Errorf("empty trajectory")
	}
	if component < 0 || component >= len(tr.States[0]) {
		return "", fmt.Errorf("state component %d out of range (dim %d)", component, len(tr.States[0]))
	}

	values := make([]float64, tr.Len())
	for i, s := range tr.States {
		values[i] = s[component]
	}
	plot := asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("x%d over %d seed samples", component, tr.Len())),
	)
	return graphStyle.Render(plot), nil
}

// PlotInput renders one input component of a seed trajectory.
func PlotInput(tr *hybrid.Trajectory, component, width, height int) (string, error) {
	if tr.Len() == 0 {
		return "", fmt.Errorf("empty trajectory")
	}
	if component < 0 || component >= len(tr.Inputs[0]) {
		return "", fmt.Errorf("input component %d out of range (dim %d)", component, len(tr.Inputs[0]))
	}

	values := make([]float64, tr.Len())
	for i, u := range tr.Inputs {
		values[i] = u[component]
	}
	plot := asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("u%d over %d seed samples", component, tr.Len())),
	)
	return graphStyle.Render(plot), nil
}

// ModeStrip renders the mode schedule over [start, final] as a colored
// band, one cell per time slot.
func ModeStrip(s *modes.Schedule, start, final float64, width int) string {
	if width < 1 || final <= start {
		return ""
	}
	var b strings.Builder
	step := (final - start) / float64(width)
	for i := 0; i < width; i++ {
		id := s.ActiveMode(start + (float64(i)+0.5)*step)
		b.WriteString(ModeStyle(id).Render("█"))
	}
	return b.String()
}
