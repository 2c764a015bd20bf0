package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arnav-shukla/switchseed/internal/hybrid"
	"github.com/arnav-shukla/switchseed/internal/modes"
	"github.com/arnav-shukla/switchseed/internal/partition"
	"github.com/arnav-shukla/switchseed/internal/seed"
)

// Inspector is an interactive view over a schedule, a partitioning and
// a provider: scrub the time cursor and see which mode and partition
// are active there and what the provider would seed from that instant.
type Inspector struct {
	schedule *modes.Schedule
	parts    *partition.Times
	provider seed.Provider
	x0       hybrid.State

	t     float64
	step  float64
	width int
}

func NewInspector(s *modes.Schedule, parts *partition.Times, provider seed.Provider, x0 hybrid.State) Inspector {
	start, final := parts.Horizon()
	return Inspector{
		schedule: s,
		parts:    parts,
		provider: provider,
		x0:       x0,
		t:        start,
		step:     (final - start) / 50.0,
		width:    72,
	}
}

func (m Inspector) Init() tea.Cmd { return nil }

func (m Inspector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 16 {
			m.width = msg.Width - 8
		}
	case tea.KeyMsg:
		start, final := m.parts.Horizon()
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.t -= m.step
			if m.t < start {
				m.t = start
			}
		case "right", "l":
			m.t += m.step
			if m.t > final {
				m.t = final
			}
		case "home":
			m.t = start
		case "end":
			m.t = final
		case "+", "=":
			m.step *= 2
		case "-":
			m.step /= 2
		}
	}
	return m, nil
}

func (m Inspector) View() string {
	start, final := m.parts.Horizon()
	mode := m.schedule.ActiveMode(m.t)
	idx, err := m.parts.ActiveIndex(m.t)
	if err != nil {
		idx = 0
	}
	p0, p1 := m.parts.Bounds(idx)

	var b strings.Builder
	b.WriteString(headerStyle.Render("seed trajectory inspector"))
	b.WriteString("\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("time", fmt.Sprintf("%.4f  (horizon [%g, %g])", m.t, start, final))
	b.WriteString(labelStyle.Render("mode"))
	b.WriteString(ModeStyle(mode).Render(fmt.Sprintf("%d", mode)))
	b.WriteString("\n")
	row("partition", fmt.Sprintf("%d  [%g, %g]", idx, p0, p1))

	// Seed from the cursor to the end of the active partition, on a
	// private clone so the inspected provider is never bound.
	tr := &hybrid.Trajectory{}
	clone := m.provider.Clone()
	clone.Bind(m.schedule, idx, "inspector")
	if genErr := clone.OperatingTrajectories(m.x0, m.t, p1, tr, false); genErr != nil {
		row("seed", fmt.Sprintf("error: %v", genErr))
	} else if tr.Len() > 0 {
		row("seed state", fmt.Sprintf("%v", []float64(tr.States[0])))
		row("seed input", fmt.Sprintf("%v", []float64(tr.Inputs[0])))
		row("samples", fmt.Sprintf("%d to partition end", tr.Len()))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("modes"))
	b.WriteString("\n")
	b.WriteString(ModeStrip(m.schedule, start, final, m.width))
	b.WriteString("\n")
	b.WriteString(cursorLine(m.t, start, final, m.width))
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("←/→ scrub  +/- step size  home/end jump  q quit"))
	b.WriteString("\n")
	return b.String()
}

func cursorLine(t, start, final float64, width int) string {
	if final <= start || width < 1 {
		return ""
	}
	pos := int((t - start) / (final - start) * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}
	return strings.Repeat(" ", pos) + "▲"
}

// RunInspector starts the interactive inspector.
func RunInspector(s *modes.Schedule, parts *partition.Times, provider seed.Provider, x0 hybrid.State) error {
	_, err := tea.NewProgram(NewInspector(s, parts, provider, x0)).Run()
	return err
}
