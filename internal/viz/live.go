package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/attiview/internal/attitude"
	"github.com/san-kum/attiview/internal/indicator"
)

const frameRate = time.Second / 30

// HistoryCapacity is the number of accepted ticks the live chart keeps.
const HistoryCapacity = 300

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the live terminal view. The indicator is polled at the frame
// rate and throttles itself to its own interval.
type Model struct {
	ind      *indicator.Indicator
	sink     *CanvasSink
	history  *History
	now      func() uint64
	title    string
	running  bool
	showHelp bool
	err      error
}

// NewModel wraps an indicator whose sink is (or fans out to) sink. The
// history must be registered as an observer of the same indicator.
func NewModel(ind *indicator.Indicator, sink *CanvasSink, history *History, title string) Model {
	return Model{
		ind:     ind,
		sink:    sink,
		history: history,
		now:     attitude.NewClock().Millis,
		title:   title,
		running: true,
	}
}

// WithClock replaces the millisecond clock fed to the indicator.
func (m Model) WithClock(now func() uint64) Model {
	m.now = now
	return m
}

func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.history.Reset()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			if _, err := m.ind.Tick(m.now()); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	st := themeStyles(CurrentTheme)

	canvasView := st.card.Render(st.line.Render(m.sink.Canvas().String()))

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.title)) + "\n")
	switch {
	case m.err != nil:
		s.WriteString(st.warning.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.running:
		s.WriteString("LIVE\n\n")
	default:
		s.WriteString("PAUSED\n\n")
	}

	for _, line := range m.sink.Readout().Lines() {
		label, value, _ := strings.Cut(line, ": ")
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	s.WriteString(st.label.Render("Ticks") + st.value.Render(fmt.Sprintf("%d", m.ind.Ticks())) + "\n")
	s.WriteString(st.label.Render("|a|") + st.value.Render(SparklineChart(m.history.Accel(), 30)) + "\n\n")

	if chart := PlotAttitude(m.history.Roll(), m.history.Pitch(), 30, 6, "roll / pitch (deg)"); chart != "" {
		s.WriteString(chart + "\n")
	}
	s.WriteString("\n" + Separator(30) + "\n")
	s.WriteString(st.muted.Render("SP:Pause R:Reset T:Theme ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════╗
║        KEYBOARD SHORTCUTS        ║
╠══════════════════════════════════╣
║  Space  - Pause/Resume sampling  ║
║  R      - Clear history          ║
║  T      - Cycle themes           ║
║  ?      - Toggle this help       ║
║  Q      - Quit                   ║
╚══════════════════════════════════╝`
