// Package progress implements the carver's progress-reporting contract —
// "a progress reporter accepts a byte position and a message" — with two
// backends: a live bubbletea dashboard (one bar per worker, the teacher's
// own interactive stack repurposed from a device-recovery wizard into a
// carving dashboard) and a no-op used when -p/--progress is not set.
package progress

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Reporter is the narrow contract workers push updates through.
type Reporter interface {
	// Update reports the worker's current byte position within its chunk
	// and an advisory status message.
	Update(pos uint64, msg string)
	// Done marks the worker finished with a final status message.
	Done(msg string)
}

// noop satisfies Reporter without doing anything; used when the
// dashboard isn't requested.
type noop struct{}

func (noop) Update(uint64, string) {}
func (noop) Done(string)           {}

// NoOp returns a Reporter that discards every update.
func NoOp() Reporter { return noop{} }

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00AF00"))
)

type workerRow struct {
	bar     progress.Model
	label   string
	message string
	total   uint64
	pos     uint64
	done    bool
}

// Dashboard is a live, multi-bar bubbletea program: one row per worker,
// updated concurrently from worker goroutines via Program.Send.
type Dashboard struct {
	program *tea.Program
	workers int
}

type dashboardModel struct {
	rows []workerRow
}

type updateMsg struct {
	worker int
	pos    uint64
	msg    string
}

type doneMsg struct {
	worker int
	msg    string
}

// NewDashboard builds a Dashboard with one progress bar per worker, each
// sized against total (the byte length of that worker's chunk).
func NewDashboard(totals []uint64) *Dashboard {
	rows := make([]workerRow, len(totals))
	for i, total := range totals {
		rows[i] = workerRow{
			bar:     progress.New(progress.WithDefaultGradient()),
			label:   fmt.Sprintf("worker %d", i+1),
			message: "searching...",
			total:   total,
		}
	}

	model := dashboardModel{rows: rows}
	return &Dashboard{
		program: tea.NewProgram(model),
		workers: len(totals),
	}
}

// Run blocks rendering the dashboard until Stop is called or the program
// quits on its own (e.g. the user presses q). Call it from its own
// goroutine; the driver calls Stop once every worker has joined.
func (d *Dashboard) Run() error {
	_, err := d.program.Run()
	return err
}

// Stop asks the dashboard program to exit.
func (d *Dashboard) Stop() {
	d.program.Send(tea.Quit())
}

// Reporter returns the Reporter a given worker index should push updates
// through.
func (d *Dashboard) Reporter(worker int) Reporter {
	return &dashboardReporter{program: d.program, worker: worker}
}

type dashboardReporter struct {
	program *tea.Program
	worker  int
}

func (r *dashboardReporter) Update(pos uint64, msg string) {
	r.program.Send(updateMsg{worker: r.worker, pos: pos, msg: msg})
}

func (r *dashboardReporter) Done(msg string) {
	r.program.Send(doneMsg{worker: r.worker, msg: msg})
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		for i := range m.rows {
			m.rows[i].bar.Width = msg.Width - 20
		}
		return m, nil

	case updateMsg:
		if msg.worker < 0 || msg.worker >= len(m.rows) {
			return m, nil
		}
		row := &m.rows[msg.worker]
		row.pos = msg.pos
		row.message = msg.msg
		pct := 0.0
		if row.total > 0 {
			pct = float64(row.pos) / float64(row.total)
		}
		cmd := row.bar.SetPercent(pct)
		return m, cmd

	case doneMsg:
		if msg.worker < 0 || msg.worker >= len(m.rows) {
			return m, nil
		}
		row := &m.rows[msg.worker]
		row.done = true
		row.message = msg.msg
		return m, row.bar.SetPercent(1)

	case progress.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(m.rows))
		for i := range m.rows {
			updated, cmd := m.rows[i].bar.Update(msg)
			m.rows[i].bar = updated.(progress.Model)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m dashboardModel) View() string {
	out := ""
	for _, row := range m.rows {
		status := row.message
		if row.done {
			status = doneStyle.Render(status)
		}
		out += fmt.Sprintf("%s %s %s\n", labelStyle.Render(row.label), row.bar.View(), status)
	}
	return out
}
