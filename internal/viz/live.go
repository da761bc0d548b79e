package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rodopios/internal/alphabet"
	"github.com/san-kum/rodopios/internal/animator"
	"github.com/san-kum/rodopios/internal/metrics"
	"github.com/san-kum/rodopios/internal/sink"
	"github.com/san-kum/rodopios/internal/trace"
)

const frameRate = time.Second / 30

type TickMsg time.Time

// Options configures a live Model.
type Options struct {
	Name     string
	Interval time.Duration
	Theme    string
	Cols     int
	Rows     int
	// Scheduler overrides the animator clock, for tests.
	Scheduler animator.Scheduler
	// Sink receives every command in addition to the board.
	Sink animator.Sink
	// Reload replaces the trace and restarts from the first step whenever
	// a new version arrives.
	Reload <-chan trace.Trace
}

// Model animates a trace on the wheel. The animator writes into a Board
// from its own timer goroutine; the model only reads the board on each
// frame so the animator never waits on the UI loop.
type Model struct {
	name    string
	trace   trace.Trace
	alpha   *alphabet.Alphabet
	board   *sink.Board
	anim    *animator.Animator
	tracker *Tracker
	counter *metrics.Counter
	view    *WheelView
	theme   Theme
	reload  <-chan trace.Trace

	// offset is the number of steps skipped by a resumed session.
	offset   int
	paused   bool
	showHelp bool
	snap     sink.Snapshot
}

// NewModel wires a board, animator and observers for tr. Nothing runs
// until Init.
func NewModel(tr trace.Trace, a *alphabet.Alphabet, opts Options) *Model {
	board := sink.NewBoard()
	tracker := NewTracker()
	counter := metrics.NewCounter(a.Len())

	var target animator.Sink = board
	if opts.Sink != nil {
		target = sink.Tee{board, opts.Sink}
	}
	animOpts := []animator.Option{
		animator.WithObserver(animator.Observers{tracker, counter}),
	}
	if opts.Interval > 0 {
		animOpts = append(animOpts, animator.WithInterval(opts.Interval))
	}
	if opts.Scheduler != nil {
		animOpts = append(animOpts, animator.WithScheduler(opts.Scheduler))
	}

	return &Model{
		name:    opts.Name,
		trace:   tr,
		alpha:   a,
		board:   board,
		anim:    animator.New(target, animOpts...),
		tracker: tracker,
		counter: counter,
		view:    NewWheelView(a, opts.Cols, opts.Rows),
		theme:   GetTheme(opts.Theme),
		reload:  opts.Reload,
	}
}

// Animator exposes the underlying animator.
func (m *Model) Animator() *animator.Animator { return m.anim }

// Counts returns the session counters accumulated so far.
func (m *Model) Counts() metrics.Counts { return m.counter.Counts() }

func (m *Model) Init() tea.Cmd {
	m.restart()
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles keys and polls the board once per frame.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.anim.Release()
			return m, tea.Quit
		case "r":
			m.restart()
		case " ":
			m.togglePause()
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.pollReload()
		m.snap = m.board.Snapshot()
		return m, tick()
	}
	return m, nil
}

// restart begins the trace from its first step.
func (m *Model) restart() {
	m.offset, m.paused = 0, false
	m.tracker.Clear()
	m.anim.Start(m.trace, m.alpha)
	m.snap = m.board.Snapshot()
}

func (m *Model) pollReload() {
	if m.reload == nil {
		return
	}
	select {
	case tr, ok := <-m.reload:
		if !ok {
			m.reload = nil
			return
		}
		m.trace = tr
		m.restart()
	default:
	}
}

// togglePause cancels a running session, or resumes a cancelled one from
// the step after the last one shown.
func (m *Model) togglePause() {
	switch m.anim.Phase() {
	case animator.Running:
		m.anim.Cancel()
		m.paused = true
	case animator.Cancelled:
		if s := m.anim.Current(); s != nil {
			m.offset += s.Cursor()
		}
		m.paused = false
		if m.offset >= len(m.trace) {
			m.restart()
			return
		}
		m.anim.Start(m.trace[m.offset:], m.alpha)
	}
	m.snap = m.board.Snapshot()
}

func (m *Model) status() (string, lipgloss.Style) {
	st := newStyles(m.theme)
	switch m.anim.Phase() {
	case animator.Running:
		return "RUNNING", st.accent
	case animator.Finished:
		return "FINISHED", st.value
	case animator.Cancelled:
		return "PAUSED", st.warn
	}
	return "IDLE", st.muted
}

// View renders the wheel beside the step panel.
func (m *Model) View() string {
	st := newStyles(m.theme)
	wheel := lipgloss.NewStyle().Padding(1, 2).Render(m.view.Render(m.snap, m.theme))

	var s strings.Builder
	title := "RODOPIOS"
	if m.name != "" {
		title += " · " + m.name
	}
	s.WriteString(st.header.Render(title) + "\n")
	status, statusStyle := m.status()
	s.WriteString(statusStyle.Render(status) + "\n\n")

	p, ok := m.tracker.Latest()
	done := m.offset
	if ok {
		done += p.Cursor
	}
	total := len(m.trace)
	fraction := 1.0
	if total > 0 {
		fraction = float64(done) / float64(total)
	}
	s.WriteString(ProgressBar(fraction, 30, m.theme) + st.muted.Render(fmt.Sprintf(" %d/%d", done, total)) + "\n\n")

	row := func(k, v string) {
		s.WriteString(st.label.Render(k) + st.value.Render(v) + "\n")
	}
	if ok && p.Cursor > 0 {
		step := p.Step
		row("Step", fmt.Sprintf("%d", step.Ordinal))
		sym := step.Symbol
		if !p.Resolved {
			sym = animator.UnresolvedLabel
		}
		row("Symbol", sym)
		row("Slot", p.Slot.String())
		row("Bit", orDash(step.Meta.Bit))
		row("Operation", orDash(step.Meta.Operation))
		if pt := step.Meta.Point; pt != nil {
			row("X", Ellipsize(pt.X, 28))
			row("Y", Ellipsize(pt.Y, 28))
		} else {
			row("Point", trace.Infinity)
		}
		row("Angle", intOrDash(step.Meta.Angle))
		row("Rodopios", intOrDash(step.Meta.Rodopios))
	} else {
		s.WriteString(st.muted.Render("waiting for first step") + "\n")
	}

	s.WriteString("\n" + st.muted.Render("Rotation") + "\n")
	s.WriteString(st.value.Render(Sparkline(m.tracker.Rodopios(), float64(m.alpha.Len()), 30)) + "\n")

	c := m.counter.Counts()
	s.WriteString("\n")
	row("Resolved", fmt.Sprintf("%d", c.Resolved))
	row("Unresolved", fmt.Sprintf("%d", c.Unresolved))
	row("Theme", m.theme.Name)

	s.WriteString("\n" + Separator(30, m.theme) + "\n")
	s.WriteString(st.help.Render("SP:Pause R:Restart Q:Quit\nT:Theme  ?:Help"))

	body := lipgloss.JoinHorizontal(lipgloss.Top, wheel, st.panel.Render(s.String()))
	if m.showHelp {
		return st.overlay.Render(helpText) + "\n" + body
	}
	return body
}

const helpText = `KEYBOARD SHORTCUTS

Space   pause, or resume from the next step
R       restart from the first step
T       cycle colour themes
?       toggle this help
Q       quit`

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// Run starts the program on the terminal and blocks until the user quits.
func Run(tr trace.Trace, a *alphabet.Alphabet, opts Options) error {
	m := NewModel(tr, a, opts)
	m.theme = TerminalTheme(opts.Theme)
	defer m.anim.Release()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
