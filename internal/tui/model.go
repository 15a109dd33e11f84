package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bloom/internal/engine"
	"bloom/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	self    engine.FriendProfile
	parties []engine.Party
	today   string

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	self    engine.FriendProfile
	parties []engine.Party
	today   string
	err     error
}

type habitMsg struct {
	out *engine.HabitOutcome
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st := m.svc.State()
		if st == nil {
			return loadedMsg{err: fmt.Errorf("session not started")}
		}
		parties := append([]engine.Party(nil), st.Parties...)
		return loadedMsg{self: st.Snapshot(), parties: parties, today: m.svc.Today()}
	}
}

func (m boardModel) habitCmd(h engine.Habit) tea.Cmd {
	return func() tea.Msg {
		var (
			out *engine.HabitOutcome
			err error
		)
		if h.Kind == engine.HabitNumeric {
			out, err = m.svc.TrackHabit(m.ctx, h.ID, 1)
		} else {
			out, err = m.svc.ToggleHabit(m.ctx, h.ID)
		}
		return habitMsg{out: out, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.self = msg.self
		m.parties = msg.parties
		m.today = msg.today
		if m.selected >= len(m.self.Habits) {
			m.selected = len(m.self.Habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case habitMsg:
		if msg.err != nil {
			m.lastLog = "Update failed: " + msg.err.Error()
			return m, m.loadCmd()
		}
		switch {
		case msg.out.Result.WasJustCompleted:
			m.lastLog = fmt.Sprintf("%s done: +%d XP", msg.out.Habit.Title, engine.CompletionXP)
			if msg.out.AllComplete {
				m.lastLog += " " + ui.IconBloom + " all habits complete!"
			}
		case msg.out.Result.WasJustUncompleted:
			m.lastLog = fmt.Sprintf("%s undone: -%d XP", msg.out.Habit.Title, engine.CompletionXP)
		default:
			m.lastLog = fmt.Sprintf("%s: %.0f/%.0f %s", msg.out.Habit.Title,
				msg.out.Habit.Progress[m.today], msg.out.Habit.Target, msg.out.Habit.Unit)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.self.Habits)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ":
			if m.selected < 0 || m.selected >= len(m.self.Habits) {
				return m, nil
			}
			h := m.self.Habits[m.selected]
			if h.Kind == engine.HabitNumeric {
				m.lastLog = fmt.Sprintf("Adding 1 %s to %s…", h.Unit, h.Title)
			} else {
				m.lastLog = fmt.Sprintf("Toggling %s…", h.Title)
			}
			return m, m.habitCmd(h)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	if m.loading && m.self.Name == "" {
		return "Bloom — loading…"
	}
	p := m.self.Plant
	bar := ui.ProgressBar(engine.StageProgress(p), 30)
	return fmt.Sprintf("Bloom | %s (%s) | %s %s | %s | XP %d %s",
		m.self.Name, m.self.FriendCode,
		ui.StageIcon(p.Stage), p.Stage, p.Health, p.Experience, bar)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"This week"}
	lines = append(lines, m.weekLines()...)
	lines = append(lines, "")
	lines = append(lines, "Parties")
	if len(m.parties) == 0 {
		lines = append(lines, "(none)")
	} else {
		for i := range m.parties {
			p := &m.parties[i]
			lines = append(lines, fmt.Sprintf("- %s (%d)", p.Name, len(p.Members)))
		}
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- c/space: check in")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	var out []string
	out = append(out, "Garden")
	if len(m.self.Habits) == 0 {
		out = append(out, "(no habits yet; add one with `bloom habit add`)")
		return strings.Join(out, "\n")
	}
	for i := range m.self.Habits {
		h := &m.self.Habits[i]
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		mark := "[ ]"
		if h.CompletedOn(m.today) {
			mark = "[x]"
		}
		detail := ""
		if h.Kind == engine.HabitNumeric {
			detail = fmt.Sprintf(" %.0f/%.0f %s", h.Progress[m.today], h.Target, h.Unit)
			if h.OverLimit(m.today) {
				detail += " (over limit)"
			}
		}
		streak := ""
		if h.Streak > 0 {
			streak = fmt.Sprintf("  %s%d", ui.IconStreak, h.Streak)
		}
		out = append(out, fmt.Sprintf("%s%s %s%s%s", cursor, mark, h.Title, detail, streak))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

// weekLines renders one line per day for the trailing week, newest
// last, with the fraction of habits completed that day.
func (m boardModel) weekLines() []string {
	if m.today == "" {
		return []string{"(loading)"}
	}
	day, err := engine.ParseDateKey(m.today)
	if err != nil {
		return []string{"(loading)"}
	}
	var out []string
	for off := 6; off >= 0; off-- {
		d := day.AddDate(0, 0, -off)
		key := engine.DateKey(d)
		done := 0
		for i := range m.self.Habits {
			if m.self.Habits[i].CompletedOn(key) {
				done++
			}
		}
		label := d.Format("Mon")
		if off == 0 {
			label = "Today"
		}
		out = append(out, fmt.Sprintf("- %-5s %d/%d", label, done, len(m.self.Habits)))
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
