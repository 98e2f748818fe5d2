package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"doudizhu/internal/card"
	"doudizhu/internal/config"
	"doudizhu/internal/state"
	"doudizhu/recommend"
)

// WatchCmd steps an operator through a recorded action log one play at a
// time: a forward step applies the next logged action, and a backward step
// calls state.GameState.Undo, which re-derives the board by replaying the
// log from the deal (package recommend.Greedy supplies the "what would a
// naive bot do here" line shown alongside the actual play).
type WatchCmd struct {
	File string `arg:"" help:"Path to a replay log JSON file"`
}

func (c *WatchCmd) Run(cfg *config.Config) error {
	logger := log.Default().WithPrefix("watch")

	path := resolveReplayPath(cfg, c.File)
	rlog, err := loadReplayLog(path)
	if err != nil {
		return err
	}
	g, err := rlog.newGameState()
	if err != nil {
		return fmt.Errorf("invalid deal in %s: %w", path, err)
	}

	model := &watchModel{log: rlog, game: g, history: viewport.New(80, 12)}
	model.history.SetContent(model.renderLog())
	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		logger.Error("tui exited with error", "error", err)
		return err
	}
	return nil
}

type watchModel struct {
	log     *replayLog
	game    *state.GameState
	index   int
	err     error
	history viewport.Model
}

func (m *watchModel) Init() tea.Cmd { return nil }

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.Width = msg.Width
		m.history.Height = msg.Height - 8
		m.history.SetContent(m.renderLog())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "right", "n", " ":
			m.stepForward()
			m.history.SetContent(m.renderLog())
			m.history.GotoBottom()
			return m, nil
		case "left", "p":
			m.stepBackward()
			m.history.SetContent(m.renderLog())
			m.history.GotoBottom()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

func (m *watchModel) stepForward() {
	if m.index >= len(m.log.Actions) {
		return
	}
	a := m.log.Actions[m.index]
	action, err := card.ParseActionText(a.Text)
	if err != nil {
		m.err = err
		return
	}
	if err := m.game.Apply(action, false); err != nil {
		m.err = err
		return
	}
	m.index++
	m.err = nil
}

func (m *watchModel) stepBackward() {
	if m.index == 0 {
		return
	}
	if err := m.game.Undo(); err != nil {
		m.err = err
		return
	}
	m.index--
	m.err = nil
}

// greedySuggestion reports what recommend.Greedy would play next, when
// it's the tracked role's turn to act.
func (m *watchModel) greedySuggestion() (string, bool) {
	infoset, err := m.game.BuildInfoset()
	if err != nil {
		return "", false
	}
	action, err := (recommend.Greedy{}).Recommend(infoset)
	if err != nil {
		return "", false
	}
	return card.ToText(action), true
}

// renderLog formats the action log for the scrolling viewport, with the
// most recently applied step highlighted.
func (m *watchModel) renderLog() string {
	snap := m.game.Snapshot()
	var b strings.Builder
	for i, step := range snap.ActionLog {
		line := fmt.Sprintf("%3d. %-14s %s", step.Step, step.Actor, step.Text)
		if i == len(snap.ActionLog)-1 {
			b.WriteString(moveStyle.Render(line) + "\n")
		} else {
			b.WriteString(pastStepStyle.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m *watchModel) View() string {
	snap := m.game.Snapshot()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(" ddzcli watch — step %d/%d ", m.index, len(m.log.Actions))))
	b.WriteString("\n\n")
	b.WriteString(handStyle.Render("hand: ") + snap.HandText + "\n")
	b.WriteString(fmt.Sprintf("acting role: %s   bombs: %d\n\n", snap.ActingRole, snap.BombCount))

	b.WriteString(m.history.View())
	b.WriteString("\n")

	if g, ok := m.greedySuggestion(); ok {
		b.WriteString("\n" + helpStyle.Render("greedy would play: "+g) + "\n")
	}

	if snap.GameOver {
		b.WriteString(fmt.Sprintf("\ngame over — winner: %s\n", snap.Winner))
	}
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("error: "+m.err.Error()) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("→/n next · ←/p undo · q quit"))
	return b.String()
}
