package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-blocks/internal/game"
)

// snapshotMsg carries a new board snapshot from the engine.
type snapshotMsg game.Snapshot

// errMsg carries an error.
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// actionQueue accepts player input. *game.Engine implements it.
type actionQueue interface {
	EnqueueAction(game.Action)
}

// Model is the Bubbletea model for the game.
type Model struct {
	actions  actionQueue
	snaps    <-chan game.Snapshot
	snap     *game.Snapshot
	err      error
	quitting bool
}

// NewModel creates a TUI model that renders every frame the engine publishes.
// It registers the engine's OnTick callback, so call it before engine.Run.
func NewModel(engine *game.Engine) Model {
	snaps := make(chan game.Snapshot, 1)
	engine.OnTick(func(s game.Snapshot) {
		publish(snaps, s)
	})
	return newModel(engine, snaps)
}

func newModel(actions actionQueue, snaps <-chan game.Snapshot) Model {
	return Model{
		actions: actions,
		snaps:   snaps,
	}
}

// publish hands s to the UI without blocking the engine.
func publish(ch chan game.Snapshot, s game.Snapshot) {
	select {
	case ch <- s:
	default:
		// Drop old snapshot if the UI is slow — latest frame matters most
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// Init starts listening for snapshots from the engine.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.snaps)
}

// Update handles incoming messages (key presses, snapshots).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case snapshotMsg:
		snap := game.Snapshot(msg)
		m.snap = &snap
		return m, waitForSnapshot(m.snaps)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	board := RenderBoard(m.snap)
	hud := RenderHUD(m.snap)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "left", "a":
		m.actions.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirLeft})
	case "right", "d":
		m.actions.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirRight})
	case "down", "s":
		m.actions.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirDown})
	case "up", "w":
		m.actions.EnqueueAction(game.Action{Type: game.ActionRotate})
	case " ":
		m.actions.EnqueueAction(game.Action{Type: game.ActionHardDrop})
	}

	return m, nil
}

// waitForSnapshot returns a Cmd that waits for the next frame from the engine.
func waitForSnapshot(snaps <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-snaps
		if !ok {
			return errMsg{err: fmt.Errorf("engine stopped")}
		}
		return snapshotMsg(snap)
	}
}
