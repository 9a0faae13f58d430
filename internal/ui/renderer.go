package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-blocks/internal/game"
)

// Color palette
var (
	pieceColors = map[game.Color]lipgloss.Color{
		game.SkyBlue: lipgloss.Color("#66bfff"),
		game.Purple:  lipgloss.Color("#c87aff"),
		game.Yellow:  lipgloss.Color("#fdf900"),
		game.Blue:    lipgloss.Color("#0079f1"),
		game.Orange:  lipgloss.Color("#ffa100"),
		game.Green:   lipgloss.Color("#00e430"),
		game.Red:     lipgloss.Color("#e62937"),
	}

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#000000")).
			Foreground(lipgloss.Color("#333333"))

	boardBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("#ffffff"))

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#66bfff")).
			Bold(true)

	gameOverStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true).
			Blink(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

// RenderBoard converts a snapshot into a styled terminal string.
func RenderBoard(snap *game.Snapshot) string {
	if snap == nil || len(snap.Cells) == 0 {
		return "Waiting for game state..."
	}

	rows := make([]string, 0, snap.Rows)
	for _, row := range snap.Cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(renderCell(c))
		}
		rows = append(rows, b.String())
	}

	return boardBorderStyle.Render(strings.Join(rows, "\n"))
}

// renderCell renders a single board cell, 2 characters wide for a square-ish look.
// Falling and locked cells are drawn the same way.
func renderCell(c game.Cell) string {
	if c.Occupancy == game.Empty {
		return emptyStyle.Render("· ")
	}
	color, ok := pieceColors[c.Color]
	if !ok {
		color = lipgloss.Color("#ffffff")
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Background(color).
		Render("██")
}

// RenderHUD renders the side panel: status, line count and controls.
func RenderHUD(snap *game.Snapshot) string {
	if snap == nil {
		return ""
	}

	var parts []string

	parts = append(parts, titleStyle.Render("BLOCKS"))
	parts = append(parts, "")

	switch snap.Status {
	case game.StatusRunning:
		parts = append(parts, fmt.Sprintf("Falling: %s", snap.Active))
	case game.StatusOver:
		parts = append(parts, gameOverStyle.Render("GAME OVER"))
	}
	parts = append(parts, fmt.Sprintf("Lines:   %d", snap.Lines))
	parts = append(parts, "")

	parts = append(parts, helpStyle.Render("←/→: Move | ↓: Down"))
	parts = append(parts, helpStyle.Render("↑: Rotate | Space: Drop"))
	parts = append(parts, helpStyle.Render("Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
