// Package display renders Kalah boards for the terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/kalah-cli/kalah"
)

var (
	storeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	pitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	emptyPitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	rowLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4"))
)

// Render draws the board in the fixed two-column layout: Side B's
// store on top, pit rows i / 12-i between, Side A's store at the
// bottom. Row labels on the right match the 0-5 rows a human enters.
func Render(b kalah.Board) string {
	var sb strings.Builder

	sb.WriteString("  " + storeCell(b, kalah.StoreB) + "\n")
	for i := 0; i < kalah.PitsPerSide; i++ {
		sb.WriteString(pitCell(b, i))
		sb.WriteString("  ")
		sb.WriteString(pitCell(b, kalah.FacingIndex(i)))
		sb.WriteString(rowLabelStyle.Render(fmt.Sprintf("  %d", i)))
		sb.WriteString("\n")
	}
	sb.WriteString("  " + storeCell(b, kalah.StoreA) + "\n")

	return sb.String()
}

func storeCell(b kalah.Board, index int) string {
	return storeStyle.Render(fmt.Sprintf("%02d", b[index]))
}

func pitCell(b kalah.Board, index int) string {
	cell := fmt.Sprintf("%02d", b[index])
	if b[index] == 0 {
		return emptyPitStyle.Render(cell)
	}
	return pitStyle.Render(cell)
}
