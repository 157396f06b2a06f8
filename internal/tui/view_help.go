package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleTitle.Render("Help")))
	b.WriteString("\n\n")

	var shortcuts []string
	for _, k := range []struct {
		keys string
		desc string
	}{
		{"Tab", keys.Tab.Help().Desc},
		{"Up/Down, j/k", keys.Up.Help().Desc + " / " + keys.Down.Help().Desc},
		{"Ctrl+S", keys.Submit.Help().Desc},
		{"Ctrl+O", keys.Settings.Help().Desc},
		{"Esc", keys.Back.Help().Desc},
		{"Ctrl+C", keys.Quit.Help().Desc},
	} {
		shortcuts = append(shortcuts, fmt.Sprintf("  %-14s %s", k.keys, k.desc))
	}

	shortcutsBox := styleBox.Copy().
		Width(60).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	notes := styleSubtitle.Render("Each question is answered on its own; earlier answers are not remembered.")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, notes))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render("[Esc] Back")))

	return a.centerVertically(b.String())
}
