package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/expert/internal/persona"
)

const title = "Expert AI Chat"

var usageSteps = []string{
	"1. Choose an expert from the list",
	"2. Type your question in the box below",
	"3. Press Ctrl+S and the expert answers",
}

func (a *App) renderForm() string {
	var b strings.Builder

	// Header
	header := lipgloss.JoinVertical(lipgloss.Center,
		styleTitle.Render(title),
		styleSubtitle.Render("Ask a question and get an answer from the expert of your choice"),
	)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n\n")

	steps := styleSubtitle.Render(strings.Join(usageSteps, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, steps))
	b.WriteString("\n\n")

	b.WriteString(a.placeBox(a.renderPersonaList()))
	b.WriteString("\n")

	b.WriteString(a.placeBox(a.renderQuestion()))
	b.WriteString("\n")

	if a.state.warning != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleWarning.Render(a.state.warning)))
		b.WriteString("\n")
	}

	switch {
	case a.state.generating:
		label := "Generating an answer... please wait"
		if a.state.cancelling {
			label = "Cancelling..."
		}
		line := a.state.spinner.View() + " " + styleSubtitle.Render(label)
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, line))
		b.WriteString("\n")
	case a.state.result != nil:
		b.WriteString("\n")
		b.WriteString(a.renderAnswer())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.statusLine()))

	return a.centerVertically(b.String())
}

func (a *App) renderPersonaList() string {
	label := "Choose the expert you want an answer from:"
	labelStyle := styleSubtitle
	if a.state.focus == focusPersona {
		labelStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	}

	lines := []string{labelStyle.Render(label)}
	for i, p := range persona.All {
		cursor := "  "
		mark := "( )"
		style := lipgloss.NewStyle().Foreground(colorMuted)
		if i == a.state.selected {
			mark = "(*)"
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
			if a.state.focus == focusPersona {
				cursor = "> "
			}
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%s %-24s %s", cursor, mark, p.Name, p.Description)))
	}

	border := colorMuted
	if a.state.focus == focusPersona {
		border = colorSecondary
	}
	return styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}

func (a *App) renderQuestion() string {
	labelStyle := styleSubtitle
	border := colorMuted
	if a.state.focus == focusQuestion {
		labelStyle = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
		border = colorSecondary
	}

	content := labelStyle.Render("Your question:") + "\n" + a.state.question.View()
	return styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(border).
		Render(content)
}

func (a *App) statusLine() string {
	if a.state.generating {
		return styleStatusBar.Render("[Esc] Cancel  [Ctrl+C] Quit")
	}
	if a.state.focus == focusPersona {
		return styleStatusBar.Render("[j/k] Expert  [Tab] Question  [Ctrl+S] Ask  [?] Help  [Ctrl+O] Settings  [Esc] Quit")
	}
	return styleStatusBar.Render("[Tab] Experts  [Ctrl+S] Ask  [Ctrl+O] Settings  [Esc] Quit")
}

func (a *App) boxWidth() int {
	if a.width <= 0 {
		return 70
	}
	return max(20, min(80, a.width-4))
}

func (a *App) placeBox(box string) string {
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
