package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/expert/internal/answer"
	"github.com/sant0-9/expert/internal/config"
)

func (a *App) renderAnswer() string {
	r := a.state.result
	var b strings.Builder

	var heading string
	var border lipgloss.Color
	var body string

	switch r.Kind {
	case answer.KindSuccess:
		heading = fmt.Sprintf("Answer from the %s", a.state.askedExpert)
		border = colorPrimary
		body = r.Text
	case answer.KindConfigError:
		heading = "Configuration needed"
		border = colorError
		body = r.String()
	default:
		heading = "Something went wrong"
		border = colorError
		body = r.String()
	}

	headingStyle := lipgloss.NewStyle().Foreground(border).Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, headingStyle.Render(heading)))
	b.WriteString("\n")

	asked := styleSubtitle.Render(fmt.Sprintf("> %s  (%.1fs)",
		truncate(strings.Join(strings.Fields(a.state.asked), " "), 60),
		a.state.elapsed.Seconds()))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n")

	box := styleBox.Copy().
		Width(a.boxWidth()).
		BorderForeground(border).
		Render(body)
	b.WriteString(a.placeBox(box))

	if suggestions := suggestionsFor(*r, a.secretsLocation()); len(suggestions) > 0 {
		b.WriteString("\n")
		suggBox := styleBox.Copy().
			Width(a.boxWidth()).
			BorderForeground(colorMuted).
			Render("Suggestions:\n" + strings.Join(suggestions, "\n"))
		b.WriteString(a.placeBox(suggBox))
	}

	return b.String()
}

func (a *App) secretsLocation() string {
	if path, err := config.SecretsPath(); err == nil {
		return path
	}
	return "secrets.yaml"
}

// suggestionsFor picks remediation hints from the result kind and error text
func suggestionsFor(r answer.Result, secretsPath string) []string {
	switch r.Kind {
	case answer.KindSuccess:
		return nil
	case answer.KindConfigError:
		return []string{
			fmt.Sprintf("Add %s: <your key> to %s", config.APIKeyName, secretsPath),
			fmt.Sprintf("Or export %s before starting, or put it in .env", config.APIKeyName),
		}
	}

	errLower := strings.ToLower(r.Text)
	switch {
	case strings.Contains(errLower, "api key") || strings.Contains(errLower, "401") || strings.Contains(errLower, "unauthorized"):
		return []string{
			"Check that your API key is valid",
			fmt.Sprintf("Update %s in %s or the environment", config.APIKeyName, secretsPath),
		}
	case strings.Contains(errLower, "quota") || strings.Contains(errLower, "billing") || strings.Contains(errLower, "402"):
		return []string{
			"Check that billing information is registered for your account",
			"Or check your usage limits",
		}
	case strings.Contains(errLower, "rate limit") || strings.Contains(errLower, "429"):
		return []string{
			"You've hit the API rate limit",
			"Wait a moment and try again",
		}
	case strings.Contains(errLower, "deadline") || strings.Contains(errLower, "timeout"):
		return []string{
			"The request took too long",
			"Raise timeout_seconds in the config file or try again",
		}
	case strings.Contains(errLower, "canceled"):
		return []string{"The request was cancelled"}
	case strings.Contains(errLower, "connect") || strings.Contains(errLower, "no such host"):
		return []string{
			"Check your internet connection",
			"Or check base_url in the config file",
		}
	default:
		return []string{answer.RemediationHint}
	}
}
