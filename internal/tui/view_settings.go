package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/expert/internal/config"
)

func (a *App) renderSettings() string {
	var b strings.Builder

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleTitle.Render("Settings")))
	b.WriteString("\n\n")

	cfg := a.state.config
	providerName := cfg.Provider
	if provider := config.GetProvider(cfg.Provider); provider != nil {
		providerName = provider.Name
	}

	keySource := "none"
	if a.state.credential.Found() {
		keySource = a.state.credential.Source
	}

	configLines := []string{
		fmt.Sprintf("  Provider:    %s", providerName),
		fmt.Sprintf("  Model:       %s", cfg.Model),
		fmt.Sprintf("  API Key:     %s (%s)", a.state.credential.Masked(), keySource),
		fmt.Sprintf("  Temperature: %.1f", cfg.Temperature),
		fmt.Sprintf("  Timeout:     %s", cfg.Timeout()),
	}
	if cfg.BaseURL != "" {
		configLines = append(configLines, fmt.Sprintf("  Base URL:    %s", cfg.BaseURL))
	}

	configBox := styleBox.Copy().
		Width(a.boxWidth()).
		Render(strings.Join(configLines, "\n"))
	b.WriteString(a.placeBox(configBox))
	b.WriteString("\n\n")

	var fileLines []string
	if path, err := config.ConfigPath(); err == nil {
		fileLines = append(fileLines, "  Config:  "+path)
	}
	fileLines = append(fileLines, "  Secrets: "+a.secretsLocation())
	fileLines = append(fileLines, "  Log:     "+cfg.LogPath())

	filesBox := styleBox.Copy().
		Width(a.boxWidth()).
		Render(strings.Join(fileLines, "\n"))
	b.WriteString(a.placeBox(filesBox))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render("Edit the files above and restart to apply.  [Esc] Back")))

	return a.centerVertically(b.String())
}
