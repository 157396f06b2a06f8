package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sant0-9/expert/internal/answer"
	"github.com/sant0-9/expert/internal/config"
)

type focus int

const (
	focusPersona focus = iota
	focusQuestion
)

type state struct {
	// Config
	config     *config.Config
	credential config.Credential

	// Form
	selected int // index into persona.All
	focus    focus
	question textarea.Model
	warning  string

	// In-flight request
	generating bool
	cancelling bool
	cancel     context.CancelFunc
	startedAt  time.Time
	spinner    spinner.Model

	// Last answer
	result      *answer.Result
	asked       string
	askedExpert string
	elapsed     time.Duration
}

func newState(cfg *config.Config, cred config.Credential) *state {
	question := textarea.New()
	question.Placeholder = "Type your question for the expert..."
	question.ShowLineNumbers = false
	question.CharLimit = 0
	question.SetWidth(60)
	question.SetHeight(6)
	question.Blur()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return &state{
		config:     cfg,
		credential: cred,
		question:   question,
		spinner:    s,
	}
}
