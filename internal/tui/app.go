package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/expert/internal/answer"
	"github.com/sant0-9/expert/internal/config"
	"github.com/sant0-9/expert/internal/persona"
)

type view int

const (
	viewForm view = iota
	viewSettings
	viewHelp
)

const emptyQuestionWarning = "Please enter a question."

// Answerer produces an answer for a question in a persona's voice
type Answerer interface {
	Generate(ctx context.Context, question, personaID string) answer.Result
}

type App struct {
	width    int
	height   int
	view     view
	state    *state
	answerer Answerer
	log      *zap.Logger
	quitting bool
}

func NewApp(answerer Answerer, cfg *config.Config, cred config.Credential, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		view:     viewForm,
		state:    newState(cfg, cred),
		answerer: answerer,
		log:      log.With(zap.String("module", "tui")),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textarea.Blink)
}

type answerMsg struct {
	result answer.Result
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.state.question.SetWidth(a.boxWidth() - 4)
		return a, nil

	case spinner.TickMsg:
		if !a.state.generating {
			return a, nil
		}
		var cmd tea.Cmd
		a.state.spinner, cmd = a.state.spinner.Update(msg)
		return a, cmd

	case answerMsg:
		a.state.generating = false
		a.state.cancelling = false
		a.state.cancel = nil
		a.state.elapsed = time.Since(a.state.startedAt)
		result := msg.result
		a.state.result = &result
		a.log.Debug("answer displayed",
			zap.Stringer("kind", result.Kind),
			zap.Duration("elapsed", a.state.elapsed))
		return a, nil
	}

	if a.view == viewForm && a.state.focus == focusQuestion && !a.state.generating {
		var cmd tea.Cmd
		a.state.question, cmd = a.state.question.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// handleKey reports whether the key was consumed
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.Quit):
		a.cancelInFlight()
		a.quitting = true
		return tea.Quit, true

	case key.Matches(msg, keys.Back):
		if a.view != viewForm {
			a.view = viewForm
			return nil, true
		}
		if a.state.generating {
			a.cancelInFlight()
			return nil, true
		}
		// Leave the question box first so typed text is not lost
		if a.state.focus == focusQuestion {
			return a.toggleFocus(), true
		}
		a.quitting = true
		return tea.Quit, true
	}

	// Help and settings are read-only
	if a.view != viewForm {
		return nil, true
	}

	switch {
	case key.Matches(msg, keys.Submit):
		return a.submit(), true
	case key.Matches(msg, keys.Settings):
		a.view = viewSettings
		return nil, true
	case key.Matches(msg, keys.Tab):
		return a.toggleFocus(), true
	}

	if a.state.focus != focusPersona {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.Up):
		if a.state.selected > 0 {
			a.state.selected--
		}
	case key.Matches(msg, keys.Down):
		if a.state.selected < len(persona.All)-1 {
			a.state.selected++
		}
	case key.Matches(msg, keys.Help):
		a.view = viewHelp
	}
	return nil, true
}

func (a *App) toggleFocus() tea.Cmd {
	if a.state.focus == focusPersona {
		a.state.focus = focusQuestion
		return a.state.question.Focus()
	}
	a.state.focus = focusPersona
	a.state.question.Blur()
	return nil
}

// submit validates the form and starts generation. An empty question only
// raises the warning; anything else is sent as typed.
func (a *App) submit() tea.Cmd {
	if a.state.generating {
		return nil
	}

	question := a.state.question.Value()
	if question == "" {
		a.state.warning = emptyQuestionWarning
		return nil
	}
	a.state.warning = ""

	p := persona.All[a.state.selected]
	ctx, cancel := context.WithCancel(context.Background())

	a.state.generating = true
	a.state.cancel = cancel
	a.state.startedAt = time.Now()
	a.state.result = nil
	a.state.asked = question
	a.state.askedExpert = p.Name

	a.log.Info("question submitted", zap.String("persona", string(p.ID)))

	return tea.Batch(a.state.spinner.Tick, a.generate(ctx, cancel, question, string(p.ID)))
}

func (a *App) generate(ctx context.Context, cancel context.CancelFunc, question, personaID string) tea.Cmd {
	answerer := a.answerer
	return func() tea.Msg {
		defer cancel()
		return answerMsg{result: answerer.Generate(ctx, question, personaID)}
	}
}

func (a *App) cancelInFlight() {
	if a.state.cancel == nil {
		return
	}
	a.log.Info("cancelling in-flight request")
	a.state.cancel()
	a.state.cancelling = true
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
