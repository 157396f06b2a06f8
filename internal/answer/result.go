package answer

import "fmt"

// Kind tags the outcome of a Generate call
type Kind int

const (
	KindSuccess Kind = iota
	KindConfigError
	KindInvocationError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindConfigError:
		return "config_error"
	case KindInvocationError:
		return "invocation_error"
	default:
		return "unknown"
	}
}

// RemediationHint accompanies invocation errors in the default rendering
const RemediationHint = "A problem occurred while calling the completion API. " +
	"Check that your API key is valid and that billing is set up for your account."

// Result is either the generated answer or a description of what went wrong.
// Text is never empty.
type Result struct {
	Kind Kind
	// Text is the completion for KindSuccess and a readable message otherwise
	Text string
	// Err is the underlying cause for KindInvocationError
	Err error
}

func Success(text string) Result {
	return Result{Kind: KindSuccess, Text: text}
}

func ConfigError(message string) Result {
	return Result{Kind: KindConfigError, Text: message}
}

func InvocationError(err error) Result {
	text := err.Error()
	if text == "" {
		text = "unknown error"
	}
	return Result{Kind: KindInvocationError, Text: text, Err: err}
}

func (r Result) OK() bool {
	return r.Kind == KindSuccess
}

// String renders the result as plain text for display
func (r Result) String() string {
	switch r.Kind {
	case KindSuccess:
		return r.Text
	case KindConfigError:
		return "Error: " + r.Text
	default:
		return fmt.Sprintf("An error occurred: %s\n%s", r.Text, RemediationHint)
	}
}
