package ai

import "fmt"

// State tags the outcome of a generation call.
type State int

const (
	StateOK State = iota
	StateEmpty
	StateFault
	StateNotConfigured
)

// Result is the outcome of one generation call. Failures are data, not
// errors: callers always get a Result and render it to a display string
// with Display. Keeping the tag lets tests assert on failure branches
// without string matching.
type Result struct {
	State    State
	Text     string // populated when State == StateOK
	Feedback string // populated when State == StateEmpty
	Err      error  // populated when State == StateFault
}

func ok(text string) Result { return Result{State: StateOK, Text: text} }

func empty(feedback string) Result { return Result{State: StateEmpty, Feedback: feedback} }

func fault(err error) Result { return Result{State: StateFault, Err: err} }

func notConfigured() Result { return Result{State: StateNotConfigured} }

// Display renders the result as the single in-band string the response
// contract expects. task names the content section, e.g. "flight suggestions".
func (r Result) Display(task string) string {
	switch r.State {
	case StateOK:
		return r.Text
	case StateEmpty:
		return fmt.Sprintf("Could not generate %s. The response was empty or blocked. (Feedback: %s)", task, r.Feedback)
	case StateFault:
		return fmt.Sprintf("An error occurred during %s generation: %v", task, r.Err)
	default:
		return fmt.Sprintf("API not configured. Cannot generate %s.", task)
	}
}
