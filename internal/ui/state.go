package ui

import "codeberg.org/snonux/wordly/internal/progress"

// Action is the button pressed in the current interaction, if any
type Action int

const (
	ActionNone Action = iota
	ActionSubmit
	ActionSave
)

// State is everything one render needs. It is a value; every method returns
// a modified copy.
type State struct {
	View    View
	Input   string // word typed on the details or quiz view
	Learned int
	Total   int
	Action  Action

	// CredentialErr is set for the whole session when no API key was found
	CredentialErr error
}

// NewState returns the state shown at startup
func NewState(credentialErr error) State {
	return State{
		View:          WordOfDay,
		Total:         progress.DefaultTotal,
		CredentialErr: credentialErr,
	}
}

// Navigate switches to view and drops all per-view input
func (s State) Navigate(view View) State {
	return State{
		View:          view,
		Total:         progress.DefaultTotal,
		CredentialErr: s.CredentialErr,
	}
}

// WithInput sets the text input
func (s State) WithInput(input string) State {
	s.Input = input
	return s
}

// WithProgress sets the number inputs. Learned is clamped to >= 0 and
// total to >= 1.
func (s State) WithProgress(learned, total int) State {
	if learned < 0 {
		learned = 0
	}
	if total < 1 {
		total = 1
	}
	s.Learned = learned
	s.Total = total
	return s
}

// Submit marks the fetch button as pressed
func (s State) Submit() State {
	s.Action = ActionSubmit
	return s
}

// Save marks the save button as pressed
func (s State) Save() State {
	s.Action = ActionSave
	return s
}

// Idle clears the pending action
func (s State) Idle() State {
	s.Action = ActionNone
	return s
}

func (s State) progress() progress.State {
	return progress.New(s.Learned, s.Total)
}
