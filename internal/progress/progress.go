// Package progress tracks how many words were learned in the current
// session. Nothing is written to disk; saving only produces a timestamped
// confirmation.
package progress

import (
	"fmt"
	"math"
	"time"
)

const (
	DefaultTotal    = 10
	TimestampLayout = "2006-01-02 15:04:05"
)

// State holds the session counters
type State struct {
	WordsLearned int
	TotalWords   int
}

// Confirmation is the result of a save action
type Confirmation struct {
	Timestamp string
	Message   string
}

// New creates a state, clamping negative counts to zero
func New(learned, total int) State {
	if learned < 0 {
		learned = 0
	}
	if total < 0 {
		total = 0
	}
	return State{WordsLearned: learned, TotalWords: total}
}

// Default is the state shown before the user enters anything
func Default() State {
	return State{TotalWords: DefaultTotal}
}

// Ratio returns learned/total in [0,1]. It is 0 when total is 0.
func (s State) Ratio() float64 {
	if s.TotalWords <= 0 {
		return 0
	}
	r := float64(s.WordsLearned) / float64(s.TotalWords)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// Percent is Ratio scaled to 0..100 and rounded to the nearest point
func (s State) Percent() int {
	return int(math.Round(s.Ratio() * 100))
}

// Label is the metric text, e.g. "3 / 10"
func (s State) Label() string {
	return fmt.Sprintf("%d / %d", s.WordsLearned, s.TotalWords)
}

// Save timestamps the state in local time. No state is persisted.
func (s State) Save(now time.Time) Confirmation {
	ts := now.Local().Format(TimestampLayout)
	return Confirmation{
		Timestamp: ts,
		Message:   fmt.Sprintf("Progress saved at %s.", ts),
	}
}
