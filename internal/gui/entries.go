package gui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// CustomEntry extends widget.Entry to handle the Escape key
type CustomEntry struct {
	widget.Entry
	onEscape func()
}

// NewCustomEntry creates a new custom single-line entry
func NewCustomEntry() *CustomEntry {
	entry := &CustomEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedKey handles key events
func (e *CustomEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.onEscape != nil {
		e.onEscape()
		return
	}
	e.Entry.TypedKey(key)
}

// SetOnEscape sets the callback for when Escape is pressed
func (e *CustomEntry) SetOnEscape(f func()) {
	e.onEscape = f
}

// NumberEntry is a CustomEntry that only accepts integers >= min
type NumberEntry struct {
	CustomEntry
	min int
}

// NewNumberEntry creates a number entry showing value
func NewNumberEntry(min, value int) *NumberEntry {
	entry := &NumberEntry{min: min}
	entry.ExtendBaseWidget(entry)
	entry.Validator = func(s string) error {
		_, err := parseAtLeast(s, min)
		return err
	}
	entry.SetText(strconv.Itoa(value))
	return entry
}

// Value returns the entered number, or min when the text is not valid
func (e *NumberEntry) Value() int {
	n, err := parseAtLeast(e.Text, e.min)
	if err != nil {
		return e.min
	}
	return n
}

// TypedRune drops everything except digits
func (e *NumberEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

func parseAtLeast(s string, min int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.New("not a whole number")
	}
	if n < min {
		return 0, errors.New("number too small")
	}
	return n, nil
}
