// Package ui turns a navigation State into a Page. Render is the only place
// that decides what a view shows; the GUI and the CLI only display pages.
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"codeberg.org/snonux/wordly/internal/vocab"
)

const emptyWordWarning = "Please enter a word."

// Generator is what the views need from vocab.Generator
type Generator interface {
	DailyWord(ctx context.Context) (vocab.WordEntry, error)
	WordDetails(ctx context.Context, word string) (vocab.WordEntry, error)
	Quiz(ctx context.Context, word string) (vocab.QuizOptions, error)
}

// Services are the collaborators of Render
type Services struct {
	Generator Generator
	Provider  string // shown in error blocks, e.g. "Together API"
	Now       func() time.Time
}

func (s Services) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Render builds the page for state. Only the word of the day view and
// submitted actions reach the generator; everything else is local.
func Render(ctx context.Context, state State, svc Services) Page {
	page := Page{View: state.View}

	if state.CredentialErr != nil {
		page.add(Block{Kind: BlockBanner, Text: state.CredentialErr.Error()})
	}
	page.add(Block{Kind: BlockHeader, Text: state.View.title()})

	switch state.View {
	case WordOfDay:
		renderWordOfDay(ctx, &page, svc)
	case WordDetails:
		renderWordDetails(ctx, &page, state, svc)
	case Quiz:
		renderQuiz(ctx, &page, state, svc)
	case ProgressTracker:
		renderProgress(&page, state, svc)
	}

	return page
}

func renderWordOfDay(ctx context.Context, page *Page, svc Services) {
	entry, err := svc.Generator.DailyWord(ctx)
	if err != nil {
		page.add(errorBlock(svc, err))
	}
	page.add(Block{Kind: BlockHeading, Text: fmt.Sprintf("**%s**", entry.Word)})
	page.add(Block{Kind: BlockText, Text: "**Example Sentence:** " + entry.Sentence})
}

func renderWordDetails(ctx context.Context, page *Page, state State, svc Services) {
	if state.Action != ActionSubmit {
		return
	}
	word := strings.TrimSpace(state.Input)
	if word == "" {
		page.add(Block{Kind: BlockWarning, Text: emptyWordWarning})
		return
	}

	entry, err := svc.Generator.WordDetails(ctx, word)
	if errors.Is(err, vocab.ErrEmptyWord) {
		page.add(Block{Kind: BlockWarning, Text: emptyWordWarning})
		return
	}
	if err != nil {
		page.add(errorBlock(svc, err))
	}
	page.add(Block{Kind: BlockHeading, Text: fmt.Sprintf("Word: **%s**", entry.Word)})
	page.add(Block{Kind: BlockText, Text: "**Example Sentence:** " + entry.Sentence})
}

func renderQuiz(ctx context.Context, page *Page, state State, svc Services) {
	if state.Action != ActionSubmit {
		return
	}
	word := strings.TrimSpace(state.Input)
	if word == "" {
		page.add(Block{Kind: BlockWarning, Text: emptyWordWarning})
		return
	}

	options, err := svc.Generator.Quiz(ctx, word)
	if errors.Is(err, vocab.ErrEmptyWord) {
		page.add(Block{Kind: BlockWarning, Text: emptyWordWarning})
		return
	}
	if err != nil {
		page.add(errorBlock(svc, err))
	}
	if len(options) == 0 {
		return
	}
	page.add(Block{Kind: BlockHeading, Text: "Quiz Options:"})
	page.add(Block{Kind: BlockList, Items: append([]string(nil), options...)})
}

func renderProgress(page *Page, state State, svc Services) {
	p := state.progress()

	page.add(Block{Kind: BlockText, Text: "Track your learning progress below."})
	page.add(Block{Kind: BlockMetric, Label: "Words Learned", Text: p.Label()})
	page.add(Block{Kind: BlockProgress, Ratio: p.Ratio()})

	if state.Action == ActionSave {
		page.add(Block{Kind: BlockSuccess, Text: p.Save(svc.now()).Message})
	}
}

func errorBlock(svc Services, err error) Block {
	provider := svc.Provider
	if provider == "" {
		provider = "the completion API"
	}
	return Block{Kind: BlockError, Text: fmt.Sprintf("Error fetching data from %s: %v", provider, err)}
}
