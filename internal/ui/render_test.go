package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordly/internal/completion"
	"codeberg.org/snonux/wordly/internal/config"
	"codeberg.org/snonux/wordly/internal/vocab"
)

// fakeGenerator counts calls and returns canned answers
type fakeGenerator struct {
	entry   vocab.WordEntry
	options vocab.QuizOptions
	err     error
	calls   int
	words   []string
}

func (f *fakeGenerator) DailyWord(ctx context.Context) (vocab.WordEntry, error) {
	f.calls++
	if f.err != nil {
		return vocab.ErrorEntry, f.err
	}
	return f.entry, nil
}

func (f *fakeGenerator) WordDetails(ctx context.Context, word string) (vocab.WordEntry, error) {
	f.calls++
	f.words = append(f.words, word)
	if f.err != nil {
		return vocab.ErrorEntry, f.err
	}
	return vocab.WordEntry{Word: word, Sentence: f.entry.Sentence}, nil
}

func (f *fakeGenerator) Quiz(ctx context.Context, word string) (vocab.QuizOptions, error) {
	f.calls++
	f.words = append(f.words, word)
	if f.err != nil {
		return vocab.QuizOptions{}, f.err
	}
	return f.options, nil
}

func services(gen *fakeGenerator) Services {
	return Services{
		Generator: gen,
		Provider:  "Together API",
		Now:       func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.Local) },
	}
}

var serverError = &completion.Error{Provider: "together", Kind: completion.KindStatus, StatusCode: 500}

func TestParseView(t *testing.T) {
	for _, label := range Labels() {
		v, err := ParseView(label)
		require.NoError(t, err)
		assert.Equal(t, label, v.String())
	}

	_, err := ParseView("Settings")
	assert.Error(t, err)
	assert.Equal(t, []string{"Word of the Day", "Word Details", "Quiz", "Progress Tracker"}, Labels())
}

func TestNavigate_ClearsInput(t *testing.T) {
	s := NewState(nil).Navigate(WordDetails).WithInput("lucid").Submit()
	next := s.Navigate(Quiz)

	assert.Equal(t, Quiz, next.View)
	assert.Empty(t, next.Input)
	assert.Equal(t, ActionNone, next.Action)

	// the original value is untouched
	assert.Equal(t, "lucid", s.Input)
	assert.Equal(t, ActionSubmit, s.Action)
}

func TestNavigate_KeepsCredentialError(t *testing.T) {
	s := NewState(config.ErrMissingAPIKey).Navigate(ProgressTracker)
	assert.Equal(t, config.ErrMissingAPIKey, s.CredentialErr)
	assert.Equal(t, 10, s.Total)
}

func TestRender_WordOfDay(t *testing.T) {
	gen := &fakeGenerator{entry: vocab.WordEntry{Word: "Serendipity", Sentence: "She found serendipity in an old bookstore."}}
	page := Render(context.Background(), NewState(nil), services(gen))

	assert.Equal(t, 1, gen.calls)
	assert.False(t, page.Has(BlockError))
	assert.False(t, page.Has(BlockBanner))

	md := page.Markdown()
	assert.Contains(t, md, "### **Serendipity**")
	assert.Contains(t, md, "**Example Sentence:** She found serendipity in an old bookstore.")
}

func TestRender_WordOfDayFetchesEveryRender(t *testing.T) {
	gen := &fakeGenerator{entry: vocab.WordEntry{Word: "a", Sentence: "b"}}
	state := NewState(nil)

	Render(context.Background(), state, services(gen))
	Render(context.Background(), state, services(gen))
	assert.Equal(t, 2, gen.calls)
}

func TestRender_WordOfDayFailure(t *testing.T) {
	gen := &fakeGenerator{err: serverError}
	page := Render(context.Background(), NewState(nil), services(gen))

	block, ok := page.Find(BlockError)
	require.True(t, ok)
	assert.Equal(t, "Error fetching data from Together API: API call failed with status code 500", block.Text)
	assert.Contains(t, page.Markdown(), "### **Error**")
}

func TestRender_InputViewsWaitForSubmit(t *testing.T) {
	for _, view := range []View{WordDetails, Quiz} {
		t.Run(view.String(), func(t *testing.T) {
			gen := &fakeGenerator{}
			page := Render(context.Background(), NewState(nil).Navigate(view).WithInput("lucid"), services(gen))

			assert.Zero(t, gen.calls)
			assert.Len(t, page.Blocks, 1)
		})
	}
}

func TestRender_EmptyInputWarns(t *testing.T) {
	for _, view := range []View{WordDetails, Quiz} {
		for _, input := range []string{"", "   "} {
			gen := &fakeGenerator{}
			state := NewState(nil).Navigate(view).WithInput(input).Submit()
			page := Render(context.Background(), state, services(gen))

			block, ok := page.Find(BlockWarning)
			require.True(t, ok, "%s with %q", view, input)
			assert.Equal(t, "Please enter a word.", block.Text)
			assert.Zero(t, gen.calls, "no generator call for empty input")
		}
	}
}

func TestRender_WordDetails(t *testing.T) {
	gen := &fakeGenerator{entry: vocab.WordEntry{Sentence: "Clear and easy to understand."}}
	state := NewState(nil).Navigate(WordDetails).WithInput(" lucid ").Submit()
	page := Render(context.Background(), state, services(gen))

	assert.Equal(t, []string{"lucid"}, gen.words)
	md := page.Markdown()
	assert.Contains(t, md, "### Word: **lucid**")
	assert.Contains(t, md, "**Example Sentence:** Clear and easy to understand.")
}

func TestRender_Quiz(t *testing.T) {
	gen := &fakeGenerator{options: vocab.QuizOptions{"What does lucid mean?", "A) Clear", "B) Dark"}}
	state := NewState(nil).Navigate(Quiz).WithInput("lucid").Submit()
	page := Render(context.Background(), state, services(gen))

	list, ok := page.Find(BlockList)
	require.True(t, ok)
	assert.Equal(t, []string{"What does lucid mean?", "A) Clear", "B) Dark"}, list.Items)
	assert.Contains(t, page.Markdown(), "1. What does lucid mean?\n2. A) Clear\n3. B) Dark")
}

func TestRender_QuizWithoutOptions(t *testing.T) {
	tests := []struct {
		name      string
		gen       *fakeGenerator
		wantError bool
	}{
		{"failure", &fakeGenerator{err: serverError}, true},
		{"empty answer", &fakeGenerator{options: vocab.QuizOptions{}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewState(nil).Navigate(Quiz).WithInput("lucid").Submit()
			page := Render(context.Background(), state, services(tt.gen))

			assert.False(t, page.Has(BlockList))
			assert.False(t, page.Has(BlockHeading))
			assert.Equal(t, tt.wantError, page.Has(BlockError))
		})
	}
}

func TestRender_Progress(t *testing.T) {
	gen := &fakeGenerator{}
	state := NewState(nil).Navigate(ProgressTracker).WithProgress(3, 10)
	page := Render(context.Background(), state, services(gen))

	metric, ok := page.Find(BlockMetric)
	require.True(t, ok)
	assert.Equal(t, "Words Learned", metric.Label)
	assert.Equal(t, "3 / 10", metric.Text)

	bar, ok := page.Find(BlockProgress)
	require.True(t, ok)
	assert.InDelta(t, 0.3, bar.Ratio, 1e-9)

	assert.False(t, page.Has(BlockSuccess))
	assert.Zero(t, gen.calls)
}

func TestRender_ProgressPercentIsRounded(t *testing.T) {
	state := NewState(nil).Navigate(ProgressTracker).WithProgress(57, 100)
	page := Render(context.Background(), state, services(&fakeGenerator{}))

	assert.Contains(t, page.Markdown(), "`[###########---------] 57%`")
}

func TestRender_ProgressSave(t *testing.T) {
	state := NewState(nil).Navigate(ProgressTracker).WithProgress(3, 10).Save()
	page := Render(context.Background(), state, services(&fakeGenerator{}))

	block, ok := page.Find(BlockSuccess)
	require.True(t, ok)
	assert.Equal(t, "Progress saved at 2024-03-09 14:05:07.", block.Text)
}

func TestWithProgress_Clamps(t *testing.T) {
	s := NewState(nil).WithProgress(-1, 0)
	assert.Equal(t, 0, s.Learned)
	assert.Equal(t, 1, s.Total)
}

func TestRender_CredentialBannerOnEveryPage(t *testing.T) {
	for _, view := range Views() {
		t.Run(view.String(), func(t *testing.T) {
			gen := &fakeGenerator{err: serverError}
			state := NewState(config.ErrMissingAPIKey).Navigate(view)
			page := Render(context.Background(), state, services(gen))

			require.NotEmpty(t, page.Blocks)
			assert.Equal(t, BlockBanner, page.Blocks[0].Kind)
			assert.True(t, strings.HasPrefix(page.Markdown(), "> **Error:** API Key is missing."))
		})
	}
}
