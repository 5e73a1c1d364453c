package vocab

import (
	"context"
	"errors"
	"strings"

	"codeberg.org/snonux/wordly/internal/completion"
)

const (
	UnknownWord        = "Unknown Word"
	NoSentence         = "No sentence available."
	dailyWordMaxTokens = 50
	detailsMaxTokens   = 100
	quizMaxTokens      = 150
)

// ErrEmptyWord is returned when a generator that needs a word gets none
var ErrEmptyWord = errors.New("please enter a word")

// WordEntry is a word with an example sentence
type WordEntry struct {
	Word     string
	Sentence string
}

// ErrorEntry is shown in place of a word when generation failed
var ErrorEntry = WordEntry{Word: completion.FailureText, Sentence: completion.FailureText}

// QuizOptions are the non-blank lines of a generated quiz, in order
type QuizOptions []string

// Completer is the part of completion.Client the generators use
type Completer interface {
	Complete(ctx context.Context, req completion.Request) completion.Result
}

// Generator builds prompts, calls the completer and shapes the answers
type Generator struct {
	completer Completer
}

// NewGenerator creates a generator on top of a completer
func NewGenerator(completer Completer) *Generator {
	return &Generator{completer: completer}
}

// DailyWord asks for a learning-related word and an example sentence. The
// word is the first line of the answer and the sentence the rest.
func (g *Generator) DailyWord(ctx context.Context) (WordEntry, error) {
	req := completion.NewRequest(DailyWordPrompt()).WithMaxTokens(dailyWordMaxTokens)

	result := g.completer.Complete(ctx, req)
	if !result.OK() {
		return ErrorEntry, result.Err()
	}

	return SplitWordEntry(result.Text()), nil
}

// WordDetails asks for details and an example sentence for word
func (g *Generator) WordDetails(ctx context.Context, word string) (WordEntry, error) {
	if strings.TrimSpace(word) == "" {
		return WordEntry{}, ErrEmptyWord
	}

	req := completion.NewRequest(WordDetailsPrompt(word)).WithMaxTokens(detailsMaxTokens)

	result := g.completer.Complete(ctx, req)
	if !result.OK() {
		return ErrorEntry, result.Err()
	}

	return WordEntry{Word: word, Sentence: strings.TrimSpace(result.Text())}, nil
}

// Quiz asks for a four-option multiple-choice quiz about word. The answer
// is assumed to be one option per line; nothing more is parsed.
func (g *Generator) Quiz(ctx context.Context, word string) (QuizOptions, error) {
	if strings.TrimSpace(word) == "" {
		return QuizOptions{}, ErrEmptyWord
	}

	req := completion.NewRequest(QuizPrompt(word)).WithMaxTokens(quizMaxTokens)

	result := g.completer.Complete(ctx, req)
	if !result.OK() {
		return QuizOptions{}, result.Err()
	}

	return SplitQuizOptions(result.Text()), nil
}

// SplitWordEntry splits text at its first newline into word and sentence.
// Without a newline the placeholder entry is returned.
func SplitWordEntry(text string) WordEntry {
	word, sentence, found := strings.Cut(text, "\n")
	if !found {
		return WordEntry{Word: UnknownWord, Sentence: NoSentence}
	}
	return WordEntry{
		Word:     strings.TrimSpace(word),
		Sentence: strings.TrimSpace(sentence),
	}
}

// SplitQuizOptions returns the trimmed non-empty lines of text
func SplitQuizOptions(text string) QuizOptions {
	options := QuizOptions{}
	for _, line := range strings.Split(text, "\n") {
		if option := strings.TrimSpace(line); option != "" {
			options = append(options, option)
		}
	}
	return options
}
