package vocab

import "fmt"

// DailyWordPrompt is the fixed word-of-the-day prompt
func DailyWordPrompt() string {
	return "Suggest a word related to learning and provide an example sentence."
}

// WordDetailsPrompt asks for details about one word
func WordDetailsPrompt(word string) string {
	return fmt.Sprintf("Provide details about the word '%s' and an example sentence using it.", word)
}

// QuizPrompt asks for a multiple-choice quiz about one word
func QuizPrompt(word string) string {
	return fmt.Sprintf("Create a multiple-choice quiz with 4 options for the word '%s'. Provide options in a list format.", word)
}
