// Package batch reads word lists for running one view over many words.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadWordFile reads words from a file, one per line.
// Supported line formats:
//   - a word: "serendipity"
//   - a word with a note: "serendipity = happy accident" (the note is dropped)
//   - a comment: "# chapter 3"
//
// Blank lines are skipped and duplicates are kept in order.
func ReadWordFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	defer f.Close()

	return ReadWords(f)
}

// ReadWords parses a word list from r
func ReadWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if word, _, found := strings.Cut(line, "="); found {
			line = strings.TrimSpace(word)
		}
		if line != "" {
			words = append(words, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	return words, nil
}
