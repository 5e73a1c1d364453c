// Package vocab contains the content generators: word of the day, word
// details and quiz options. Each one builds a prompt, runs a single
// completion and post-processes the text.
package vocab
