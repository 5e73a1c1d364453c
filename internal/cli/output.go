package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"codeberg.org/snonux/wordly/internal/ui"
)

const wordWrap = 80

// PrintPage writes a rendered page to w, styled with glamour unless plain
// is set
func PrintPage(w io.Writer, page ui.Page, plain bool) error {
	md := page.Markdown()
	if !plain {
		md = style(md)
	}
	_, err := fmt.Fprint(w, md)
	return err
}

// style renders markdown for the terminal, falling back to the raw text
func style(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
