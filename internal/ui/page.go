package ui

import (
	"fmt"
	"math"
	"strings"
)

// BlockKind tells the front end how to display a block
type BlockKind int

const (
	BlockBanner BlockKind = iota // session-wide error, shown on every page
	BlockHeader
	BlockHeading
	BlockText
	BlockWarning
	BlockError
	BlockSuccess
	BlockMetric
	BlockProgress
	BlockList
)

// Block is one element of a rendered page. Text may contain markdown.
type Block struct {
	Kind  BlockKind
	Label string   // metric label
	Text  string
	Items []string // numbered list entries
	Ratio float64  // progress bar fill, 0..1
}

// Page is the view model produced by Render
type Page struct {
	View   View
	Blocks []Block
}

func (p *Page) add(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// Has reports whether the page contains a block of kind
func (p Page) Has(kind BlockKind) bool {
	for _, b := range p.Blocks {
		if b.Kind == kind {
			return true
		}
	}
	return false
}

// Find returns the first block of kind
func (p Page) Find(kind BlockKind) (Block, bool) {
	for _, b := range p.Blocks {
		if b.Kind == kind {
			return b, true
		}
	}
	return Block{}, false
}

const progressBarWidth = 20

// Markdown renders the page for a terminal
func (p Page) Markdown() string {
	parts := make([]string, 0, len(p.Blocks))
	for _, b := range p.Blocks {
		switch b.Kind {
		case BlockBanner, BlockError:
			parts = append(parts, "> **Error:** "+b.Text)
		case BlockHeader:
			parts = append(parts, "## "+b.Text)
		case BlockHeading:
			parts = append(parts, "### "+b.Text)
		case BlockWarning:
			parts = append(parts, "> **Warning:** "+b.Text)
		case BlockSuccess:
			parts = append(parts, "> "+b.Text)
		case BlockMetric:
			parts = append(parts, fmt.Sprintf("**%s:** %s", b.Label, b.Text))
		case BlockProgress:
			filled := int(b.Ratio * progressBarWidth)
			bar := strings.Repeat("#", filled) + strings.Repeat("-", progressBarWidth-filled)
			parts = append(parts, fmt.Sprintf("`[%s] %d%%`", bar, int(math.Round(b.Ratio*100))))
		case BlockList:
			items := make([]string, len(b.Items))
			for i, item := range b.Items {
				items[i] = fmt.Sprintf("%d. %s", i+1, item)
			}
			parts = append(parts, strings.Join(items, "\n"))
		default:
			parts = append(parts, b.Text)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}
