package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"codeberg.org/snonux/wordly/internal/ui"
)

// pageObjects turns a rendered page into widgets, one per block
func pageObjects(page ui.Page) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(page.Blocks))
	for _, b := range page.Blocks {
		objects = append(objects, blockObject(b))
	}
	return objects
}

func blockObject(b ui.Block) fyne.CanvasObject {
	switch b.Kind {
	case ui.BlockBanner, ui.BlockError:
		return messageLabel(b.Text, widget.DangerImportance)
	case ui.BlockWarning:
		return messageLabel(b.Text, widget.WarningImportance)
	case ui.BlockSuccess:
		return messageLabel(b.Text, widget.SuccessImportance)
	case ui.BlockHeader:
		return widget.NewRichTextFromMarkdown("## " + b.Text)
	case ui.BlockHeading:
		return widget.NewRichTextFromMarkdown("### " + b.Text)
	case ui.BlockMetric:
		label := widget.NewLabelWithStyle(b.Label, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(b.Text)
		value.SizeName = theme.SizeNameHeadingText
		return container.NewVBox(label, value)
	case ui.BlockProgress:
		bar := widget.NewProgressBar()
		bar.SetValue(b.Ratio)
		return bar
	case ui.BlockList:
		items := make([]string, len(b.Items))
		for i, item := range b.Items {
			items[i] = fmt.Sprintf("%d. %s", i+1, item)
		}
		return wrapped(widget.NewRichTextFromMarkdown(strings.Join(items, "\n")))
	default:
		return wrapped(widget.NewRichTextFromMarkdown(b.Text))
	}
}

func messageLabel(text string, importance widget.Importance) *widget.Label {
	label := widget.NewLabel(text)
	label.Importance = importance
	label.Wrapping = fyne.TextWrapWord
	return label
}

func wrapped(rt *widget.RichText) *widget.RichText {
	rt.Wrapping = fyne.TextWrapWord
	return rt
}
