package models

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available models
type Lister struct {
	apiKey  string
	current string
	client  *openai.Client
	out     io.Writer
}

// NewLister creates a new model lister. An empty baseURL uses the go-openai
// default.
func NewLister(apiKey, baseURL string) *Lister {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(config),
		out:    os.Stdout,
	}
}

// SetOutput redirects the listing, stdout by default
func (l *Lister) SetOutput(w io.Writer) {
	l.out = w
}

// SetCurrent marks the configured model in the listing
func (l *Lister) SetCurrent(model string) {
	l.current = model
}

// Categories groups model IDs by what they are used for
type Categories struct {
	Chat      []string
	Embedding []string
	Image     []string
	Other     []string
}

// Categorize sorts model IDs into categories
func Categorize(ids []string) Categories {
	var c Categories
	for _, id := range ids {
		lower := strings.ToLower(id)
		switch {
		case strings.Contains(lower, "embed"):
			c.Embedding = append(c.Embedding, id)
		case strings.Contains(lower, "dall-e") || strings.Contains(lower, "flux") ||
			strings.Contains(lower, "stable-diffusion"):
			c.Image = append(c.Image, id)
		case strings.Contains(lower, "instruct") || strings.Contains(lower, "chat") ||
			strings.Contains(lower, "gpt") || strings.Contains(lower, "turbo"):
			c.Chat = append(c.Chat, id)
		default:
			c.Other = append(c.Other, id)
		}
	}

	sort.Strings(c.Chat)
	sort.Strings(c.Embedding)
	sort.Strings(c.Image)
	sort.Strings(c.Other)
	return c
}

// ListAvailableModels prints all available models grouped by category
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("API key not found. Set TOGETHER_API_KEY or configure completion.api_key in .wordly.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}
	c := Categorize(ids)

	fmt.Fprintln(l.out, "Available Models:")
	l.printSection("Chat/Instruct Models (usable as completion.model)", c.Chat)
	l.printSection("Embedding Models", c.Embedding)
	l.printSection("Image Models", c.Image)
	l.printSection("Other Models", c.Other)

	return nil
}

func (l *Lister) printSection(title string, ids []string) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(l.out, "\n%s:\n", title)
	for _, id := range ids {
		marker := ""
		if id == l.current {
			marker = " (current)"
		}
		fmt.Fprintf(l.out, "  %s%s\n", id, marker)
	}
}
