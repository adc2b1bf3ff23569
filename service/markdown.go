package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Markdown converts the short markdown snippets used for descriptions,
// headlines and the footer into HTML. Raw HTML in the source is not passed
// through.
type Markdown struct {
	md goldmark.Markdown
}

func NewMarkdown() *Markdown {
	return &Markdown{md: goldmark.New()}
}

// Render returns the HTML for src.
func (m *Markdown) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderInline renders a single line without the surrounding paragraph.
func (m *Markdown) RenderInline(src string) (string, error) {
	out, err := m.Render(src)
	if err != nil {
		return "", err
	}
	out = strings.TrimSpace(out)
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}
