// Package output renders lists for the cpp-hooks CLI.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/localuser2/pre-commit-hooks/internal/shared"
)

// ListRenderer formats titled lists and key-value tables.
type ListRenderer struct {
	bullet string
	indent string
}

// NewListRenderer creates a new list renderer with default styling.
func NewListRenderer() *ListRenderer {
	return &ListRenderer{
		bullet: "•",
		indent: "  ",
	}
}

// Render formats a title and list of items.
func (l *ListRenderer) Render(title string, items []string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(shared.TitleStyle.Render(title))
		sb.WriteString("\n")
	}

	for _, item := range items {
		sb.WriteString(l.indent)
		sb.WriteString(shared.InfoStyle.Render(l.bullet))
		sb.WriteString(" ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderMap formats a title and map of key-value pairs, keys sorted and
// padded for alignment.
func (l *ListRenderer) RenderMap(title string, items map[string]string) string {
	var sb strings.Builder

	if title != "" {
		sb.WriteString(shared.TitleStyle.Render(title))
		sb.WriteString("\n")
	}

	keys := make([]string, 0, len(items))
	maxKeyLen := 0
	for key := range items {
		keys = append(keys, key)
		if len(key) > maxKeyLen {
			maxKeyLen = len(key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		sb.WriteString(l.indent)
		sb.WriteString(shared.InfoStyle.Render(fmt.Sprintf("%-*s", maxKeyLen, key)))
		sb.WriteString(": ")
		sb.WriteString(items[key])
		sb.WriteString("\n")
	}

	return sb.String()
}
