package io

import (
	"strings"

	"github.com/DBC-Works/swiki/lib/models/page"
)

// GetPageMarkdown renders the given revision with its title as a level 1 heading.
func GetPageMarkdown(p page.Page, rev *int) (*string, error) {
	pageData, err := selectRevision(p, rev)
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	if pageData.Title != "" {
		builder.WriteString("# ")
		builder.WriteString(pageData.Title)
		builder.WriteString("\n\n")
	}
	builder.WriteString(pageData.Content)
	if !strings.HasSuffix(pageData.Content, "\n") {
		builder.WriteString("\n")
	}
	markdown := builder.String()
	return &markdown, nil
}
