package faqmine

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown so that text pattern
	// extractors see headings, emphasis and list markers.
	Convert(html string) (string, error)
}
