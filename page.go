package faqmine

import "context"

// PageSource loads crawled pages from a crawl export.
// Implementations hide the export layout (directory, JSON, JSONL).
type PageSource interface {
	// Pages returns pages in export order.
	// Returns ENOTFOUND if the export does not exist.
	Pages(ctx context.Context) ([]*PageContent, error)
}
