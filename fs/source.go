// Package fs loads crawled pages from crawl exports on disk and writes
// export files atomically.
package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/faqmine"
	"github.com/fwojciec/faqmine/bloom"
)

// DefaultMinContentChars is the trimmed content length at or below which a
// record is dropped.
const DefaultMinContentChars = 10

// Ensure PageSource implements faqmine.PageSource at compile time.
var _ faqmine.PageSource = (*PageSource)(nil)

// PageSource reads pages from a crawl export. Path may be a JSON file
// (an array of records or an object with a "data" array), a JSONL file with
// one record per line, or a directory of markdown, text and HTML files.
type PageSource struct {
	Path string

	// ContentExtractor, when set, reduces HTML records to their main content.
	ContentExtractor faqmine.ContentExtractor

	MinContentChars int

	// FalsePositiveRate sizes the Bloom filter that drops repeated URLs.
	// Zero uses bloom.DefaultFalsePositiveRate.
	FalsePositiveRate float64
}

// NewPageSource creates a PageSource for path.
func NewPageSource(path string) *PageSource {
	return &PageSource{Path: path, MinContentChars: DefaultMinContentChars}
}

// record is one page of a crawl service response.
type record struct {
	URL      string         `json:"url"`
	Markdown string         `json:"markdown"`
	Content  string         `json:"content"`
	HTML     string         `json:"html"`
	Metadata map[string]any `json:"metadata"`
}

// Pages implements faqmine.PageSource.
func (s *PageSource) Pages(ctx context.Context) ([]*faqmine.PageContent, error) {
	info, err := os.Stat(s.Path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, faqmine.Errorf(faqmine.ENOTFOUND, "crawl export not found: %s", s.Path)
	} else if err != nil {
		return nil, err
	}

	var records []record
	switch {
	case info.IsDir():
		records, err = s.readDir(ctx)
	case strings.EqualFold(filepath.Ext(s.Path), ".jsonl"):
		records, err = readJSONL(s.Path)
	default:
		records, err = readJSON(s.Path)
	}
	if err != nil {
		return nil, err
	}

	return s.pages(records), nil
}

// pages converts records to pages, dropping empty and repeated ones.
func (s *PageSource) pages(records []record) []*faqmine.PageContent {
	minChars := s.MinContentChars
	if minChars <= 0 {
		minChars = DefaultMinContentChars
	}

	fpRate := s.FalsePositiveRate
	if fpRate <= 0 {
		fpRate = bloom.DefaultFalsePositiveRate
	}

	seen := bloom.NewFilter(uint(len(records)), fpRate)
	pages := make([]*faqmine.PageContent, 0, len(records))
	for _, r := range records {
		page := s.page(r)
		if len(strings.TrimSpace(page.Content)) <= minChars {
			continue
		}
		if page.URL != "" && seen.Seen(page.URL) {
			continue
		}
		pages = append(pages, page)
	}
	return pages
}

// page picks the best content and URL of a record.
func (s *PageSource) page(r record) *faqmine.PageContent {
	metadata := r.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	content := r.Markdown
	if strings.TrimSpace(content) == "" {
		content = r.Content
	}
	if strings.TrimSpace(content) == "" && r.HTML != "" {
		content = r.HTML
		if s.ContentExtractor != nil {
			if result, err := s.ContentExtractor.Extract(r.HTML); err == nil && strings.TrimSpace(result.ContentHTML) != "" {
				content = result.ContentHTML
				if _, ok := metadata["title"]; !ok && result.Title != "" {
					metadata["title"] = result.Title
				}
			}
		}
	}

	url := r.URL
	if v, ok := metadata["sourceURL"].(string); ok && v != "" {
		url = v
	}

	page := &faqmine.PageContent{URL: url, Content: content}
	if len(metadata) > 0 {
		page.Metadata = metadata
	}
	return page
}

func readJSON(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, faqmine.Errorf(faqmine.EINVALID, "empty crawl export: %s", path)
	}

	if data[0] == '[' {
		var records []record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, faqmine.Errorf(faqmine.EINVALID, "invalid crawl export %s: %v", path, err)
		}
		return records, nil
	}

	var response struct {
		Data []record `json:"data"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, faqmine.Errorf(faqmine.EINVALID, "invalid crawl export %s: %v", path, err)
	}
	return response.Data, nil
}

func readJSONL(path string) ([]record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var records []record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(text, &r); err != nil {
			return nil, faqmine.Errorf(faqmine.EINVALID, "invalid crawl export %s line %d: %v", path, line, err)
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

var pageExtensions = []string{".md", ".markdown", ".txt", ".html", ".htm"}

// readDir reads every page file below the source directory in lexical order.
func (s *PageSource) readDir(ctx context.Context) ([]record, error) {
	var paths []string
	err := filepath.WalkDir(s.Path, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(pageExtensions, strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	records := make([]record, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := readFile(path)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// readFile reads one page file. Frontmatter "source" sets the page URL,
// "title" and "crawled" go to metadata; without a source the URL is the
// file URL.
func readFile(path string) (record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record{}, err
	}

	front, body := ParseFrontmatter(string(data))

	r := record{Metadata: map[string]any{}}
	if front.Source != "" {
		r.URL = front.Source
	} else {
		abs, err := filepath.Abs(path)
		if err != nil {
			return record{}, err
		}
		r.URL = "file://" + filepath.ToSlash(abs)
	}
	if front.Title != "" {
		r.Metadata["title"] = front.Title
	}
	if front.Crawled != "" {
		r.Metadata["crawled"] = front.Crawled
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		r.HTML = body
	default:
		r.Markdown = body
	}
	return r, nil
}
