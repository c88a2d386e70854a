package fs

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a crawled page file.
type Frontmatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title"`
	Crawled string `yaml:"crawled"`
}

// ParseFrontmatter splits a "---" delimited YAML header from the body.
// Text without a well-formed header is returned unchanged as the body.
func ParseFrontmatter(text string) (Frontmatter, string) {
	var front Frontmatter

	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(normalized, "---\n") {
		return front, text
	}
	rest := normalized[len("---\n"):]

	end := strings.Index(rest, "\n---")
	if end < 0 {
		return front, text
	}
	header := rest[:end]
	body := rest[end+len("\n---"):]
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		if strings.TrimSpace(body[:nl]) != "" {
			return front, text
		}
		body = body[nl+1:]
	} else if strings.TrimSpace(body) != "" {
		return front, text
	} else {
		body = ""
	}

	if err := yaml.Unmarshal([]byte(header), &front); err != nil {
		return Frontmatter{}, text
	}
	return front, strings.TrimLeft(body, "\n")
}
