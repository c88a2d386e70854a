// Package htmltomarkdown renders HTML pages as markdown for the text
// pattern extractors.
package htmltomarkdown

import (
	"bytes"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/faqmine"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Converter implements faqmine.Converter at compile time.
var _ faqmine.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Definition lists are rendered as "Q:" and "A:" lines so the label
// extractor finds them.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", faqmine.Errorf(faqmine.EINVALID, "empty HTML input")
	}

	prepared, err := labelDefinitions(rawHTML)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(prepared)
	if err != nil {
		return "", err
	}

	return result, nil
}

// labelDefinitions turns <dt> terms into "Q:" paragraphs and <dd>
// descriptions into "A:" paragraphs.
func labelDefinitions(rawHTML string) (string, error) {
	if !strings.Contains(strings.ToLower(rawHTML), "<dt") {
		return rawHTML, nil
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
		if n.Type != html.ElementNode {
			return
		}
		switch n.DataAtom {
		case atom.Dl:
			n.DataAtom, n.Data = atom.Div, "div"
		case atom.Dt:
			n.DataAtom, n.Data = atom.P, "p"
			n.InsertBefore(&html.Node{Type: html.TextNode, Data: "Q: "}, n.FirstChild)
		case atom.Dd:
			n.DataAtom, n.Data = atom.P, "p"
			n.InsertBefore(&html.Node{Type: html.TextNode, Data: "A: "}, n.FirstChild)
		}
	}
	walk(doc)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
