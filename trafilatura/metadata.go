// Package trafilatura extracts page metadata from raw HTML using
// go-trafilatura. The FAQ engine works on the full page source; this
// package only supplies the title and description that annotate a
// stored extraction.
package trafilatura

import (
	"strings"

	"github.com/Birds-of-Eden/faqdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure MetaExtractor implements faqdoc.MetaExtractor at compile time.
var _ faqdoc.MetaExtractor = (*MetaExtractor)(nil)

// MetaExtractor wraps go-trafilatura to read page metadata.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// ExtractMeta processes raw HTML and returns the page title and description.
func (e *MetaExtractor) ExtractMeta(rawHTML string) (*faqdoc.PageMeta, error) {
	if rawHTML == "" {
		return nil, faqdoc.Errorf(faqdoc.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	title := result.Metadata.Title
	if title == "" {
		title = titleElement(rawHTML)
	}

	return &faqdoc.PageMeta{
		Title:       title,
		Description: result.Metadata.Description,
	}, nil
}

// titleElement returns the text of the document's <title> element.
// Trafilatura's metadata pass can come back empty on minimal pages that
// still carry a plain title tag.
func titleElement(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	var title string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return title
}
