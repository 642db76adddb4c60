package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/catscrape"
	"golang.org/x/net/html"
)

// SegmentBlocks splits the free-form fragment that follows a course header
// into discrete text blocks. The fragment is the run of siblings after the
// <hr> that follows the <h3> header; <br> siblings delimit blocks, and the
// visible text of all other siblings within a block is joined with single
// spaces. Empty blocks are never emitted: a fragment with no siblings after
// the separator yields an empty slice.
func SegmentBlocks(cell *goquery.Selection) ([]string, error) {
	header := cell.Find("h3").First()
	if header.Length() == 0 {
		return nil, catscrape.Errorf(catscrape.ENOTFOUND, "course header element not found")
	}

	separator := nextSiblingElement(header.Nodes[0], "hr")
	if separator == nil {
		return nil, catscrape.Errorf(catscrape.ENOTFOUND, "description separator not found")
	}

	var blocks []string
	var current strings.Builder
	flush := func() {
		if block := strings.TrimSpace(current.String()); block != "" {
			blocks = append(blocks, block)
		}
		current.Reset()
	}

	for n := separator.NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "br" {
			flush()
			continue
		}
		if text := strings.TrimSpace(nodeText(n)); text != "" {
			current.WriteString(" ")
			current.WriteString(text)
		}
	}
	flush()

	return blocks, nil
}

// nextSiblingElement returns the first following sibling of n that is an
// element with the given name, or nil.
func nextSiblingElement(n *html.Node, name string) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && s.Data == name {
			return s
		}
	}
	return nil
}

// nodeText returns the concatenated text content of a node and its
// descendants, without separators.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}
