package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"browser-use/internal/domain/entity"
)

// ParseHTML reads a static HTML document into a RawNode tree rooted at <body>.
// Static documents carry no geometry or computed style, so visibility comes from markup only.
func ParseHTML(r io.Reader) (*RawNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return &RawNode{Tag: "body"}, nil
	}
	return toRaw(body), nil
}

// ParseHTMLString is ParseHTML over a string.
func ParseHTMLString(s string) (*RawNode, error) {
	return ParseHTML(strings.NewReader(s))
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

func toRaw(n *html.Node) *RawNode {
	raw := &RawNode{Tag: n.Data}
	for _, attr := range n.Attr {
		name := attr.Key
		if attr.Namespace != "" {
			name = attr.Namespace + ":" + attr.Key
		}
		raw.Attributes.Set(name, attr.Val)
	}
	raw.Text = collapseSpace(textOf(n))
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			raw.Children = append(raw.Children, toRaw(c))
		}
	}
	return raw
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if excludedTags[n.Data] {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// BuildFromHTML parses, classifies and indexes a static HTML document.
func BuildFromHTML(r io.Reader) (*entity.DomTree, error) {
	raw, err := ParseHTML(r)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}
