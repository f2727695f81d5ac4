package dom

import (
	"fmt"
	"strings"

	"browser-use/internal/domain/entity"
)

const (
	snapshotTextLimit  = 200
	clickableTextLimit = 100
	directTextLimit    = 100
	ellipsis           = "..."
)

var textContainers = map[string]bool{
	"p": true, "div": true, "span": true, "section": true, "article": true,
	"main": true, "header": true, "footer": true, "nav": true,
}

var pureContainers = map[string]bool{
	"body": true, "ul": true, "ol": true, "form": true, "fieldset": true,
	"table": true, "tbody": true, "thead": true, "tr": true,
}

// RenderSnapshot renders the tree rooted at root as Markdown-like text, one line per rendered
// element, prefixing indexed elements with "[index] ".
func RenderSnapshot(root *entity.ElementNode) string {
	var sb strings.Builder
	renderNode(&sb, root, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, node *entity.ElementNode, depth int) {
	if !node.IsVisible && depth > 0 {
		return
	}

	switch tag := node.TagName; {
	case isHeading(tag):
		level := int(tag[1] - '0')
		writeLine(sb, node, strings.Repeat("#", level)+" "+textContent(node))
		renderChildren(sb, node, depth)

	case tag == "button":
		if text := textContent(node); text != "" {
			writeLine(sb, node, text)
		} else {
			writeLine(sb, node, "<button>")
		}
		renderChildren(sb, node, depth)

	case tag == "a":
		text := textContent(node)
		href, _ := node.Attribute("href")
		switch {
		case text != "" && href != "":
			writeLine(sb, node, fmt.Sprintf("%s (%s)", text, href))
		case text != "":
			writeLine(sb, node, text)
		default:
			writeLine(sb, node, fmt.Sprintf("<link %s>", href))
		}
		renderChildren(sb, node, depth)

	case tag == "input":
		typ, ok := node.Attribute("type")
		if !ok {
			typ = "text"
		}
		writeLine(sb, node, fmt.Sprintf(`<input type="%s"%s>,`, typ, placeholderClause(node)))
		renderChildren(sb, node, depth)

	case tag == "textarea":
		writeLine(sb, node, fmt.Sprintf("<textarea%s>", placeholderClause(node)))
		renderChildren(sb, node, depth)

	case tag == "select":
		writeLine(sb, node, "<select>")
		renderChildren(sb, node, depth)

	case tag == "label":
		if text := textContent(node); text != "" {
			writeLine(sb, node, text)
		}
		renderChildren(sb, node, depth)

	case textContainers[tag]:
		if text := directText(node); text != "" {
			writeLine(sb, node, text)
		}
		renderChildren(sb, node, depth)

	case tag == "li":
		indent := strings.Repeat("  ", max(depth-1, 0))
		writeLine(sb, node, indent+"• "+directText(node))
		renderChildren(sb, node, depth)

	case pureContainers[tag]:
		renderChildren(sb, node, depth)

	case node.IsInteractive:
		if text := textContent(node); text != "" {
			writeLine(sb, node, text)
		} else {
			writeLine(sb, node, fmt.Sprintf("<%s>", tag))
		}

	default:
		if text := directText(node); text != "" {
			writeLine(sb, node, text)
		}
		renderChildren(sb, node, depth)
	}
}

func renderChildren(sb *strings.Builder, node *entity.ElementNode, depth int) {
	for _, child := range node.Children {
		renderNode(sb, child, depth+1)
	}
}

func writeLine(sb *strings.Builder, node *entity.ElementNode, content string) {
	if node.Index != nil {
		fmt.Fprintf(sb, "[%d] ", *node.Index)
	}
	sb.WriteString(content)
	sb.WriteByte('\n')
}

func isHeading(tag string) bool {
	return len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6'
}

func placeholderClause(node *entity.ElementNode) string {
	if placeholder, ok := node.Attribute("placeholder"); ok {
		return fmt.Sprintf(` placeholder="%s"`, placeholder)
	}
	return ""
}

// textContent is the node's trimmed text, cut to the snapshot limit.
func textContent(node *entity.ElementNode) string {
	return Truncate(strings.TrimSpace(node.Text()), snapshotTextLimit)
}

// directText approximates the node's own text. Text content covers descendants too, so it
// only counts as direct for leaves, or for short text under a node with no visible children.
func directText(node *entity.ElementNode) string {
	if len(node.Children) == 0 {
		return textContent(node)
	}
	text := strings.TrimSpace(node.Text())
	if text == "" || len([]rune(text)) >= directTextLimit {
		return ""
	}
	for _, child := range node.Children {
		if child.IsVisible {
			return ""
		}
	}
	return text
}

// Truncate shortens s to limit runes, replacing the tail with "...".
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-len(ellipsis)]) + ellipsis
}
