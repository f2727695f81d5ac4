package dom

import (
	"fmt"
	"regexp"
	"strings"

	"browser-use/internal/domain/entity"
)

var (
	cssIdent   = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)
	cssTagName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Index walks root depth-first in document order and gives every interactive node the next
// integer, starting at 0. A node whose locator cannot be derived stays unindexed.
// Indices already present on the tree are discarded.
func Index(root *entity.ElementNode) (*entity.DomTree, error) {
	ix := &indexer{
		selectors: entity.NewSelectorMap(),
		ids:       countAttr(root, "id"),
		testIDs:   countAttr(root, "data-testid"),
		names:     countAttr(root, "name"),
	}
	ix.visit(root, nil)
	return entity.NewDomTree(root, ix.selectors)
}

type indexer struct {
	selectors *entity.SelectorMap
	next      int

	ids     map[string]int
	testIDs map[string]int
	names   map[string]int
}

func (ix *indexer) visit(node *entity.ElementNode, path []string) {
	node.Index = nil
	if path == nil {
		path = []string{pathSegment(node.TagName, 1, 1)}
	}

	if node.IsInteractive {
		if locator := ix.locator(node, path); locator != "" {
			if err := ix.selectors.Insert(ix.next, locator); err == nil {
				node.SetIndex(ix.next)
				ix.next++
			}
		}
	}

	total := make(map[string]int, len(node.Children))
	for _, child := range node.Children {
		total[child.TagName]++
	}
	seen := make(map[string]int, len(node.Children))
	for _, child := range node.Children {
		seen[child.TagName]++
		childPath := append(path[:len(path):len(path)], pathSegment(child.TagName, seen[child.TagName], total[child.TagName]))
		ix.visit(child, childPath)
	}
}

func (ix *indexer) locator(node *entity.ElementNode, path []string) string {
	if id, ok := node.Attribute("id"); ok && id != "" && ix.ids[id] == 1 {
		if cssIdent.MatchString(id) {
			return "#" + id
		}
		if cssTagName.MatchString(node.TagName) {
			return fmt.Sprintf(`%s[id="%s"]`, node.TagName, escapeAttr(id))
		}
		return fmt.Sprintf(`[id="%s"]`, escapeAttr(id))
	}
	if testID, ok := node.Attribute("data-testid"); ok && testID != "" && ix.testIDs[testID] == 1 {
		return fmt.Sprintf(`[data-testid="%s"]`, escapeAttr(testID))
	}
	if formControls[node.TagName] && cssTagName.MatchString(node.TagName) {
		if name, ok := node.Attribute("name"); ok && name != "" && ix.names[name] == 1 {
			return fmt.Sprintf(`%s[name="%s"]`, node.TagName, escapeAttr(name))
		}
	}
	for _, seg := range path {
		if seg == "" {
			return ""
		}
	}
	return strings.Join(path, " > ")
}

// pathSegment is the positional step for a child; "" marks a tag that cannot be expressed
// as a CSS type selector.
func pathSegment(tag string, nth, total int) string {
	if !cssTagName.MatchString(tag) {
		return ""
	}
	if total > 1 {
		return fmt.Sprintf("%s:nth-of-type(%d)", tag, nth)
	}
	return tag
}

func countAttr(root *entity.ElementNode, name string) map[string]int {
	counts := make(map[string]int)
	root.Walk(func(n *entity.ElementNode, _ int) bool {
		if v, ok := n.Attribute(name); ok && v != "" {
			counts[v]++
		}
		return true
	})
	return counts
}

func escapeAttr(v string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `).Replace(v)
}
