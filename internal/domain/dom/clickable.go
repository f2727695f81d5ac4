package dom

import (
	"fmt"
	"strings"

	"browser-use/internal/domain/entity"
)

// ClickableElements lists the indexed elements of tree in index order, one per line:
// "[i]<tag>text</tag>", or "[i]<tag>" when the element has no text.
func ClickableElements(tree *entity.DomTree) (string, int) {
	indices := tree.InteractiveIndices()
	lines := make([]string, 0, len(indices))
	for _, idx := range indices {
		node, ok := tree.FindNodeByIndex(idx)
		if !ok {
			continue
		}
		text := Truncate(strings.TrimSpace(node.Text()), clickableTextLimit)
		if text == "" {
			lines = append(lines, fmt.Sprintf("[%d]<%s>", idx, node.TagName))
		} else {
			lines = append(lines, fmt.Sprintf("[%d]<%s>%s</%s>", idx, node.TagName, text, node.TagName))
		}
	}
	return strings.Join(lines, "\n"), len(indices)
}
