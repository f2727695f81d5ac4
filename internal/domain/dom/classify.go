package dom

import (
	"strconv"
	"strings"

	"browser-use/internal/domain/entity"
)

var excludedTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"meta": true, "head": true, "link": true, "title": true, "base": true,
}

var interactiveTags = map[string]bool{
	"button": true, "input": true, "select": true, "textarea": true,
	"details": true, "summary": true,
}

var interactiveRoles = map[string]bool{
	"button": true, "link": true, "textbox": true, "checkbox": true,
	"radio": true, "combobox": true, "listbox": true, "menuitem": true,
	"menuitemcheckbox": true, "menuitemradio": true, "option": true,
	"tab": true, "switch": true, "slider": true, "spinbutton": true,
	"searchbox": true, "gridcell": true, "treeitem": true,
}

var formControls = map[string]bool{
	"input": true, "select": true, "textarea": true, "button": true,
}

// Classify builds the element tree for raw, flagging each node visible and interactive.
// The root is always traversed, whatever its own visibility.
func Classify(raw *RawNode) *entity.ElementNode {
	if raw == nil {
		return entity.NewElementNode("body")
	}
	return classify(raw, true, 0)
}

func classify(raw *RawNode, parentVisible bool, depth int) *entity.ElementNode {
	tag := strings.ToLower(strings.TrimSpace(raw.Tag))
	node := entity.NewElementNode(tag)
	node.Attributes = append(node.Attributes, raw.Attributes...)
	if text := collapseSpace(raw.Text); text != "" {
		node.SetText(text)
	}
	if raw.BoundingBox != nil {
		box := *raw.BoundingBox
		node.BoundingBox = &box
	}

	node.IsVisible = parentVisible && isVisible(tag, raw)
	node.IsInteractive = node.IsVisible && isInteractive(tag, raw)

	// The page body may be flagged hidden by these heuristics; its descendants still get
	// their own verdict.
	childParentVisible := node.IsVisible || depth == 0
	for _, child := range raw.Children {
		node.AddChild(classify(child, childParentVisible, depth+1))
	}
	return node
}

func isVisible(tag string, raw *RawNode) bool {
	if excludedTags[tag] || raw.Hidden {
		return false
	}
	if _, ok := raw.Attributes.Get("hidden"); ok {
		return false
	}
	if tag == "input" {
		if typ, _ := raw.Attributes.Get("type"); strings.EqualFold(typ, "hidden") {
			return false
		}
	}
	if style, ok := raw.Attributes.Get("style"); ok && hiddenByStyle(style) {
		return false
	}
	if raw.BoundingBox != nil && raw.BoundingBox.Empty() {
		return false
	}
	return true
}

func hiddenByStyle(style string) bool {
	for _, decl := range strings.Split(style, ";") {
		prop, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value), "!important")))
		switch {
		case prop == "display" && value == "none":
			return true
		case prop == "visibility" && (value == "hidden" || value == "collapse"):
			return true
		}
	}
	return false
}

func isInteractive(tag string, raw *RawNode) bool {
	if interactiveTags[tag] {
		return true
	}
	if tag == "a" {
		if _, ok := raw.Attributes.Get("href"); ok {
			return true
		}
	}
	if tag == "label" && isBoundLabel(raw) {
		return true
	}
	if role, ok := raw.Attributes.Get("role"); ok && interactiveRoles[strings.ToLower(strings.TrimSpace(role))] {
		return true
	}
	if tabindex, ok := raw.Attributes.Get("tabindex"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(tabindex)); err == nil && n >= 0 {
			return true
		}
	}
	if editable, ok := raw.Attributes.Get("contenteditable"); ok {
		if v := strings.ToLower(strings.TrimSpace(editable)); v == "" || v == "true" || v == "plaintext-only" {
			return true
		}
	}
	return false
}

func isBoundLabel(raw *RawNode) bool {
	if target, ok := raw.Attributes.Get("for"); ok && strings.TrimSpace(target) != "" {
		return true
	}
	return containsControl(raw)
}

func containsControl(raw *RawNode) bool {
	for _, child := range raw.Children {
		if formControls[strings.ToLower(child.Tag)] || containsControl(child) {
			return true
		}
	}
	return false
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
