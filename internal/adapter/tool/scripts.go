package tool

import (
	_ "embed"
	"encoding/json"
	"strings"
)

var (
	//go:embed js/hover.js
	hoverJS string
	//go:embed js/select.js
	selectJS string
	//go:embed js/scroll.js
	scrollJS string
)

// pageHTMLJS returns the document title and markup in one round trip.
const pageHTMLJS = `JSON.stringify({title: document.title, html: document.documentElement.outerHTML})`

// inject replaces placeholder in script with the JSON encoding of value.
func inject(script, placeholder string, value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		data = []byte("null")
	}
	return strings.Replace(script, placeholder, string(data), 1)
}
