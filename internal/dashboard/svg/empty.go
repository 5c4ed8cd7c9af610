package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Empty renders a placeholder frame for charts without data.
func Empty(width, height int, title, message, textColor string) template.HTML {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	titleID := makeID(title, "empty-title")
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s" class="chart chart--empty">`, width, height, titleID)
	fmt.Fprintf(&b, `<title id="%s">%s</title>`, titleID, template.HTMLEscapeString(fallback(title, "Chart")))
	fmt.Fprintf(&b, `<text x="%d" y="%d" fill="%s" font-size="14" text-anchor="middle">%s</text>`,
		width/2, height/2, fallback(textColor, "#64748b"), template.HTMLEscapeString(fallback(message, "No data")))
	b.WriteString("</svg>")
	return template.HTML(b.String())
}
