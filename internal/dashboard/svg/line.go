package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Lines renders several series against one shared y axis, points in input
// order. Every series must have one value per label.
func Lines(width, height int, series []Series, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	for _, s := range series {
		if len(s.Values) != len(labels) {
			return "", fmt.Errorf("svg: series %q length must match labels", s.Name)
		}
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	axisColor := fallback(opts.AxisColor, "#1e293b")
	if len(labels) == 0 {
		return Empty(width, height, opts.Title, "No data", axisColor), nil
	}
	padding := opts.Padding
	if padding <= 0 {
		padding = DefaultPadding
	}
	tickCount := opts.TickCount
	if tickCount <= 0 {
		tickCount = DefaultTicks
	}
	gridColor := fallback(opts.GridColor, "rgba(148,163,184,0.3)")

	chartWidth := float64(width) - 2*padding
	chartHeight := float64(height) - 2*padding
	if chartWidth <= 0 || chartHeight <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	all := make([]float64, 0, len(series)*len(labels))
	for _, s := range series {
		all = append(all, s.Values...)
	}
	minVal, maxVal := axisRange(bounds(all))
	scale := chartHeight / (maxVal - minVal)

	step := 0.0
	if len(labels) > 1 {
		step = chartWidth / float64(len(labels)-1)
	}
	xAt := func(i int) float64 {
		if len(labels) == 1 {
			return padding + chartWidth/2
		}
		return padding + float64(i)*step
	}
	yAt := func(v float64) float64 {
		return padding + chartHeight - (v-minVal)*scale
	}

	titleID := makeID(opts.Title, "line-title")
	descID := makeID(opts.Title, "line-desc")

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s %s" class="chart chart--line">`, width, height, titleID, descID)
	fmt.Fprintf(&b, `<title id="%s">%s</title>`, titleID, template.HTMLEscapeString(fallback(opts.Title, "Line chart")))
	fmt.Fprintf(&b, `<desc id="%s">%s</desc>`, descID, template.HTMLEscapeString(fallback(opts.Description, "Trend data")))

	for i := 0; i <= tickCount; i++ {
		ratio := float64(i) / float64(tickCount)
		y := padding + chartHeight - ratio*chartHeight
		value := minVal + (maxVal-minVal)*ratio
		fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="1" stroke-dasharray="3,3" aria-hidden="true"></line>`, padding, y, padding+chartWidth, y, gridColor)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="11" text-anchor="end">%s</text>`, padding-6, y+4, axisColor, template.HTMLEscapeString(FormatTick(value)))
	}

	for _, s := range series {
		color := fallback(s.Color, "#4f46e5")
		strokeWidth := s.Width
		if strokeWidth <= 0 {
			strokeWidth = 2
		}
		var path strings.Builder
		for i, v := range s.Values {
			if i == 0 {
				fmt.Fprintf(&path, "M%.2f %.2f", xAt(i), yAt(v))
			} else {
				fmt.Fprintf(&path, " L%.2f %.2f", xAt(i), yAt(v))
			}
		}
		fmt.Fprintf(&b, `<path class="series" d="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linejoin="round" stroke-linecap="round"><title>%s</title></path>`,
			path.String(), color, strokeWidth, template.HTMLEscapeString(s.Name))
		// Transparent hit targets carry the per-point tooltips.
		for i, v := range s.Values {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="6" fill="transparent"><title>%s</title></circle>`,
				xAt(i), yAt(v), template.HTMLEscapeString(fmt.Sprintf("%s %s: %s", labels[i], s.Name, formatWith(s.Format, v))))
		}
	}

	for i, label := range labels {
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="11" text-anchor="middle">%s</text>`, xAt(i), padding+chartHeight+16, axisColor, template.HTMLEscapeString(label))
	}

	// Legend
	legendX := padding
	for _, s := range series {
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="10" height="10" rx="5" fill="%s"></rect>`, legendX, float64(height)-14, fallback(s.Color, "#4f46e5"))
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="11" text-anchor="start">%s</text>`, legendX+14, float64(height)-5, axisColor, template.HTMLEscapeString(s.Name))
		legendX += 90
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
