package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Donut renders slices clockwise from twelve o'clock in input order, each
// sized by its share of the total. Zero or negative values still get a
// zero-sweep slice so the slice count always matches the legend.
func Donut(size int, slices []Slice, opts DonutOpts) (template.HTML, error) {
	if size <= 0 {
		size = 2*int(DefaultOuterRadius) + 40
	}
	outer := opts.OuterRadius
	if outer <= 0 {
		outer = DefaultOuterRadius
	}
	inner := opts.InnerRadius
	if inner <= 0 {
		inner = DefaultInnerRadius
	}
	if inner >= outer {
		return "", fmt.Errorf("svg: inner radius must be smaller than outer radius")
	}
	if float64(size) < 2*outer {
		return "", fmt.Errorf("svg: viewport too small")
	}
	pad := opts.PaddingAngle
	if pad < 0 {
		pad = 0
	}

	total := 0.0
	drawn := 0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
			drawn++
		}
	}
	if drawn == 0 {
		return Empty(size, size, opts.Title, "No data", opts.TextColor), nil
	}
	if drawn == 1 {
		pad = 0
	}
	available := 360 - pad*float64(drawn)

	c := float64(size) / 2
	titleID := makeID(opts.Title, "donut-title")
	descID := makeID(opts.Title, "donut-desc")

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s %s" class="chart chart--donut">`, size, size, titleID, descID)
	fmt.Fprintf(&b, `<title id="%s">%s</title>`, titleID, template.HTMLEscapeString(fallback(opts.Title, "Donut chart")))
	fmt.Fprintf(&b, `<desc id="%s">%s</desc>`, descID, template.HTMLEscapeString(fallback(opts.Description, "Share of total")))

	cursor := 0.0
	for _, s := range slices {
		tip := template.HTMLEscapeString(fmt.Sprintf("%s: %s", s.Label, formatWith(opts.Format, math.Max(s.Value, 0))))
		color := fallback(s.Color, fallback(opts.EmptyColor, "#94a3b8"))
		switch {
		case s.Value <= 0:
			x, y := polar(c, outer, cursor)
			fmt.Fprintf(&b, `<path class="slice" d="M%.2f %.2f Z" fill="%s" data-empty="true"><title>%s</title></path>`, x, y, color, tip)
		case drawn == 1:
			// A full ring cannot be one arc; draw it as two half rings.
			fmt.Fprintf(&b, `<path class="slice" d="%s %s" fill="%s" fill-rule="evenodd"><title>%s</title></path>`,
				ringPath(c, outer), ringPath(c, inner), color, tip)
		default:
			sweep := s.Value / total * available
			fmt.Fprintf(&b, `<path class="slice" d="%s" fill="%s"><title>%s</title></path>`,
				arcPath(c, inner, outer, cursor, cursor+sweep), color, tip)
			cursor += sweep + pad
		}
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

// polar converts degrees measured clockwise from twelve o'clock.
func polar(c, r, deg float64) (float64, float64) {
	rad := (deg - 90) * math.Pi / 180
	return c + r*math.Cos(rad), c + r*math.Sin(rad)
}

func arcPath(c, inner, outer, from, to float64) string {
	large := 0
	if to-from > 180 {
		large = 1
	}
	ox0, oy0 := polar(c, outer, from)
	ox1, oy1 := polar(c, outer, to)
	ix1, iy1 := polar(c, inner, to)
	ix0, iy0 := polar(c, inner, from)
	return fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 %d 1 %.2f %.2f L%.2f %.2f A%.2f %.2f 0 %d 0 %.2f %.2f Z",
		ox0, oy0, outer, outer, large, ox1, oy1,
		ix1, iy1, inner, inner, large, ix0, iy0)
}

func ringPath(c, r float64) string {
	return fmt.Sprintf("M%.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f A%.2f %.2f 0 1 1 %.2f %.2f Z",
		c, c-r, r, r, c, c+r, r, r, c, c-r)
}
