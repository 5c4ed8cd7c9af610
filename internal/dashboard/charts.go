package dashboard

import (
	"cmp"
	"fmt"
	"html/template"
	"slices"

	"github.com/salespulse/salespulse/internal/dashboard/svg"
)

// Theme selects the chart palette and page styling.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ProductSlices is how many products the donut shows.
const ProductSlices = 6

// Palette holds the colours of one theme.
type Palette struct {
	Text        string
	Grid        string
	RegionBar   string
	TrendSales  string
	TrendOrders string
	Products    []string
}

var palettes = map[Theme]Palette{
	ThemeLight: {
		Text:        "#1e293b",
		Grid:        "rgba(148,163,184,0.35)",
		RegionBar:   "#6366f1",
		TrendSales:  "#4f46e5",
		TrendOrders: "#22d3ee",
		Products:    []string{"#4f46e5", "#22d3ee", "#f97316", "#facc15", "#10b981", "#a855f7"},
	},
	ThemeDark: {
		Text:        "#e2e8f0",
		Grid:        "rgba(148,163,184,0.18)",
		RegionBar:   "#818cf8",
		TrendSales:  "#a855f7",
		TrendOrders: "#38bdf8",
		Products:    []string{"#818cf8", "#67e8f9", "#fb923c", "#fde047", "#34d399", "#c084fc"},
	},
}

// PaletteFor returns the palette of theme, light for anything unknown.
func PaletteFor(theme Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[ThemeLight]
}

// LegendEntry is one row of the product legend.
type LegendEntry struct {
	Label string
	Color string
	Sales string
}

// Charts holds the rendered chart fragments of a page.
type Charts struct {
	Trend         template.HTML
	Region        template.HTML
	Product       template.HTML
	ProductLegend []LegendEntry
}

// TopProducts re-sorts a copy of products by sales descending and keeps the
// first n. The input is never reordered.
func TopProducts(products []Product, n int) []Product {
	sorted := slices.Clone(products)
	slices.SortStableFunc(sorted, func(a, b Product) int {
		return cmp.Compare(b.Sales, a.Sales)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// RegionChart draws sales per region in received order.
func RegionChart(regions []Region, theme Theme) (template.HTML, error) {
	pal := PaletteFor(theme)
	values := make([]float64, len(regions))
	labels := make([]string, len(regions))
	for i, r := range regions {
		values[i] = r.Sales
		labels[i] = r.Region
	}
	return svg.Bars(480, 320, values, labels, svg.BarOpts{
		Title:       "Sales by Region",
		Description: "Revenue & order mix",
		SeriesLabel: "Sales",
		Color:       pal.RegionBar,
		AxisColor:   pal.Text,
		GridColor:   pal.Grid,
		Radius:      8,
		Format:      FormatCurrency,
	})
}

// ProductChart draws the top products as a donut and returns its legend.
func ProductChart(products []Product, theme Theme) (template.HTML, []LegendEntry, error) {
	pal := PaletteFor(theme)
	top := TopProducts(products, ProductSlices)
	parts := make([]svg.Slice, len(top))
	legend := make([]LegendEntry, len(top))
	for i, p := range top {
		color := pal.Products[i%len(pal.Products)]
		parts[i] = svg.Slice{Label: p.Product, Value: p.Sales, Color: color}
		legend[i] = LegendEntry{Label: p.Product, Color: color, Sales: FormatCurrency(p.Sales)}
	}
	html, err := svg.Donut(240, parts, svg.DonutOpts{
		Title:        "Top Products",
		Description:  "Share of revenue by product line",
		InnerRadius:  svg.DefaultInnerRadius,
		OuterRadius:  svg.DefaultOuterRadius,
		PaddingAngle: svg.DefaultPaddingAngle,
		TextColor:    pal.Text,
		Format:       FormatCurrency,
	})
	if err != nil {
		return "", nil, err
	}
	return html, legend, nil
}

// TrendChart draws sales and orders per time bucket in received order.
func TrendChart(points []Point, theme Theme) (template.HTML, error) {
	pal := PaletteFor(theme)
	labels := make([]string, len(points))
	sales := make([]float64, len(points))
	orders := make([]float64, len(points))
	for i, p := range points {
		labels[i] = p.Date
		sales[i] = p.Sales
		orders[i] = p.Orders
	}
	return svg.Lines(720, 340, []svg.Series{
		{Name: "Sales", Values: sales, Color: pal.TrendSales, Width: 3, Format: FormatCurrency},
		{Name: "Orders", Values: orders, Color: pal.TrendOrders, Width: 2, Format: FormatGrouped},
	}, labels, svg.LineOpts{
		Title:       "Sales Trends",
		Description: "Revenue & orders over time",
		AxisColor:   pal.Text,
		GridColor:   pal.Grid,
	})
}

// RenderCharts draws all three charts for the payload.
func RenderCharts(p *Payload, theme Theme) (Charts, error) {
	var out Charts
	var err error
	if p == nil {
		p = &Payload{}
	}
	if out.Trend, err = TrendChart(p.Trend, theme); err != nil {
		return Charts{}, fmt.Errorf("dashboard: trend chart: %w", err)
	}
	if out.Region, err = RegionChart(p.Regions, theme); err != nil {
		return Charts{}, fmt.Errorf("dashboard: region chart: %w", err)
	}
	if out.Product, out.ProductLegend, err = ProductChart(p.Products, theme); err != nil {
		return Charts{}, fmt.Errorf("dashboard: product chart: %w", err)
	}
	return out, nil
}
