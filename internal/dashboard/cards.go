package dashboard

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTrendLabel is shown when a trend carries no label.
const DefaultTrendLabel = "vs. previous period"

// CardConfig describes one KPI card.
type CardConfig struct {
	Key    string
	Label  string
	Prefix string
	Suffix string
	Format func(float64) string
}

// CardConfigs is the fixed, ordered card table.
var CardConfigs = []CardConfig{
	{Key: "totalSales", Label: "Total Sales", Prefix: "$", Format: FormatGrouped},
	{Key: "avgRevenuePerRegion", Label: "Avg Revenue / Region", Prefix: "$", Format: FormatWhole},
	{Key: "totalOrders", Label: "Total Orders", Format: FormatGrouped},
	{Key: "conversionRate", Label: "Conversion Rate", Suffix: "%", Format: FormatFixed1},
	{Key: "activeRegions", Label: "Active Regions", Format: FormatPlain},
}

// Card is a rendered KPI card.
type Card struct {
	Key   string
	Label string
	Value string
	Trend *CardTrend
}

// CardTrend is the delta line under a card value.
type CardTrend struct {
	Up    bool
	Arrow string
	Delta string
	Label string
}

var printer = message.NewPrinter(language.English)

// FormatGrouped groups thousands and keeps up to three fraction digits.
func FormatGrouped(v float64) string {
	return printer.Sprint(number.Decimal(roundTo(v, 3), number.MaxFractionDigits(3)))
}

// FormatWhole groups thousands and rounds half away from zero to an integer.
func FormatWhole(v float64) string {
	return printer.Sprint(number.Decimal(math.Round(v), number.MaxFractionDigits(0)))
}

// FormatFixed1 prints exactly one decimal.
func FormatFixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatPlain prints the shortest exact representation, without grouping.
func FormatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCurrency is FormatGrouped with a dollar sign.
func FormatCurrency(v float64) string {
	return "$" + FormatGrouped(v)
}

func roundTo(v float64, digits int) float64 {
	p := math.Pow10(digits)
	r := math.Round(v*p) / p
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return v
	}
	return r
}

// BuildCards maps the payload onto CardConfigs. Absent KPIs are zero; a trend
// is shown only when its value is present.
func BuildCards(p *Payload) []Card {
	cards := make([]Card, 0, len(CardConfigs))
	for _, cfg := range CardConfigs {
		var value float64
		var trend *Trend
		if p != nil {
			value = p.KPIs[cfg.Key]
			if t, ok := p.KPITrends[cfg.Key]; ok {
				trend = &t
			}
		}
		cards = append(cards, Card{
			Key:   cfg.Key,
			Label: cfg.Label,
			Value: cfg.Prefix + cfg.Format(value) + cfg.Suffix,
			Trend: buildTrend(trend),
		})
	}
	return cards
}

func buildTrend(t *Trend) *CardTrend {
	if t == nil || t.Value == nil {
		return nil
	}
	out := &CardTrend{
		Up:    *t.Value >= 0,
		Delta: FormatFixed1(math.Abs(*t.Value)) + "%",
		Label: DefaultTrendLabel,
	}
	out.Arrow = "▼"
	if out.Up {
		out.Arrow = "▲"
	}
	if t.Label != nil {
		out.Label = *t.Label
	}
	return out
}
