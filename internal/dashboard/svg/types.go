// Package svg renders the dashboard charts as inline SVG fragments.
package svg

import (
	"fmt"
	"math"
	"strings"
)

// Formatter turns a data value into tooltip or tick text.
type Formatter func(float64) string

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	SeriesLabel string
	Color       string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	// Radius rounds the bar corners.
	Radius float64
	Format Formatter
}

// Series is one line of a multi-line chart.
type Series struct {
	Name   string
	Values []float64
	Color  string
	Width  float64
	Format Formatter
}

// LineOpts customises the multi-line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// Slice is one segment of a donut chart.
type Slice struct {
	Label string
	Value float64
	Color string
}

// DonutOpts customises the donut chart renderer.
type DonutOpts struct {
	Title       string
	Description string
	InnerRadius float64
	OuterRadius float64
	// PaddingAngle is the gap between slices in degrees.
	PaddingAngle float64
	EmptyColor   string
	TextColor    string
	Format       Formatter
}

// Defaults for the dashboard charts.
const (
	DefaultWidth        = 720
	DefaultHeight       = 320
	DefaultPadding      = 40.0
	DefaultTicks        = 5
	DefaultInnerRadius  = 60.0
	DefaultOuterRadius  = 100.0
	DefaultPaddingAngle = 3.0
)

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func bounds(series []float64) (float64, float64) {
	minVal := series[0]
	maxVal := series[0]
	for _, v := range series[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

// axisRange widens [min, max] so it includes zero and is never empty.
func axisRange(minVal, maxVal float64) (float64, float64) {
	if minVal > 0 {
		minVal = 0
	}
	if maxVal < 0 {
		maxVal = 0
	}
	if almostEqual(maxVal, minVal) {
		maxVal = minVal + 1
	}
	return minVal, maxVal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return fmt.Sprintf("%s-%s", cleaned, suffix)
}

// FormatTick abbreviates axis values (12.5k, 1.2M).
func FormatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		if almostEqual(v, math.Round(v)) {
			return fmt.Sprintf("%.0f", v)
		}
		return fmt.Sprintf("%.2f", v)
	}
}

func formatWith(f Formatter, v float64) string {
	if f == nil {
		return FormatTick(v)
	}
	return f(v)
}
