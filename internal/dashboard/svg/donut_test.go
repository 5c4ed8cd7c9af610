package svg

import (
	"strings"
	"testing"
)

func TestDonutDrawsOneSlicePerInput(t *testing.T) {
	html, err := Donut(240, []Slice{
		{Label: "Laptop Pro 15\"", Value: 96350, Color: "#4f46e5"},
		{Label: "Laptop Air 13\"", Value: 63700, Color: "#22d3ee"},
		{Label: "Ghost", Value: 0, Color: "#f97316"},
	}, DonutOpts{Title: "Top Products", PaddingAngle: DefaultPaddingAngle})
	if err != nil {
		t.Fatalf("donut renderer error: %v", err)
	}
	output := string(html)
	if got := strings.Count(output, `class="slice"`); got != 3 {
		t.Fatalf("expected 3 slices, got %d", got)
	}
	if got := strings.Count(output, `data-empty="true"`); got != 1 {
		t.Fatalf("expected 1 zero-sweep slice, got %d", got)
	}
	if !strings.Contains(output, "Laptop Pro 15&#34;") {
		t.Fatalf("expected escaped label tooltip in %s", output)
	}
}

func TestDonutSingleSliceIsFullRing(t *testing.T) {
	html, err := Donut(240, []Slice{{Label: "Only", Value: 5}}, DonutOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(html), `fill-rule="evenodd"`) {
		t.Fatalf("expected ring path, got %s", html)
	}
}

func TestDonutAllZeroIsEmpty(t *testing.T) {
	html, err := Donut(240, []Slice{{Label: "a"}, {Label: "b"}}, DonutOpts{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(html), "chart--empty") {
		t.Fatalf("expected empty placeholder, got %s", html)
	}
}

func TestDonutRejectsBadRadii(t *testing.T) {
	if _, err := Donut(240, []Slice{{Value: 1}}, DonutOpts{InnerRadius: 100, OuterRadius: 80}); err == nil {
		t.Fatal("expected radius error")
	}
}

func TestArcPathLargeFlag(t *testing.T) {
	if !strings.Contains(arcPath(120, 60, 100, 0, 200), " 0 1 1 ") {
		t.Fatal("expected large-arc flag for sweeps over 180 degrees")
	}
	if !strings.Contains(arcPath(120, 60, 100, 0, 90), " 0 0 1 ") {
		t.Fatal("expected small arc for quarter sweep")
	}
}

func TestDonutZeroValuesKeepSliceCount(t *testing.T) {
	slices := []Slice{
		{Label: "a", Value: 40}, {Label: "b", Value: 0}, {Label: "c", Value: 25},
		{Label: "d", Value: 0}, {Label: "e", Value: 0}, {Label: "f", Value: 10},
	}
	html, err := Donut(240, slices, DonutOpts{PaddingAngle: DefaultPaddingAngle})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(string(html), `class="slice"`); got != len(slices) {
		t.Fatalf("expected %d slices, got %d", len(slices), got)
	}
}
