package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raster/internal/draw"
	"github.com/vovakirdan/tui-raster/internal/grid"
	"github.com/vovakirdan/tui-raster/internal/raster"
)

func TestASCIIFlipsRows(t *testing.T) {
	g := grid.New(3)
	g.Mark(0, 0)
	g.Mark(2, 2)

	got := ASCII(g, PlainStyle())
	want := "..#\n...\n#.."
	if got != want {
		t.Errorf("ASCII() =\n%s\nwant\n%s", got, want)
	}
}

func TestASCIIAxes(t *testing.T) {
	g := grid.New(3)
	g.Mark(1, 0)

	style := PlainStyle()
	style.Axes = true
	got := ASCII(g, style)
	want := "2 ...\n1 ...\n0 .#.\n  012"
	if got != want {
		t.Errorf("ASCII() =\n%s\nwant\n%s", got, want)
	}
}

func TestASCIIWideGlyphLabels(t *testing.T) {
	g := grid.New(12)
	lines := strings.Split(ASCII(g, DefaultStyle()), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected 13 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "11 ") {
		t.Errorf("top row label = %q, want prefix %q", lines[0], "11 ")
	}
	if !strings.HasPrefix(lines[11], " 0 ") {
		t.Errorf("bottom row label = %q, want prefix %q", lines[11], " 0 ")
	}
	if !strings.HasSuffix(lines[12], "1011") {
		t.Errorf("axis = %q, want suffix %q", lines[12], "1011")
	}
}

func TestASCIIEmptyGrid(t *testing.T) {
	if got := ASCII(grid.New(0), DefaultStyle()); got != "" {
		t.Errorf("ASCII of empty grid = %q, want empty", got)
	}
}

func TestPanelsSideBySide(t *testing.T) {
	result, err := draw.Execute(draw.DefaultRequest(), raster.DefaultOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := Panels(result.Panels, PlainStyle(), 0)
	first := strings.Split(out, "\n")[0]
	for _, title := range []string{"Linear", "DDA", "Bresenham", "Bresenham Circle"} {
		if !strings.Contains(first, title) {
			t.Errorf("first line %q missing title %q", first, title)
		}
	}
}

func TestPanelsWrap(t *testing.T) {
	result, err := draw.Execute(draw.DefaultRequest(), raster.DefaultOptions())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	out := Panels(result.Panels, PlainStyle(), 40)
	if strings.Count(out, "\n\n") != 3 {
		t.Errorf("expected four stacked rows, got:\n%s", out)
	}
}

func TestPNG(t *testing.T) {
	g := grid.New(2)
	g.Mark(0, 0)

	opts := DefaultPNGOptions()
	opts.CellPixels = 4

	var buf bytes.Buffer
	if err := PNG(&buf, g, opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Fatalf("bounds = %v, want 8x8", b)
	}

	tests := []struct {
		name string
		x, y int
		want color.Color
	}{
		{"marked bottom-left", 2, 6, opts.Marked},
		{"empty top-right", 6, 2, opts.Empty},
		{"empty top-left", 2, 2, opts.Empty},
		{"border", 0, 0, opts.GridLine},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !sameColor(img.At(tt.x, tt.y), tt.want) {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, img.At(tt.x, tt.y), tt.want)
			}
		})
	}
}

func TestPNGRejectsBadInput(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, grid.New(0), DefaultPNGOptions()); err == nil {
		t.Error("expected error for empty grid")
	}

	opts := DefaultPNGOptions()
	opts.CellPixels = 0
	if err := PNG(&buf, grid.New(3), opts); err == nil {
		t.Error("expected error for zero cell size")
	}

	opts.CellPixels = MaxImageSide/grid.MaxSize + 1
	if err := PNG(&buf, grid.New(grid.MaxSize), opts); err == nil {
		t.Error("expected error for an image above the side limit")
	}
}

func sameColor(a, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
