package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/grid"
)

// lineCells runs a over p0-p1 into a bounded grid and returns the marked set.
func lineCells(t *testing.T, a Algorithm, size int, p0, p1 core.Point) CellSet {
	t.Helper()
	g := ConfigureGrid(size)
	RasterizeLine(a, p0, p1, g)
	set := NewCellSet()
	for _, p := range g.Marked() {
		set.Mark(p.X, p.Y)
	}
	return set
}

// connected8 reports whether the set forms one 8-connected component.
func connected8(set CellSet) bool {
	if set.Len() == 0 {
		return true
	}
	start := set.Points()[0]
	seen := map[core.Point]bool{start: true}
	queue := []core.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := p.Add(dx, dy)
				if set.Has(n) && !seen[n] {
					seen[n] = true
					queue = append(queue, n)
				}
			}
		}
	}
	return len(seen) == set.Len()
}

func TestLineAlgorithmsIncludeEndpoints(t *testing.T) {
	p0, p1 := core.P(2, 2), core.P(7, 5)

	for _, a := range Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			set := lineCells(t, a, 10, p0, p1)
			assert.True(t, set.Has(p0), "missing start %v", p0)
			assert.True(t, set.Has(p1), "missing end %v", p1)
			assert.True(t, connected8(set), "path has gaps: %v", set.Points())
		})
	}
}

func TestLineAlgorithmsCoverEveryMajorStep(t *testing.T) {
	cases := []struct {
		name   string
		p0, p1 core.Point
	}{
		{"shallow", core.P(0, 0), core.P(9, 4)},
		{"steep", core.P(1, 0), core.P(4, 9)},
		{"diagonal", core.P(0, 9), core.P(9, 0)},
		{"horizontal", core.P(2, 6), core.P(8, 6)},
	}

	for _, a := range Algorithms() {
		for _, tc := range cases {
			t.Run(a.String()+"/"+tc.name, func(t *testing.T) {
				set := lineCells(t, a, 10, tc.p0, tc.p1)
				d := tc.p1.Sub(tc.p0)
				xMajor := core.Abs(d.X) >= core.Abs(d.Y)

				covered := make(map[int]bool)
				for p := range set {
					if xMajor {
						covered[p.X] = true
					} else {
						covered[p.Y] = true
					}
				}
				lo, hi := core.Min(tc.p0.X, tc.p1.X), core.Max(tc.p0.X, tc.p1.X)
				if !xMajor {
					lo, hi = core.Min(tc.p0.Y, tc.p1.Y), core.Max(tc.p0.Y, tc.p1.Y)
				}
				for v := lo; v <= hi; v++ {
					assert.True(t, covered[v], "major-axis coordinate %d has no cell", v)
				}
			})
		}
	}
}

func TestBresenhamKnownLine(t *testing.T) {
	set := lineCells(t, AlgorithmBresenham, 10, core.P(2, 2), core.P(7, 5))

	expected := []core.Point{
		core.P(2, 2), core.P(3, 3), core.P(4, 3),
		core.P(5, 4), core.P(6, 4), core.P(7, 5),
	}
	assert.ElementsMatch(t, expected, set.Points())
}

func TestBresenhamAxisAligned(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		set := lineCells(t, AlgorithmBresenham, 10, core.P(0, 0), core.P(5, 0))
		expected := make([]core.Point, 0, 6)
		for x := 0; x <= 5; x++ {
			expected = append(expected, core.P(x, 0))
		}
		assert.ElementsMatch(t, expected, set.Points())
	})

	t.Run("vertical", func(t *testing.T) {
		set := lineCells(t, AlgorithmBresenham, 10, core.P(0, 0), core.P(0, 5))
		expected := make([]core.Point, 0, 6)
		for y := 0; y <= 5; y++ {
			expected = append(expected, core.P(0, y))
		}
		assert.ElementsMatch(t, expected, set.Points())
	})
}

func TestBresenhamIsSymmetric(t *testing.T) {
	for x0 := 0; x0 < 8; x0++ {
		for y0 := 0; y0 < 8; y0 += 3 {
			for x1 := 0; x1 < 8; x1 += 2 {
				for y1 := 0; y1 < 8; y1++ {
					p0, p1 := core.P(x0, y0), core.P(x1, y1)
					forward := NewCellSet()
					backward := NewCellSet()
					Bresenham{}.Rasterize(p0, p1, forward)
					Bresenham{}.Rasterize(p1, p0, backward)
					require.True(t, forward.Equal(backward),
						"%v->%v gave %v, reverse gave %v", p0, p1, forward.Points(), backward.Points())
				}
			}
		}
	}
}

func TestBresenhamPlotCount(t *testing.T) {
	pairs := [][2]core.Point{
		{core.P(0, 0), core.P(9, 9)},
		{core.P(0, 0), core.P(9, 3)},
		{core.P(7, 1), core.P(2, 8)},
		{core.P(4, 4), core.P(4, 0)},
		{core.P(9, 5), core.P(0, 5)},
		{core.P(3, 3), core.P(3, 3)},
	}

	for _, pair := range pairs {
		rec := &Recorder{}
		Bresenham{}.Rasterize(pair[0], pair[1], rec)
		expected := pair[0].Chebyshev(pair[1]) + 1
		assert.Equal(t, expected, rec.Len(), "%v->%v", pair[0], pair[1])
		assert.Equal(t, pair[0], rec.Points[0])
		assert.Equal(t, pair[1], rec.Points[rec.Len()-1])
	}
}

func TestDDACoincidentEndpoints(t *testing.T) {
	rec := &Recorder{}
	DDA{Oversample: 10}.Rasterize(core.P(3, 3), core.P(3, 3), rec)

	require.Equal(t, 1, rec.Len(), "coincident endpoints must plot exactly once")
	assert.Equal(t, core.P(3, 3), rec.Points[0])
}

func TestDDAStepCount(t *testing.T) {
	rec := &Recorder{}
	DDA{}.Rasterize(core.P(0, 0), core.P(4, 2), rec)

	// 4 * 10 oversampled steps, both ends inclusive
	assert.Equal(t, 41, rec.Len())
	assert.Equal(t, core.P(4, 2), rec.Points[rec.Len()-1])
}

func TestLinearVerticalLine(t *testing.T) {
	set := NewCellSet()
	Linear{}.Rasterize(core.P(4, 7), core.P(4, 1), set)

	expected := make([]core.Point, 0, 7)
	for y := 1; y <= 7; y++ {
		expected = append(expected, core.P(4, y))
	}
	assert.ElementsMatch(t, expected, set.Points())
}

func TestLinearCoincidentEndpoints(t *testing.T) {
	set := NewCellSet()
	Linear{}.Rasterize(core.P(6, 2), core.P(6, 2), set)

	assert.Equal(t, []core.Point{core.P(6, 2)}, set.Points())
}

func TestLinearEndpointOrderIsNormalized(t *testing.T) {
	forward := NewCellSet()
	backward := NewCellSet()
	Linear{}.Rasterize(core.P(1, 8), core.P(8, 3), forward)
	Linear{}.Rasterize(core.P(8, 3), core.P(1, 8), backward)

	assert.True(t, forward.Equal(backward))
}

func TestLinearSampleCount(t *testing.T) {
	rec := &Recorder{}
	Linear{Oversample: 2}.Rasterize(core.P(2, 2), core.P(7, 5), rec)

	// dx = 5/(2*5): eleven samples from x=2 to x=7 inclusive
	assert.Equal(t, 11, rec.Len())
}

func TestCircleZeroRadius(t *testing.T) {
	g := ConfigureGrid(10)
	stats := RasterizeCircle(core.P(5, 5), 0, g)

	assert.Equal(t, []core.Point{core.P(5, 5)}, g.Marked())
	assert.Equal(t, 8, stats.Calls, "all eight reflections coincide at the center")
}

func TestCircleRadiusThree(t *testing.T) {
	center := core.Center(10)
	g := ConfigureGrid(10)
	stats := RasterizeCircle(center, 3, g)

	assert.Zero(t, stats.Dropped, "every reflected point must lie inside the grid")

	marked := NewCellSet()
	for _, p := range g.Marked() {
		marked.Mark(p.X, p.Y)
	}
	assert.Equal(t, 16, marked.Len())

	for p := range marked {
		mirrorX := core.P(2*center.X-p.X, p.Y)
		mirrorY := core.P(p.X, 2*center.Y-p.Y)
		assert.True(t, marked.Has(mirrorX), "%v has no mirror across the vertical axis", p)
		assert.True(t, marked.Has(mirrorY), "%v has no mirror across the horizontal axis", p)
	}

	// Axis extremes of the ideal circle are always hit.
	for _, p := range []core.Point{core.P(5, 8), core.P(5, 2), core.P(8, 5), core.P(2, 5)} {
		assert.True(t, marked.Has(p), "missing %v", p)
	}
}

func TestCircleIsGapless(t *testing.T) {
	for r := 0; r <= 20; r++ {
		set := NewCellSet()
		MidpointCircle{}.Rasterize(core.P(0, 0), r, set)
		assert.True(t, connected8(set), "radius %d has gaps", r)
	}
}

func TestCircleNegativeRadiusPlotsNothing(t *testing.T) {
	rec := &Recorder{}
	MidpointCircle{}.Rasterize(core.P(5, 5), -2, rec)
	assert.Zero(t, rec.Len())
}

func TestPlotterDropsOutOfRange(t *testing.T) {
	g := grid.New(10)
	p := NewPlotter(g.Size(), g)

	p.Mark(-1, 0)
	p.Mark(0, -1)
	p.Mark(10, 3)
	p.Mark(3, 10)
	p.Mark(4, 4)

	stats := p.Stats()
	assert.Equal(t, PlotStats{Calls: 5, Plotted: 1, Dropped: 4}, stats)
	assert.Equal(t, []core.Point{core.P(4, 4)}, g.Marked())
}

func TestRasterizeLineNearEdgeNeverFaults(t *testing.T) {
	for _, a := range Algorithms() {
		g := ConfigureGrid(3)
		assert.NotPanics(t, func() {
			RasterizeLine(a, core.P(0, 2), core.P(2, 0), g)
			RasterizeLine(a, core.P(-5, -5), core.P(12, 7), g)
		})
	}
}

func TestRasterizeLineInvalidAlgorithm(t *testing.T) {
	g := ConfigureGrid(10)
	stats := RasterizeLine(Algorithm(42), core.P(0, 0), core.P(9, 9), g)

	assert.Zero(t, stats.Calls)
	assert.Zero(t, g.MarkedCount())
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input    string
		expected Algorithm
		wantErr  bool
	}{
		{"linear", AlgorithmLinear, false},
		{"DDA", AlgorithmDDA, false},
		{" Bresenham ", AlgorithmBresenham, false},
		{"cda", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			a, err := ParseAlgorithm(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, a)
			assert.True(t, a.Valid())
		})
	}
}

func TestCellSetDiff(t *testing.T) {
	a := NewCellSet()
	b := NewCellSet()
	a.Mark(1, 1)
	a.Mark(2, 2)
	b.Mark(2, 2)
	b.Mark(3, 3)

	assert.Equal(t, []core.Point{core.P(1, 1)}, a.Diff(b))
	assert.Equal(t, []core.Point{core.P(3, 3)}, b.Diff(a))
	assert.False(t, a.Equal(b))
}
