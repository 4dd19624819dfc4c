package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-raster/internal/core"
	"github.com/vovakirdan/tui-raster/internal/raster"
)

func validInput() Input {
	return Input{GridSize: "10", X0: "2", Y0: "2", X1: "7", Y1: "5", Radius: "3"}
}

func TestParseInputValid(t *testing.T) {
	req, err := ParseInput(validInput(), ModeAll)
	require.NoError(t, err)

	assert.Equal(t, DefaultRequest(), req)
}

func TestParseInputErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
		message string
	}{
		{"non-numeric size", func(in *Input) { in.GridSize = "ten" }, ErrInvalidGridSize, ""},
		{"zero size", func(in *Input) { in.GridSize = "0" }, ErrInvalidGridSize, ""},
		{"negative size", func(in *Input) { in.GridSize = "-4" }, ErrInvalidGridSize, ""},
		{"size above max", func(in *Input) { in.GridSize = "1025" }, ErrInvalidGridSize, "<= 1024"},
		{"size overflowing square", func(in *Input) { in.GridSize = "4294967296" }, ErrInvalidGridSize, ""},
		{"non-numeric x0", func(in *Input) { in.X0 = "a" }, ErrInvalidCoordinates, ""},
		{"empty y1", func(in *Input) { in.Y1 = "" }, ErrInvalidCoordinates, ""},
		{"non-numeric radius", func(in *Input) { in.Radius = "r" }, ErrInvalidRadius, ""},
		{"negative radius", func(in *Input) { in.Radius = "-1" }, ErrInvalidRadius, ""},
		{"x1 equals size", func(in *Input) { in.X1 = "10" }, ErrCoordinateRange, "<= 9"},
		{"negative y0", func(in *Input) { in.Y0 = "-1" }, ErrCoordinateRange, ">= 0"},
		{"radius too large", func(in *Input) { in.Radius = "6" }, ErrRadiusRange, "<= 5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)

			_, err := ParseInput(in, ModeAll)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.message != "" {
				assert.Contains(t, err.Error(), tc.message)
			}
		})
	}
}

func TestParseInputTrimsSpaces(t *testing.T) {
	in := Input{GridSize: " 12 ", X0: " 0", Y0: "0 ", X1: "11", Y1: "11", Radius: " 6"}

	req, err := ParseInput(in, ModeBresenham)
	require.NoError(t, err)
	assert.Equal(t, 12, req.GridSize)
	assert.Equal(t, core.P(11, 11), req.To)
	assert.Equal(t, 6, req.Radius)
}

func TestInputRoundTrip(t *testing.T) {
	req := Request{Mode: ModeDDA, GridSize: 16, From: core.P(1, 15), To: core.P(9, 0), Radius: 8}

	parsed, err := ParseInput(InputFromRequest(req), ModeDDA)
	require.NoError(t, err)
	assert.Equal(t, req, parsed)
}

func TestMaxRadiusOddGrid(t *testing.T) {
	req := DefaultRequest()
	req.GridSize = 9
	req.Radius = 4

	assert.Equal(t, core.P(4, 4), req.Center())
	assert.Equal(t, 4, req.MaxRadius())
	assert.NoError(t, req.Validate())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeAll, m)

	m, err = ParseMode("Circle")
	require.NoError(t, err)
	assert.Equal(t, ModeCircle, m)

	_, err = ParseMode("spline")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestExecuteAllProducesFourPanels(t *testing.T) {
	result, err := Execute(DefaultRequest(), raster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Panels, 4)

	titles := make([]string, len(result.Panels))
	for i, p := range result.Panels {
		titles[i] = p.Title
		assert.Equal(t, 10, p.Grid.Size())
		assert.Positive(t, p.Grid.MarkedCount(), "%s drew nothing", p.Title)
	}
	assert.Equal(t, []string{"Linear", "DDA", "Bresenham", "Bresenham Circle"}, titles)

	// Each panel owns its grid.
	assert.NotSame(t, result.Panels[0].Grid, result.Panels[1].Grid)
}

func TestExecuteSingleMode(t *testing.T) {
	req := DefaultRequest()
	req.Mode = ModeBresenham

	result, err := Execute(req, raster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, result.Panels, 1)

	panel, ok := result.Panel(ModeBresenham)
	require.True(t, ok)
	assert.Equal(t, 6, panel.Grid.MarkedCount())
	assert.Equal(t, raster.PlotStats{Calls: 6, Plotted: 6}, panel.Stats)

	_, ok = result.Panel(ModeCircle)
	assert.False(t, ok)
}

func TestExecuteRejectsInvalidRequest(t *testing.T) {
	req := DefaultRequest()
	req.To = core.P(10, 0)

	_, err := Execute(req, raster.DefaultOptions())
	assert.ErrorIs(t, err, ErrCoordinateRange)
}

func TestExecuteCircleRadiusZero(t *testing.T) {
	req := DefaultRequest()
	req.Mode = ModeCircle
	req.Radius = 0

	result, err := Execute(req, raster.DefaultOptions())
	require.NoError(t, err)

	panel, _ := result.Panel(ModeCircle)
	assert.Equal(t, []core.Point{core.P(5, 5)}, panel.Grid.Marked())
}

func TestMarkedCounts(t *testing.T) {
	result, err := Execute(DefaultRequest(), raster.DefaultOptions())
	require.NoError(t, err)

	counts := result.MarkedCounts()
	assert.Equal(t, 6, counts[ModeBresenham])
	assert.Equal(t, 16, counts[ModeCircle])
}

func TestBlankPanels(t *testing.T) {
	panels := Blank(7, ModeAll)
	require.Len(t, panels, 4)
	for _, p := range panels {
		assert.Equal(t, 7, p.Grid.Size())
		assert.Zero(t, p.Grid.MarkedCount())
	}
}

func TestCompareAgainstBresenham(t *testing.T) {
	comparisons, err := Compare(DefaultRequest(), raster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, comparisons, 3)

	for _, c := range comparisons {
		if c.Algorithm == raster.AlgorithmBresenham {
			assert.True(t, c.Exact())
			assert.Equal(t, 6, c.Marked)
		}
	}
}

func TestCompareAxisAlignedIsExact(t *testing.T) {
	req := DefaultRequest()
	req.From, req.To = core.P(1, 4), core.P(8, 4)

	comparisons, err := Compare(req, raster.DefaultOptions())
	require.NoError(t, err)
	for _, c := range comparisons {
		assert.True(t, c.Exact(), "%s differs on a horizontal line: +%v -%v", c.Algorithm, c.Extra, c.Missing)
	}
}

func TestTraceBresenham(t *testing.T) {
	req := DefaultRequest()
	req.Mode = ModeBresenham

	steps, stats, err := Trace(req, raster.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, steps, 6)
	assert.Equal(t, core.P(2, 2), steps[0].Point)
	assert.Equal(t, core.P(7, 5), steps[5].Point)
	assert.Zero(t, stats.Dropped)
}

func TestTraceCircleFlagsDrops(t *testing.T) {
	// Radius 1 on a 2x2 grid centered at (1,1) reaches x=2 and y=2.
	req := Request{Mode: ModeCircle, GridSize: 2, From: core.P(0, 0), To: core.P(1, 1), Radius: 1}

	steps, stats, err := Trace(req, raster.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, steps, stats.Calls)
	assert.Positive(t, stats.Dropped)

	dropped := 0
	for _, s := range steps {
		if !s.InBounds {
			dropped++
		}
	}
	assert.Equal(t, stats.Dropped, dropped)
}

func TestTraceRejectsModeAll(t *testing.T) {
	_, _, err := Trace(DefaultRequest(), raster.DefaultOptions())
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestOversizedGridIsRejected(t *testing.T) {
	for _, size := range []int{MaxGridSize + 1, 3037000500, 1 << 32} {
		req := Request{Mode: ModeBresenham, GridSize: size, From: core.P(1, 1), To: core.P(3, 2), Radius: 1}

		require.ErrorIs(t, req.Validate(), ErrInvalidGridSize, "size %d", size)
		assert.NotPanics(t, func() {
			_, err := Execute(req, raster.DefaultOptions())
			assert.ErrorIs(t, err, ErrInvalidGridSize)
		}, "size %d", size)
	}
}

func TestMaxGridSizeIsAccepted(t *testing.T) {
	req := Request{Mode: ModeBresenham, GridSize: MaxGridSize, From: core.P(0, 0), To: core.P(MaxGridSize-1, 5)}

	res, err := Execute(req, raster.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, MaxGridSize, res.Panels[0].Grid.Size())
	assert.Equal(t, MaxGridSize, res.Panels[0].Grid.MarkedCount())
}
