package matrix_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgrid/matrix"
	"github.com/stretchr/testify/require"
)

// fromRows builds a matrix from row slices (rows[y][x]).
func fromRows(t *testing.T, rows [][]int) *matrix.Matrix[int] {
	t.Helper()
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	m, err := matrix.NewSized[int](w, h)
	require.NoError(t, err)
	m.InitAllElements(func(x, y int) int { return rows[y][x] })

	return m
}

// requireShape asserts dimensions and row-major content.
func requireShape(t *testing.T, m *matrix.Matrix[int], w, h int, want []int) {
	t.Helper()
	require.Equal(t, w, m.Width(), "width")
	require.Equal(t, h, m.Height(), "height")
	require.Equal(t, w*h, m.Count(), "count")
	if diff := cmp.Diff(want, m.ToArray()); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

//----------------------------------------------------------------------------//
// Per-axis plan (white-box)
//----------------------------------------------------------------------------//

// TestPlanAxis covers each alignment for growth, shrink, zero and clamping.
func TestPlanAxis(t *testing.T) {
	cases := []struct {
		name   string
		old    int
		offset int
		rule   matrix.WidthResizeRule
		want   matrix.AxisPlan
	}{
		{"Left/grow", 3, 2, matrix.Left, matrix.AxisPlan{Count: 3, Dst: 2}},
		{"Left/shrink", 3, -1, matrix.Left, matrix.AxisPlan{Count: 2, Src: 1}},
		{"Left/shrink2", 5, -2, matrix.Left, matrix.AxisPlan{Count: 3, Src: 2}},
		{"Right/grow", 3, 2, matrix.Right, matrix.AxisPlan{Count: 3}},
		{"Right/shrink", 3, -1, matrix.Right, matrix.AxisPlan{Count: 2}},
		{"CenterLeft/growOdd", 4, 3, matrix.CenterLeft, matrix.AxisPlan{Count: 4, Dst: 2}},
		{"CenterLeft/growEven", 4, 2, matrix.CenterLeft, matrix.AxisPlan{Count: 4, Dst: 1}},
		{"CenterLeft/shrinkOdd", 5, -3, matrix.CenterLeft, matrix.AxisPlan{Count: 2, Src: 2}},
		{"CenterLeft/shrinkEven", 5, -2, matrix.CenterLeft, matrix.AxisPlan{Count: 3, Src: 1}},
		{"CenterRight/growOdd", 4, 3, matrix.CenterRight, matrix.AxisPlan{Count: 4, Dst: 1}},
		{"CenterRight/shrinkOdd", 5, -3, matrix.CenterRight, matrix.AxisPlan{Count: 2, Src: 1}},
		{"CenterRight/shrinkOne", 5, -1, matrix.CenterRight, matrix.AxisPlan{Count: 4}},
		{"zero/keepsAll", 4, 0, matrix.CenterLeft, matrix.AxisPlan{Count: 4}},
		{"clamp/belowZero", 3, -5, matrix.Left, matrix.AxisPlan{}},
		{"clamp/exactZero", 3, -3, matrix.CenterRight, matrix.AxisPlan{}},
		{"empty/grow", 0, 2, matrix.Left, matrix.AxisPlan{Dst: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.PlanWidthAxis_TestOnly(tc.old, tc.offset, tc.rule))
		})
	}
}

// TestPlanAxisHeightMirrorsWidth checks both enumerations share one policy.
func TestPlanAxisHeightMirrorsWidth(t *testing.T) {
	pairs := []struct {
		w matrix.WidthResizeRule
		h matrix.HeightResizeRule
	}{
		{matrix.Left, matrix.Up},
		{matrix.Right, matrix.Down},
		{matrix.CenterLeft, matrix.CenterUp},
		{matrix.CenterRight, matrix.CenterDown},
	}
	for _, p := range pairs {
		for old := 0; old <= 5; old++ {
			for off := -6; off <= 6; off++ {
				require.Equal(t,
					matrix.PlanWidthAxis_TestOnly(old, off, p.w),
					matrix.PlanHeightAxis_TestOnly(old, off, p.h),
					"%v/%v old=%d off=%d", p.w, p.h, old, off)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Resize scenarios
//----------------------------------------------------------------------------//

// TestResizeGrowLeft: 3×3 grown by two columns with Left opens columns 0,1.
func TestResizeGrowLeft(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.Resize(2, 0, matrix.Left, matrix.Up))
	requireShape(t, m, 5, 3, []int{
		0, 0, 0, 1, 2,
		0, 0, 3, 4, 5,
		0, 0, 6, 7, 8,
	})
}

// TestResizeShrinkRight: dropping one column with Right drops column 2.
func TestResizeShrinkRight(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.Resize(-1, 0, matrix.Right, matrix.Up))
	requireShape(t, m, 2, 3, []int{
		0, 1,
		3, 4,
		6, 7,
	})
}

// TestResizeShrinkLeft: dropping one column with Left drops column 0.
func TestResizeShrinkLeft(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.Resize(-1, 0, matrix.Left, matrix.Up))
	requireShape(t, m, 2, 3, []int{
		1, 2,
		4, 5,
		7, 8,
	})
}

// TestResizeGrowCenterTieBreak: +3 on a 4-wide row under both center rules.
func TestResizeGrowCenterTieBreak(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2, 3, 4}})
	require.NoError(t, m.Resize(3, 0, matrix.CenterLeft, matrix.Up))
	requireShape(t, m, 7, 1, []int{0, 0, 1, 2, 3, 4, 0})

	m = fromRows(t, [][]int{{1, 2, 3, 4}})
	require.NoError(t, m.Resize(3, 0, matrix.CenterRight, matrix.Up))
	requireShape(t, m, 7, 1, []int{0, 1, 2, 3, 4, 0, 0})
}

// TestResizeHeightRules covers the vertical enumeration on a single column.
func TestResizeHeightRules(t *testing.T) {
	column := [][]int{{0}, {1}, {2}, {3}, {4}}
	cases := []struct {
		name   string
		offset int
		rule   matrix.HeightResizeRule
		h      int
		want   []int
	}{
		{"Up/grow", 2, matrix.Up, 7, []int{0, 0, 0, 1, 2, 3, 4}},
		{"Down/grow", 2, matrix.Down, 7, []int{0, 1, 2, 3, 4, 0, 0}},
		{"Up/shrink", -2, matrix.Up, 3, []int{2, 3, 4}},
		{"Down/shrink", -2, matrix.Down, 3, []int{0, 1, 2}},
		{"CenterUp/shrink", -3, matrix.CenterUp, 2, []int{2, 3}},
		{"CenterDown/shrink", -3, matrix.CenterDown, 2, []int{1, 2}},
		{"CenterUp/grow", 1, matrix.CenterUp, 6, []int{0, 0, 1, 2, 3, 4}},
		{"CenterDown/grow", 1, matrix.CenterDown, 6, []int{0, 1, 2, 3, 4, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := fromRows(t, column)
			require.NoError(t, m.Resize(0, tc.offset, matrix.Left, tc.rule))
			requireShape(t, m, 1, tc.h, tc.want)
		})
	}
}

// TestResizeBothAxes resizes width and height in one call.
func TestResizeBothAxes(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.Resize(-1, -1, matrix.CenterLeft, matrix.CenterUp))
	requireShape(t, m, 2, 2, []int{4, 5, 7, 8})

	m = seq3x3(t)
	require.NoError(t, m.Resize(-1, -1, matrix.CenterRight, matrix.CenterDown))
	requireShape(t, m, 2, 2, []int{0, 1, 3, 4})

	m = seq3x3(t)
	require.NoError(t, m.Resize(1, 1, matrix.Right, matrix.Down))
	requireShape(t, m, 4, 4, []int{
		0, 1, 2, 0,
		3, 4, 5, 0,
		6, 7, 8, 0,
		0, 0, 0, 0,
	})

	m = seq3x3(t)
	require.NoError(t, m.Resize(1, -2, matrix.Left, matrix.Up))
	requireShape(t, m, 4, 1, []int{0, 6, 7, 8})
}

// TestResizeZeroOffsetKeepsAxis: an axis with no requested change keeps its
// content while the other axis grows.
func TestResizeZeroOffsetKeepsAxis(t *testing.T) {
	m := fromRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.Resize(0, 1, matrix.Left, matrix.Up))
	requireShape(t, m, 2, 3, []int{0, 0, 1, 2, 3, 4})

	m = fromRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.Resize(0, 1, matrix.Right, matrix.Down))
	requireShape(t, m, 2, 3, []int{1, 2, 3, 4, 0, 0})

	m = fromRows(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, m.Resize(0, 0, matrix.CenterLeft, matrix.CenterDown))
	requireShape(t, m, 2, 2, []int{1, 2, 3, 4})
}

// TestResizeClamp: shrinking past zero empties the axis without error, and
// regrowing from empty yields zero values.
func TestResizeClamp(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.Resize(-10, 0, matrix.Left, matrix.Up))
	requireShape(t, m, 0, 3, []int{})

	require.NoError(t, m.Resize(2, 0, matrix.Left, matrix.Up))
	requireShape(t, m, 2, 3, make([]int, 6))

	require.NoError(t, m.Resize(0, -3, matrix.Left, matrix.Up))
	requireShape(t, m, 2, 0, []int{})
}

// TestResizeHugeGrowth: a grow request whose size does not fit is rejected
// and never wraps around into a shrink.
func TestResizeHugeGrowth(t *testing.T) {
	m := seq3x3(t)
	err := m.Resize(math.MaxInt, 0, matrix.Left, matrix.Up)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	requireShape(t, m, 3, 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})

	err = m.Resize(0, math.MaxInt-1, matrix.Left, matrix.Down)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	requireShape(t, m, 3, 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})

	// Saturated width times an empty height is a legal, cell-free shape.
	empty, err := matrix.NewSized[int](3, 0)
	require.NoError(t, err)
	require.NoError(t, empty.Resize(math.MaxInt, 0, matrix.Left, matrix.Up))
	require.Equal(t, math.MaxInt, empty.Width())
	require.Equal(t, 0, empty.Count())
}

// TestResizeInvalidRule rejects out-of-range rules and leaves m untouched.
func TestResizeInvalidRule(t *testing.T) {
	m := seq3x3(t)

	err := m.Resize(1, 1, matrix.WidthResizeRule(7), matrix.Up)
	require.ErrorIs(t, err, matrix.ErrInvalidRule)
	require.Contains(t, err.Error(), "WidthResizeRule(7)")

	err = m.Resize(1, 1, matrix.Left, matrix.HeightResizeRule(9))
	require.ErrorIs(t, err, matrix.ErrInvalidRule)

	requireShape(t, m, 3, 3, []int{0, 1, 2, 3, 4, 5, 6, 7, 8})
}

// TestResizeStorageNotShared: the old buffer is not reused by the resized matrix.
func TestResizeStorageNotShared(t *testing.T) {
	m := seq3x3(t)
	before := m.ToArray()
	require.NoError(t, m.Resize(0, 0, matrix.Left, matrix.Up))
	m.Set(0, 0, 50)
	require.Equal(t, 0, before[0])
}

//----------------------------------------------------------------------------//
// ResizeBy & options
//----------------------------------------------------------------------------//

// TestResizeByDefaults: without options ResizeBy uses Left / Up.
func TestResizeByDefaults(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.ResizeBy(2, 0))
	requireShape(t, m, 5, 3, []int{
		0, 0, 0, 1, 2,
		0, 0, 3, 4, 5,
		0, 0, 6, 7, 8,
	})

	m = seq3x3(t)
	require.NoError(t, m.ResizeBy(0, 1))
	requireShape(t, m, 3, 4, []int{0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8})
}

// TestResizeByOptions: options override defaults, last setter wins, nil skipped.
func TestResizeByOptions(t *testing.T) {
	m := seq3x3(t)
	require.NoError(t, m.ResizeBy(-1, 0, matrix.WithWidthRule(matrix.Right)))
	requireShape(t, m, 2, 3, []int{0, 1, 3, 4, 6, 7})

	m = seq3x3(t)
	require.NoError(t, m.ResizeBy(0, -1,
		matrix.WithHeightRule(matrix.Up),
		nil,
		matrix.WithHeightRule(matrix.Down)))
	requireShape(t, m, 3, 2, []int{0, 1, 2, 3, 4, 5})
}

// TestOptionPanics: option constructors panic on undeclared rules.
func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicWidthRuleInvalid_TestOnly, func() {
		matrix.WithWidthRule(matrix.WidthResizeRule(4))
	})
	require.PanicsWithValue(t, matrix.PanicHeightRuleInvalid_TestOnly, func() {
		matrix.WithHeightRule(matrix.HeightResizeRule(200))
	})
}

// TestRuleStrings covers String and IsValid on both enumerations.
func TestRuleStrings(t *testing.T) {
	require.Equal(t, "CenterLeft", matrix.CenterLeft.String())
	require.Equal(t, "CenterDown", matrix.CenterDown.String())
	require.Equal(t, "HeightResizeRule(5)", matrix.HeightResizeRule(5).String())
	require.True(t, matrix.CenterRight.IsValid())
	require.False(t, matrix.WidthResizeRule(4).IsValid())
	require.True(t, matrix.Down.IsValid())
}
