// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the per-axis resize plan.
//
// Purpose:
//   - Expose the unexported planAxis kernel and panic messages to matrix_test
//     so the index arithmetic is checked directly, not only through Resize.

// AxisPlan mirrors axisPlan with exported fields.
type AxisPlan struct {
	Count, Src, Dst int
}

// PlanWidthAxis_TestOnly runs planAxis for a width rule.
func PlanWidthAxis_TestOnly(oldSize, offset int, r WidthResizeRule) AxisPlan {
	a, _ := widthAlignment(r)
	p := planAxis(oldSize, clampSize(oldSize, offset), offset, a)

	return AxisPlan{Count: p.count, Src: p.src, Dst: p.dst}
}

// PlanHeightAxis_TestOnly runs planAxis for a height rule.
func PlanHeightAxis_TestOnly(oldSize, offset int, r HeightResizeRule) AxisPlan {
	a, _ := heightAlignment(r)
	p := planAxis(oldSize, clampSize(oldSize, offset), offset, a)

	return AxisPlan{Count: p.count, Src: p.src, Dst: p.dst}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWidthRuleInvalid_TestOnly  = panicWidthRuleInvalid
	PanicHeightRuleInvalid_TestOnly = panicHeightRuleInvalid
)
