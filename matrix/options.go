// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for ResizeBy.
// This file defines:
//   - ResizeOption / resizeOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherResizeOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWidthRule is the width rule used when none is given: start-aligned.
	DefaultWidthRule = Left

	// DefaultHeightRule is the height rule used when none is given: start-aligned.
	DefaultHeightRule = Up
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWidthRuleInvalid  = "matrix: WithWidthRule: rule must be Left, Right, CenterLeft or CenterRight"
	panicHeightRuleInvalid = "matrix: WithHeightRule: rule must be Up, Down, CenterUp or CenterDown"
)

// ResizeOption mutates internal resize options. Safe to apply repeatedly;
// the last setter for a field wins.
type ResizeOption func(*resizeOptions)

// resizeOptions stores the effective configuration after applying options.
type resizeOptions struct {
	widthRule  WidthResizeRule  // DefaultWidthRule
	heightRule HeightResizeRule // DefaultHeightRule
}

// WithWidthRule sets the alignment rule for the horizontal axis.
// Panics if r is not a declared WidthResizeRule.
func WithWidthRule(r WidthResizeRule) ResizeOption {
	if !r.IsValid() {
		panic(panicWidthRuleInvalid)
	}

	return func(o *resizeOptions) { o.widthRule = r }
}

// WithHeightRule sets the alignment rule for the vertical axis.
// Panics if r is not a declared HeightResizeRule.
func WithHeightRule(r HeightResizeRule) ResizeOption {
	if !r.IsValid() {
		panic(panicHeightRuleInvalid)
	}

	return func(o *resizeOptions) { o.heightRule = r }
}

// defaultResizeOptions returns the zero-configuration state.
func defaultResizeOptions() resizeOptions {
	return resizeOptions{
		widthRule:  DefaultWidthRule,
		heightRule: DefaultHeightRule,
	}
}

// gatherResizeOptions applies opts over the defaults in order.
// nil options are skipped.
func gatherResizeOptions(opts ...ResizeOption) resizeOptions {
	o := defaultResizeOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
