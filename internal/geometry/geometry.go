// Package geometry provides pure functions for curtain height calculations.
//
// All heights are measured in terminal rows but kept as float64 so that the
// ratio arithmetic stays exact; callers convert to whole rows with Rows.
package geometry

import "math"

const (
	// MinRatio is the smallest fraction of the viewport a curtain may cover.
	MinRatio = 0.05
	// MaxRatio is the largest fraction of the viewport a curtain may cover.
	MaxRatio = 0.45
	// DefaultRatio is used when no ratio has been persisted yet.
	DefaultRatio = 0.4
)

// Metrics is a snapshot of the viewing surface. It must be read fresh for
// every computation since scrolling and resizing change it between calls.
type Metrics struct {
	ViewportHeight float64
	ScrollY        float64
	DocumentHeight float64
}

// Bars holds the computed heights of both curtains.
type Bars struct {
	Top    float64
	Bottom float64
}

// Sign returns the drag direction multiplier for a grip.
// Dragging the top grip down grows the top curtain; dragging the bottom
// grip up grows the bottom curtain.
func Sign(top bool) float64 {
	if top {
		return 1
	}
	return -1
}

// TopHeight returns the top curtain height: it never covers more than what
// has been scrolled past.
func TopHeight(ratio float64, m Metrics) float64 {
	return math.Max(0, math.Min(m.ScrollY, m.ViewportHeight*ratio))
}

// BottomHeight returns the bottom curtain height: it never covers more than
// the content left below the viewport.
func BottomHeight(ratio float64, m Metrics) float64 {
	remaining := math.Max(0, m.DocumentHeight-m.ViewportHeight-m.ScrollY)
	return math.Min(remaining, m.ViewportHeight*ratio)
}

// Compute returns both curtain heights for the given ratio and metrics.
func Compute(ratio float64, m Metrics) Bars {
	return Bars{
		Top:    TopHeight(ratio, m),
		Bottom: BottomHeight(ratio, m),
	}
}

// UpdateRatio applies a signed drag delta to the current ratio and clamps the
// result into [MinRatio, MaxRatio].
func UpdateRatio(current, delta, viewportHeight, sign float64) float64 {
	if viewportHeight <= 0 || math.IsNaN(delta) {
		return ClampRatio(current)
	}
	return ClampRatio((viewportHeight*current + sign*delta) / viewportHeight)
}

// ClampRatio restricts r to [MinRatio, MaxRatio]. NaN maps to DefaultRatio.
func ClampRatio(r float64) float64 {
	if math.IsNaN(r) {
		return DefaultRatio
	}
	return math.Min(MaxRatio, math.Max(MinRatio, r))
}

// Rows converts a height to whole terminal rows.
func Rows(h float64) int {
	if h <= 0 || math.IsNaN(h) {
		return 0
	}
	return int(math.Floor(h))
}
