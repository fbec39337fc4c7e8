// Package curtain holds the state of one curtain pair: the height ratio,
// both bars, the overlay toggle and the listeners registered on the
// viewing surface.
package curtain

import (
	"math"
	"time"

	"github.com/llehouerou/curtains/internal/drag"
	"github.com/llehouerou/curtains/internal/geometry"
)

// Surface is the document view the curtains cover.
type Surface interface {
	// Metrics returns the current viewport size, scroll offset and
	// document length in rows.
	Metrics() geometry.Metrics
	// OnScroll registers fn to run after every scroll. The returned
	// function removes it.
	OnScroll(fn func()) (unsubscribe func())
	// OnResize registers fn to run after every resize.
	OnResize(fn func()) (unsubscribe func())
}

// Store persists the height ratio.
type Store interface {
	Load() float64
	Save(r float64)
	Flush()
}

// Bar is one curtain. Height is its full extent before the slide
// transition is applied.
type Bar struct {
	Grip   drag.Grip
	Height float64
}

// Rows returns the full height in whole rows.
func (b Bar) Rows() int {
	return geometry.Rows(b.Height)
}

// Instance is a curtain pair bound to one surface.
type Instance struct {
	ratio  float64
	Top    Bar
	Bottom Bar

	overlay *Overlay
	drag    *drag.Controller
	surface Surface
	store   Store

	unsubscribe []func()
}

// New builds an instance: it loads the ratio, subscribes to the surface's
// scroll and resize notifications and computes the initial geometry.
func New(surface Surface, store Store, transition time.Duration) *Instance {
	inst := &Instance{
		ratio:   geometry.ClampRatio(store.Load()),
		Top:     Bar{Grip: drag.Top},
		Bottom:  Bar{Grip: drag.Bottom},
		overlay: NewOverlay(transition),
		surface: surface,
		store:   store,
	}
	inst.drag = drag.New(inst)
	inst.unsubscribe = append(inst.unsubscribe,
		surface.OnScroll(inst.Reposition),
		surface.OnResize(inst.Reposition),
	)
	inst.Reposition()
	return inst
}

// Ratio returns the current height ratio.
func (i *Instance) Ratio() float64 {
	return i.ratio
}

// Reposition recomputes both bar heights from fresh surface metrics.
func (i *Instance) Reposition() {
	bars := geometry.Compute(i.ratio, i.surface.Metrics())
	i.Top.Height = bars.Top
	i.Bottom.Height = bars.Bottom
}

// Resize applies a pointer delta on grip to the ratio, repositions both
// bars and schedules the new ratio to be saved.
func (i *Instance) Resize(grip drag.Grip, delta float64) {
	m := i.surface.Metrics()
	i.ratio = geometry.UpdateRatio(i.ratio, delta, m.ViewportHeight, grip.Sign())
	i.Reposition()
	i.store.Save(i.ratio)
}

// Grow changes the ratio by rows rows, as if the top grip had been dragged
// that far down.
func (i *Instance) Grow(rows float64) {
	i.Resize(drag.Top, rows)
}

// Toggle flips the overlay and returns the new state. Hiding the
// curtains ends any drag in progress.
func (i *Instance) Toggle(now time.Time) bool {
	active := i.overlay.Toggle(now)
	if !active {
		i.drag.Release()
	}
	return active
}

// Overlay returns the toggle state.
func (i *Instance) Overlay() *Overlay {
	return i.overlay
}

// Drag returns the grip drag controller.
func (i *Instance) Drag() *drag.Controller {
	return i.drag
}

// VisibleRows returns how many rows of grip's bar are currently on screen,
// taking the slide transition into account.
func (i *Instance) VisibleRows(grip drag.Grip) int {
	bar := i.Top
	if grip == drag.Bottom {
		bar = i.Bottom
	}
	return int(math.Round(float64(bar.Rows()) * i.overlay.Shown()))
}

// GripAt returns the grip drawn at viewport row, if any. Grips only accept
// presses while the curtains are active.
func (i *Instance) GripAt(row int) (drag.Grip, bool) {
	if !i.overlay.Active() {
		return drag.Top, false
	}
	if top := i.VisibleRows(drag.Top); top > 0 && row == top-1 {
		return drag.Top, true
	}
	vh := int(i.surface.Metrics().ViewportHeight)
	if bottom := i.VisibleRows(drag.Bottom); bottom > 0 && row == vh-bottom {
		return drag.Bottom, true
	}
	return drag.Top, false
}

// Close removes the surface listeners and writes a pending ratio.
func (i *Instance) Close() {
	for _, unsub := range i.unsubscribe {
		unsub()
	}
	i.unsubscribe = nil
	i.store.Flush()
}
