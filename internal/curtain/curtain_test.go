package curtain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/curtains/internal/drag"
	"github.com/llehouerou/curtains/internal/geometry"
)

type fakeSurface struct {
	metrics geometry.Metrics
	scroll  map[int]func()
	resize  map[int]func()
	nextID  int
}

func newFakeSurface(vh, scrollY, doc float64) *fakeSurface {
	return &fakeSurface{
		metrics: geometry.Metrics{ViewportHeight: vh, ScrollY: scrollY, DocumentHeight: doc},
		scroll:  make(map[int]func()),
		resize:  make(map[int]func()),
	}
}

func (s *fakeSurface) Metrics() geometry.Metrics { return s.metrics }

func (s *fakeSurface) OnScroll(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.scroll[id] = fn
	return func() { delete(s.scroll, id) }
}

func (s *fakeSurface) OnResize(fn func()) func() {
	id := s.nextID
	s.nextID++
	s.resize[id] = fn
	return func() { delete(s.resize, id) }
}

func (s *fakeSurface) scrollTo(y float64) {
	s.metrics.ScrollY = y
	for _, fn := range s.scroll {
		fn()
	}
}

func (s *fakeSurface) resizeTo(vh float64) {
	s.metrics.ViewportHeight = vh
	for _, fn := range s.resize {
		fn()
	}
}

type fakeStore struct {
	loaded  float64
	saved   []float64
	flushes int
}

func (s *fakeStore) Load() float64  { return s.loaded }
func (s *fakeStore) Save(r float64) { s.saved = append(s.saved, r) }
func (s *fakeStore) Flush()         { s.flushes++ }

func TestNew_InitialGeometry(t *testing.T) {
	surface := newFakeSurface(1000, 300, 2000)
	inst := New(surface, &fakeStore{loaded: 0.4}, 0)

	assert.InDelta(t, 0.4, inst.Ratio(), 1e-9)
	assert.InDelta(t, 300, inst.Top.Height, 1e-9)
	assert.InDelta(t, 400, inst.Bottom.Height, 1e-9)
	assert.Len(t, surface.scroll, 1)
	assert.Len(t, surface.resize, 1)
	assert.False(t, inst.Overlay().Active())
}

func TestNew_ClampsLoadedRatio(t *testing.T) {
	inst := New(newFakeSurface(40, 0, 100), &fakeStore{loaded: 0.9}, 0)
	assert.InDelta(t, geometry.MaxRatio, inst.Ratio(), 1e-9)
}

func TestInstance_FollowsScrollAndResize(t *testing.T) {
	surface := newFakeSurface(1000, 0, 2000)
	inst := New(surface, &fakeStore{loaded: 0.4}, 0)

	assert.InDelta(t, 0, inst.Top.Height, 1e-9)
	assert.InDelta(t, 400, inst.Bottom.Height, 1e-9)

	surface.scrollTo(900)
	assert.InDelta(t, 400, inst.Top.Height, 1e-9)
	assert.InDelta(t, 100, inst.Bottom.Height, 1e-9)

	surface.resizeTo(500)
	assert.InDelta(t, 200, inst.Top.Height, 1e-9)
	assert.InDelta(t, 200, inst.Bottom.Height, 1e-9)
}

func TestInstance_ResizeUpdatesBothBarsAndSaves(t *testing.T) {
	surface := newFakeSurface(1000, 500, 3000)
	store := &fakeStore{loaded: 0.3}
	inst := New(surface, store, 0)

	inst.Resize(drag.Top, 50)

	assert.InDelta(t, 0.35, inst.Ratio(), 1e-9)
	assert.InDelta(t, 350, inst.Top.Height, 1e-9)
	assert.InDelta(t, 350, inst.Bottom.Height, 1e-9)
	require.Len(t, store.saved, 1)
	assert.InDelta(t, 0.35, store.saved[0], 1e-9)

	inst.Resize(drag.Bottom, 50)
	assert.InDelta(t, 0.3, inst.Ratio(), 1e-9)
}

func TestInstance_DragThroughController(t *testing.T) {
	surface := newFakeSurface(1000, 500, 3000)
	inst := New(surface, &fakeStore{loaded: 0.3}, 0)

	inst.Drag().Press(drag.Top, 299)
	inst.Drag().Move(349, true)

	assert.InDelta(t, 0.35, inst.Ratio(), 1e-9)
}

func TestInstance_Grow(t *testing.T) {
	inst := New(newFakeSurface(40, 20, 200), &fakeStore{loaded: 0.25}, 0)

	inst.Grow(1)
	assert.InDelta(t, 0.275, inst.Ratio(), 1e-9)

	for range 100 {
		inst.Grow(-1)
	}
	assert.InDelta(t, geometry.MinRatio, inst.Ratio(), 1e-9)
}

func TestInstance_VisibleRowsFollowTransition(t *testing.T) {
	surface := newFakeSurface(40, 50, 200)
	inst := New(surface, &fakeStore{loaded: 0.25}, time.Second)

	require.Equal(t, 10, inst.Top.Rows())
	assert.Equal(t, 0, inst.VisibleRows(drag.Top))

	start := time.Unix(0, 0)
	inst.Toggle(start)
	inst.Overlay().Advance(start.Add(500 * time.Millisecond))
	assert.Equal(t, 5, inst.VisibleRows(drag.Top))
	assert.Equal(t, 5, inst.VisibleRows(drag.Bottom))

	inst.Overlay().Advance(start.Add(time.Second))
	assert.Equal(t, 10, inst.VisibleRows(drag.Top))
}

func TestInstance_GripAt(t *testing.T) {
	surface := newFakeSurface(40, 50, 200)
	inst := New(surface, &fakeStore{loaded: 0.25}, 0)

	_, ok := inst.GripAt(9)
	assert.False(t, ok, "inactive curtains have no grips")

	inst.Toggle(time.Now())

	grip, ok := inst.GripAt(9)
	assert.True(t, ok)
	assert.Equal(t, drag.Top, grip)

	grip, ok = inst.GripAt(30)
	assert.True(t, ok)
	assert.Equal(t, drag.Bottom, grip)

	_, ok = inst.GripAt(20)
	assert.False(t, ok)
}

func TestInstance_Close(t *testing.T) {
	surface := newFakeSurface(40, 0, 100)
	store := &fakeStore{loaded: 0.4}
	inst := New(surface, store, 0)

	inst.Close()

	assert.Empty(t, surface.scroll)
	assert.Empty(t, surface.resize)
	assert.Equal(t, 1, store.flushes)
}

func TestInstance_ToggleOffEndsDrag(t *testing.T) {
	surface := newFakeSurface(1000, 500, 3000)
	store := &fakeStore{loaded: 0.3}
	inst := New(surface, store, 0)
	now := time.Unix(0, 0)

	require.True(t, inst.Toggle(now))
	inst.Drag().Press(drag.Bottom, 700)
	require.True(t, inst.Drag().Active())

	require.False(t, inst.Toggle(now))
	assert.False(t, inst.Drag().Active())

	inst.Drag().Move(650, true)
	assert.InDelta(t, 0.3, inst.Ratio(), 1e-9)
	assert.Empty(t, store.saved)
}
