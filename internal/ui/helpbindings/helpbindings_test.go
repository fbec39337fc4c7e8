package helpbindings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/curtains/internal/ui/testutil"
)

func drive(t *testing.T, height int, contexts ...string) (*Model, *testutil.PopupDriver) {
	t.Helper()
	m := New(contexts...)
	return &m, testutil.DrivePopup(t, &m, 80, height)
}

func TestHelpBindings_CloseKeys(t *testing.T) {
	for _, k := range []string{"esc", "q", "?"} {
		t.Run(k, func(t *testing.T) {
			_, d := drive(t, 24, "global")
			d.Keys(k)
			assert.Equal(t, ClosedMsg{}, d.Emitted())
		})
	}
}

func TestHelpBindings_Scroll(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want int
	}{
		{"down arrow", []string{"down", "down"}, 2},
		{"j", []string{"j", "j", "j"}, 3},
		{"back up", []string{"j", "j", "j", "k"}, 2},
		{"up arrow", []string{"down", "up"}, 0},
		{"up at top", []string{"up", "k"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, d := drive(t, 24, Sections...)
			d.Keys(tt.keys...)
			assert.Equal(t, tt.want, m.Offset())
			assert.Nil(t, d.Emitted())
		})
	}
}

func TestHelpBindings_ScrollStopsAtEnd(t *testing.T) {
	m, d := drive(t, 24, Sections...)
	for range 100 {
		d.Keys("j")
	}
	// 26 list rows shown 14 at a time.
	assert.Equal(t, 12, m.Offset())
	assert.Contains(t, d.Text(), "Reload from disk")
}

func TestHelpBindings_View(t *testing.T) {
	_, d := drive(t, 100, Sections...)
	text := d.Text()

	assert.True(t, strings.HasPrefix(text, "Help"))
	assert.Contains(t, text, "?/esc close")
	assert.NotContains(t, text, "j/k scroll")
	for _, want := range []string{"Global", "Curtains", "Document", "Toggle curtains", "q, ctrl+c"} {
		assert.Contains(t, text, want)
	}
}

func TestHelpBindings_FooterOffersScrollWhenClipped(t *testing.T) {
	_, d := drive(t, 24, Sections...)
	assert.Contains(t, d.Text(), "j/k scroll · ?/esc close")
}

func TestHelpBindings_EmptyViewWhenNoSize(t *testing.T) {
	m := New("global")
	assert.Empty(t, m.View())
}

func TestHelpBindings_SetContextsResetsScroll(t *testing.T) {
	m, d := drive(t, 24, Sections...)
	d.Keys("j", "j")
	require.Equal(t, 2, m.Offset())

	m.SetContexts([]string{"global"})
	assert.Equal(t, 0, m.Offset())
}

func TestHelpBindings_SectionOrderIsFixed(t *testing.T) {
	_, d := drive(t, 100, "curtains", "global")
	text := d.Text()

	global := strings.Index(text, "Global")
	curtains := strings.Index(text, "Curtains")
	require.NotEqual(t, -1, global)
	require.NotEqual(t, -1, curtains)
	assert.Less(t, global, curtains)
	assert.NotContains(t, text, "Document")
}

func TestHelpBindings_MouseHints(t *testing.T) {
	_, d := drive(t, 100, "curtains", "document")
	text := d.Text()

	assert.Contains(t, text, "drag grip")
	assert.Contains(t, text, "Resize curtains")
	assert.Contains(t, text, "wheel")
}

func TestHelpBindings_SpaceKeyIsNamed(t *testing.T) {
	_, d := drive(t, 100, "document")
	assert.Contains(t, d.Text(), "f, pgdown, space")
}
