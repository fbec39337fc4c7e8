package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/curtains/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		current  int
		width    int
		contains []string
		missing  []string
	}{
		{
			name:     "all tabs fit",
			names:    []string{"README.md", "main.go"},
			current:  0,
			width:    60,
			contains: []string{"1 README.md", "2 main.go"},
		},
		{
			name:     "current tab kept when narrow",
			names:    []string{"alpha.txt", "bravo.txt", "charlie.txt", "delta.txt"},
			current:  3,
			width:    20,
			contains: []string{"4 delta.txt"},
			missing:  []string{"alpha"},
		},
		{
			name:     "long names shortened",
			names:    []string{strings.Repeat("x", 60)},
			current:  0,
			width:    80,
			contains: []string{"…"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testutil.StripANSI(Render(tt.names, tt.current, tt.width))
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want it to contain %q", got, want)
				}
			}
			for _, unwanted := range tt.missing {
				if strings.Contains(got, unwanted) {
					t.Errorf("Render() = %q, should not contain %q", got, unwanted)
				}
			}
			if w := lipgloss.Width(got); w > tt.width {
				t.Errorf("width = %d, exceeds %d", w, tt.width)
			}
		})
	}
}

func TestRender_Empty(t *testing.T) {
	if got := Render(nil, 0, 80); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
	if got := Render([]string{"a"}, 0, 5); got != "" {
		t.Errorf("Render() on tiny width = %q, want empty", got)
	}
}
