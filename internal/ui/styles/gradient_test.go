package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#a78bfa")
	to := lipgloss.Color("#1a1a1a")

	if got := Blend(0, from, to); got != nil {
		t.Errorf("Blend(0) = %v, want nil", got)
	}

	single := Blend(1, from, to)
	if len(single) != 1 || single[0] != from {
		t.Errorf("Blend(1) = %v, want [%s]", single, from)
	}

	steps := Blend(5, from, to)
	if len(steps) != 5 {
		t.Fatalf("len(Blend(5)) = %d, want 5", len(steps))
	}
	for i, c := range steps {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("step %d = %q, want #rrggbb", i, c)
		}
	}
}

func TestWithCurtainColors(t *testing.T) {
	base := T()
	custom := base.WithCurtainColors("#101010", "", "#ffffff")

	if custom.Curtain != "#101010" {
		t.Errorf("Curtain = %s, want #101010", custom.Curtain)
	}
	if custom.CurtainEdge != base.CurtainEdge {
		t.Errorf("CurtainEdge = %s, want unchanged %s", custom.CurtainEdge, base.CurtainEdge)
	}
	if custom.Grip != "#ffffff" {
		t.Errorf("Grip = %s, want #ffffff", custom.Grip)
	}
	if base.Curtain == custom.Curtain {
		t.Error("WithCurtainColors modified the default theme")
	}
}

func TestBlend_Endpoints(t *testing.T) {
	steps := Blend(3, "#000000", "#ffffff")
	if steps[0] != "#000000" || steps[2] != "#ffffff" {
		t.Errorf("Blend(3) = %v, want black to white", steps)
	}
}

func TestBlend_NonHexFallsBackToGray(t *testing.T) {
	got := Blend(1, lipgloss.Color("39"), "#ffffff")
	if got[0] != "#808080" {
		t.Errorf("Blend(1, ansi) = %v, want #808080", got)
	}
}

func TestGradient(t *testing.T) {
	if got := Gradient("", lipgloss.NewStyle(), "#000000", "#ffffff"); got != "" {
		t.Errorf("Gradient(empty) = %q", got)
	}

	out := Gradient("né日", lipgloss.NewStyle().Bold(true), "#000000", "#ffffff")
	if plain := ansi.Strip(out); plain != "né日" {
		t.Errorf("Gradient text = %q, want %q", plain, "né日")
	}
}
