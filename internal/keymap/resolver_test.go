package keymap

import "testing"

var sample = []Binding{
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionPageDown, []string{"f", " "}, "Page down", "document"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "document"},
	{ActionToggleCurtains, []string{"c"}, "Toggle curtains", "curtains"},
}

func TestResolver_LookupActions(t *testing.T) {
	r := NewResolver(sample)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{" ", ActionPageDown},
		{"up", ActionScrollUp},
		{"c", ActionToggleCurtains},
		{"x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			b, ok := r.Lookup(tt.key)
			if ok != (tt.want != "") || b.Action != tt.want {
				t.Errorf("Lookup(%q) = (%q, %v), want %q", tt.key, b.Action, ok, tt.want)
			}
		})
	}
}

func TestResolver_Lookup(t *testing.T) {
	r := NewResolver(sample)

	b, ok := r.Lookup("c")
	if !ok {
		t.Fatal("Lookup(c) not found")
	}
	if b.Context != "curtains" || b.Description != "Toggle curtains" {
		t.Errorf("Lookup(c) = %+v", b)
	}

	if _, ok := r.Lookup("x"); ok {
		t.Error("Lookup(x) should not be found")
	}
}

func TestResolver_LaterBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
		{ActionQuit, []string{"q", "esc"}, "Quit", "document"},
	})

	b, _ := r.Lookup("q")
	if b.Context != "document" {
		t.Errorf("later binding should win, got context %q", b.Context)
	}
	if b, _ := r.Lookup("ctrl+c"); b.Context != "global" {
		t.Errorf("ctrl+c context = %q, want global", b.Context)
	}
}

func TestResolver_Empty(t *testing.T) {
	if _, ok := NewResolver(nil).Lookup("q"); ok {
		t.Error("empty resolver should not find q")
	}
}

func TestConflicts(t *testing.T) {
	clean := Conflicts(sample)
	if len(clean) != 0 {
		t.Errorf("Conflicts(sample) = %v, want none", clean)
	}

	got := Conflicts([]Binding{
		{ActionTop, []string{"g"}, "Top", "document"},
		{ActionBottom, []string{"G", "g"}, "Bottom", "document"},
	})
	if len(got) != 1 || got[0] != `"g": top, bottom` {
		t.Errorf("Conflicts() = %v", got)
	}
}
