package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - headings, active states
	Secondary lipgloss.Color // Gold/orange - secondary accent

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Status bar background
	BgCursor lipgloss.Color // Selection highlight

	// Borders
	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	// Curtains
	Curtain     lipgloss.Color // Outer edge, fully opaque
	CurtainEdge lipgloss.Color // Inner edge next to the reading band
	Grip        lipgloss.Color // Grip handle
	Shadow      lipgloss.Color // Text just inside the reading band

	// Status colors
	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Heading lipgloss.Style // Document headings
	Code    lipgloss.Style // Inline code
	Link    lipgloss.Style
	Quote   lipgloss.Style
	Shadow  lipgloss.Style // Row under a curtain's inner edge
	Status  lipgloss.Style // Status bar
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	// Bright purple accent
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	// Backgrounds
	BgBase:   lipgloss.Color("#1a1a1a"),
	BgCursor: lipgloss.Color("#303030"),

	// Borders
	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	// Curtains
	Curtain:     lipgloss.Color("#000000"),
	CurtainEdge: lipgloss.Color("#262626"),
	Grip:        lipgloss.Color("#585858"),
	Shadow:      lipgloss.Color("#6c6c6c"),

	// Status
	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// WithCurtainColors returns a copy of t with the curtain colors replaced.
// Empty values keep the current color.
func (t *Theme) WithCurtainColors(curtain, edge, grip string) *Theme {
	c := *t
	c.styles = nil
	if curtain != "" {
		c.Curtain = lipgloss.Color(curtain)
	}
	if edge != "" {
		c.CurtainEdge = lipgloss.Color(edge)
	}
	if grip != "" {
		c.Grip = lipgloss.Color(grip)
	}
	return &c
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Heading: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Code: lipgloss.NewStyle().
			Foreground(t.Secondary),
		Link: lipgloss.NewStyle().
			Foreground(t.Primary).
			Underline(true),
		Quote: lipgloss.NewStyle().
			Foreground(t.FgMuted).
			Italic(true),
		Shadow: lipgloss.NewStyle().
			Foreground(t.Shadow).
			Faint(true),
		Status: lipgloss.NewStyle().
			Background(t.BgBase).
			Foreground(t.FgMuted),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
