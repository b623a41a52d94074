package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/theme"
)

type styles struct {
	base      lipgloss.Style
	nav       lipgloss.Style
	navActive lipgloss.Style
	navFocus  lipgloss.Style
	heading   lipgloss.Style
	accent    lipgloss.Style
	faint     lipgloss.Style
	code      lipgloss.Style
	errorText lipgloss.Style
	success   lipgloss.Style
	status    lipgloss.Style
}

type palette struct {
	fg, bg, muted, accent, code, err, ok lipgloss.Color
}

var palettes = map[theme.Theme]palette{
	theme.Light: {
		fg: "#1a202c", bg: "#ffffff", muted: "#a0aec0", accent: "#3182ce",
		code: "#2d3748", err: "#e53e3e", ok: "#48bb78",
	},
	theme.Dark: {
		fg: "#e2e8f0", bg: "#1a202c", muted: "#4a5568", accent: "#63b3ed",
		code: "#cbd5e0", err: "#fc8181", ok: "#68d391",
	},
}

func stylesFor(t theme.Theme) styles {
	p := palettes[t]
	base := lipgloss.NewStyle().Foreground(p.fg).Background(p.bg)
	return styles{
		base:      base,
		nav:       base.Foreground(p.muted),
		navActive: base.Foreground(p.accent).Bold(true).Underline(true),
		navFocus:  base.Foreground(p.bg).Background(p.accent),
		heading:   base.Foreground(p.accent).Bold(true),
		accent:    base.Foreground(p.accent),
		faint:     base.Foreground(p.muted).Faint(true),
		code:      base.Foreground(p.code).Italic(true),
		errorText: base.Foreground(p.err),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(p.ok).Padding(0, 1),
		status:    base.Foreground(p.muted),
	}
}
