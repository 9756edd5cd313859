package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"midiwire/midi"
)

type Theme struct {
	Palette *Palette
	NoColor bool
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Theme{Palette: palette}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted          = 0.2 // purple-magenta
	RoleFG             = 0.4 // pink-purple (readable)
	RoleChannelVoice   = 0.5 // vivid magenta
	RoleSystemCommon   = 0.6 // rose pink
	RoleSystemRealTime = 0.7 // soft red
	RoleError          = 0.8 // orange
	RoleSystemExcl     = 1.0 // bright yellow
)

// CategoryRole returns the palette position used for a message category
func CategoryRole(c midi.Category) float64 {
	switch c {
	case midi.CategoryChannelVoice:
		return RoleChannelVoice
	case midi.CategorySystemCommon:
		return RoleSystemCommon
	case midi.CategorySystemRealTime:
		return RoleSystemRealTime
	case midi.CategorySystemExclusive:
		return RoleSystemExcl
	}
	return RoleFG
}

// Style helpers

func (t *Theme) FG() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Muted() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Error() lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(RoleError))
}

// Category returns the color for a message category
func (t *Theme) Category(c midi.Category) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(CategoryRole(c)))
}

// KindStyle is the bold header style for a message kind
func (t *Theme) KindStyle(k midi.Kind) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(t.Category(k.Category())).Bold(true)
}

// MutedStyle is used for raw bytes and secondary text
func (t *Theme) MutedStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(t.Muted())
}

// ErrorStyle is used for decode failures
func (t *Theme) ErrorStyle() lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(t.Error())
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
