// Package shared provides shared utilities for all nicenorm commands.
package shared

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Standard color definitions.
var (
	Red     = lipgloss.Color("1")
	Orange  = lipgloss.Color("208")
	Magenta = lipgloss.Color("5")
)

// Reset is the sequence the renderer emits after every styled span.
const Reset = "\033[0m"

// Palette holds one style per output category. Every style is bound to the
// same renderer, so a palette built without color renders plain text.
type Palette struct {
	InputError lipgloss.Style
	Error      lipgloss.Style
	Warning    lipgloss.Style
	Marker     lipgloss.Style
}

// NewPalette creates a palette writing for w. The color profile is pinned
// instead of detected: ANSI256 when color is enabled, ASCII otherwise.
func NewPalette(w io.Writer, color bool) Palette {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	bold := r.NewStyle().Bold(true)
	return Palette{
		InputError: bold.Foreground(Red),
		Error:      bold.Foreground(Orange),
		Warning:    bold.Foreground(Magenta),
		Marker:     bold,
	}
}
