// Package style wraps console text in terminal colors. A Style is a plain
// string transform so callers that do not care about color can pass Plain.
package style

import "github.com/fatih/color"

// Style decorates a line of console output.
type Style func(string) string

// Plain returns s unchanged.
func Plain(s string) string { return s }

// From adapts a fatih/color value to a Style. The global color.NoColor
// switch is honoured at call time, so toggling SetEnabled after the style
// was built still takes effect.
func From(c *color.Color) Style {
	return func(s string) string { return c.Sprint(s) }
}

// Per-kind progress colors and the shared UI accents.
var (
	Cyan    = From(color.New(color.FgHiCyan))
	Magenta = From(color.New(color.FgHiMagenta))
	Green   = From(color.New(color.FgHiGreen))
	Yellow  = From(color.New(color.FgHiYellow))
	Gray    = From(color.New(color.FgHiBlack))
	White   = From(color.New(color.FgWhite))
	Red     = From(color.New(color.FgRed))
	Bold    = From(color.New(color.Bold))

	Success   = From(color.New(color.FgHiGreen, color.Bold))
	Title     = From(color.RGB(108, 99, 255).Add(color.Bold))
	Tagline   = From(color.RGB(0, 201, 167).Add(color.Italic))
	Farewell  = From(color.BgRGB(27, 31, 59).Add(color.FgWhite, color.Bold))
	Interrupt = From(color.New(color.BgRed, color.Bold))
)

// SetEnabled switches colored output on or off for every Style.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

// Enabled reports whether styles currently emit escape sequences.
func Enabled() bool {
	return !color.NoColor
}
