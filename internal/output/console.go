/*
PURPOSE:
  Writes whole lines to stdout and stderr for echoer.
  Stderr lines are highlighted in bright red when the device supports it.

REQUIREMENTS:
  User-specified:
  - Styling must never change the text that is written, only how it looks.
  - The previous console style is restored after every error write.

  Implementation-discovered:
  - lipgloss Style.Render aligns multi-line blocks and folds \r\n, which
    rewrites content. The renderer is only used to pick the color profile;
    the text itself is wrapped in a bare termenv SGR span.

ARCHITECTURE INTEGRATION:
  - Implements: model.Console
  - Used by: internal/cli (actions and the error boundary)

ERROR HANDLING:
  - Returns the underlying writer error unchanged.

IMPLEMENTATION RULES:
  - Never write stderr text through lipgloss Render.
  - Ascii profile (not a terminal, NO_COLOR) writes text byte-for-byte.

RELATED FILES:
  - internal/config/config.go - ColorMode selection.
*/

package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/daryltucker/echoer/internal/model"
)

// errorColor is bright red.
const errorColor = "9"

// Console writes lines to a pair of streams, highlighting stderr lines when
// the stderr device supports color.
type Console struct {
	Out io.Writer
	Err io.Writer

	errRenderer *lipgloss.Renderer
}

// ColorMode controls whether error lines are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText accepts auto, always or never, in any case.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch mode := ColorMode(strings.ToLower(string(text))); mode {
	case ColorAuto, ColorAlways, ColorNever:
		*m = mode
		return nil
	}
	return fmt.Errorf("color mode %q: want auto, always or never", text)
}

// NewConsole returns a Console over out and errw. In ColorAuto mode the
// color profile is detected from errw.
func NewConsole(out, errw io.Writer, mode ColorMode) *Console {
	r := lipgloss.NewRenderer(errw)
	switch mode {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{Out: out, Err: errw, errRenderer: r}
}

// WriteLine implements model.Console.
func (c *Console) WriteLine(dest model.Destination, text string) error {
	if dest == model.Stderr {
		return c.Errorln(text)
	}
	_, err := fmt.Fprintln(c.Out, text)
	return err
}

// Errorln writes text to the error stream in the error style. The span
// sets the foreground and resets it after the text, so the terminal's
// previous attributes are back in place once the line is written.
func (c *Console) Errorln(text string) error {
	profile := c.errRenderer.ColorProfile()
	if profile == termenv.Ascii {
		_, err := fmt.Fprintln(c.Err, text)
		return err
	}
	styled := profile.String(text).Foreground(profile.Color(errorColor))
	_, err := fmt.Fprintln(c.Err, styled.String())
	return err
}
