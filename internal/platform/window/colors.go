package window

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blob-arcade/internal/core"
)

// palette converts theme hex colors to image colors, caching each one.
type palette map[core.Color]color.NRGBA

// get returns c at the given alpha. Unparseable colors render magenta so
// they stand out.
func (p palette) get(c core.Color, alpha uint8) color.NRGBA {
	base, ok := p[c]
	if !ok {
		parsed, err := colorful.Hex(string(c))
		if err != nil {
			base = color.NRGBA{R: 0xff, B: 0xff, A: 0xff}
		} else {
			r, g, b := parsed.RGB255()
			base = color.NRGBA{R: r, G: g, B: b, A: 0xff}
		}
		p[c] = base
	}
	base.A = alpha
	return base
}
