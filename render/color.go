package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/ant-colony/core"
)

// minFade keeps nearly evaporated markers visible
const minFade = 0.25

// ToTcell converts a color tag to a true-color tcell color
func ToTcell(c core.Color) tcell.Color {
	return tcell.NewHexColor(int32(c))
}

func toColorful(c core.Color) colorful.Color {
	rgb := c.RGB()
	return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
}

func fromColorful(c colorful.Color) core.Color {
	r, g, b := c.Clamped().RGB255()
	return core.ColorFromRGB(core.RGB{R: r, G: g, B: b})
}

// Fade blends c toward background in Lab space; t = 1 is full color, t = 0 is minFade
func Fade(c, background core.Color, t float64) core.Color {
	t = minFade + (1-minFade)*max(0, min(1, t))
	return fromColorful(toColorful(background).BlendLab(toColorful(c), t))
}
