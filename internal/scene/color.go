package scene

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// RGB is a color with channels in [0, 1], the range transition
// interpolation works in.
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// Lerp blends toward `to` in RGB space. t=0 returns the receiver, t=1
// returns `to`.
func (c RGB) Lerp(to RGB, t float64) RGB {
	blended := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: to.R, G: to.G, B: to.B}, t)
	return RGB{R: blended.R, G: blended.G, B: blended.B}
}

// NRGBA converts to an 8-bit color with the given opacity.
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.R),
		G: channelByte(c.G),
		B: channelByte(c.B),
		A: channelByte(alpha),
	}
}

// Scaled returns the color with all channels multiplied by f and clamped.
func (c RGB) Scaled(f float64) RGB {
	return RGB{R: clamp01(c.R * f), G: clamp01(c.G * f), B: clamp01(c.B * f)}
}

func channelByte(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParseColor accepts SVG 1.1 color names ("tomato") and hex strings
// ("#ff6347").
func ParseColor(s string) (RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGB{R: c.R, G: c.G, B: c.B}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return RGB{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}, nil
	}
	return RGB{}, fmt.Errorf("unknown color name %q", s)
}
