package dragon

import (
	"errors"
	"fmt"
	"strconv"
)

// Color is an RGB stroke color with channels on a 0–255 scale. Channels are
// float64 so colors can be interpolated without quantization; rendering
// backends round when converting to their native representation.
type Color struct {
	R float64
	G float64
	B float64
}

// RGB returns the color with the given channels.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp linearly interpolates between two colors, channel by channel.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + t*(o.R-c.R),
		G: c.G + t*(o.G-c.G),
		B: c.B + t*(o.B-c.B),
	}
}

// Hex formats the color as "#rrggbb", rounding each channel to the nearest
// integer and clamping to [0, 255].
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func (c Color) String() string {
	return c.Hex()
}

func channelByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

var errMalformedHexColor = errors.New("malformed hex color, expected \"#rrggbb\"")

// ParseHexColor parses a color of the form "#rrggbb".
func ParseHexColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, errMalformedHexColor
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", errMalformedHexColor, err)
	}
	return Color{
		R: float64(n >> 16 & 0xFF),
		G: float64(n >> 8 & 0xFF),
		B: float64(n & 0xFF),
	}, nil
}
