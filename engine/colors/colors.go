package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a linear RGBA quadruple in [0..1].
type Color [4]float32

var (
	White   = Color{1, 1, 1, 1}
	Black   = Color{0, 0, 0, 1}
	Yellow  = Color{1, 1, 0, 1}
	Gray    = Color{0.5, 0.5, 0.5, 1}
	Slate   = Color{0.08, 0.10, 0.12, 1}
	Heading = Color{0.95, 0.85, 0.45, 1}
	Muted   = Color{0.62, 0.65, 0.70, 1}
)

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

func (c Color) RGBA() (r, g, b, a float32) { return c[0], c[1], c[2], c[3] }

// Hex formats c as #rrggbbaa.
func (c Color) Hex() string {
	var sb strings.Builder
	sb.WriteByte('#')
	for _, v := range c {
		fmt.Fprintf(&sb, "%02x", toByte(v))
	}
	return sb.String()
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("colors: invalid hex color %q", s)
	}
	var c Color
	for i := range c {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
		}
		c[i] = float32(v) / 255
	}
	return c, nil
}

// UnmarshalText lets config files spell colors as hex strings.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func toByte(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
