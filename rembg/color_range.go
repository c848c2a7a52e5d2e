package rembg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ColorRange 按通道的闭区间 [Lower, Upper]
type ColorRange struct {
	Lower color.NRGBA
	Upper color.NRGBA
}

// DefaultColorRange 接近白色且完全不透明的像素
var DefaultColorRange = ColorRange{
	Lower: color.NRGBA{R: 240, G: 240, B: 240, A: 255},
	Upper: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
}

func (r ColorRange) Validate() error {
	lo, hi := channels(r.Lower), channels(r.Upper)
	for i := range lo {
		if lo[i] > hi[i] {
			return fmt.Errorf("%w: lower %s exceeds upper %s", ErrInvalidRange, FormatColor(r.Lower), FormatColor(r.Upper))
		}
	}
	return nil
}

// Contains p 为 R,G,B,A 四个通道
func (r ColorRange) Contains(p []uint8) bool {
	return p[0] >= r.Lower.R && p[0] <= r.Upper.R &&
		p[1] >= r.Lower.G && p[1] <= r.Upper.G &&
		p[2] >= r.Lower.B && p[2] <= r.Upper.B &&
		p[3] >= r.Lower.A && p[3] <= r.Upper.A
}

func (r ColorRange) String() string {
	return "[" + FormatColor(r.Lower) + " - " + FormatColor(r.Upper) + "]"
}

func channels(c color.NRGBA) [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// ParseColor 解析 "r,g,b" 或 "r,g,b,a"，省略 alpha 时为 255
func ParseColor(s string) (color.NRGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not r,g,b[,a]", ErrInvalidRange, s)
	}

	v := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidRange, s, err)
		}
		v[i] = uint8(n)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("%d,%d,%d,%d", c.R, c.G, c.B, c.A)
}
