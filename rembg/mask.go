package rembg

import "fmt"

// Mask 与图片同尺寸，每个像素一个字节：0xff 命中，0x00 未命中
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// InRange 四个通道都落在区间内的像素标记为 0xff
func InRange(src *Bitmap, r ColorRange) (*Mask, error) {
	if src.Channels != 4 {
		return nil, fmt.Errorf("%w: mask needs 4 channels, got %d", ErrUnsupportedFormat, src.Channels)
	}

	m := &Mask{Width: src.Width, Height: src.Height, Pix: make([]uint8, src.Width*src.Height)}
	for i := range m.Pix {
		if r.Contains(src.Pix[i*4 : i*4+4]) {
			m.Pix[i] = 0xff
		}
	}
	return m, nil
}

func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Invert 返回按位取反后的新 mask
func (m *Mask) Invert() *Mask {
	inv := &Mask{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	for i, v := range m.Pix {
		inv.Pix[i] = ^v
	}
	return inv
}

// Count 命中的像素个数
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
