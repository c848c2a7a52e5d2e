package rembg

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap 交错存储的 8 位像素缓冲区
//
//	Channels == 1  灰度
//	Channels == 3  R,G,B
//	Channels == 4  R,G,B,A（非预乘 alpha，255 不透明，0 全透明）
//
// 同一个 Bitmap 内所有像素的通道数相同
type Bitmap struct {
	Width    int
	Height   int
	Channels int
	Pix      []uint8
}

func NewBitmap(width, height, channels int) *Bitmap {
	return &Bitmap{
		Width:    width,
		Height:   height,
		Channels: channels,
		Pix:      make([]uint8, width*height*channels),
	}
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Pixel 返回 (x, y) 处像素的各通道值，切片与 Pix 共享内存
func (b *Bitmap) Pixel(x, y int) []uint8 {
	i := (y*b.Width + x) * b.Channels
	return b.Pix[i : i+b.Channels : i+b.Channels]
}

func (b *Bitmap) SetPixel(x, y int, c ...uint8) {
	copy(b.Pixel(x, y), c)
}

func (b *Bitmap) validate() error {
	if b.Width < 0 || b.Height < 0 || b.Channels <= 0 {
		return fmt.Errorf("invalid bitmap %dx%dx%d", b.Width, b.Height, b.Channels)
	}
	if want := b.Width * b.Height * b.Channels; len(b.Pix) != want {
		return fmt.Errorf("bitmap has %d bytes, want %d", len(b.Pix), want)
	}
	return nil
}

func (b *Bitmap) clone() *Bitmap {
	dst := NewBitmap(b.Width, b.Height, b.Channels)
	copy(dst.Pix, b.Pix)
	return dst
}

// Promote 返回 4 通道副本
// 3 通道补一个全不透明（255）的 alpha，颜色不变；4 通道直接复制
func (b *Bitmap) Promote() (*Bitmap, error) {
	switch b.Channels {
	case 4:
		return b.clone(), nil
	case 3:
	default:
		return nil, fmt.Errorf("%w: %d channels", ErrUnsupportedFormat, b.Channels)
	}

	dst := NewBitmap(b.Width, b.Height, 4)
	for i, j := 0, 0; i < len(b.Pix); i, j = i+3, j+4 {
		dst.Pix[j] = b.Pix[i]
		dst.Pix[j+1] = b.Pix[i+1]
		dst.Pix[j+2] = b.Pix[i+2]
		dst.Pix[j+3] = 0xff
	}
	return dst, nil
}

// NRGBA 转成标准库图片，交给编码器
func (b *Bitmap) NRGBA() (*image.NRGBA, error) {
	src, err := b.Promote()
	if err != nil {
		return nil, err
	}
	dst := image.NewNRGBA(b.Bounds())
	copy(dst.Pix, src.Pix)
	return dst, nil
}

// FromImage 按图片原有的通道数读入，不强制转换成固定通道数
//
//	灰度图                      → 1 通道
//	YCbCr / CMYK / 不透明调色板  → 3 通道
//	其余（带 alpha 的格式）       → 4 通道
//
// 16 位图片降为 8 位
func FromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch src := img.(type) {
	case *image.Gray:
		dst := NewBitmap(w, h, 1)
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*w:(y+1)*w], src.Pix[i:i+w])
		}
		return dst
	case *image.Gray16:
		dst := NewBitmap(w, h, 1)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dst.Pix[y*w+x] = uint8(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}
		return dst
	case *image.YCbCr, *image.CMYK:
		return dropAlpha(toNRGBA(img))
	case *image.Paletted:
		if opaquePalette(src.Palette) {
			return dropAlpha(toNRGBA(img))
		}
	}

	nrgba := toNRGBA(img)
	dst := NewBitmap(w, h, 4)
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*w*4:(y+1)*w*4], nrgba.Pix[y*nrgba.Stride:y*nrgba.Stride+w*4])
	}
	return dst
}

func opaquePalette(p color.Palette) bool {
	for _, c := range p {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return false
		}
	}
	return true
}

func dropAlpha(img *image.NRGBA) *Bitmap {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	dst := NewBitmap(w, h, 3)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < w; x++ {
			copy(dst.Pix[(y*w+x)*3:(y*w+x)*3+3], row[x*4:x*4+3])
		}
	}
	return dst
}

// toNRGBA 统一转成原点在 (0,0) 的 NRGBA
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return nrgba
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
