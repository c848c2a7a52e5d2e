package rembg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResizeWithinMax(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		maxSize      int
		wantW, wantH int
	}{
		{name: "横图", w: 200, h: 100, maxSize: 50, wantW: 50, wantH: 25},
		{name: "竖图", w: 30, h: 120, maxSize: 60, wantW: 15, wantH: 60},
		{name: "不需要缩放", w: 40, h: 20, maxSize: 40, wantW: 40, wantH: 20},
		{name: "不限制", w: 40, h: 20, maxSize: 0, wantW: 40, wantH: 20},
		{name: "极窄", w: 1000, h: 1, maxSize: 10, wantW: 10, wantH: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resizeWithinMax(image.NewNRGBA(image.Rect(0, 0, tt.w, tt.h)), tt.maxSize)
			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}

func TestAlphaBBox(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	_, found := alphaBBox(img, 0)
	assert.False(t, found)

	img.SetNRGBA(1, 2, color.NRGBA{A: 1})
	img.SetNRGBA(3, 3, color.NRGBA{A: 255})
	bbox, found := alphaBBox(img, 0)
	assert.True(t, found)
	assert.Equal(t, image.Rect(1, 2, 4, 4), bbox)

	bbox, found = alphaBBox(img, 200)
	assert.True(t, found)
	assert.Equal(t, image.Rect(3, 3, 4, 4), bbox)
}

func TestTrimTransparent(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	assert.Same(t, empty, trimTransparent(empty))

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetNRGBA(4, 2, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	got := trimTransparent(img)
	assert.Equal(t, image.Rect(0, 0, 3, 2), got.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, got.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 128}, got.NRGBAAt(2, 1))
}
