package rembg

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// resizeWithinMax 缩放（最长边 <= maxSize），maxSize <= 0 不缩放
func resizeWithinMax(img image.Image, maxSize int) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	longest := max(w, h)

	if maxSize <= 0 || longest <= maxSize {
		return img
	}

	scale := float64(maxSize) / float64(longest)
	newW := max(1, int(float64(w)*scale))
	newH := max(1, int(float64(h)*scale))

	return resize.Resize(uint(newW), uint(newH), img, resize.Lanczos3)
}

// alphaBBox 从 alpha 通道计算主体 bounding box
// alpha > threshold 的像素当作主体，没有主体时 found 为 false
func alphaBBox(img *image.NRGBA, threshold uint8) (bbox image.Rectangle, found bool) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	minX, minY := w, h
	maxX, maxY := 0, 0

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] <= threshold {
				continue
			}
			found = true
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// trimTransparent 裁掉四周全透明的部分，整张全透明时原样返回
func trimTransparent(img *image.NRGBA) *image.NRGBA {
	bbox, found := alphaBBox(img, 0)
	if !found || bbox == img.Bounds() {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, bbox.Dx(), bbox.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bbox.Min, draw.Src)
	return dst
}
