package util

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrUnsupportedExt = errors.New("unsupported output extension")

// Encoder 把图片写成某种具体格式
type Encoder func(w io.Writer, img image.Image) error

var encoders = map[string]Encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
	".webp": encodeWebP,
}

// EncoderFor 按扩展名（不区分大小写）选择编码器
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedExt, ext)
	}
	return enc, nil
}

// OpenImage 打开本地图片，保留原有的 alpha 通道
func OpenImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, _, err := image.Decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// SaveImage 按扩展名编码并写入 path，已存在的文件会被覆盖
func SaveImage(path string, img image.Image) (err error) {
	enc, err := EncoderFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err := enc(w, img); err != nil {
		return err
	}
	return w.Flush()
}

// JPEG 不支持 alpha：丢掉透明度，颜色保持不变
func encodeJPEG(w io.Writer, img image.Image) error {
	if src, ok := img.(*image.NRGBA); ok {
		opaque := image.NewNRGBA(src.Rect)
		draw.Draw(opaque, opaque.Rect, src, src.Rect.Min, draw.Src)
		for i := 3; i < len(opaque.Pix); i += 4 {
			opaque.Pix[i] = 0xff
		}
		img = opaque
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// 无损 VP8L，带 alpha
func encodeWebP(w io.Writer, img image.Image) error {
	return nativewebp.Encode(w, img, &nativewebp.Options{})
}
