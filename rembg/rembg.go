package rembg

import (
	"image"

	"github.com/apex/log"
)

type Remover interface {
	Remove(img image.Image) (image.Image, error)
}

// Keyer 按固定颜色区间抠掉背景
type Keyer struct {
	Range ColorRange
}

func NewKeyer(r ColorRange) *Keyer {
	return &Keyer{Range: r}
}

func NewDefaultKeyer() *Keyer {
	return NewKeyer(DefaultColorRange)
}

func (k *Keyer) Key(src *Bitmap) (*Bitmap, error) {
	return RemoveBackground(src, k.Range)
}

func (k *Keyer) Remove(img image.Image) (image.Image, error) {
	out, err := k.Key(FromImage(img))
	if err != nil {
		return nil, err
	}
	return out.NRGBA()
}

// RemoveBackground 把落在颜色区间内的像素变为全透明
//
//  1. 3 通道补 alpha=255
//  2. 计算命中区间的 mask
//  3. 取反得到保留 mask
//  4. RGB 原样保留，alpha = alpha & 保留 mask
//
// 输出总是 4 通道，尺寸不变，输入不会被修改
func RemoveBackground(src *Bitmap, r ColorRange) (*Bitmap, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := src.validate(); err != nil {
		return nil, err
	}

	out, err := src.Promote()
	if err != nil {
		return nil, err
	}

	mask, err := InRange(out, r)
	if err != nil {
		return nil, err
	}
	keep := mask.Invert()

	for i, k := range keep.Pix {
		out.Pix[i*4+3] &= k
	}

	log.WithFields(log.Fields{
		"width":      src.Width,
		"height":     src.Height,
		"channels":   src.Channels,
		"range":      r.String(),
		"background": mask.Count(),
	}).Debug("keyed background")

	return out, nil
}
