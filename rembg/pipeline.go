package rembg

import (
	"fmt"

	"github.com/apex/log"

	"github.com/chaos-io/rembg/util"
)

type Options struct {
	Range   ColorRange
	MaxSize int  // > 0 时先把最长边缩放到 MaxSize 以内
	Trim    bool // 抠图后裁掉四周透明区域
}

func DefaultOptions() Options {
	return Options{Range: DefaultColorRange}
}

// Run 读取 inputPath，去除背景后写入 outputPath，输出格式由扩展名决定
func Run(inputPath, outputPath string, opts Options) (err error) {
	logger := log.WithFields(log.Fields{"input": inputPath, "output": outputPath})
	defer logger.Trace("remove background").Stop(&err)

	// 先检查输出格式和颜色区间，避免白白解码
	if _, err := util.EncoderFor(outputPath); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if err := opts.Range.Validate(); err != nil {
		return err
	}

	img, err := util.OpenImage(inputPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if opts.MaxSize > 0 {
		before := img.Bounds()
		img = resizeWithinMax(img, opts.MaxSize)
		logger.Debugf("resized %dx%d -> %dx%d", before.Dx(), before.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	keyed, err := NewKeyer(opts.Range).Key(FromImage(img))
	if err != nil {
		return err
	}

	out, err := keyed.NRGBA()
	if err != nil {
		return err
	}
	if opts.Trim {
		out = trimTransparent(out)
		logger.Debugf("trimmed to %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
	}

	if err := util.SaveImage(outputPath, out); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return nil
}
