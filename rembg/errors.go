package rembg

import "errors"

var (
	// ErrUsage 命令行参数个数不对
	ErrUsage = errors.New("usage")
	// ErrDecode 输入文件不存在、不可读或不是图片
	ErrDecode = errors.New("decode image")
	// ErrEncode 输出格式不支持或无法写入
	ErrEncode = errors.New("encode image")
	// ErrUnsupportedFormat 通道数既不是 3 也不是 4
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrInvalidRange 颜色区间格式错误或下界大于上界
	ErrInvalidRange = errors.New("invalid color range")
)
