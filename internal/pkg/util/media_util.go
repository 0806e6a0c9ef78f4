package util

import (
	"Agrilink/internal/pkg/consts"
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// IsImage 判断 MIME 是否为图片
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, consts.MimePrefixImage+"/")
}

func IsVideo(contentType string) bool {
	return strings.HasPrefix(contentType, consts.MimePrefixVideo+"/")
}

// CompressImage 压缩图片: JPEG and PNG wider than maxWidth are downscaled to
// maxWidth keeping the aspect ratio. Other inputs are returned unchanged.
func CompressImage(data []byte, contentType string, maxWidth int) ([]byte, error) {
	var format imaging.Format
	switch contentType {
	case consts.MimeJPEG:
		format = imaging.JPEG
	case consts.MimePNG:
		format = imaging.PNG
	default:
		return data, nil
	}
	if maxWidth <= 0 {
		return data, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("读取图片尺寸失败: %w", err)
	}
	if cfg.Width <= maxWidth {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("解码图片失败: %w", err)
	}
	resized := imaging.Resize(img, maxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err = imaging.Encode(&buf, resized, format, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("编码图片失败: %w", err)
	}
	return buf.Bytes(), nil
}

// ObjectName 生成对象名 <userID>/<unix-ms>-<uuid>.<ext>
func ObjectName(userID int64, fileName, contentType string, now time.Time) string {
	return fmt.Sprintf("%d/%d-%s%s", userID, now.UnixMilli(), uuid.NewString(), FileExt(fileName, contentType))
}

// FileExt prefers the file name's extension and falls back to the MIME type.
func FileExt(fileName, contentType string) string {
	if ext := strings.ToLower(filepath.Ext(fileName)); ext != "" {
		return ext
	}
	switch contentType {
	case consts.MimeJPEG:
		return ".jpg"
	case consts.MimePNG:
		return ".png"
	case consts.MimeWebP:
		return ".webp"
	case "video/mp4":
		return ".mp4"
	}
	return ".bin"
}
