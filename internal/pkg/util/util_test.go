package util

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, imaging.New(w, h, color.White), nil))
	return buf.Bytes()
}

func TestCompressImage(t *testing.T) {
	small := jpegBytes(t, 100, 50)
	out, err := CompressImage(small, "image/jpeg", 400)
	require.NoError(t, err)
	assert.Equal(t, small, out)

	out, err = CompressImage(jpegBytes(t, 1600, 800), "image/jpeg", 400)
	require.NoError(t, err)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, cfg.Width)
	assert.Equal(t, 200, cfg.Height)

	webp := []byte("RIFF....WEBP")
	out, err = CompressImage(webp, "image/webp", 400)
	require.NoError(t, err)
	assert.Equal(t, webp, out)

	_, err = CompressImage([]byte("garbage"), "image/png", 400)
	assert.Error(t, err)
}

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	name := ObjectName(3, "Field.JPG", "image/jpeg", now)
	assert.True(t, strings.HasPrefix(name, "3/1700000000000-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	assert.True(t, strings.HasSuffix(ObjectName(3, "blob", "image/png", now), ".png"))
	assert.NotEqual(t, ObjectName(3, "a.mp4", "video/mp4", now), ObjectName(3, "a.mp4", "video/mp4", now))
}

func TestMergeTags(t *testing.T) {
	got := MergeTags([]string{" rice ", "wheat", "rice", ""}, "Harvest done #wheat #barley, #barley.")
	assert.Equal(t, []string{"rice", "wheat", "barley"}, got)
	assert.Empty(t, MergeTags(nil, "no tags here"))
}

func TestMediaTypes(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.True(t, IsVideo("video/mp4"))
	assert.False(t, IsImage("application/pdf"))
}

func TestFirstViolation(t *testing.T) {
	type in struct {
		Name string `validate:"required"`
	}
	field, rule, ok := FirstViolation(ValidateDTO(&in{}))
	require.True(t, ok)
	assert.Equal(t, "Name", field)
	assert.Equal(t, "required", rule)

	_, _, ok = FirstViolation(ValidateDTO(&in{Name: "x"}))
	assert.False(t, ok)
}
