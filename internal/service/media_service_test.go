package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"Agrilink/internal/model"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 40, G: 160, B: 60, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadMultiple_KeepsOrder(t *testing.T) {
	rt := newTestRuntime()
	loginAs(rt, 7)
	storage := new(MockStorage)
	svc := newTestMedia(rt, storage)
	storage.On("Upload", mock.Anything, "post-images", mock.Anything, mock.Anything, int64(3), "video/mp4").
		Return("http://cdn/a.mp4", nil)
	storage.On("Upload", mock.Anything, "post-images", mock.Anything, mock.Anything, int64(5), "video/mp4").
		Return("http://cdn/b.mp4", nil)

	out, err := svc.UploadMultiple(context.Background(), []model.MediaFile{
		{Name: "a.mp4", ContentType: "video/mp4", Data: []byte("aaa")},
		{Name: "b.mp4", ContentType: "video/mp4", Data: []byte("bbbbb")},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "http://cdn/a.mp4", out[0].URL)
	assert.Equal(t, "http://cdn/b.mp4", out[1].URL)
	assert.True(t, strings.HasPrefix(out[0].ObjectName, "7/"))
	assert.True(t, strings.HasSuffix(out[0].ObjectName, ".mp4"))
}

func TestUploadMultiple_FailureRemovesUploaded(t *testing.T) {
	rt := newTestRuntime()
	loginAs(rt, 7)
	storage := new(MockStorage)
	svc := newTestMedia(rt, storage)
	storage.On("Upload", mock.Anything, "post-images", mock.Anything, mock.Anything, int64(3), "video/mp4").
		Return("http://cdn/a.mp4", nil)
	storage.On("Upload", mock.Anything, "post-images", mock.Anything, mock.Anything, int64(5), "video/mp4").
		Return("", errors.New("bucket unavailable"))
	storage.On("Remove", mock.Anything, "post-images", mock.Anything).Return(nil)

	_, err := svc.UploadMultiple(context.Background(), []model.MediaFile{
		{Name: "a.mp4", ContentType: "video/mp4", Data: []byte("aaa")},
		{Name: "b.mp4", ContentType: "video/mp4", Data: []byte("bbbbb")},
	})

	require.Error(t, err)
	storage.AssertNumberOfCalls(t, "Remove", 1)
}

func TestUploadMedia_RequiresLogin(t *testing.T) {
	svc := newTestMedia(newTestRuntime(), new(MockStorage))

	_, err := svc.UploadMedia(context.Background(), model.MediaFile{Name: "a.mp4", ContentType: "video/mp4"})

	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestUploadAvatar_Limits(t *testing.T) {
	rt := newTestRuntime()
	loginAs(rt, 7)
	storage := new(MockStorage)
	svc := newTestMedia(rt, storage)

	_, err := svc.UploadAvatar(context.Background(), model.MediaFile{Name: "a.gif", ContentType: "image/gif", Data: []byte("GIF89a")})
	assert.ErrorIs(t, err, ErrFileNotSupported)

	big := make([]byte, testUpload.MaxAvatarBytes+1)
	_, err = svc.UploadAvatar(context.Background(), model.MediaFile{Name: "a.png", ContentType: "image/png", Data: big})
	assert.ErrorIs(t, err, ErrFileTooLarge)

	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatar_StoresInAvatarBucket(t *testing.T) {
	rt := newTestRuntime()
	loginAs(rt, 7)
	storage := new(MockStorage)
	svc := newTestMedia(rt, storage)
	storage.On("Upload", mock.Anything, "user-avatars", mock.Anything, mock.Anything, mock.Anything, "image/png").
		Return("http://cdn/avatar.png", nil)

	res, err := svc.UploadAvatar(context.Background(), model.MediaFile{Name: "me.png", ContentType: "image/png", Data: pngBytes(t, 20, 20)})

	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatar.png", res.URL)
}

func TestPreparePostMedia_DownscalesWideImages(t *testing.T) {
	svc := newTestMedia(newTestRuntime(), new(MockStorage))

	out, err := svc.PreparePostMedia([]model.MediaFile{
		{Name: "wide.png", ContentType: "image/png", Data: pngBytes(t, 2000, 100)},
		{Name: "clip.mp4", ContentType: "video/mp4", Data: []byte("v")},
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(out[0].Data))
	require.NoError(t, err)
	assert.Equal(t, testUpload.MaxImageWidth, cfg.Width)
	assert.Equal(t, []byte("v"), out[1].Data)
}
