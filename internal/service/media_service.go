package service

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/util"
	"bytes"
	"context"
	"fmt"
	"io"
	log "log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"
)

// ObjectStorage S3 兼容对象存储
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, bucket, objectName string) error
}

// UploadedMedia 上传结果
type UploadedMedia struct {
	URL         string
	ObjectName  string
	Size        int64
	ContentType string
}

var avatarTypes = []string{consts.MimeJPEG, consts.MimePNG, consts.MimeWebP}

type MediaService interface {
	UploadMedia(ctx context.Context, file model.MediaFile) (*UploadedMedia, error)
	UploadMultiple(ctx context.Context, files []model.MediaFile) ([]UploadedMedia, error)
	UploadAvatar(ctx context.Context, file model.MediaFile) (*UploadedMedia, error)
	PreparePostMedia(files []model.MediaFile) ([]model.MediaFile, error)
}

type MediaServiceImpl struct {
	rt           *Runtime
	storage      ObjectStorage
	postBucket   string
	avatarBucket string
	limits       config.UploadConfig
	now          func() time.Time
}

func NewMediaService(rt *Runtime, storage ObjectStorage, minioCfg config.MinIOConfig, limits config.UploadConfig) MediaService {
	return &MediaServiceImpl{
		rt:           rt,
		storage:      storage,
		postBucket:   minioCfg.PostBucket,
		avatarBucket: minioCfg.AvatarBucket,
		limits:       limits,
		now:          time.Now,
	}
}

// UploadMedia 上传帖子媒体到对象存储
func (s *MediaServiceImpl) UploadMedia(ctx context.Context, file model.MediaFile) (*UploadedMedia, error) {
	userID, err := s.rt.currentUserID()
	if err != nil {
		return nil, err
	}
	prepared, err := s.preparePost(file)
	if err != nil {
		return nil, err
	}
	return s.put(ctx, s.postBucket, userID, prepared)
}

// UploadMultiple 并发上传, results keep the input order. The first failure
// cancels the rest and removes what was already stored.
func (s *MediaServiceImpl) UploadMultiple(ctx context.Context, files []model.MediaFile) ([]UploadedMedia, error) {
	userID, err := s.rt.currentUserID()
	if err != nil {
		return nil, err
	}
	prepared, err := s.PreparePostMedia(files)
	if err != nil {
		return nil, err
	}

	results := make([]*UploadedMedia, len(prepared))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range prepared {
		i, f := i, f
		g.Go(func() error {
			res, err := s.put(gctx, s.postBucket, userID, f)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		for _, r := range results {
			if r == nil {
				continue
			}
			if rmErr := s.storage.Remove(context.WithoutCancel(ctx), s.postBucket, r.ObjectName); rmErr != nil {
				log.WarnContext(ctx, "清理已上传文件失败", "object", r.ObjectName, "err", rmErr)
			}
		}
		return nil, err
	}

	out := make([]UploadedMedia, len(results))
	for i, r := range results {
		out[i] = *r
	}
	return out, nil
}

// UploadAvatar 上传头像: jpeg/png/webp only
func (s *MediaServiceImpl) UploadAvatar(ctx context.Context, file model.MediaFile) (*UploadedMedia, error) {
	userID, err := s.rt.currentUserID()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(avatarTypes, file.ContentType) {
		return nil, ErrFileNotSupported
	}
	if int64(len(file.Data)) > s.limits.MaxAvatarBytes {
		return nil, ErrFileTooLarge
	}
	data, err := util.CompressImage(file.Data, file.ContentType, s.limits.MaxImageWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileNotSupported, err)
	}
	file.Data = data
	return s.put(ctx, s.avatarBucket, userID, file)
}

// PreparePostMedia checks type and size and downscales wide images.
func (s *MediaServiceImpl) PreparePostMedia(files []model.MediaFile) ([]model.MediaFile, error) {
	out := make([]model.MediaFile, 0, len(files))
	for _, f := range files {
		p, err := s.preparePost(f)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *MediaServiceImpl) preparePost(f model.MediaFile) (model.MediaFile, error) {
	switch {
	case util.IsImage(f.ContentType):
		if int64(len(f.Data)) > s.limits.MaxPostBytes {
			return f, ErrFileTooLarge
		}
		data, err := util.CompressImage(f.Data, f.ContentType, s.limits.MaxImageWidth)
		if err != nil {
			return f, fmt.Errorf("%w: %v", ErrFileNotSupported, err)
		}
		f.Data = data
	case util.IsVideo(f.ContentType):
	default:
		return f, ErrFileNotSupported
	}
	return f, nil
}

func (s *MediaServiceImpl) put(ctx context.Context, bucket string, userID int64, f model.MediaFile) (*UploadedMedia, error) {
	name := util.ObjectName(userID, f.Name, f.ContentType, s.now())
	size := int64(len(f.Data))
	url, err := s.storage.Upload(ctx, bucket, name, bytes.NewReader(f.Data), size, f.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", f.Name, err)
	}
	log.InfoContext(ctx, "文件已上传", "bucket", bucket, "object", name, "size", size)
	return &UploadedMedia{URL: url, ObjectName: name, Size: size, ContentType: f.ContentType}, nil
}
