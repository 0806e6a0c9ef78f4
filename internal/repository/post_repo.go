package repository

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/apiclient"
	"Agrilink/internal/pkg/consts"
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// PostPage 帖子分页结果
type PostPage struct {
	Posts   []model.Post
	Count   int64
	HasNext bool
}

type PostRepo interface {
	CreatePost(ctx context.Context, in *dto.CreatePostDTO) (*model.Post, error)
	ListPosts(ctx context.Context, page, limit int) (*PostPage, error)
	GetPost(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, in *dto.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type PostRepoImpl struct {
	api *apiclient.Client
}

func NewPostRepo(api *apiclient.Client) PostRepo {
	return &PostRepoImpl{api: api}
}

// CreatePost 发帖 multipart
func (s *PostRepoImpl) CreatePost(ctx context.Context, in *dto.CreatePostDTO) (*model.Post, error) {
	form := apiclient.NewForm().
		Add("title", in.Title).
		Add("content", in.Content).
		Add("post_type", in.PostType)
	for _, tag := range in.Tags {
		form.Add("tags_ids", tag)
	}
	for _, f := range in.Media {
		form.AddFile("media_uploads", f.Name, f.ContentType, f.Data)
	}

	var out dto.PostDTO
	if err := s.api.SendMultipart(ctx, "POST", consts.PostsPath, form, &out); err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	post := toPost(&out)
	return &post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, page, limit int) (*PostPage, error) {
	query := map[string]string{
		"page":     strconv.Itoa(page),
		"limit":    strconv.Itoa(limit),
		"ordering": consts.DefaultPostOrdering,
	}
	var out dto.FlexList[dto.PostDTO]
	if err := s.api.Get(ctx, consts.PostsPath, query, &out); err != nil {
		return nil, errors.Wrapf(err, "list posts page %d", page)
	}
	return &PostPage{Posts: toPosts(out.Items), Count: out.Count, HasNext: out.Next}, nil
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	var out dto.PostDTO
	if err := s.api.Get(ctx, fmt.Sprintf(consts.PostPath, id), nil, &out); err != nil {
		return nil, errors.Wrapf(err, "get post %d", id)
	}
	post := toPost(&out)
	return &post, nil
}

// UpdatePost 全量替换媒体: surviving media are re-sent as existing_media_urls
func (s *PostRepoImpl) UpdatePost(ctx context.Context, in *dto.UpdatePostDTO) (*model.Post, error) {
	form := apiclient.NewForm().
		Add("title", in.Title).
		Add("content", in.Content).
		Add("post_type", in.PostType)
	for _, tag := range in.Tags {
		form.Add("tags_names", tag)
	}
	for _, id := range in.MediaToRemove {
		form.Add("media_to_remove", strconv.FormatInt(id, 10))
	}
	for _, m := range in.ExistingMedia {
		form.Add("existing_media_urls", m.URL)
	}
	for _, f := range in.Media {
		form.AddFile("media_uploads", f.Name, f.ContentType, f.Data)
	}

	var out dto.PostDTO
	if err := s.api.SendMultipart(ctx, "PATCH", fmt.Sprintf(consts.PostPath, in.PostID), form, &out); err != nil {
		return nil, errors.Wrapf(err, "update post %d", in.PostID)
	}
	post := toPost(&out)
	return &post, nil
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf(consts.PostPath, id)); err != nil {
		return errors.Wrapf(err, "delete post %d", id)
	}
	return nil
}
