package service

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/util"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	"errors"
	"fmt"
)

type PostService interface {
	CreatePost(ctx context.Context, in *dto.CreatePostDTO) (*model.Post, error)
	FetchPosts(ctx context.Context, page, limit int) (*repository.PostPage, error)
	FetchNextPage(ctx context.Context) (*repository.PostPage, error)
	FetchPostByID(ctx context.Context, id int64) (*model.Post, error)
	UpdatePost(ctx context.Context, in *dto.UpdatePostDTO) (*model.Post, error)
	DeletePost(ctx context.Context, id int64) error
	AddPost(post model.Post)
	ClearError()
}

type PostServiceImpl struct {
	rt       *Runtime
	postRepo repository.PostRepo
	media    MediaService
	pageSize int
}

func NewPostService(rt *Runtime, postRepo repository.PostRepo, media MediaService, pageSize int) PostService {
	if pageSize <= 0 {
		pageSize = consts.DefaultPageSize
	}
	return &PostServiceImpl{rt: rt, postRepo: postRepo, media: media, pageSize: pageSize}
}

// CreatePost 发帖, the new post goes to the head of the feed
func (s *PostServiceImpl) CreatePost(ctx context.Context, in *dto.CreatePostDTO) (*model.Post, error) {
	ctx, t := s.rt.begin(ctx, store.OpCreatePost, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}

	req := *in
	req.Tags = util.MergeTags(in.Tags, in.Content)
	media, err := s.media.PreparePostMedia(in.Media)
	if err != nil {
		return nil, t.reject(err)
	}
	req.Media = media

	post, err := s.postRepo.CreatePost(ctx, &req)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.PostCreated{Meta: t.meta, Post: *post})
	return post, nil
}

// FetchPosts 分页获取帖子, merged into the feed by id
func (s *PostServiceImpl) FetchPosts(ctx context.Context, page, limit int) (*repository.PostPage, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	ctx, t := s.rt.begin(ctx, store.OpFetchPosts, fmt.Sprintf("posts/fetch:page=%d", page))
	if err := validate(&dto.PostPageDTO{Page: page, Limit: limit}); err != nil {
		return nil, t.reject(err)
	}

	res, err := s.postRepo.ListPosts(ctx, page, limit)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.PostsFetched{
		Meta:       t.meta,
		Page:       page,
		Posts:      res.Posts,
		TotalCount: res.Count,
		HasMore:    res.HasNext,
	})
	return res, nil
}

// FetchNextPage loads NextPage when the feed has more; nil page means the end.
func (s *PostServiceImpl) FetchNextPage(ctx context.Context) (*repository.PostPage, error) {
	st := s.rt.Store.State().Posts
	if !st.HasMore {
		return nil, nil
	}
	return s.FetchPosts(ctx, st.NextPage, s.pageSize)
}

func (s *PostServiceImpl) FetchPostByID(ctx context.Context, id int64) (*model.Post, error) {
	ctx, t := s.rt.begin(ctx, store.OpFetchPost, fmt.Sprintf("posts/fetch:id=%d", id))
	post, err := s.postRepo.GetPost(ctx, id)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		var re *RequestError
		if errors.As(err, &re) && re.NotFound() {
			err = &NotFoundError{Entity: "post", Key: id}
		}
		return nil, t.reject(err)
	}
	t.fulfill(store.PostFetched{Meta: t.meta, Post: *post})
	return post, nil
}

// UpdatePost 修改帖子, replacing its media set
func (s *PostServiceImpl) UpdatePost(ctx context.Context, in *dto.UpdatePostDTO) (*model.Post, error) {
	ctx, t := s.rt.begin(ctx, store.OpUpdatePost, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}

	req := *in
	req.Tags = util.MergeTags(in.Tags, in.Content)
	media, err := s.media.PreparePostMedia(in.Media)
	if err != nil {
		return nil, t.reject(err)
	}
	req.Media = media

	post, err := s.postRepo.UpdatePost(ctx, &req)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.PostUpdated{Meta: t.meta, Post: *post})
	return post, nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, id int64) error {
	ctx, t := s.rt.begin(ctx, store.OpDeletePost, "")
	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		return t.reject(err)
	}
	t.fulfill(store.PostDeleted{Meta: t.meta, PostID: id})
	return nil
}

// AddPost inserts a post received out of band.
func (s *PostServiceImpl) AddPost(post model.Post) {
	s.rt.Store.Dispatch(store.PostAdded{Post: post})
}

func (s *PostServiceImpl) ClearError() {
	s.rt.Store.Dispatch(store.PostErrorCleared{})
}
