package service

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
)

type CommentService interface {
	FetchComments(ctx context.Context, postID int64) ([]model.Comment, error)
	CreateComment(ctx context.Context, in *dto.CommentCreateDTO) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ClearComments()
}

type CommentServiceImpl struct {
	rt          *Runtime
	commentRepo repository.CommentRepo
}

func NewCommentService(rt *Runtime, commentRepo repository.CommentRepo) CommentService {
	return &CommentServiceImpl{rt: rt, commentRepo: commentRepo}
}

// FetchComments 加载帖子评论, replacing the thread on screen
func (s *CommentServiceImpl) FetchComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	ctx, t := s.rt.begin(ctx, store.OpFetchComments, "comments/fetch")
	comments, err := s.commentRepo.ListComments(ctx, postID)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.CommentsFetched{Meta: t.meta, PostID: postID, Comments: comments})
	return comments, nil
}

// CreateComment 发表评论; the parent post's comment count follows
func (s *CommentServiceImpl) CreateComment(ctx context.Context, in *dto.CommentCreateDTO) (*model.Comment, error) {
	ctx, t := s.rt.begin(ctx, store.OpCreateComment, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}
	comment, err := s.commentRepo.CreateComment(ctx, in)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.CommentCreated{Meta: t.meta, Comment: *comment})
	return comment, nil
}

// DeleteComment 删除评论. The post whose count is decremented is resolved from
// the loaded thread; a comment outside it leaves every count untouched.
func (s *CommentServiceImpl) DeleteComment(ctx context.Context, commentID int64) error {
	var postID int64
	for _, c := range s.rt.Store.State().Comments.Comments {
		if c.ID == commentID {
			postID = c.PostID
			break
		}
	}

	ctx, t := s.rt.begin(ctx, store.OpDeleteComment, "")
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return t.reject(err)
	}
	t.fulfill(store.CommentDeleted{Meta: t.meta, CommentID: commentID, PostID: postID})
	return nil
}

func (s *CommentServiceImpl) ClearComments() {
	s.rt.Store.Dispatch(store.CommentsCleared{})
}
