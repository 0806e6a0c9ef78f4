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

type CommentRepo interface {
	ListComments(ctx context.Context, postID int64) ([]model.Comment, error)
	CreateComment(ctx context.Context, in *dto.CommentCreateDTO) (*model.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type CommentRepoImpl struct {
	api *apiclient.Client
}

func NewCommentRepo(api *apiclient.Client) CommentRepo {
	return &CommentRepoImpl{api: api}
}

// ListComments 获取帖子评论
func (s *CommentRepoImpl) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	var out dto.FlexList[dto.CommentDTO]
	query := map[string]string{"post": strconv.FormatInt(postID, 10)}
	if err := s.api.Get(ctx, consts.CommentsPath, query, &out); err != nil {
		return nil, errors.Wrapf(err, "list comments of post %d", postID)
	}
	comments := make([]model.Comment, 0, len(out.Items))
	for i := range out.Items {
		comments = append(comments, toComment(&out.Items[i]))
	}
	return comments, nil
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, in *dto.CommentCreateDTO) (*model.Comment, error) {
	var out dto.CommentDTO
	if err := s.api.Post(ctx, consts.CommentsPath, in, &out); err != nil {
		return nil, errors.Wrap(err, "create comment")
	}
	c := toComment(&out)
	if c.PostID == 0 {
		c.PostID = in.PostID
	}
	return &c, nil
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf(consts.CommentPath, id)); err != nil {
		return errors.Wrapf(err, "delete comment %d", id)
	}
	return nil
}
