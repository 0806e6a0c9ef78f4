package repository

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/apiclient"
	"Agrilink/internal/pkg/consts"
	"context"
	"fmt"

	"github.com/pkg/errors"
)

type LikeRepo interface {
	ToggleLike(ctx context.Context, postID int64) (*model.LikeEntry, error)
}

type LikeRepoImpl struct {
	api *apiclient.Client
}

func NewLikeRepo(api *apiclient.Client) LikeRepo {
	return &LikeRepoImpl{api: api}
}

// ToggleLike 切换点赞, returns the server's state after the toggle
func (s *LikeRepoImpl) ToggleLike(ctx context.Context, postID int64) (*model.LikeEntry, error) {
	var out dto.LikeToggleDTO
	if err := s.api.Post(ctx, fmt.Sprintf(consts.PostLikePath, postID), nil, &out); err != nil {
		return nil, errors.Wrapf(err, "toggle like of post %d", postID)
	}
	return &model.LikeEntry{PostID: postID, IsLiked: out.IsLiked, LikeCount: out.LikeCount}, nil
}
