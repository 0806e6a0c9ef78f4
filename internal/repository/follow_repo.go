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

type FollowRepo interface {
	ListFollowing(ctx context.Context, followerID int64) ([]model.FollowEdge, error)
	CreateFollow(ctx context.Context, followeeID int64) (*model.FollowEdge, error)
	DeleteFollow(ctx context.Context, edgeID int64) error
	ListSuggested(ctx context.Context) ([]model.SuggestedUser, error)
	ListRecommendations(ctx context.Context) ([]model.SuggestedUser, error)
}

type FollowRepoImpl struct {
	api *apiclient.Client
}

func NewFollowRepo(api *apiclient.Client) FollowRepo {
	return &FollowRepoImpl{api: api}
}

// ListFollowing 获取关注边; followerID 0 lets the server use the caller
func (s *FollowRepoImpl) ListFollowing(ctx context.Context, followerID int64) ([]model.FollowEdge, error) {
	var query map[string]string
	if followerID > 0 {
		query = map[string]string{"follower": strconv.FormatInt(followerID, 10)}
	}
	var out dto.FlexList[dto.FollowDTO]
	if err := s.api.Get(ctx, consts.FollowPath, query, &out); err != nil {
		return nil, errors.Wrap(err, "list following")
	}
	edges := make([]model.FollowEdge, 0, len(out.Items))
	for i := range out.Items {
		edges = append(edges, toFollowEdge(&out.Items[i]))
	}
	return edges, nil
}

func (s *FollowRepoImpl) CreateFollow(ctx context.Context, followeeID int64) (*model.FollowEdge, error) {
	var out dto.FollowDTO
	if err := s.api.Post(ctx, consts.FollowPath, &dto.FollowCreateDTO{Following: followeeID}, &out); err != nil {
		return nil, errors.Wrapf(err, "follow user %d", followeeID)
	}
	edge := toFollowEdge(&out)
	if edge.FolloweeID == 0 {
		edge.FolloweeID = followeeID
	}
	return &edge, nil
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, edgeID int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf(consts.FollowEdgePath, edgeID)); err != nil {
		return errors.Wrapf(err, "delete follow %d", edgeID)
	}
	return nil
}

// ListSuggested 推荐关注
func (s *FollowRepoImpl) ListSuggested(ctx context.Context) ([]model.SuggestedUser, error) {
	var out dto.FlexList[dto.SuggestedUserDTO]
	if err := s.api.Get(ctx, consts.SuggestedUsersPath, nil, &out); err != nil {
		return nil, errors.Wrap(err, "list suggested users")
	}
	users, err := toSuggestedUsers(out.Items)
	return users, errors.Wrap(err, "map suggested users")
}

// ListRecommendations 基于画像的推荐
func (s *FollowRepoImpl) ListRecommendations(ctx context.Context) ([]model.SuggestedUser, error) {
	var out dto.RecommendationsDTO
	if err := s.api.Get(ctx, consts.RecommendationsPath, nil, &out); err != nil {
		return nil, errors.Wrap(err, "list recommendations")
	}
	users, err := toSuggestedUsers(out.SuggestedUsers)
	return users, errors.Wrap(err, "map recommendations")
}
