package service

import (
	"Agrilink/internal/model"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	"sync/atomic"
)

type FollowService interface {
	FetchFollowing(ctx context.Context) ([]model.FollowEdge, error)
	FollowUser(ctx context.Context, targetID int64) (*model.FollowEdge, error)
	UnfollowUser(ctx context.Context, targetID int64) error
	SetFollowState(ctx context.Context, targetID int64, follow bool) error
	ClearError()
}

type FollowServiceImpl struct {
	rt          *Runtime
	followRepo  repository.FollowRepo
	placeholder atomic.Int64
}

func NewFollowService(rt *Runtime, followRepo repository.FollowRepo) FollowService {
	return &FollowServiceImpl{rt: rt, followRepo: followRepo}
}

// FetchFollowing 当前用户的关注列表
func (s *FollowServiceImpl) FetchFollowing(ctx context.Context) ([]model.FollowEdge, error) {
	var me int64
	if u := s.rt.Store.State().Auth.User; u != nil {
		me = u.ID
	}

	ctx, t := s.rt.begin(ctx, store.OpFetchFollowing, "follow/fetch")
	edges, err := s.followRepo.ListFollowing(ctx, me)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.FollowingFetched{Meta: t.meta, Edges: edges})
	return edges, nil
}

// FollowUser 关注. An existing edge to targetID, confirmed or still pending,
// makes the call a no-op returning that edge.
func (s *FollowServiceImpl) FollowUser(ctx context.Context, targetID int64) (*model.FollowEdge, error) {
	if edge, ok := store.FollowEdgeFor(s.rt.Store.State(), targetID); ok {
		return &edge, nil
	}

	var me int64
	if u := s.rt.Store.State().Auth.User; u != nil {
		me = u.ID
		if me == targetID {
			return nil, ErrFollowSelf
		}
	}

	placeholderID := -s.placeholder.Add(1)
	s.rt.Store.Dispatch(store.FollowPlaceholderAdded{Edge: model.FollowEdge{
		EdgeID:     placeholderID,
		FollowerID: me,
		FolloweeID: targetID,
		Pending:    true,
	}})
	// a concurrent call may have inserted its edge first
	if edge, ok := store.FollowEdgeFor(s.rt.Store.State(), targetID); ok && edge.EdgeID != placeholderID {
		return &edge, nil
	}

	ctx, t := s.rt.begin(ctx, store.OpFollowUser, "")
	edge, err := s.followRepo.CreateFollow(ctx, targetID)
	if err != nil {
		err = t.reject(err)
		s.rt.Store.Dispatch(store.FollowRolledBack{PlaceholderID: placeholderID, TargetID: targetID})
		return nil, err
	}
	if edge.FollowerID == 0 {
		edge.FollowerID = me
	}
	t.fulfill(store.UserFollowed{Meta: t.meta, PlaceholderID: placeholderID, Edge: *edge})
	return edge, nil
}

// UnfollowUser 取消关注, resolving the edge in the local set
func (s *FollowServiceImpl) UnfollowUser(ctx context.Context, targetID int64) error {
	ctx, t := s.rt.begin(ctx, store.OpUnfollowUser, "")
	edge, ok := store.FollowEdgeFor(s.rt.Store.State(), targetID)
	if !ok {
		return t.reject(&NotFoundError{Entity: "follow", Key: targetID})
	}
	if edge.Pending {
		return t.reject(ErrFollowPending)
	}
	if err := s.followRepo.DeleteFollow(ctx, edge.EdgeID); err != nil {
		return t.reject(err)
	}
	t.fulfill(store.UserUnfollowed{Meta: t.meta, EdgeID: edge.EdgeID, TargetID: targetID})
	return nil
}

// SetFollowState 幂等地设置关注状态
func (s *FollowServiceImpl) SetFollowState(ctx context.Context, targetID int64, follow bool) error {
	if follow {
		_, err := s.FollowUser(ctx, targetID)
		return err
	}
	if !store.IsFollowing(s.rt.Store.State(), targetID) {
		return nil
	}
	return s.UnfollowUser(ctx, targetID)
}

func (s *FollowServiceImpl) ClearError() {
	s.rt.Store.Dispatch(store.FollowErrorCleared{})
}
