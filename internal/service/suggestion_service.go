package service

import (
	"Agrilink/internal/model"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
)

type SuggestionService interface {
	FetchSuggestedUsers(ctx context.Context) ([]model.SuggestedUser, error)
	FetchRecommendations(ctx context.Context) ([]model.SuggestedUser, error)
}

type SuggestionServiceImpl struct {
	rt         *Runtime
	followRepo repository.FollowRepo
}

func NewSuggestionService(rt *Runtime, followRepo repository.FollowRepo) SuggestionService {
	return &SuggestionServiceImpl{rt: rt, followRepo: followRepo}
}

// FetchSuggestedUsers 推荐关注
func (s *SuggestionServiceImpl) FetchSuggestedUsers(ctx context.Context) ([]model.SuggestedUser, error) {
	return s.fetch(ctx, store.OpFetchSuggested, s.followRepo.ListSuggested)
}

// FetchRecommendations 基于资料的推荐, replaces the same list
func (s *SuggestionServiceImpl) FetchRecommendations(ctx context.Context) ([]model.SuggestedUser, error) {
	return s.fetch(ctx, store.OpFetchRecommendations, s.followRepo.ListRecommendations)
}

type listUsersFunc func(ctx context.Context) ([]model.SuggestedUser, error)

func (s *SuggestionServiceImpl) fetch(ctx context.Context, op store.Op, list listUsersFunc) ([]model.SuggestedUser, error) {
	ctx, t := s.rt.begin(ctx, op, "suggested/fetch")
	users, err := list(ctx)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.SuggestionsFetched{Meta: t.meta, Users: users})
	return users, nil
}
