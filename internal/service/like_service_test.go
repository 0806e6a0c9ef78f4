package service

import (
	"Agrilink/internal/model"
	"Agrilink/internal/store"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestToggleLike_ServerStateWins(t *testing.T) {
	rt := newTestRuntime()
	rt.Store.Dispatch(store.PostAdded{Post: model.Post{ID: 1, LikeCount: 3}})
	repo := new(MockLikeRepo)
	svc := NewLikeService(rt, repo)
	repo.On("ToggleLike", mock.Anything, int64(1)).
		Return(&model.LikeEntry{PostID: 1, IsLiked: true, LikeCount: 10}, nil)

	_, err := svc.ToggleLike(context.Background(), 1)
	require.NoError(t, err)

	e, ok := store.LikeOf(rt.Store.State(), 1)
	require.True(t, ok)
	assert.Equal(t, model.LikeEntry{PostID: 1, IsLiked: true, LikeCount: 10}, e)
	assert.True(t, store.FeedPosts(rt.Store.State())[0].IsLiked)
}

func TestToggleLike_FailureRestoresPriorState(t *testing.T) {
	rt := newTestRuntime()
	rt.Store.Dispatch(store.PostAdded{Post: model.Post{ID: 1, LikeCount: 3}})
	repo := new(MockLikeRepo)
	svc := NewLikeService(rt, repo)

	var optimistic model.LikeEntry
	repo.On("ToggleLike", mock.Anything, int64(1)).
		Run(func(mock.Arguments) {
			optimistic, _ = store.LikeOf(rt.Store.State(), 1)
		}).
		Return(nil, &RequestError{Method: http.MethodPost, Path: "/api/posts/1/like/", Status: 500, Message: "like failed"})

	_, err := svc.ToggleLike(context.Background(), 1)
	require.Error(t, err)

	assert.True(t, optimistic.IsLiked)
	assert.Equal(t, int64(4), optimistic.LikeCount)

	e, ok := store.LikeOf(rt.Store.State(), 1)
	require.True(t, ok)
	assert.False(t, e.IsLiked)
	assert.Equal(t, int64(3), e.LikeCount)
	assert.Equal(t, "like failed", rt.Store.State().Likes.Error)
}

func TestToggleLike_RollbackToPreviousEntry(t *testing.T) {
	rt := newTestRuntime()
	prev := model.LikeEntry{PostID: 1, IsLiked: true, LikeCount: 6}
	rt.Store.Dispatch(store.LikeToggled{Entry: prev})
	repo := new(MockLikeRepo)
	svc := NewLikeService(rt, repo)
	repo.On("ToggleLike", mock.Anything, int64(1)).Return(nil, context.DeadlineExceeded)

	_, err := svc.ToggleLike(context.Background(), 1)

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, prev, rt.Store.State().Likes.Entries[1])
}

func TestFlipLike_FloorsCount(t *testing.T) {
	assert.Equal(t, model.LikeEntry{PostID: 1}, flipLike(model.LikeEntry{PostID: 1, IsLiked: true}))
	assert.Equal(t, model.LikeEntry{PostID: 1, IsLiked: true, LikeCount: 1}, flipLike(model.LikeEntry{PostID: 1}))
}
