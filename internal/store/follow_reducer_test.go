package store

import (
	"testing"

	"Agrilink/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func followees(edges []model.FollowEdge) []int64 {
	out := make([]int64, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.FolloweeID)
	}
	return out
}

func TestReduceFollow_NoDuplicateFollowees(t *testing.T) {
	s := reduceFollow(FollowState{}, FollowingFetched{Edges: []model.FollowEdge{
		{EdgeID: 1, FolloweeID: 10},
		{EdgeID: 2, FolloweeID: 10},
		{EdgeID: 3, FolloweeID: 11},
	}})
	assert.Equal(t, []int64{10, 11}, followees(s.Following))

	s = reduceFollow(s, UserFollowed{PlaceholderID: -1, Edge: model.FollowEdge{EdgeID: 4, FolloweeID: 10}})
	s = reduceFollow(s, FollowPlaceholderAdded{Edge: model.FollowEdge{EdgeID: -2, FolloweeID: 11, Pending: true}})
	assert.Equal(t, []int64{10, 11}, followees(s.Following))
	assert.Equal(t, int64(1), s.Following[0].EdgeID)
}

func TestReduceFollow_PlaceholderReconciled(t *testing.T) {
	s := reduceFollow(FollowState{}, FollowPlaceholderAdded{Edge: model.FollowEdge{EdgeID: -1, FolloweeID: 10, Pending: true}})
	require.True(t, s.Following[0].Pending)

	s = reduceFollow(s, UserFollowed{PlaceholderID: -1, Edge: model.FollowEdge{EdgeID: 77, FollowerID: 1, FolloweeID: 10}})

	require.Len(t, s.Following, 1)
	assert.Equal(t, int64(77), s.Following[0].EdgeID)
	assert.False(t, s.Following[0].Pending)
}

func TestReduceFollow_PlaceholderRolledBack(t *testing.T) {
	s := reduceFollow(FollowState{}, FollowingFetched{Edges: []model.FollowEdge{{EdgeID: 1, FolloweeID: 5}}})
	s = reduceFollow(s, FollowPlaceholderAdded{Edge: model.FollowEdge{EdgeID: -1, FolloweeID: 10, Pending: true}})

	s = reduceFollow(s, FollowRolledBack{PlaceholderID: -1, TargetID: 10})

	assert.Equal(t, []int64{5}, followees(s.Following))
}

func TestReduceFollow_UnfollowRemovesEdge(t *testing.T) {
	s := reduceFollow(FollowState{}, FollowingFetched{Edges: []model.FollowEdge{{EdgeID: 1, FolloweeID: 5}, {EdgeID: 2, FolloweeID: 6}}})
	s = reduceFollow(s, UserUnfollowed{EdgeID: 1, TargetID: 5})
	assert.Equal(t, []int64{6}, followees(s.Following))
}

func TestReduceFollow_RejectionKeepsEdges(t *testing.T) {
	s := reduceFollow(FollowState{}, FollowingFetched{Edges: []model.FollowEdge{{EdgeID: 1, FolloweeID: 5}}})
	s = reduceFollow(s, Pending{Op: OpUnfollowUser})
	s = reduceFollow(s, Rejected{Meta: Meta{Op: OpUnfollowUser}, Err: "follow 9 不存在"})

	assert.Equal(t, "follow 9 不存在", s.Error)
	assert.False(t, s.Loading)
	assert.Len(t, s.Following, 1)
}

func TestReduceSuggested_FlagsInsteadOfRemoving(t *testing.T) {
	s := reduceSuggested(SuggestedState{}, SuggestionsFetched{Users: []model.SuggestedUser{
		{ID: 10, FollowerCount: 3},
		{ID: 11},
	}})

	s = reduceSuggested(s, UserFollowed{Edge: model.FollowEdge{EdgeID: 1, FolloweeID: 10}})
	require.Len(t, s.Users, 2)
	assert.True(t, s.Users[0].IsFollowing)
	assert.Equal(t, int64(4), s.Users[0].FollowerCount)

	// a second confirmation does not count twice
	s = reduceSuggested(s, UserFollowed{Edge: model.FollowEdge{EdgeID: 1, FolloweeID: 10}})
	assert.Equal(t, int64(4), s.Users[0].FollowerCount)

	s = reduceSuggested(s, UserUnfollowed{EdgeID: 1, TargetID: 10})
	assert.False(t, s.Users[0].IsFollowing)
	assert.Equal(t, int64(3), s.Users[0].FollowerCount)
}
