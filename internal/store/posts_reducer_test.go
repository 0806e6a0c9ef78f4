package store

import (
	"testing"

	"Agrilink/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(posts []model.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestReducePosts_PageMergeIsIdempotent(t *testing.T) {
	page := []model.Post{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	s := initialPosts()

	s = reducePosts(s, PostsFetched{Page: 1, Posts: page, HasMore: true, TotalCount: 4})
	once := s.Posts
	s = reducePosts(s, PostsFetched{Page: 1, Posts: page, HasMore: true, TotalCount: 4})

	assert.Equal(t, once, s.Posts)
	assert.Equal(t, 2, s.NextPage)
	assert.True(t, s.HasMore)
	assert.Equal(t, int64(4), s.TotalCount)
}

func TestReducePosts_MergeReplacesInPlaceAndAppends(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostsFetched{Page: 1, Posts: []model.Post{{ID: 1}, {ID: 2}}, HasMore: true})
	s = reducePosts(s, PostsFetched{Page: 2, Posts: []model.Post{{ID: 2, Title: "edited"}, {ID: 3}}})

	assert.Equal(t, []int64{1, 2, 3}, ids(s.Posts))
	assert.Equal(t, "edited", s.Posts[1].Title)
	assert.False(t, s.HasMore)
	assert.Equal(t, 3, s.NextPage)
}

func TestReducePosts_CreatePrependsWithoutTouchingPagination(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostsFetched{Page: 1, Posts: []model.Post{{ID: 1}}, TotalCount: 1, HasMore: false})
	s = reducePosts(s, Pending{Op: OpCreatePost})
	require.True(t, s.Creating)

	s = reducePosts(s, PostCreated{Post: model.Post{ID: 5}})

	assert.False(t, s.Creating)
	assert.Equal(t, []int64{5, 1}, ids(s.Posts))
	assert.Equal(t, int64(1), s.TotalCount)
	assert.Equal(t, 2, s.NextPage)
}

func TestReducePosts_CreateRejectedLeavesListUntouched(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostAdded{Post: model.Post{ID: 1}})
	s = reducePosts(s, Pending{Op: OpCreatePost})
	s = reducePosts(s, Rejected{Meta: Meta{Op: OpCreatePost}, Err: "title required"})

	assert.Equal(t, "title required", s.Error)
	assert.False(t, s.Creating)
	assert.Equal(t, []int64{1}, ids(s.Posts))
}

func TestReducePosts_CancelledClearsFlagOnly(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, Pending{Op: OpFetchPosts})
	s = reducePosts(s, Rejected{Meta: Meta{Op: OpFetchPosts}})

	assert.False(t, s.Loading)
	assert.Empty(t, s.Error)
}

func TestReducePosts_FlagsAreIndependent(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, Pending{Op: OpUpdatePost})
	s = reducePosts(s, Pending{Op: OpDeletePost})
	s = reducePosts(s, PostDeleted{PostID: 1})

	assert.True(t, s.Updating)
	assert.False(t, s.Deleting)
	assert.False(t, s.Loading)
	assert.False(t, s.Creating)
}

func TestReducePosts_UpdateRefreshesCurrentPost(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostsFetched{Page: 1, Posts: []model.Post{{ID: 1}, {ID: 2}}})
	s = reducePosts(s, PostFetched{Post: model.Post{ID: 2, Title: "detail"}})
	require.NotNil(t, s.CurrentPost)

	s = reducePosts(s, PostUpdated{Post: model.Post{ID: 2, Title: "updated"}})

	assert.Equal(t, "updated", s.Posts[1].Title)
	assert.Equal(t, "updated", s.CurrentPost.Title)
}

func TestReducePosts_DeleteClearsCurrentPost(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostFetched{Post: model.Post{ID: 7}})
	s = reducePosts(s, PostAdded{Post: model.Post{ID: 7}})

	s = reducePosts(s, PostDeleted{PostID: 7})

	assert.Nil(t, s.CurrentPost)
	assert.Empty(t, s.Posts)
}

func TestReducePosts_CommentCountsAreSymmetric(t *testing.T) {
	s := initialPosts()
	s = reducePosts(s, PostAdded{Post: model.Post{ID: 1, CommentCount: 2}})
	s = reducePosts(s, PostFetched{Post: model.Post{ID: 1, CommentCount: 2}})

	s = reducePosts(s, CommentCreated{Comment: model.Comment{ID: 10, PostID: 1}})
	assert.Equal(t, int64(3), s.Posts[0].CommentCount)
	assert.Equal(t, int64(3), s.CurrentPost.CommentCount)

	s = reducePosts(s, CommentDeleted{CommentID: 10, PostID: 1})
	assert.Equal(t, int64(2), s.Posts[0].CommentCount)
	assert.Equal(t, int64(2), s.CurrentPost.CommentCount)
}

func TestReducePosts_CommentCountFloorsAtZero(t *testing.T) {
	s := reducePosts(initialPosts(), PostAdded{Post: model.Post{ID: 1}})
	s = reducePosts(s, CommentDeleted{CommentID: 3, PostID: 1})
	assert.Equal(t, int64(0), s.Posts[0].CommentCount)
}

func TestPosts_FeedBegunBeforeUpdateKeepsUpdate(t *testing.T) {
	s := New()
	first := s.Begin(OpFetchPosts, "posts/fetch:page=1")
	s.Dispatch(PostsFetched{Meta: first, Page: 1, Posts: []model.Post{{ID: 1, Title: "old"}}, HasMore: true})

	refresh := s.Begin(OpFetchPosts, "posts/fetch:page=1")
	update := s.Begin(OpUpdatePost, "")
	s.Dispatch(PostUpdated{Meta: update, Post: model.Post{ID: 1, Title: "new"}})

	s.Dispatch(PostsFetched{Meta: refresh, Page: 1, Posts: []model.Post{{ID: 1, Title: "old"}, {ID: 2}}})

	st := s.State().Posts
	assert.Equal(t, []int64{1, 2}, ids(st.Posts))
	assert.Equal(t, "new", st.Posts[0].Title)
	assert.False(t, st.Loading)
	assert.False(t, st.Updating)
}

func TestPosts_FeedBegunBeforeDeleteDoesNotRestorePost(t *testing.T) {
	s := New()
	s.Dispatch(PostsFetched{Meta: s.Begin(OpFetchPosts, "posts/fetch:page=1"), Page: 1,
		Posts: []model.Post{{ID: 1}, {ID: 3}}})

	refresh := s.Begin(OpFetchPosts, "posts/fetch:page=1")
	s.Dispatch(PostDeleted{Meta: s.Begin(OpDeletePost, ""), PostID: 3})
	s.Dispatch(PostsFetched{Meta: refresh, Page: 1, Posts: []model.Post{{ID: 1}, {ID: 3}}})

	assert.Equal(t, []int64{1}, ids(s.State().Posts.Posts))
}

func TestPosts_DetailBegunBeforeCommentKeepsCount(t *testing.T) {
	s := New()
	s.Dispatch(PostFetched{Meta: s.Begin(OpFetchPost, "posts/fetch:id=4"), Post: model.Post{ID: 4, CommentCount: 1}})

	detail := s.Begin(OpFetchPost, "posts/fetch:id=4")
	s.Dispatch(CommentCreated{Meta: s.Begin(OpCreateComment, ""), Comment: model.Comment{ID: 8, PostID: 4}})
	s.Dispatch(PostFetched{Meta: detail, Post: model.Post{ID: 4, CommentCount: 1}})

	st := s.State().Posts
	require.NotNil(t, st.CurrentPost)
	assert.Equal(t, int64(2), st.CurrentPost.CommentCount)
	assert.False(t, st.Loading)
}
