package store

import "Agrilink/internal/model"

// PostsState 帖子列表
type PostsState struct {
	Posts       []model.Post
	CurrentPost *model.Post
	Creating    bool
	Loading     bool
	Updating    bool
	Deleting    bool
	Error       string
	HasMore     bool
	NextPage    int
	TotalCount  int64
	// Written is the request seq that last changed each post, deletes
	// included. A response to an older request leaves such a post alone.
	Written map[int64]uint64
}

func initialPosts() PostsState {
	return PostsState{HasMore: true, NextPage: 1, Written: map[int64]uint64{}}
}

func reducePosts(s PostsState, a Action) PostsState {
	switch a := a.(type) {
	case Pending:
		if !s.setFlag(a.Op, true) {
			return s
		}
		s.Error = ""
	case Rejected:
		if !s.setFlag(a.Op, false) {
			return s
		}
		if a.Err != "" {
			s.Error = a.Err
		}
	case PostCreated:
		s.Creating = false
		s.Posts = prependPost(s.Posts, a.Post)
		s.Written = markWritten(s.Written, a.Seq, a.Post.ID)
	case PostAdded:
		s.Posts = prependPost(s.Posts, a.Post)
	case PostsFetched:
		s.Loading = false
		fresh := freshPosts(s.Written, a.Seq, a.Posts)
		s.Posts = mergePosts(s.Posts, fresh)
		s.Written = markWritten(s.Written, a.Seq, postIDs(fresh)...)
		s.HasMore = a.HasMore
		s.NextPage = a.Page + 1
		s.TotalCount = a.TotalCount
	case PostFetched:
		s.Loading = false
		p := a.Post
		if s.Written[p.ID] > a.Seq {
			if local, ok := findPost(s.Posts, p.ID); ok {
				s.CurrentPost = &local
			}
			return s
		}
		s.CurrentPost = &p
		s.Posts = replacePost(s.Posts, p)
		s.Written = markWritten(s.Written, a.Seq, p.ID)
	case PostUpdated:
		s.Updating = false
		if s.Written[a.Post.ID] > a.Seq {
			return s
		}
		s.Posts = replacePost(s.Posts, a.Post)
		if s.CurrentPost != nil && s.CurrentPost.ID == a.Post.ID {
			p := a.Post
			s.CurrentPost = &p
		}
		s.Written = markWritten(s.Written, a.Seq, a.Post.ID)
	case PostDeleted:
		s.Deleting = false
		s.Posts = removePost(s.Posts, a.PostID)
		if s.CurrentPost != nil && s.CurrentPost.ID == a.PostID {
			s.CurrentPost = nil
		}
		s.Written = markWritten(s.Written, a.Seq, a.PostID)
	case CommentCreated:
		s = adjustCommentCount(s, a.Comment.PostID, 1)
		s.Written = markWritten(s.Written, a.Seq, a.Comment.PostID)
	case CommentDeleted:
		if a.PostID == 0 {
			return s
		}
		s = adjustCommentCount(s, a.PostID, -1)
		s.Written = markWritten(s.Written, a.Seq, a.PostID)
	case PostErrorCleared:
		s.Error = ""
	case SessionReset:
		return initialPosts()
	}
	return s
}

func (s *PostsState) setFlag(op Op, v bool) bool {
	switch op {
	case OpCreatePost:
		s.Creating = v
	case OpFetchPosts, OpFetchPost:
		s.Loading = v
	case OpUpdatePost:
		s.Updating = v
	case OpDeletePost:
		s.Deleting = v
	default:
		return false
	}
	return true
}

// mergePosts replaces known ids in place and appends the rest in order.
func mergePosts(existing, incoming []model.Post) []model.Post {
	out := make([]model.Post, len(existing), len(existing)+len(incoming))
	copy(out, existing)
	index := make(map[int64]int, len(out)+len(incoming))
	for i, p := range out {
		index[p.ID] = i
	}
	for _, p := range incoming {
		if i, ok := index[p.ID]; ok {
			out[i] = p
			continue
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	return out
}

// freshPosts drops the posts a request newer than seq has already written.
func freshPosts(written map[int64]uint64, seq uint64, posts []model.Post) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if written[p.ID] <= seq {
			out = append(out, p)
		}
	}
	return out
}

func postIDs(posts []model.Post) []int64 {
	ids := make([]int64, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	return ids
}

func findPost(posts []model.Post, id int64) (model.Post, bool) {
	for _, p := range posts {
		if p.ID == id {
			return p, true
		}
	}
	return model.Post{}, false
}

func prependPost(posts []model.Post, p model.Post) []model.Post {
	out := make([]model.Post, 0, len(posts)+1)
	out = append(out, p)
	for _, old := range posts {
		if old.ID != p.ID {
			out = append(out, old)
		}
	}
	return out
}

func replacePost(posts []model.Post, p model.Post) []model.Post {
	for i := range posts {
		if posts[i].ID == p.ID {
			out := make([]model.Post, len(posts))
			copy(out, posts)
			out[i] = p
			return out
		}
	}
	return posts
}

func removePost(posts []model.Post, id int64) []model.Post {
	out := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}

func adjustCommentCount(s PostsState, postID int64, delta int64) PostsState {
	bump := func(n int64) int64 {
		n += delta
		if n < 0 {
			return 0
		}
		return n
	}
	for i := range s.Posts {
		if s.Posts[i].ID == postID {
			out := make([]model.Post, len(s.Posts))
			copy(out, s.Posts)
			out[i].CommentCount = bump(out[i].CommentCount)
			s.Posts = out
			break
		}
	}
	if s.CurrentPost != nil && s.CurrentPost.ID == postID {
		p := *s.CurrentPost
		p.CommentCount = bump(p.CommentCount)
		s.CurrentPost = &p
	}
	return s
}
