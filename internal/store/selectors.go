package store

import "Agrilink/internal/model"

// EffectiveLike 点赞状态: overlay entry first, the post's own fields otherwise.
func EffectiveLike(st State, p model.Post) model.LikeEntry {
	if e, ok := st.Likes.Entries[p.ID]; ok {
		return e
	}
	return model.LikeEntry{PostID: p.ID, IsLiked: p.IsLiked, LikeCount: p.LikeCount}
}

// FindPost looks in the feed, then in CurrentPost.
func FindPost(st State, id int64) (model.Post, bool) {
	for _, p := range st.Posts.Posts {
		if p.ID == id {
			return p, true
		}
	}
	if c := st.Posts.CurrentPost; c != nil && c.ID == id {
		return *c, true
	}
	return model.Post{}, false
}

// LikeOf resolves the effective like state of a post by id.
func LikeOf(st State, postID int64) (model.LikeEntry, bool) {
	if e, ok := st.Likes.Entries[postID]; ok {
		return e, true
	}
	p, ok := FindPost(st, postID)
	if !ok {
		return model.LikeEntry{}, false
	}
	return EffectiveLike(st, p), true
}

// FeedPosts returns the feed with the like overlay applied.
func FeedPosts(st State) []model.Post {
	out := make([]model.Post, len(st.Posts.Posts))
	for i, p := range st.Posts.Posts {
		e := EffectiveLike(st, p)
		p.IsLiked, p.LikeCount = e.IsLiked, e.LikeCount
		out[i] = p
	}
	return out
}

func FollowEdgeFor(st State, userID int64) (model.FollowEdge, bool) {
	for _, e := range st.Follow.Following {
		if e.FolloweeID == userID {
			return e, true
		}
	}
	return model.FollowEdge{}, false
}

func IsFollowing(st State, userID int64) bool {
	_, ok := FollowEdgeFor(st, userID)
	return ok
}

// FollowingView joins an edge with the suggested user it points to, if loaded.
type FollowingView struct {
	Edge model.FollowEdge
	User *model.SuggestedUser
}

func FollowingUsers(st State) []FollowingView {
	byID := make(map[int64]int, len(st.Suggested.Users))
	for i, u := range st.Suggested.Users {
		byID[u.ID] = i
	}
	out := make([]FollowingView, 0, len(st.Follow.Following))
	for _, e := range st.Follow.Following {
		v := FollowingView{Edge: e}
		if i, ok := byID[e.FolloweeID]; ok {
			u := st.Suggested.Users[i]
			v.User = &u
		}
		out = append(out, v)
	}
	return out
}

// VisibleSuggestions 推荐列表; followed users are flagged, or left out when hideFollowed.
func VisibleSuggestions(st State, hideFollowed bool) []model.SuggestedUser {
	out := make([]model.SuggestedUser, 0, len(st.Suggested.Users))
	for _, u := range st.Suggested.Users {
		u.IsFollowing = u.IsFollowing || IsFollowing(st, u.ID)
		if hideFollowed && u.IsFollowing {
			continue
		}
		out = append(out, u)
	}
	return out
}

func CountUnread(ns []model.Notification) int64 {
	var n int64
	for _, x := range ns {
		if !x.Read {
			n++
		}
	}
	return n
}

func UnreadNotifications(st State) []model.Notification {
	var out []model.Notification
	for _, n := range st.Notifications.Notifications {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// CommentsFor returns the loaded thread when it belongs to postID.
func CommentsFor(st State, postID int64) []model.Comment {
	if st.Comments.PostID != postID {
		return nil
	}
	return st.Comments.Comments
}

func IsAuthenticated(st State) bool {
	return st.Auth.Token != ""
}
