package store

import "Agrilink/internal/model"

// Action 状态变更事件
type Action interface {
	Type() string
}

// Op names one thunked operation.
type Op string

const (
	OpCreatePost           Op = "posts/createPost"
	OpFetchPosts           Op = "posts/fetchPosts"
	OpFetchPost            Op = "posts/fetchPostById"
	OpUpdatePost           Op = "posts/updatePost"
	OpDeletePost           Op = "posts/deletePost"
	OpFetchComments        Op = "comments/fetchComments"
	OpCreateComment        Op = "comments/createComment"
	OpDeleteComment        Op = "comments/deleteComment"
	OpFetchFollowing       Op = "follow/fetchFollowing"
	OpFollowUser           Op = "follow/followUser"
	OpUnfollowUser         Op = "follow/unfollowUser"
	OpFetchNotifications   Op = "notifications/fetchNotifications"
	OpFetchUnreadCount     Op = "notifications/fetchUnreadCount"
	OpMarkAsRead           Op = "notifications/markAsRead"
	OpMarkAllAsRead        Op = "notifications/markAllAsRead"
	OpDeleteNotification   Op = "notifications/deleteNotification"
	OpToggleLike           Op = "likes/toggleLike"
	OpFetchSuggested       Op = "suggested/fetchUsers"
	OpFetchRecommendations Op = "suggested/fetchRecommendations"
	OpRegister             Op = "auth/register"
	OpLogin                Op = "auth/login"
	OpFetchUser            Op = "auth/fetchUser"
	OpFetchProfile         Op = "profile/fetchProfile"
	OpUpdateProfile        Op = "profile/updateProfile"
)

// Meta identifies the request an outcome belongs to. Outcomes sharing a
// non-empty Key are applied in request order: one older than an outcome
// already applied for that Key is dropped.
type Meta struct {
	Op  Op
	Seq uint64
	Key string
}

func (m Meta) Type() string { return string(m.Op) + "/fulfilled" }

func (m Meta) meta() Meta { return m }

type settled interface {
	meta() Meta
}

// Pending 请求已发出
type Pending struct {
	Op  Op
	Seq uint64
	Key string
}

func (a Pending) Type() string { return string(a.Op) + "/pending" }

// Rejected 请求失败. Err is empty when the caller abandoned the request, which
// only clears the in-flight flag.
type Rejected struct {
	Meta
	Err string
}

func (a Rejected) Type() string { return string(a.Op) + "/rejected" }

// posts

type PostCreated struct {
	Meta
	Post model.Post
}

type PostsFetched struct {
	Meta
	Page       int
	Posts      []model.Post
	TotalCount int64
	HasMore    bool
}

type PostFetched struct {
	Meta
	Post model.Post
}

type PostUpdated struct {
	Meta
	Post model.Post
}

type PostDeleted struct {
	Meta
	PostID int64
}

type PostAdded struct{ Post model.Post }

func (PostAdded) Type() string { return "posts/addPost" }

type PostErrorCleared struct{}

func (PostErrorCleared) Type() string { return "posts/clearError" }

// comments

type CommentsFetched struct {
	Meta
	PostID   int64
	Comments []model.Comment
}

// CommentCreated is consumed by the comment list and by the post counters.
type CommentCreated struct {
	Meta
	Comment model.Comment
}

// CommentDeleted is consumed by the comment list and by the post counters.
type CommentDeleted struct {
	Meta
	CommentID int64
	PostID    int64
}

type CommentsCleared struct{}

func (CommentsCleared) Type() string { return "comments/clearComments" }

// follow edges

type FollowingFetched struct {
	Meta
	Edges []model.FollowEdge
}

// FollowPlaceholderAdded inserts an edge before the server confirmed it.
type FollowPlaceholderAdded struct{ Edge model.FollowEdge }

func (FollowPlaceholderAdded) Type() string { return "follow/placeholderAdded" }

type UserFollowed struct {
	Meta
	PlaceholderID int64
	Edge          model.FollowEdge
}

type FollowRolledBack struct {
	PlaceholderID int64
	TargetID      int64
}

func (FollowRolledBack) Type() string { return "follow/rolledBack" }

type UserUnfollowed struct {
	Meta
	EdgeID   int64
	TargetID int64
}

type FollowErrorCleared struct{}

func (FollowErrorCleared) Type() string { return "follow/clearFollowError" }

// suggestions

type SuggestionsFetched struct {
	Meta
	Users []model.SuggestedUser
}

// notifications

type NotificationsFetched struct {
	Meta
	Page          int
	Notifications []model.Notification
	HasMore       bool
}

type UnreadCountFetched struct {
	Meta
	Count int64
}

// UnreadCountRecomputed falls back to counting the loaded list.
type UnreadCountRecomputed struct{ Meta }

type NotificationRead struct {
	Meta
	ID int64
}

type AllNotificationsRead struct{ Meta }

type NotificationDeleted struct {
	Meta
	ID int64
}

type NotificationAdded struct{ Notification model.Notification }

func (NotificationAdded) Type() string { return "notifications/addNotification" }

type NotificationsCleared struct{}

func (NotificationsCleared) Type() string { return "notifications/clearNotifications" }

type UnreadCountSet struct{ Count int64 }

func (UnreadCountSet) Type() string { return "notifications/updateUnreadCount" }

type NotificationErrorCleared struct{}

func (NotificationErrorCleared) Type() string { return "notifications/clearError" }

// likes

// LikeApplied is the optimistic flip; Seq is the toggle request's.
type LikeApplied struct {
	Seq   uint64
	Entry model.LikeEntry
}

func (LikeApplied) Type() string { return "likes/optimistic" }

type LikeToggled struct {
	Meta
	Entry model.LikeEntry
}

// LikeRolledBack restores the entry captured before the toggle; a nil
// Previous removes the overlay entry.
type LikeRolledBack struct {
	Meta
	PostID   int64
	Previous *model.LikeEntry
}

// auth & profile

type Registered struct {
	Meta
	User *model.User
}

type LoggedIn struct {
	Meta
	User  *model.User
	Token string
}

type UserFetched struct {
	Meta
	User *model.User
}

type SessionRestored struct{ Token string }

func (SessionRestored) Type() string { return "auth/restored" }

// SessionReset returns every user-scoped slice to its initial state.
type SessionReset struct{}

func (SessionReset) Type() string { return "auth/logout" }

type AuthErrorCleared struct{}

func (AuthErrorCleared) Type() string { return "auth/clearError" }

type ProfileFetched struct {
	Meta
	Profile model.Profile
}

type ProfileUpdated struct {
	Meta
	Profile model.Profile
}

type ProfileCleared struct{}

func (ProfileCleared) Type() string { return "profile/clearProfile" }
