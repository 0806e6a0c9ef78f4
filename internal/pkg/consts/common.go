package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeWebP = "image/webp"
)

// REST 路径, relative to api.base_url
const (
	PostsPath           = "/posts/"
	PostPath            = "/posts/%d/"
	PostLikePath        = "/api/posts/%d/like/"
	CommentsPath        = "/Comments/"
	CommentPath         = "/Comments/%d/"
	FollowPath          = "/Follow/"
	FollowEdgePath      = "/Follow/%d/"
	SuggestedUsersPath  = "/Follow/suggested/"
	NotificationsPath   = "/notifications/"
	NotificationPath    = "/notifications/%d/"
	UnreadCountPath     = "/notifications/unread-count/"
	MarkAllReadPath     = "/notifications/mark_all_as_read/"
	UserCreatePath      = "/users/create/"
	UserMePath          = "/users/me/"
	ProfilePath         = "/userprofile/profile/"
	ProfileUpdatePath   = "/userprofile/profile/update/"
	RecommendationsPath = "/userprofile/recommendations/"
	DefaultPostOrdering = "-created_at"
)

const (
	DefaultPageSize = 10
)

// trace id 前缀
const (
	TracePrefixOp   = "op-"
	TracePrefixJob  = "job-"
	TracePrefixPush = "push-"
)
