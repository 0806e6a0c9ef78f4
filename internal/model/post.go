package model

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media 帖子附件
type Media struct {
	ID        int64  `json:"id,omitempty"`
	Type      string `json:"type"`
	URL       string `json:"url"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Alt       string `json:"alt,omitempty"`
}

// Author is the denormalized author block the feed renders.
type Author struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
	FarmType  string `json:"farm_type,omitempty"`
}

type Post struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content"`
	Type         string   `json:"post_type"`
	Author       Author   `json:"author"`
	CreatedAt    string   `json:"created_at"`
	LikeCount    int64    `json:"like_count"`
	CommentCount int64    `json:"comment_count"`
	ViewCount    int64    `json:"view_count"`
	Tags         []string `json:"tags,omitempty"`
	Media        []Media  `json:"media,omitempty"`
	IsLiked      bool     `json:"is_liked"`
}
