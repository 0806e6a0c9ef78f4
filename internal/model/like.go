package model

// LikeEntry per-post like overlay
type LikeEntry struct {
	PostID    int64 `json:"post_id"`
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}
