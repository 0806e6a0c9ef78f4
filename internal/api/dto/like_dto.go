package dto

// LikeToggleDTO 点赞切换结果
type LikeToggleDTO struct {
	IsLiked   bool  `json:"is_liked"`
	LikeCount int64 `json:"like_count"`
}
