package dto

import "Agrilink/internal/model"

// PostDTO 帖子 - 服务端返回
type PostDTO struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	Content          string         `json:"content"`
	PostType         string         `json:"post_type"`
	Author           AuthorDTO      `json:"author"`
	CreatedAt        string         `json:"created_at"`
	LikeCountCalc    int64          `json:"like_count_calc"`
	CommentCountCalc int64          `json:"comment_count_calc"`
	ViewCount        int64          `json:"view_count"`
	Tags             []TagDTO       `json:"tags"`
	MediaFiles       []MediaFileDTO `json:"media_files"`
	IsLiked          bool           `json:"is_liked"`
}

type AuthorDTO struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	FarmType  string `json:"farm_type"`
}

type TagDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MediaFileDTO struct {
	ID           int64  `json:"id"`
	MediaType    string `json:"media_type"`
	FileURL      string `json:"file_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	AltText      string `json:"alt_text"`
}

// CreatePostDTO 帖子 - 新增
type CreatePostDTO struct {
	Title    string            `validate:"required,max=255"`
	Content  string            `validate:"required,max=5000"`
	PostType string            `validate:"required,max=32"`
	Tags     []string          `validate:"max=20,dive,min=1,max=64"`
	Media    []model.MediaFile `validate:"max=10"`
}

// UpdatePostDTO 帖子 - 修改. Media is replaced wholesale: ExistingMedia is the
// full set that survives, MediaToRemove the ids dropped, Media the new uploads.
type UpdatePostDTO struct {
	PostID        int64             `validate:"required,gt=0"`
	Title         string            `validate:"required,max=255"`
	Content       string            `validate:"required,max=5000"`
	PostType      string            `validate:"required,max=32"`
	Tags          []string          `validate:"max=20,dive,min=1,max=64"`
	Media         []model.MediaFile `validate:"max=10"`
	MediaToRemove []int64
	ExistingMedia []model.Media
}

// PostPageDTO fetch page parameters
type PostPageDTO struct {
	Page  int `validate:"gte=1"`
	Limit int `validate:"gte=1,lte=100"`
}
