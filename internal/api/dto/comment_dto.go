package dto

// CommentDTO 评论返回详情
type CommentDTO struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"post"`
	Author     any    `json:"author"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	ParentID   *int64 `json:"parent"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// CommentCreateDTO 创建评论请求
type CommentCreateDTO struct {
	PostID   int64  `json:"post" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required,max=1000"`
	ParentID *int64 `json:"parent,omitempty" validate:"omitempty,gt=0"`
}
