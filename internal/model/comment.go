package model

type Comment struct {
	ID         int64  `json:"id"`
	PostID     int64  `json:"post"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	ParentID   *int64 `json:"parent"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
