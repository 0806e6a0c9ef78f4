package model

const (
	NotificationLike    = "like"
	NotificationComment = "comment"
	NotificationFollow  = "follow"
	NotificationShare   = "share"
	NotificationSystem  = "system"
)

type NotificationSender struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}

type NotificationPost struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Notification 通知
type Notification struct {
	ID        int64              `json:"id"`
	Type      string             `json:"type"`
	Title     string             `json:"title"`
	Message   string             `json:"message"`
	Sender    NotificationSender `json:"user"`
	Post      *NotificationPost  `json:"post,omitempty"`
	Read      bool               `json:"read"`
	CreatedAt string             `json:"created_at"`
	Metadata  map[string]any     `json:"metadata,omitempty"`
}
