package dto

import "Agrilink/internal/model"

// NotificationDTO 通知返回对象, also the push frame payload
type NotificationDTO struct {
	ID      int64  `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	User    struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		AvatarURL string `json:"avatar_url"`
	} `json:"user"`
	Post *struct {
		ID      int64  `json:"id"`
		Title   string `json:"title"`
		Content string `json:"content"`
	} `json:"post"`
	Read      bool           `json:"read"`
	CreatedAt string         `json:"created_at"`
	Metadata  map[string]any `json:"metadata"`
}

// UnreadCountDTO 未读数返回
type UnreadCountDTO struct {
	Count int64 `json:"count"`
}

type MarkReadDTO struct {
	Read bool `json:"read"`
}

// PushFrameDTO websocket frame
type PushFrameDTO struct {
	Event string          `json:"event"`
	Data  NotificationDTO `json:"data"`
}

// ToModel 转换为领域模型
func (s *NotificationDTO) ToModel() model.Notification {
	n := model.Notification{
		ID:      s.ID,
		Type:    s.Type,
		Title:   s.Title,
		Message: s.Message,
		Sender: model.NotificationSender{
			ID:        s.User.ID,
			Username:  s.User.Username,
			AvatarURL: s.User.AvatarURL,
		},
		Read:      s.Read,
		CreatedAt: s.CreatedAt,
		Metadata:  s.Metadata,
	}
	if s.Post != nil {
		n.Post = &model.NotificationPost{ID: s.Post.ID, Title: s.Post.Title, Content: s.Post.Content}
	}
	return n
}
