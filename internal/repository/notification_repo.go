package repository

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/apiclient"
	"Agrilink/internal/pkg/consts"
	"context"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// NotificationPage 通知分页结果
type NotificationPage struct {
	Notifications []model.Notification
	HasNext       bool
}

type NotificationRepo interface {
	ListNotifications(ctx context.Context, page int) (*NotificationPage, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id int64) error
}

type NotificationRepoImpl struct {
	api *apiclient.Client
}

func NewNotificationRepo(api *apiclient.Client) NotificationRepo {
	return &NotificationRepoImpl{api: api}
}

func (s *NotificationRepoImpl) ListNotifications(ctx context.Context, page int) (*NotificationPage, error) {
	var out dto.FlexList[dto.NotificationDTO]
	query := map[string]string{"page": strconv.Itoa(page)}
	if err := s.api.Get(ctx, consts.NotificationsPath, query, &out); err != nil {
		return nil, errors.Wrapf(err, "list notifications page %d", page)
	}
	ns := make([]model.Notification, 0, len(out.Items))
	for i := range out.Items {
		ns = append(ns, out.Items[i].ToModel())
	}
	return &NotificationPage{Notifications: ns, HasNext: out.Next}, nil
}

// UnreadCount 服务端未读数
func (s *NotificationRepoImpl) UnreadCount(ctx context.Context) (int64, error) {
	var out dto.UnreadCountDTO
	if err := s.api.Get(ctx, consts.UnreadCountPath, nil, &out); err != nil {
		return 0, errors.Wrap(err, "unread count")
	}
	return out.Count, nil
}

func (s *NotificationRepoImpl) MarkRead(ctx context.Context, id int64) error {
	if err := s.api.Patch(ctx, fmt.Sprintf(consts.NotificationPath, id), &dto.MarkReadDTO{Read: true}, nil); err != nil {
		return errors.Wrapf(err, "mark notification %d read", id)
	}
	return nil
}

func (s *NotificationRepoImpl) MarkAllRead(ctx context.Context) error {
	if err := s.api.Post(ctx, consts.MarkAllReadPath, nil, nil); err != nil {
		return errors.Wrap(err, "mark all notifications read")
	}
	return nil
}

func (s *NotificationRepoImpl) DeleteNotification(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, fmt.Sprintf(consts.NotificationPath, id)); err != nil {
		return errors.Wrapf(err, "delete notification %d", id)
	}
	return nil
}
