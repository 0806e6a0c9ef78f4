package service

import (
	"Agrilink/internal/model"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	"fmt"
)

type NotificationService interface {
	FetchNotifications(ctx context.Context, page int) ([]model.Notification, error)
	FetchNextPage(ctx context.Context) ([]model.Notification, error)
	FetchUnreadCount(ctx context.Context) (int64, error)
	MarkAsRead(ctx context.Context, id int64) error
	MarkAllAsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id int64) error
	AddNotification(n model.Notification)
	ClearNotifications()
	ClearError()
	SetUnreadCount(count int64)
}

type NotificationServiceImpl struct {
	rt               *Runtime
	notificationRepo repository.NotificationRepo
}

func NewNotificationService(rt *Runtime, notificationRepo repository.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{rt: rt, notificationRepo: notificationRepo}
}

// FetchNotifications 第一页替换列表, later pages append. The unread count is
// recomputed from the resulting list.
func (s *NotificationServiceImpl) FetchNotifications(ctx context.Context, page int) ([]model.Notification, error) {
	if page < 1 {
		page = 1
	}
	ctx, t := s.rt.begin(ctx, store.OpFetchNotifications, fmt.Sprintf("notifications/fetch:page=%d", page))
	res, err := s.notificationRepo.ListNotifications(ctx, page)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.NotificationsFetched{
		Meta:          t.meta,
		Page:          page,
		Notifications: res.Notifications,
		HasMore:       res.HasNext,
	})
	return res.Notifications, nil
}

func (s *NotificationServiceImpl) FetchNextPage(ctx context.Context) ([]model.Notification, error) {
	st := s.rt.Store.State().Notifications
	if !st.HasMore {
		return nil, nil
	}
	return s.FetchNotifications(ctx, st.NextPage)
}

// FetchUnreadCount 服务端未读数; on failure the loaded list is counted instead
// and a DegradedSuccess is returned together with that count.
func (s *NotificationServiceImpl) FetchUnreadCount(ctx context.Context) (int64, error) {
	ctx, t := s.rt.begin(ctx, store.OpFetchUnreadCount, "notifications/unread")
	count, err := s.notificationRepo.UnreadCount(ctx)
	if err != nil {
		derr := t.degrade(store.UnreadCountRecomputed{Meta: t.meta}, err)
		return s.rt.Store.State().Notifications.UnreadCount, derr
	}
	t.fulfill(store.UnreadCountFetched{Meta: t.meta, Count: count})
	return count, nil
}

// MarkAsRead 标记已读; the counter only moves if the item was unread
func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, id int64) error {
	ctx, t := s.rt.begin(ctx, store.OpMarkAsRead, "")
	if err := s.notificationRepo.MarkRead(ctx, id); err != nil {
		return t.reject(err)
	}
	t.fulfill(store.NotificationRead{Meta: t.meta, ID: id})
	return nil
}

// MarkAllAsRead 全部已读. A failing bulk endpoint still marks everything
// locally and is reported as DegradedSuccess.
func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context) error {
	ctx, t := s.rt.begin(ctx, store.OpMarkAllAsRead, "")
	if err := s.notificationRepo.MarkAllRead(ctx); err != nil {
		return t.degrade(store.AllNotificationsRead{Meta: t.meta}, err)
	}
	t.fulfill(store.AllNotificationsRead{Meta: t.meta})
	return nil
}

func (s *NotificationServiceImpl) DeleteNotification(ctx context.Context, id int64) error {
	ctx, t := s.rt.begin(ctx, store.OpDeleteNotification, "")
	if err := s.notificationRepo.DeleteNotification(ctx, id); err != nil {
		return t.reject(err)
	}
	t.fulfill(store.NotificationDeleted{Meta: t.meta, ID: id})
	return nil
}

// AddNotification 推送到达的通知; an id already present is ignored
func (s *NotificationServiceImpl) AddNotification(n model.Notification) {
	s.rt.Store.Dispatch(store.NotificationAdded{Notification: n})
}

func (s *NotificationServiceImpl) ClearNotifications() {
	s.rt.Store.Dispatch(store.NotificationsCleared{})
}

func (s *NotificationServiceImpl) ClearError() {
	s.rt.Store.Dispatch(store.NotificationErrorCleared{})
}

func (s *NotificationServiceImpl) SetUnreadCount(count int64) {
	if count < 0 {
		count = 0
	}
	s.rt.Store.Dispatch(store.UnreadCountSet{Count: count})
}
