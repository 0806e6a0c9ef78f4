package store

import "Agrilink/internal/model"

// NotificationsState 通知列表与未读计数
type NotificationsState struct {
	Notifications []model.Notification
	UnreadCount   int64
	Loading       bool
	Error         string
	HasMore       bool
	NextPage      int
	// RefreshSeq is the request seq of the page 1 list on screen. A later
	// page begun before it belongs to the replaced list.
	RefreshSeq uint64
}

func initialNotifications() NotificationsState {
	return NotificationsState{HasMore: true, NextPage: 1}
}

func reduceNotifications(s NotificationsState, a Action) NotificationsState {
	switch a := a.(type) {
	case Pending:
		switch a.Op {
		case OpFetchNotifications:
			s.Loading = true
			s.Error = ""
		case OpMarkAsRead, OpDeleteNotification:
			s.Error = ""
		}
	case Rejected:
		switch a.Op {
		case OpFetchNotifications:
			s.Loading = false
		case OpMarkAsRead, OpDeleteNotification:
		default:
			return s
		}
		if a.Err != "" {
			s.Error = a.Err
		}
	case NotificationsFetched:
		s.Loading = false
		if a.Page <= 1 {
			s.Notifications = append([]model.Notification(nil), a.Notifications...)
			s.RefreshSeq = a.Seq
		} else if a.Seq < s.RefreshSeq {
			return s
		} else {
			s.Notifications = appendNotifications(s.Notifications, a.Notifications)
		}
		s.UnreadCount = CountUnread(s.Notifications)
		s.HasMore = a.HasMore
		s.NextPage = a.Page + 1
	case UnreadCountFetched:
		s.UnreadCount = a.Count
	case UnreadCountRecomputed:
		s.UnreadCount = CountUnread(s.Notifications)
	case UnreadCountSet:
		s.UnreadCount = a.Count
	case NotificationRead:
		i := indexNotification(s.Notifications, a.ID)
		if i < 0 || s.Notifications[i].Read {
			return s
		}
		out := make([]model.Notification, len(s.Notifications))
		copy(out, s.Notifications)
		out[i].Read = true
		s.Notifications = out
		s.UnreadCount = decrement(s.UnreadCount)
	case AllNotificationsRead:
		out := make([]model.Notification, len(s.Notifications))
		copy(out, s.Notifications)
		for i := range out {
			out[i].Read = true
		}
		s.Notifications = out
		s.UnreadCount = 0
	case NotificationDeleted:
		i := indexNotification(s.Notifications, a.ID)
		if i < 0 {
			return s
		}
		if !s.Notifications[i].Read {
			s.UnreadCount = decrement(s.UnreadCount)
		}
		out := make([]model.Notification, 0, len(s.Notifications)-1)
		out = append(out, s.Notifications[:i]...)
		s.Notifications = append(out, s.Notifications[i+1:]...)
	case NotificationAdded:
		if indexNotification(s.Notifications, a.Notification.ID) >= 0 {
			return s
		}
		out := make([]model.Notification, 0, len(s.Notifications)+1)
		out = append(out, a.Notification)
		s.Notifications = append(out, s.Notifications...)
		if !a.Notification.Read {
			s.UnreadCount++
		}
	case NotificationsCleared:
		s.Notifications = nil
		s.HasMore = true
		s.NextPage = 1
		s.Error = ""
	case NotificationErrorCleared:
		s.Error = ""
	case SessionReset:
		return initialNotifications()
	}
	return s
}

// appendNotifications appends a later page; ids already loaded are replaced in place.
func appendNotifications(existing, page []model.Notification) []model.Notification {
	out := make([]model.Notification, len(existing), len(existing)+len(page))
	copy(out, existing)
	for _, n := range page {
		if i := indexNotification(out, n.ID); i >= 0 {
			out[i] = n
			continue
		}
		out = append(out, n)
	}
	return out
}

func indexNotification(ns []model.Notification, id int64) int {
	for i := range ns {
		if ns[i].ID == id {
			return i
		}
	}
	return -1
}

func decrement(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return n - 1
}
