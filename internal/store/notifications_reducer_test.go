package store

import (
	"testing"

	"Agrilink/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notifications(ids ...int64) []model.Notification {
	out := make([]model.Notification, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Notification{ID: id, Type: model.NotificationLike})
	}
	return out
}

func TestReduceNotifications_AppendVersusReplace(t *testing.T) {
	page1 := notifications(1, 2, 3)
	page2 := notifications(4, 5)
	s := initialNotifications()

	s = reduceNotifications(s, NotificationsFetched{Page: 1, Notifications: page1, HasMore: true})
	s = reduceNotifications(s, NotificationsFetched{Page: 2, Notifications: page2})
	assert.Len(t, s.Notifications, len(page1)+len(page2))
	assert.Equal(t, 3, s.NextPage)
	assert.False(t, s.HasMore)

	s = reduceNotifications(s, NotificationsFetched{Page: 1, Notifications: page1, HasMore: true})
	assert.Len(t, s.Notifications, len(page1))
	assert.Equal(t, 2, s.NextPage)
}

func TestReduceNotifications_UnreadCounterConsistency(t *testing.T) {
	list := notifications(1, 2, 3, 4)
	list[3].Read = true
	s := reduceNotifications(initialNotifications(), NotificationsFetched{Page: 1, Notifications: list})
	require.Equal(t, int64(3), s.UnreadCount)

	s = reduceNotifications(s, NotificationRead{ID: 1})
	s = reduceNotifications(s, NotificationRead{ID: 1})
	assert.Equal(t, int64(2), s.UnreadCount)
	assert.Equal(t, CountUnread(s.Notifications), s.UnreadCount)

	s = reduceNotifications(s, NotificationDeleted{ID: 4})
	assert.Equal(t, int64(2), s.UnreadCount)

	s = reduceNotifications(s, NotificationDeleted{ID: 2})
	assert.Equal(t, int64(1), s.UnreadCount)
	assert.Equal(t, CountUnread(s.Notifications), s.UnreadCount)

	s = reduceNotifications(s, NotificationAdded{Notification: model.Notification{ID: 9}})
	assert.Equal(t, int64(2), s.UnreadCount)
	assert.Equal(t, int64(9), s.Notifications[0].ID)

	s = reduceNotifications(s, AllNotificationsRead{})
	assert.Equal(t, int64(0), s.UnreadCount)
	assert.Equal(t, int64(0), CountUnread(s.Notifications))
}

func TestReduceNotifications_AddIgnoresKnownID(t *testing.T) {
	s := reduceNotifications(initialNotifications(), NotificationAdded{Notification: model.Notification{ID: 1}})
	s = reduceNotifications(s, NotificationAdded{Notification: model.Notification{ID: 1}})

	assert.Len(t, s.Notifications, 1)
	assert.Equal(t, int64(1), s.UnreadCount)
}

func TestReduceNotifications_ReadOfUnknownIDIsNoop(t *testing.T) {
	s := reduceNotifications(initialNotifications(), UnreadCountFetched{Count: 4})
	s = reduceNotifications(s, NotificationRead{ID: 99})
	assert.Equal(t, int64(4), s.UnreadCount)
}

func TestReduceNotifications_RecomputeFallback(t *testing.T) {
	s := reduceNotifications(initialNotifications(), NotificationsFetched{Page: 1, Notifications: notifications(1, 2)})
	s = reduceNotifications(s, UnreadCountSet{Count: 10})
	s = reduceNotifications(s, UnreadCountRecomputed{})
	assert.Equal(t, int64(2), s.UnreadCount)
}

func TestReduceNotifications_ClearKeepsBadge(t *testing.T) {
	s := reduceNotifications(initialNotifications(), NotificationsFetched{Page: 1, Notifications: notifications(1, 2), HasMore: false})
	s = reduceNotifications(s, NotificationsCleared{})

	assert.Empty(t, s.Notifications)
	assert.True(t, s.HasMore)
	assert.Equal(t, 1, s.NextPage)
	assert.Equal(t, int64(2), s.UnreadCount)
}

func TestNotifications_LatePageAfterRefreshIsDropped(t *testing.T) {
	s := New()
	s.Dispatch(NotificationsFetched{Meta: s.Begin(OpFetchNotifications, "notifications/fetch:page=1"),
		Page: 1, Notifications: notifications(1, 2, 3), HasMore: true})

	page2 := s.Begin(OpFetchNotifications, "notifications/fetch:page=2")
	refresh := s.Begin(OpFetchNotifications, "notifications/fetch:page=1")
	s.Dispatch(NotificationsFetched{Meta: refresh, Page: 1, Notifications: notifications(7, 8), HasMore: true})
	s.Dispatch(NotificationsFetched{Meta: page2, Page: 2, Notifications: notifications(4, 5)})

	st := s.State().Notifications
	assert.Len(t, st.Notifications, 2)
	assert.Equal(t, int64(7), st.Notifications[0].ID)
	assert.Equal(t, int64(2), st.UnreadCount)
	assert.Equal(t, 2, st.NextPage)
	assert.True(t, st.HasMore)
	assert.False(t, st.Loading)

	next := s.Begin(OpFetchNotifications, "notifications/fetch:page=2")
	s.Dispatch(NotificationsFetched{Meta: next, Page: 2, Notifications: notifications(9)})
	assert.Len(t, s.State().Notifications.Notifications, 3)
}
