package job

import (
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/service"
	"context"
	log "log/slog"
	"time"
)

const unreadCountTimeout = 10 * time.Second

// UnreadCountJob 轮询未读通知数
type UnreadCountJob struct {
	authSvc         service.AuthService
	notificationSvc service.NotificationService
}

func NewUnreadCountJob(authSvc service.AuthService, notificationSvc service.NotificationService) *UnreadCountJob {
	return &UnreadCountJob{authSvc: authSvc, notificationSvc: notificationSvc}
}

func (s *UnreadCountJob) Run() {
	if !s.authSvc.IsAuthenticated() {
		return
	}
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), consts.TracePrefixJob), unreadCountTimeout)
	defer cancel()

	count, err := s.notificationSvc.FetchUnreadCount(ctx)
	switch {
	case err == nil:
		log.DebugContext(ctx, "未读数已刷新", "count", count)
	case service.IsDegraded(err):
		log.WarnContext(ctx, "未读数接口失败，使用本地计数", "count", count, "err", err)
	default:
		log.ErrorContext(ctx, "刷新未读数失败", "err", err)
	}
}
