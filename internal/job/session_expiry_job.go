package job

import (
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/service"
	"Agrilink/internal/store"
	"context"
	log "log/slog"
)

// SessionExpiryJob 会话过期后清空用户态
type SessionExpiryJob struct {
	st      *store.Store
	authSvc service.AuthService
}

func NewSessionExpiryJob(st *store.Store, authSvc service.AuthService) *SessionExpiryJob {
	return &SessionExpiryJob{st: st, authSvc: authSvc}
}

func (s *SessionExpiryJob) Run() {
	if !store.IsAuthenticated(s.st.State()) || s.authSvc.IsAuthenticated() {
		return
	}
	ctx := logger.WithTraceID(context.Background(), consts.TracePrefixJob)
	log.InfoContext(ctx, "会话已过期，退出登录")
	if err := s.authSvc.Logout(ctx); err != nil {
		log.ErrorContext(ctx, "清理过期会话失败", "err", err)
	}
}
