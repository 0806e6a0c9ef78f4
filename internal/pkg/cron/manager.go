package cron

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const sessionExpirySpec = "@every 1m"

type Manager struct {
	engine           *cron.Cron
	cfg              config.CronConfig
	unreadCountJob   *job.UnreadCountJob
	sessionExpiryJob *job.SessionExpiryJob
}

func NewCronManager(cfg config.CronConfig, unreadCountJob *job.UnreadCountJob, sessionExpiryJob *job.SessionExpiryJob) *Manager {
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		cfg:              cfg,
		unreadCountJob:   unreadCountJob,
		sessionExpiryJob: sessionExpiryJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.cfg.UnreadCountSpec, s.unreadCountJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob(sessionExpirySpec, s.sessionExpiryJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}

// Entries 已注册任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}
