package main

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/pkg/cron"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/pkg/minio"
	"Agrilink/internal/pkg/redis"
	"Agrilink/internal/pkg/session"
	"Agrilink/internal/service"
	"Agrilink/internal/store"
	"Agrilink/internal/wire"
	"context"
	"errors"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Log)

	// 会话 token 存储
	var tokens session.TokenStore = session.NewMemoryTokenStore()
	if cfg.Redis.Addr != "" {
		if err := redis.InitRedis(cfg.Redis); err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer redis.Close()
		tokens = session.NewRedisTokenStore(cfg.Redis.TokenKey)
	}

	// MinIO 连接
	if err := minio.Init(cfg.MinIO); err != nil {
		log.Error("Fatal error: failed to initialize MinIO", "err", err)
		panic(err)
	}

	// 依赖注入
	app := wire.BuildApplication(cfg, tokens, minio.Uploader{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if ok, err := app.AuthService.RestoreSession(ctx); err != nil {
		log.Warn("恢复会话失败", "err", err)
	} else if ok {
		go warmUp(ctx, app)
	}

	unsubscribe := app.Store.Subscribe(func(st store.State) {
		log.Debug("state changed",
			"posts", len(st.Posts.Posts),
			"notifications", len(st.Notifications.Notifications),
			"unread", st.Notifications.UnreadCount,
			"following", len(st.Follow.Following),
		)
	})
	defer unsubscribe()

	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err := cron.InitCron(app.CronMgr); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		app.CronMgr.Stop()
		return nil
	})

	// 通知推送
	if app.Push != nil {
		g.Go(func() error {
			log.Info("Push listener starting...")
			return app.Push.Run(ctx)
		})
	}

	// 指标
	var srv *http.Server
	if cfg.Metrics.Addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv = &http.Server{Addr: cfg.Metrics.Addr, Handler: mux}
		g.Go(func() error {
			log.Info("Metrics server starting...", "addr", cfg.Metrics.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		if srv != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("Metrics server shutdown failed", "err", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}

// warmUp 恢复会话后加载首屏数据
func warmUp(ctx context.Context, app *wire.ApplicationContainer) {
	if _, err := app.AuthService.FetchUser(ctx); err != nil {
		log.Warn("加载当前用户失败", "err", err)
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := app.PostService.FetchPosts(gctx, 1, 0)
		return err
	})
	g.Go(func() error {
		_, err := app.NotificationService.FetchNotifications(gctx, 1)
		return err
	})
	g.Go(func() error {
		_, err := app.FollowService.FetchFollowing(gctx)
		return err
	})
	g.Go(func() error {
		_, err := app.SuggestionService.FetchSuggestedUsers(gctx)
		return err
	})
	g.Go(func() error {
		if _, err := app.NotificationService.FetchUnreadCount(gctx); err != nil && !service.IsDegraded(err) {
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Warn("首屏数据加载不完整", "err", err)
	}
}
