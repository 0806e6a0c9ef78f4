package wire

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/job"
	"Agrilink/internal/pkg/apiclient"
	"Agrilink/internal/pkg/cron"
	"Agrilink/internal/pkg/identity"
	"Agrilink/internal/pkg/push"
	"Agrilink/internal/pkg/session"
	"Agrilink/internal/repository"
	"Agrilink/internal/service"
	"Agrilink/internal/store"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Store   *store.Store
	Session *session.Manager
	CronMgr *cron.Manager
	Push    *push.Listener

	AuthService         service.AuthService
	ProfileService      service.ProfileService
	PostService         service.PostService
	CommentService      service.CommentService
	FollowService       service.FollowService
	SuggestionService   service.SuggestionService
	NotificationService service.NotificationService
	LikeService         service.LikeService
	MediaService        service.MediaService
}

func BuildApplication(cfg *config.Config, tokens session.TokenStore, storage service.ObjectStorage) *ApplicationContainer {
	st := store.New()
	sess := session.NewManager(tokens)
	rt := service.NewRuntime(st, sess)

	api := apiclient.New(cfg.API)
	provider := identity.NewRESTProvider(cfg.Identity)

	postRepo := repository.NewPostRepo(api)
	commentRepo := repository.NewCommentRepo(api)
	followRepo := repository.NewFollowRepo(api)
	notificationRepo := repository.NewNotificationRepo(api)
	likeRepo := repository.NewLikeRepo(api)
	userRepo := repository.NewUserRepo(api)
	profileRepo := repository.NewProfileRepo(api)

	mediaService := service.NewMediaService(rt, storage, cfg.MinIO, cfg.Upload)
	authService := service.NewAuthService(rt, provider, userRepo)
	notificationService := service.NewNotificationService(rt, notificationRepo)

	app := &ApplicationContainer{
		Store:               st,
		Session:             sess,
		AuthService:         authService,
		ProfileService:      service.NewProfileService(rt, profileRepo, mediaService),
		PostService:         service.NewPostService(rt, postRepo, mediaService, cfg.API.PageSize),
		CommentService:      service.NewCommentService(rt, commentRepo),
		FollowService:       service.NewFollowService(rt, followRepo),
		SuggestionService:   service.NewSuggestionService(rt, followRepo),
		NotificationService: notificationService,
		LikeService:         service.NewLikeService(rt, likeRepo),
		MediaService:        mediaService,
	}

	app.CronMgr = cron.NewCronManager(
		cfg.Cron,
		job.NewUnreadCountJob(authService, notificationService),
		job.NewSessionExpiryJob(st, authService),
	)
	if cfg.Push.Enabled && cfg.Push.URL != "" {
		app.Push = push.NewListener(cfg.Push.URL, notificationService, sess.Token)
	}
	return app
}
