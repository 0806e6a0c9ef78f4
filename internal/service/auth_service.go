package service

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/consts"
	"Agrilink/internal/pkg/identity"
	"Agrilink/internal/pkg/logger"
	"Agrilink/internal/pkg/security"
	"Agrilink/internal/pkg/session"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	log "log/slog"
)

type AuthService interface {
	Register(ctx context.Context, in *dto.RegisterDTO) (*model.User, error)
	Login(ctx context.Context, in *dto.CredentialDTO) (*model.User, error)
	FetchUser(ctx context.Context) (*model.User, error)
	Logout(ctx context.Context) error
	RestoreSession(ctx context.Context) (bool, error)
	IsAuthenticated() bool
	ClearError()
}

type AuthServiceImpl struct {
	rt       *Runtime
	provider identity.Provider
	userRepo repository.UserRepo
}

func NewAuthService(rt *Runtime, provider identity.Provider, userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{rt: rt, provider: provider, userRepo: userRepo}
}

// Register 注册: identity provider first, then the API user record
func (s *AuthServiceImpl) Register(ctx context.Context, in *dto.RegisterDTO) (*model.User, error) {
	ctx, t := s.rt.begin(ctx, store.OpRegister, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}

	sess, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, t.reject(err)
	}
	if sess.AccessToken != "" {
		ctx = session.WithCredential(ctx, session.Credential{Token: sess.AccessToken})
	}

	user, err := s.userRepo.CreateUser(ctx, &dto.UserCreateDTO{
		ExternalUID: sess.UserID,
		Username:    in.Username,
		Email:       in.Email,
	})
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.Registered{Meta: t.meta, User: user})
	return user, nil
}

// Login 登录: the token is persisted before the current user is loaded
func (s *AuthServiceImpl) Login(ctx context.Context, in *dto.CredentialDTO) (*model.User, error) {
	ctx, t := s.rt.begin(ctx, store.OpLogin, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}

	sess, err := s.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, t.reject(err)
	}
	if err = s.rt.Session.Persist(ctx, sess.AccessToken); err != nil {
		return nil, t.reject(err)
	}

	ctx = session.WithCredential(ctx, session.Credential{Token: sess.AccessToken})
	user, err := s.userRepo.GetMe(ctx)
	if err != nil {
		if clearErr := s.rt.Session.Clear(ctx); clearErr != nil {
			log.WarnContext(ctx, "清除 token 失败", "err", clearErr)
		}
		return nil, t.reject(err)
	}
	t.fulfill(store.LoggedIn{Meta: t.meta, User: user, Token: sess.AccessToken})
	log.InfoContext(ctx, "用户登录成功", "userID", user.ID)
	return user, nil
}

func (s *AuthServiceImpl) FetchUser(ctx context.Context) (*model.User, error) {
	ctx, t := s.rt.begin(ctx, store.OpFetchUser, "auth/me")
	if !s.rt.Session.IsAuthenticated() {
		return nil, t.reject(ErrNotAuthenticated)
	}
	user, err := s.userRepo.GetMe(ctx)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.UserFetched{Meta: t.meta, User: user})
	return user, nil
}

// Logout 退出登录. Local state is reset even when the token store or the
// provider fail; the token store error is returned.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	ctx = logger.WithTraceID(ctx, consts.TracePrefixOp)
	token := s.rt.Session.Token()

	err := s.rt.Session.Clear(ctx)
	if token != "" {
		if signOutErr := s.provider.SignOut(ctx, token); signOutErr != nil {
			log.WarnContext(ctx, "身份服务登出失败", "err", signOutErr)
		}
	}
	s.rt.Store.Dispatch(store.SessionReset{})
	return err
}

// RestoreSession 从持久化 token 恢复会话; expired tokens are dropped
func (s *AuthServiceImpl) RestoreSession(ctx context.Context) (bool, error) {
	token, err := s.rt.Session.Restore(ctx)
	if err != nil {
		return false, err
	}
	if token == "" {
		return false, nil
	}
	if !s.rt.Session.IsAuthenticated() {
		log.InfoContext(ctx, "持久化 token 已过期")
		return false, s.rt.Session.Clear(ctx)
	}
	s.rt.Store.Dispatch(store.SessionRestored{Token: token})
	if sub, err := security.Subject(token); err == nil {
		log.InfoContext(ctx, "会话已恢复", "sub", sub)
	}
	return true, nil
}

func (s *AuthServiceImpl) IsAuthenticated() bool {
	return s.rt.Session.IsAuthenticated()
}

func (s *AuthServiceImpl) ClearError() {
	s.rt.Store.Dispatch(store.AuthErrorCleared{})
}
