package identity

import (
	"Agrilink/internal/api/config"
	"Agrilink/internal/api/dto"
	"Agrilink/internal/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

var (
	ErrNoSession      = errors.New("identity provider returned no session")
	ErrSignUpRejected = errors.New("identity provider rejected sign-up")
)

// Session issued by the identity provider
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UserID       string
	Email        string
}

// Provider 第三方认证服务
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// RESTProvider talks to a GoTrue compatible /auth/v1 API.
type RESTProvider struct {
	http *resty.Client
	now  func() time.Time
}

func NewRESTProvider(cfg config.IdentityConfig) *RESTProvider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")+"/auth/v1").
		SetTimeout(15*time.Second).
		SetHeader("apikey", cfg.APIKey).
		SetHeader("Accept", "application/json").
		SetTransport(&logger.HTTPTransport{Transport: http.DefaultTransport})
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal
	return &RESTProvider{http: client, now: time.Now}
}

// SignUp may return a session without a token when the project requires
// e-mail confirmation; UserID is always set on success.
func (s *RESTProvider) SignUp(ctx context.Context, email, password string) (*Session, error) {
	var out dto.IdentitySessionDTO
	if err := s.post(ctx, "/signup", nil, dto.IdentityCredentialDTO{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	sess := s.toSession(&out)
	if sess.UserID == "" {
		return nil, ErrSignUpRejected
	}
	return sess, nil
}

func (s *RESTProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	var out dto.IdentitySessionDTO
	query := map[string]string{"grant_type": "password"}
	if err := s.post(ctx, "/token", query, dto.IdentityCredentialDTO{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	sess := s.toSession(&out)
	if sess.AccessToken == "" {
		return nil, ErrNoSession
	}
	return sess, nil
}

func (s *RESTProvider) SignOut(ctx context.Context, accessToken string) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/logout")
	if err != nil {
		return fmt.Errorf("identity sign-out: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("identity sign-out: %s", resp.Status())
	}
	return nil
}

func (s *RESTProvider) post(ctx context.Context, path string, query map[string]string, body, out any) error {
	r := s.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		SetError(&dto.IdentityErrorDTO{})
	if query != nil {
		r.SetQueryParams(query)
	}
	resp, err := r.Post(path)
	if err != nil {
		return fmt.Errorf("identity %s: %w", path, err)
	}
	if resp.IsError() {
		msg := resp.Status()
		if e, ok := resp.Error().(*dto.IdentityErrorDTO); ok {
			switch {
			case e.ErrorDescription != "":
				msg = e.ErrorDescription
			case e.Message != "":
				msg = e.Message
			case e.Error != "":
				msg = e.Error
			}
		}
		return errors.New(msg)
	}
	return nil
}

func (s *RESTProvider) toSession(out *dto.IdentitySessionDTO) *Session {
	sess := &Session{
		AccessToken:  out.AccessToken,
		RefreshToken: out.RefreshToken,
		UserID:       out.ID,
		Email:        out.Email,
	}
	if out.User != nil {
		sess.UserID = out.User.ID
		sess.Email = out.User.Email
	}
	if out.ExpiresIn > 0 {
		sess.ExpiresAt = s.now().Add(time.Duration(out.ExpiresIn) * time.Second)
	}
	return sess
}
