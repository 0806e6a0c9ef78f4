package repository

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/apiclient"
	"Agrilink/internal/pkg/consts"
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type UserRepo interface {
	CreateUser(ctx context.Context, in *dto.UserCreateDTO) (*model.User, error)
	GetMe(ctx context.Context) (*model.User, error)
}

type UserRepoImpl struct {
	api *apiclient.Client
}

func NewUserRepo(api *apiclient.Client) UserRepo {
	return &UserRepoImpl{api: api}
}

// CreateUser 在业务后端登记身份提供方创建的用户
func (s *UserRepoImpl) CreateUser(ctx context.Context, in *dto.UserCreateDTO) (*model.User, error) {
	var out userPayload
	if err := s.api.Post(ctx, consts.UserCreatePath, in, &out); err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	if out.errMsg != "" {
		return nil, errors.Errorf("create user: %s", out.errMsg)
	}
	return out.user, nil
}

// GetMe 当前登录用户
func (s *UserRepoImpl) GetMe(ctx context.Context) (*model.User, error) {
	var out userPayload
	if err := s.api.Get(ctx, consts.UserMePath, nil, &out); err != nil {
		return nil, errors.Wrap(err, "get current user")
	}
	if out.errMsg != "" {
		return nil, errors.Errorf("get current user: %s", out.errMsg)
	}
	return out.user, nil
}

// userPayload accepts the user either bare or wrapped in {"data": …}.
type userPayload struct {
	user   *model.User
	errMsg string
}

func (s *userPayload) UnmarshalJSON(b []byte) error {
	var env dto.UserEnvelopeDTO
	if err := json.Unmarshal(b, &env); err == nil {
		if msg := envelopeError(env.Error); msg != "" {
			s.errMsg = msg
			return nil
		}
		if env.Data != nil {
			s.user = env.Data
			return nil
		}
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		return err
	}
	s.user = &u
	return nil
}

func envelopeError(v any) string {
	switch e := v.(type) {
	case nil:
		return ""
	case string:
		return e
	case map[string]any:
		if msg, ok := e["message"].(string); ok {
			return msg
		}
	}
	b, _ := json.Marshal(v)
	return string(b)
}
