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

type ProfileRepo interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, in *dto.ProfileUpdateDTO) (*model.Profile, error)
	UpdateProfileMultipart(ctx context.Context, in *dto.ProfileUpdateDTO, avatar *model.MediaFile) (*model.Profile, error)
}

type ProfileRepoImpl struct {
	api *apiclient.Client
}

func NewProfileRepo(api *apiclient.Client) ProfileRepo {
	return &ProfileRepoImpl{api: api}
}

func (s *ProfileRepoImpl) GetProfile(ctx context.Context) (*model.Profile, error) {
	var out dto.ProfileEnvelopeDTO
	if err := s.api.Get(ctx, consts.ProfilePath, nil, &out); err != nil {
		return nil, errors.Wrap(err, "get profile")
	}
	return &out.Profile, nil
}

// UpdateProfile JSON 方式修改资料
func (s *ProfileRepoImpl) UpdateProfile(ctx context.Context, in *dto.ProfileUpdateDTO) (*model.Profile, error) {
	var out profilePayload
	if err := s.api.Put(ctx, consts.ProfileUpdatePath, in, &out); err != nil {
		return nil, errors.Wrap(err, "update profile")
	}
	return &out.profile, nil
}

// UpdateProfileMultipart sends the avatar file itself alongside the changed fields.
func (s *ProfileRepoImpl) UpdateProfileMultipart(ctx context.Context, in *dto.ProfileUpdateDTO, avatar *model.MediaFile) (*model.Profile, error) {
	form := apiclient.NewForm()
	addOptional(form, "username", in.Username)
	addOptional(form, "bio", in.Bio)
	addOptional(form, "phone_number", in.PhoneNumber)
	addOptional(form, "farmType", in.FarmType)
	addOptional(form, "location", in.Location)
	if avatar != nil {
		form.AddFile("avatar", avatar.Name, avatar.ContentType, avatar.Data)
	}

	var out profilePayload
	if err := s.api.SendMultipart(ctx, "PUT", consts.ProfileUpdatePath, form, &out); err != nil {
		return nil, errors.Wrap(err, "update profile")
	}
	return &out.profile, nil
}

func addOptional(form *apiclient.Form, name string, v *string) {
	if v != nil {
		form.Add(name, *v)
	}
}

// profilePayload the update endpoint answers with the bare profile, fetch wraps it.
type profilePayload struct {
	profile model.Profile
}

func (s *profilePayload) UnmarshalJSON(b []byte) error {
	var env dto.ProfileEnvelopeDTO
	if err := json.Unmarshal(b, &env); err == nil && env.Profile != (model.Profile{}) {
		s.profile = env.Profile
		return nil
	}
	return json.Unmarshal(b, &s.profile)
}
