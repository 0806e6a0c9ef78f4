package service

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/util"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
)

type ProfileService interface {
	FetchProfile(ctx context.Context) (*model.Profile, error)
	UpdateProfile(ctx context.Context, in *dto.ProfileUpdateDTO) (*model.Profile, error)
	UpdateProfileWithAvatar(ctx context.Context, in *dto.ProfileUpdateDTO, avatar model.MediaFile) (*model.Profile, error)
	UpdateAvatar(ctx context.Context, avatar model.MediaFile) (*model.Profile, error)
	ClearProfile()
}

type ProfileServiceImpl struct {
	rt          *Runtime
	profileRepo repository.ProfileRepo
	media       MediaService
}

func NewProfileService(rt *Runtime, profileRepo repository.ProfileRepo, media MediaService) ProfileService {
	return &ProfileServiceImpl{rt: rt, profileRepo: profileRepo, media: media}
}

func (s *ProfileServiceImpl) FetchProfile(ctx context.Context) (*model.Profile, error) {
	ctx, t := s.rt.begin(ctx, store.OpFetchProfile, "profile/fetch")
	profile, err := s.profileRepo.GetProfile(ctx)
	if ok, cerr := t.cancelled(); ok {
		return nil, cerr
	}
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.ProfileFetched{Meta: t.meta, Profile: *profile})
	return profile, nil
}

// UpdateProfile 修改资料 (JSON)
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, in *dto.ProfileUpdateDTO) (*model.Profile, error) {
	ctx, t := s.rt.begin(ctx, store.OpUpdateProfile, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}
	profile, err := s.profileRepo.UpdateProfile(ctx, in)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.ProfileUpdated{Meta: t.meta, Profile: *profile})
	return profile, nil
}

// UpdateProfileWithAvatar 修改资料并直接提交头像文件 (multipart)
func (s *ProfileServiceImpl) UpdateProfileWithAvatar(ctx context.Context, in *dto.ProfileUpdateDTO, avatar model.MediaFile) (*model.Profile, error) {
	ctx, t := s.rt.begin(ctx, store.OpUpdateProfile, "")
	if err := validate(in); err != nil {
		return nil, t.reject(err)
	}
	profile, err := s.profileRepo.UpdateProfileMultipart(ctx, in, &avatar)
	if err != nil {
		return nil, t.reject(err)
	}
	t.fulfill(store.ProfileUpdated{Meta: t.meta, Profile: *profile})
	return profile, nil
}

// UpdateAvatar 头像先传对象存储, then the profile keeps its public URL
func (s *ProfileServiceImpl) UpdateAvatar(ctx context.Context, avatar model.MediaFile) (*model.Profile, error) {
	uploaded, err := s.media.UploadAvatar(ctx, avatar)
	if err != nil {
		_, t := s.rt.begin(ctx, store.OpUpdateProfile, "")
		return nil, t.reject(err)
	}
	return s.UpdateProfile(ctx, &dto.ProfileUpdateDTO{AvatarURL: util.Ptr(uploaded.URL)})
}

func (s *ProfileServiceImpl) ClearProfile() {
	s.rt.Store.Dispatch(store.ProfileCleared{})
}
