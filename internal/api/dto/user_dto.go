package dto

import "Agrilink/internal/model"

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// CredentialDTO 登录请求
type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserCreateDTO /users/create/ body
type UserCreateDTO struct {
	ExternalUID string `json:"supabase_uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
}

// UserEnvelopeDTO some user endpoints wrap the user in data
type UserEnvelopeDTO struct {
	Data  *model.User `json:"data"`
	Error any         `json:"error"`
}

type ProfileEnvelopeDTO struct {
	Profile model.Profile `json:"profile"`
}

// ProfileUpdateDTO 资料修改, nil fields are left untouched
type ProfileUpdateDTO struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=30"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	FarmType    *string `json:"farmType,omitempty" validate:"omitempty,max=64"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=128"`
}

// IdentitySessionDTO identity provider token response
type IdentitySessionDTO struct {
	AccessToken  string           `json:"access_token"`
	TokenType    string           `json:"token_type"`
	ExpiresIn    int64            `json:"expires_in"`
	RefreshToken string           `json:"refresh_token"`
	User         *IdentityUserDTO `json:"user"`
	// sign-up without auto-confirm answers with the bare user
	ID    string `json:"id"`
	Email string `json:"email"`
}

type IdentityUserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type IdentityCredentialDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type IdentityErrorDTO struct {
	Message          string `json:"msg"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
