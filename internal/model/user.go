package model

type User struct {
	ID          int64  `json:"id"`
	ExternalUID string `json:"supabase_uid"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

type Profile struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	FarmType    string `json:"farmType,omitempty"`
	Location    string `json:"location,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

// MediaFile is a file selected for upload. Data stays in memory because
// images may be re-encoded before they are sent.
type MediaFile struct {
	Name        string
	ContentType string
	Data        []byte
}
