package model

type SuggestedUser struct {
	ID              int64    `json:"id"`
	Username        string   `json:"username"`
	AvatarURL       string   `json:"avatar_url"`
	FarmType        string   `json:"farm_type"`
	Location        string   `json:"location,omitempty"`
	IsFollowing     bool     `json:"is_following"`
	FollowerCount   int64    `json:"follower_count"`
	Score           float64  `json:"score,omitempty"`
	CommonInterests []string `json:"common_interests,omitempty"`
}
