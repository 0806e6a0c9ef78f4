package dto

// FollowDTO 关注关系
type FollowDTO struct {
	ID        int64  `json:"id"`
	Follower  int64  `json:"follower"`
	Following int64  `json:"following"`
	CreatedAt string `json:"created_at"`
}

type FollowCreateDTO struct {
	Following int64 `json:"following"`
}

// SuggestedUserDTO /Follow/suggested/ item
type SuggestedUserDTO struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	AvatarURL     string `json:"avatar_url"`
	FarmType      string `json:"farm_type"`
	IsFollowing   bool   `json:"is_following"`
	FollowerCount int64  `json:"follower_count"`
}

// RecommendationDTO /userprofile/recommendations/ item
type RecommendationDTO struct {
	ID              int64    `json:"id"`
	Username        string   `json:"username"`
	Email           string   `json:"email"`
	AvatarURL       string   `json:"avatar_url"`
	FarmType        string   `json:"farmType"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
	Score           float64  `json:"score"`
	CommonInterests []string `json:"common_interests"`
}

type RecommendationsDTO struct {
	SuggestedUsers []RecommendationDTO `json:"suggested_users"`
}
