package model

// FollowEdge 关注关系 follower -> followee
type FollowEdge struct {
	EdgeID     int64 `json:"id"`
	FollowerID int64 `json:"follower"`
	FolloweeID int64 `json:"following"`
	// Pending marks a placeholder inserted before the server assigned EdgeID.
	Pending bool `json:"-"`
}
