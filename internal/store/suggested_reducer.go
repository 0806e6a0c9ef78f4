package store

import "Agrilink/internal/model"

// SuggestedState 推荐关注. Following a user flags it, it is never removed.
type SuggestedState struct {
	Users   []model.SuggestedUser
	Loading bool
	Error   string
}

func reduceSuggested(s SuggestedState, a Action) SuggestedState {
	switch a := a.(type) {
	case Pending:
		if a.Op == OpFetchSuggested || a.Op == OpFetchRecommendations {
			s.Loading = true
			s.Error = ""
		}
	case Rejected:
		if a.Op == OpFetchSuggested || a.Op == OpFetchRecommendations {
			s.Loading = false
			if a.Err != "" {
				s.Error = a.Err
			}
		}
	case SuggestionsFetched:
		s.Loading = false
		s.Users = append([]model.SuggestedUser(nil), a.Users...)
	case UserFollowed:
		s.Users = flagFollowing(s.Users, a.Edge.FolloweeID, true)
	case UserUnfollowed:
		s.Users = flagFollowing(s.Users, a.TargetID, false)
	case SessionReset:
		return SuggestedState{}
	}
	return s
}

func flagFollowing(users []model.SuggestedUser, id int64, following bool) []model.SuggestedUser {
	for i, u := range users {
		if u.ID != id || u.IsFollowing == following {
			continue
		}
		out := make([]model.SuggestedUser, len(users))
		copy(out, users)
		out[i].IsFollowing = following
		if following {
			out[i].FollowerCount++
		} else if out[i].FollowerCount > 0 {
			out[i].FollowerCount--
		}
		return out
	}
	return users
}
