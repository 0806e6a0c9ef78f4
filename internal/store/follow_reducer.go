package store

import "Agrilink/internal/model"

// FollowState 当前用户的关注边, at most one per followee
type FollowState struct {
	Following []model.FollowEdge
	Loading   bool
	Error     string
}

func reduceFollow(s FollowState, a Action) FollowState {
	switch a := a.(type) {
	case Pending:
		switch a.Op {
		case OpFetchFollowing, OpFollowUser, OpUnfollowUser:
			s.Loading = true
			s.Error = ""
		}
	case Rejected:
		switch a.Op {
		case OpFetchFollowing, OpFollowUser, OpUnfollowUser:
			s.Loading = false
			if a.Err != "" {
				s.Error = a.Err
			}
		}
	case FollowingFetched:
		s.Loading = false
		out := make([]model.FollowEdge, 0, len(a.Edges))
		for _, e := range a.Edges {
			out = insertEdge(out, e)
		}
		s.Following = out
	case FollowPlaceholderAdded:
		s.Following = insertEdge(s.Following, a.Edge)
	case UserFollowed:
		s.Loading = false
		for i, e := range s.Following {
			if e.EdgeID == a.PlaceholderID && e.Pending {
				out := make([]model.FollowEdge, len(s.Following))
				copy(out, s.Following)
				out[i] = a.Edge
				s.Following = out
				return s
			}
		}
		s.Following = insertEdge(s.Following, a.Edge)
	case FollowRolledBack:
		s.Following = filterEdges(s.Following, func(e model.FollowEdge) bool {
			return !(e.Pending && e.EdgeID == a.PlaceholderID)
		})
	case UserUnfollowed:
		s.Loading = false
		s.Following = filterEdges(s.Following, func(e model.FollowEdge) bool {
			return e.EdgeID != a.EdgeID
		})
	case FollowErrorCleared:
		s.Error = ""
	case SessionReset:
		return FollowState{}
	}
	return s
}

// insertEdge appends e unless an edge to the same followee is already present.
func insertEdge(edges []model.FollowEdge, e model.FollowEdge) []model.FollowEdge {
	for _, old := range edges {
		if old.FolloweeID == e.FolloweeID {
			return edges
		}
	}
	out := make([]model.FollowEdge, len(edges), len(edges)+1)
	copy(out, edges)
	return append(out, e)
}

func filterEdges(edges []model.FollowEdge, keep func(model.FollowEdge) bool) []model.FollowEdge {
	out := make([]model.FollowEdge, 0, len(edges))
	for _, e := range edges {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
