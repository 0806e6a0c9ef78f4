package store

import "Agrilink/internal/model"

type ProfileState struct {
	Profile  *model.Profile
	Loading  bool
	Updating bool
	Error    string
}

func reduceProfile(s ProfileState, a Action) ProfileState {
	switch a := a.(type) {
	case Pending:
		switch a.Op {
		case OpFetchProfile:
			s.Loading = true
		case OpUpdateProfile:
			s.Updating = true
		default:
			return s
		}
		s.Error = ""
	case Rejected:
		switch a.Op {
		case OpFetchProfile:
			s.Loading = false
		case OpUpdateProfile:
			s.Updating = false
		default:
			return s
		}
		if a.Err != "" {
			s.Error = a.Err
		}
	case ProfileFetched:
		s.Loading = false
		p := a.Profile
		s.Profile = &p
	case ProfileUpdated:
		s.Updating = false
		p := a.Profile
		s.Profile = &p
	case ProfileCleared, SessionReset:
		return ProfileState{}
	}
	return s
}
