package store

import "Agrilink/internal/model"

type AuthState struct {
	User    *model.User
	Token   string
	Loading bool
	Error   string
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a := a.(type) {
	case Pending:
		switch a.Op {
		case OpRegister, OpLogin, OpFetchUser:
			s.Loading = true
			s.Error = ""
		}
	case Rejected:
		switch a.Op {
		case OpRegister, OpLogin, OpFetchUser:
			s.Loading = false
			if a.Err != "" {
				s.Error = a.Err
			}
		}
	case Registered:
		s.Loading = false
		s.User = a.User
	case LoggedIn:
		s.Loading = false
		s.User = a.User
		s.Token = a.Token
	case UserFetched:
		s.Loading = false
		s.User = a.User
	case SessionRestored:
		s.Token = a.Token
	case AuthErrorCleared:
		s.Error = ""
	case SessionReset:
		return AuthState{}
	}
	return s
}
