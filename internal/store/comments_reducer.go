package store

import "Agrilink/internal/model"

// CommentsState holds the thread of the post currently on screen.
type CommentsState struct {
	PostID   int64
	Comments []model.Comment
	Loading  bool
	Creating bool
	Deleting bool
	Error    string
}

func reduceComments(s CommentsState, a Action) CommentsState {
	switch a := a.(type) {
	case Pending:
		if !s.setFlag(a.Op, true) {
			return s
		}
		s.Error = ""
	case Rejected:
		if !s.setFlag(a.Op, false) {
			return s
		}
		if a.Err != "" {
			s.Error = a.Err
		}
	case CommentsFetched:
		s.Loading = false
		s.PostID = a.PostID
		s.Comments = append([]model.Comment(nil), a.Comments...)
	case CommentCreated:
		s.Creating = false
		if s.PostID != 0 && s.PostID != a.Comment.PostID {
			return s
		}
		s.PostID = a.Comment.PostID
		out := make([]model.Comment, 0, len(s.Comments)+1)
		out = append(out, a.Comment)
		for _, c := range s.Comments {
			if c.ID != a.Comment.ID {
				out = append(out, c)
			}
		}
		s.Comments = out
	case CommentDeleted:
		s.Deleting = false
		out := make([]model.Comment, 0, len(s.Comments))
		for _, c := range s.Comments {
			if c.ID != a.CommentID {
				out = append(out, c)
			}
		}
		s.Comments = out
	case PostDeleted:
		if s.PostID == a.PostID {
			s.PostID = 0
			s.Comments = nil
		}
	case CommentsCleared, SessionReset:
		return CommentsState{}
	}
	return s
}

func (s *CommentsState) setFlag(op Op, v bool) bool {
	switch op {
	case OpFetchComments:
		s.Loading = v
	case OpCreateComment:
		s.Creating = v
	case OpDeleteComment:
		s.Deleting = v
	default:
		return false
	}
	return true
}
