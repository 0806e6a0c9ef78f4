package store

import (
	"maps"

	"Agrilink/internal/model"
)

// LikesState 点赞覆盖层, sparse and keyed by post id
type LikesState struct {
	Entries map[int64]model.LikeEntry
	// Written is the request seq that last wrote each entry. A fetch begun
	// before that request does not touch the entry.
	Written map[int64]uint64
	Error   string
}

func initialLikes() LikesState {
	return LikesState{Entries: map[int64]model.LikeEntry{}, Written: map[int64]uint64{}}
}

func reduceLikes(s LikesState, a Action) LikesState {
	switch a := a.(type) {
	case Pending:
		if a.Op == OpToggleLike {
			s.Error = ""
		}
	case Rejected:
		if a.Op == OpToggleLike && a.Err != "" {
			s.Error = a.Err
		}
	case LikeApplied:
		s.Entries = withEntry(s.Entries, a.Entry)
		s.Written = markWritten(s.Written, a.Seq, a.Entry.PostID)
	case LikeToggled:
		s.Entries = withEntry(s.Entries, a.Entry)
		s.Written = markWritten(s.Written, a.Seq, a.Entry.PostID)
	case LikeRolledBack:
		s.Written = markWritten(s.Written, a.Seq, a.PostID)
		if a.Previous != nil {
			s.Entries = withEntry(s.Entries, *a.Previous)
			return s
		}
		if _, ok := s.Entries[a.PostID]; ok {
			s.Entries = maps.Clone(s.Entries)
			delete(s.Entries, a.PostID)
		}
	case PostsFetched:
		s.Entries = syncEntries(s.Entries, s.Written, a.Seq, a.Posts...)
	case PostFetched:
		s.Entries = syncEntries(s.Entries, s.Written, a.Seq, a.Post)
	case PostUpdated:
		s.Entries = syncEntries(s.Entries, s.Written, a.Seq, a.Post)
	case PostDeleted:
		if _, ok := s.Entries[a.PostID]; ok {
			s.Entries = maps.Clone(s.Entries)
			delete(s.Entries, a.PostID)
		}
	case SessionReset:
		return initialLikes()
	}
	return s
}

func withEntry(entries map[int64]model.LikeEntry, e model.LikeEntry) map[int64]model.LikeEntry {
	out := make(map[int64]model.LikeEntry, len(entries)+1)
	maps.Copy(out, entries)
	out[e.PostID] = e
	return out
}

// markWritten records seq as the last writer of ids; an older seq never
// lowers a recorded one.
func markWritten(written map[int64]uint64, seq uint64, ids ...int64) map[int64]uint64 {
	out := make(map[int64]uint64, len(written)+len(ids))
	maps.Copy(out, written)
	for _, id := range ids {
		if seq > out[id] {
			out[id] = seq
		}
	}
	return out
}

// syncEntries rewrites existing entries with the server's values for the
// given posts. Posts without an entry are left to their own fields, and an
// entry written by a request newer than seq is kept.
func syncEntries(entries map[int64]model.LikeEntry, written map[int64]uint64, seq uint64, posts ...model.Post) map[int64]model.LikeEntry {
	var out map[int64]model.LikeEntry
	for _, p := range posts {
		if _, ok := entries[p.ID]; !ok || written[p.ID] > seq {
			continue
		}
		if out == nil {
			out = maps.Clone(entries)
		}
		out[p.ID] = model.LikeEntry{PostID: p.ID, IsLiked: p.IsLiked, LikeCount: p.LikeCount}
	}
	if out == nil {
		return entries
	}
	return out
}
