package service

import (
	"Agrilink/internal/model"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	"fmt"
)

type LikeService interface {
	ToggleLike(ctx context.Context, postID int64) (*model.LikeEntry, error)
}

type LikeServiceImpl struct {
	rt       *Runtime
	likeRepo repository.LikeRepo
}

func NewLikeService(rt *Runtime, likeRepo repository.LikeRepo) LikeService {
	return &LikeServiceImpl{rt: rt, likeRepo: likeRepo}
}

// ToggleLike 点赞/取消点赞. The overlay flips at once; the server's answer then
// replaces it, or the entry captured before the flip is restored on failure.
// The result is applied even when ctx is done.
func (s *LikeServiceImpl) ToggleLike(ctx context.Context, postID int64) (*model.LikeEntry, error) {
	st := s.rt.Store.State()
	var previous *model.LikeEntry
	if e, ok := st.Likes.Entries[postID]; ok {
		previous = &e
	}
	base, _ := store.LikeOf(st, postID)
	base.PostID = postID

	ctx, t := s.rt.begin(ctx, store.OpToggleLike, fmt.Sprintf("likes/toggle:%d", postID))
	s.rt.Store.Dispatch(store.LikeApplied{Seq: t.meta.Seq, Entry: flipLike(base)})

	entry, err := s.likeRepo.ToggleLike(ctx, postID)
	if err != nil {
		err = t.reject(err)
		s.rt.Store.Dispatch(store.LikeRolledBack{Meta: t.meta, PostID: postID, Previous: previous})
		return nil, err
	}
	t.fulfill(store.LikeToggled{Meta: t.meta, Entry: *entry})
	return entry, nil
}

func flipLike(e model.LikeEntry) model.LikeEntry {
	e.IsLiked = !e.IsLiked
	if e.IsLiked {
		e.LikeCount++
	} else if e.LikeCount > 0 {
		e.LikeCount--
	}
	return e
}
