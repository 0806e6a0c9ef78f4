package store

import (
	"sync"
)

// State 全局状态快照. Snapshots are never mutated after they are published.
type State struct {
	Auth          AuthState
	Profile       ProfileState
	Posts         PostsState
	Comments      CommentsState
	Follow        FollowState
	Suggested     SuggestedState
	Likes         LikesState
	Notifications NotificationsState
}

func InitialState() State {
	return State{
		Posts:         initialPosts(),
		Notifications: initialNotifications(),
		Likes:         initialLikes(),
	}
}

// Reduce 根 reducer: every slice sees every action.
func Reduce(s State, a Action) State {
	return State{
		Auth:          reduceAuth(s.Auth, a),
		Profile:       reduceProfile(s.Profile, a),
		Posts:         reducePosts(s.Posts, a),
		Comments:      reduceComments(s.Comments, a),
		Follow:        reduceFollow(s.Follow, a),
		Suggested:     reduceSuggested(s.Suggested, a),
		Likes:         reduceLikes(s.Likes, a),
		Notifications: reduceNotifications(s.Notifications, a),
	}
}

// Listener receives the snapshot produced by each dispatch. Listeners run in
// dispatch order and must not dispatch or unsubscribe synchronously.
type Listener func(State)

// Store applies actions serially.
type Store struct {
	mu      sync.Mutex
	state   State
	seq     uint64
	applied map[string]uint64

	notifyMu  sync.Mutex
	listeners map[uint64]Listener
	nextID    uint64
}

func New() *Store {
	return &Store{
		state:     InitialState(),
		applied:   make(map[string]uint64),
		listeners: make(map[uint64]Listener),
	}
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin dispatches Pending for op and returns the Meta its outcome must carry.
func (s *Store) Begin(op Op, key string) Meta {
	s.mu.Lock()
	s.seq++
	m := Meta{Op: op, Seq: s.seq, Key: key}
	s.commit(Pending{Op: op, Seq: m.Seq, Key: key})
	return m
}

// Dispatch applies a. It returns false when a was an outcome older than one
// already applied under the same key and was dropped.
func (s *Store) Dispatch(a Action) bool {
	s.mu.Lock()
	if st, ok := a.(settled); ok {
		m := st.meta()
		if m.Key != "" {
			if m.Seq < s.applied[m.Key] {
				s.mu.Unlock()
				return false
			}
			s.applied[m.Key] = m.Seq
		}
	}
	s.commit(a)
	return true
}

// commit must be called with mu held; it releases mu.
func (s *Store) commit(a Action) {
	next := Reduce(s.state, a)
	s.state = next

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()
	for _, l := range s.listeners {
		l(next)
	}
}

// Subscribe 注册监听, returns the function that removes it
func (s *Store) Subscribe(l Listener) func() {
	s.notifyMu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners[id] = l
	s.notifyMu.Unlock()

	return func() {
		s.notifyMu.Lock()
		delete(s.listeners, id)
		s.notifyMu.Unlock()
	}
}
