package service

import (
	"Agrilink/internal/api/dto"
	"Agrilink/internal/model"
	"Agrilink/internal/pkg/identity"
	"Agrilink/internal/pkg/session"
	"Agrilink/internal/repository"
	"Agrilink/internal/store"
	"context"
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostRepo PostRepo 的模拟实现
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) CreatePost(ctx context.Context, in *dto.CreatePostDTO) (*model.Post, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListPosts(ctx context.Context, page, limit int) (*repository.PostPage, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PostPage), args.Error(1)
}

func (m *MockPostRepo) GetPost(ctx context.Context, id int64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) UpdatePost(ctx context.Context, in *dto.UpdatePostDTO) (*model.Post, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) DeletePost(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockCommentRepo CommentRepo 的模拟实现
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, in *dto.CommentCreateDTO) (*model.Comment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) DeleteComment(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFollowRepo FollowRepo 的模拟实现
type MockFollowRepo struct {
	mock.Mock
}

func (m *MockFollowRepo) ListFollowing(ctx context.Context, followerID int64) ([]model.FollowEdge, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FollowEdge), args.Error(1)
}

func (m *MockFollowRepo) CreateFollow(ctx context.Context, followeeID int64) (*model.FollowEdge, error) {
	args := m.Called(ctx, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FollowEdge), args.Error(1)
}

func (m *MockFollowRepo) DeleteFollow(ctx context.Context, edgeID int64) error {
	return m.Called(ctx, edgeID).Error(0)
}

func (m *MockFollowRepo) ListSuggested(ctx context.Context) ([]model.SuggestedUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SuggestedUser), args.Error(1)
}

func (m *MockFollowRepo) ListRecommendations(ctx context.Context) ([]model.SuggestedUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SuggestedUser), args.Error(1)
}

// MockNotificationRepo NotificationRepo 的模拟实现
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) ListNotifications(ctx context.Context, page int) (*repository.NotificationPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.NotificationPage), args.Error(1)
}

func (m *MockNotificationRepo) UnreadCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) MarkRead(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockNotificationRepo) MarkAllRead(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockNotificationRepo) DeleteNotification(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockLikeRepo LikeRepo 的模拟实现
type MockLikeRepo struct {
	mock.Mock
}

func (m *MockLikeRepo) ToggleLike(ctx context.Context, postID int64) (*model.LikeEntry, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LikeEntry), args.Error(1)
}

// MockUserRepo UserRepo 的模拟实现
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, in *dto.UserCreateDTO) (*model.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetMe(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockProfileRepo ProfileRepo 的模拟实现
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetProfile(ctx context.Context) (*model.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) UpdateProfile(ctx context.Context, in *dto.ProfileUpdateDTO) (*model.Profile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

func (m *MockProfileRepo) UpdateProfileMultipart(ctx context.Context, in *dto.ProfileUpdateDTO, avatar *model.MediaFile) (*model.Profile, error) {
	args := m.Called(ctx, in, avatar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Profile), args.Error(1)
}

// MockProvider identity.Provider 的模拟实现
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) SignUp(ctx context.Context, email, password string) (*identity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}

func (m *MockProvider) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Session), args.Error(1)
}

func (m *MockProvider) SignOut(ctx context.Context, accessToken string) error {
	return m.Called(ctx, accessToken).Error(0)
}

// MockStorage ObjectStorage 的模拟实现
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, bucket, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) Remove(ctx context.Context, bucket, objectName string) error {
	return m.Called(ctx, bucket, objectName).Error(0)
}

func newTestRuntime() *Runtime {
	return NewRuntime(store.New(), session.NewManager(session.NewMemoryTokenStore()))
}

// loginAs puts an authenticated user into the store without going through the provider.
func loginAs(rt *Runtime, id int64) {
	rt.Store.Dispatch(store.LoggedIn{User: &model.User{ID: id, Username: "farmer"}, Token: "token"})
}

// signedToken returns an HS256 token expiring after ttl.
func signedToken(t *testing.T, sub string, ttl time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}
