package service

import (
	"Agora/internal/model"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockPostRepo is a mock of repository.PostRepo
type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) CreatePost(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListPosts(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) ListReported(ctx context.Context) ([]*model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) UpdateContent(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) SetReported(ctx context.Context, id uint64, reported bool) error {
	args := m.Called(ctx, id, reported)
	return args.Error(0)
}

func (m *MockPostRepo) DeletePost(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepo is a mock of repository.CommentRepo
type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListReported(ctx context.Context) ([]*model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Comment), args.Error(1)
}

func (m *MockCommentRepo) UpdateContent(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) SetReported(ctx context.Context, id uint64, reported bool) error {
	args := m.Called(ctx, id, reported)
	return args.Error(0)
}

func (m *MockCommentRepo) DeleteComment(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo is a mock of repository.UserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, user *model.User, roles []*model.UserRole) error {
	args := m.Called(ctx, user, roles)
	return args.Error(0)
}

func (m *MockUserRepo) GetUserByID(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) ListUsers(ctx context.Context) ([]*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

// MockUserRolesRepo is a mock of repository.UserRolesRepo
type MockUserRolesRepo struct {
	mock.Mock
}

func (m *MockUserRolesRepo) EnsureRole(ctx context.Context, name string) (*model.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Role), args.Error(1)
}

func (m *MockUserRolesRepo) GetUserRoles(ctx context.Context, userID uint64) ([]*model.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Role), args.Error(1)
}

func (m *MockUserRolesRepo) GetUserHasRole(ctx context.Context, userID uint64, roleID uint64) (bool, error) {
	args := m.Called(ctx, userID, roleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRolesRepo) PromoteUser(ctx context.Context, userID uint64, roleID uint64) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

func (m *MockUserRolesRepo) DemoteUser(ctx context.Context, userID uint64, roleID uint64) error {
	args := m.Called(ctx, userID, roleID)
	return args.Error(0)
}

// MockNotifier is a mock of webhook.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyReported(ctx context.Context, kind string, targetID uint64) {
	m.Called(ctx, kind, targetID)
}

func createTestUser(id uint64, username string, isAdmin bool) *model.User {
	return &model.User{
		ID:       id,
		Username: username,
		Email:    username + "@agora.local",
		IsAdmin:  isAdmin,
	}
}

func createTestPost(id, userID uint64, author string) *model.Post {
	return &model.Post{
		ID:     id,
		UserID: userID,
		Author: author,
		Title:  "test title",
		Text:   "test text",
	}
}

func createTestComment(id, postID, userID uint64, author string) *model.Comment {
	return &model.Comment{
		ID:     id,
		PostID: postID,
		UserID: userID,
		Author: author,
		Text:   "test comment",
	}
}
