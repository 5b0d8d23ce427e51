package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("New user gets the USER role", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		mockUserRepo.On("GetUserByUsername", ctx, "alice").Return(nil, nil)
		mockUserRepo.On("GetUserByEmail", ctx, "alice@agora.local").Return(nil, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleUser).Return(&model.Role{ID: 2, Name: consts.RoleUser}, nil)
		mockUserRepo.On("CreateUser", ctx, mock.AnythingOfType("*model.User"), mock.AnythingOfType("[]*model.UserRole")).
			Run(func(args mock.Arguments) {
				user := args.Get(1).(*model.User)
				roles := args.Get(2).([]*model.UserRole)
				assert.NotEqual(t, "secret", user.Password)
				assert.Len(t, roles, 1)
				assert.Equal(t, uint64(2), roles[0].RoleID)
			}).
			Return(nil)

		err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Email: "alice@agora.local", Password: "secret"})

		assert.NoError(t, err)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("Duplicate username is rejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		existing := createTestUser(1, "alice", false)
		mockUserRepo.On("GetUserByUsername", ctx, "alice").Return(existing, nil)

		err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice", Email: "new@agora.local", Password: "secret"})

		assert.ErrorIs(t, err, ErrUserExist)
		mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Duplicate email is rejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		existing := createTestUser(1, "alice", false)
		mockUserRepo.On("GetUserByUsername", ctx, "alice2").Return(nil, nil)
		mockUserRepo.On("GetUserByEmail", ctx, "alice@agora.local").Return(existing, nil)

		err := svc.Register(ctx, &dto.RegisterDTO{Username: "alice2", Email: "alice@agora.local", Password: "secret"})

		assert.ErrorIs(t, err, ErrUserExist)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid credentials produce a token carrying roles", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		hashed, err := security.HashPassword("secret")
		assert.NoError(t, err)
		user := createTestUser(1, "alice", false)
		user.Password = hashed

		mockUserRepo.On("GetUserByUsername", ctx, "alice").Return(user, nil)
		mockRolesRepo.On("GetUserRoles", ctx, uint64(1)).Return([]*model.Role{{ID: 2, Name: consts.RoleUser}}, nil)

		token, err := svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "secret"})

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := security.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), claims.UserID)
		assert.Contains(t, claims.Roles, consts.RoleUser)
	})

	t.Run("Wrong password is rejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		hashed, err := security.HashPassword("secret")
		assert.NoError(t, err)
		user := createTestUser(1, "alice", false)
		user.Password = hashed

		mockUserRepo.On("GetUserByUsername", ctx, "alice").Return(user, nil)

		_, err = svc.Login(ctx, &dto.CredentialDTO{Username: "alice", Password: "wrong"})

		assert.ErrorIs(t, err, ErrPasswordIncorrect)
	})

	t.Run("Unknown user fails the same way as a wrong password", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		mockUserRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, nil)

		_, err := svc.Login(ctx, &dto.CredentialDTO{Username: "ghost", Password: "whatever"})

		assert.ErrorIs(t, err, ErrPasswordIncorrect)
	})
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing user returns not found", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserService(mockUserRepo, mockRolesRepo)

		mockUserRepo.On("GetUserByID", ctx, uint64(404)).Return(nil, nil)

		_, err := svc.GetUser(ctx, 404)

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
