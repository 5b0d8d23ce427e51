package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func adminRole() *model.Role {
	return &model.Role{ID: 1, Name: consts.RoleAdmin}
}

func TestPromote(t *testing.T) {
	ctx := context.Background()

	t.Run("Promotion grants the admin role", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		user := createTestUser(7, "alice", false)
		mockUserRepo.On("GetUserByID", ctx, uint64(7)).Return(user, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleAdmin).Return(adminRole(), nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(false, nil)
		mockRolesRepo.On("PromoteUser", ctx, uint64(7), uint64(1)).Return(nil)

		err := svc.Promote(ctx, 7)

		assert.NoError(t, err)
		mockRolesRepo.AssertExpectations(t)
	})

	t.Run("Promoting an unknown user returns not found", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		mockUserRepo.On("GetUserByID", ctx, uint64(404)).Return(nil, nil)

		err := svc.Promote(ctx, 404)

		assert.ErrorIs(t, err, ErrUserNotFound)
		mockRolesRepo.AssertNotCalled(t, "PromoteUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Promoting an existing admin writes nothing", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		user := createTestUser(7, "alice", true)
		mockUserRepo.On("GetUserByID", ctx, uint64(7)).Return(user, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleAdmin).Return(adminRole(), nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(true, nil)

		err := svc.Promote(ctx, 7)

		assert.ErrorIs(t, err, ErrUserHasRole)
		mockRolesRepo.AssertNotCalled(t, "PromoteUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDemote(t *testing.T) {
	ctx := context.Background()

	t.Run("Demotion removes the admin role", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		user := createTestUser(7, "alice", true)
		mockUserRepo.On("GetUserByID", ctx, uint64(7)).Return(user, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleAdmin).Return(adminRole(), nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(true, nil)
		mockRolesRepo.On("DemoteUser", ctx, uint64(7), uint64(1)).Return(nil)

		err := svc.Demote(ctx, 7)

		assert.NoError(t, err)
		mockRolesRepo.AssertExpectations(t)
	})

	t.Run("Demoting a non-admin is rejected", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		user := createTestUser(7, "alice", false)
		mockUserRepo.On("GetUserByID", ctx, uint64(7)).Return(user, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleAdmin).Return(adminRole(), nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(false, nil)

		err := svc.Demote(ctx, 7)

		assert.ErrorIs(t, err, ErrUserNotInRole)
		mockRolesRepo.AssertNotCalled(t, "DemoteUser", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Promote then demote restores the original state", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		mockRolesRepo := new(MockUserRolesRepo)
		svc := NewUserAdminService(mockUserRepo, mockRolesRepo)

		user := createTestUser(7, "alice", false)
		mockUserRepo.On("GetUserByID", ctx, uint64(7)).Return(user, nil)
		mockRolesRepo.On("EnsureRole", ctx, consts.RoleAdmin).Return(adminRole(), nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(false, nil).Once()
		mockRolesRepo.On("PromoteUser", ctx, uint64(7), uint64(1)).Return(nil)
		mockRolesRepo.On("GetUserHasRole", ctx, uint64(7), uint64(1)).Return(true, nil).Once()
		mockRolesRepo.On("DemoteUser", ctx, uint64(7), uint64(1)).Return(nil)

		assert.NoError(t, svc.Promote(ctx, 7))
		assert.NoError(t, svc.Demote(ctx, 7))
		mockRolesRepo.AssertExpectations(t)
	})
}
