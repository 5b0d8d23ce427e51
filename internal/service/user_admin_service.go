package service

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/repository"
	"context"
)

// UserAdminService 管理员晋升/降级。角色关系与 is_admin 冗余标记
// 必须同时成立：角色写入失败时不得落下标记位。
type UserAdminService interface {
	Promote(ctx context.Context, userID uint64) error
	Demote(ctx context.Context, userID uint64) error
}

type UserAdminServiceImpl struct {
	userRepo      repository.UserRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserAdminService(userRepo repository.UserRepo, userRolesRepo repository.UserRolesRepo) UserAdminService {
	return &UserAdminServiceImpl{
		userRepo:      userRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *UserAdminServiceImpl) Promote(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	role, err := s.userRolesRepo.EnsureRole(ctx, consts.RoleAdmin)
	if err != nil {
		return err
	}

	hasRole, err := s.userRolesRepo.GetUserHasRole(ctx, userID, role.ID)
	if err != nil {
		return err
	}
	if hasRole {
		return ErrUserHasRole
	}

	return s.userRolesRepo.PromoteUser(ctx, userID, role.ID)
}

func (s *UserAdminServiceImpl) Demote(ctx context.Context, userID uint64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	role, err := s.userRolesRepo.EnsureRole(ctx, consts.RoleAdmin)
	if err != nil {
		return err
	}

	hasRole, err := s.userRolesRepo.GetUserHasRole(ctx, userID, role.ID)
	if err != nil {
		return err
	}
	if !hasRole {
		return ErrUserNotInRole
	}

	return s.userRolesRepo.DemoteUser(ctx, userID, role.ID)
}
