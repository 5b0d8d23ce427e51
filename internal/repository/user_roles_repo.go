package repository

import (
	"Agora/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRolesRepo interface {
	EnsureRole(ctx context.Context, name string) (*model.Role, error)
	GetUserRoles(ctx context.Context, userID uint64) ([]*model.Role, error)
	GetUserHasRole(ctx context.Context, userID uint64, roleID uint64) (bool, error)
	PromoteUser(ctx context.Context, userID uint64, roleID uint64) error
	DemoteUser(ctx context.Context, userID uint64, roleID uint64) error
}

type UserRolesRepoImpl struct {
	db *gorm.DB
}

func NewUserRolesRepo(db *gorm.DB) UserRolesRepo {
	return &UserRolesRepoImpl{db: db}
}

// EnsureRole 按名称取角色，不存在则创建，幂等
func (s *UserRolesRepoImpl) EnsureRole(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	err := s.db.WithContext(ctx).
		Where(model.Role{Name: name}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (s *UserRolesRepoImpl) GetUserRoles(ctx context.Context, userID uint64) ([]*model.Role, error) {
	var roles []*model.Role
	err := s.db.WithContext(ctx).
		Table("roles").
		Select("roles.*").
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *UserRolesRepoImpl) GetUserHasRole(ctx context.Context, userID uint64, roleID uint64) (bool, error) {
	var userRole model.UserRole
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("role_id = ?", roleID).
		First(&userRole)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// PromoteUser 角色关系与 is_admin 冗余标记同事务写入，要么都成功要么都回滚
func (s *UserRolesRepoImpl) PromoteUser(ctx context.Context, userID uint64, roleID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("is_admin", true).Error
	})
}

func (s *UserRolesRepoImpl) DemoteUser(ctx context.Context, userID uint64, roleID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", userID).
			Where("role_id = ?", roleID).
			Delete(&model.UserRole{})
		if result.Error != nil {
			return result.Error
		}
		return tx.Model(&model.User{}).
			Where("id = ?", userID).
			Update("is_admin", false).Error
	})
}
