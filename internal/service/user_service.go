package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/redis"
	"Agora/internal/pkg/security"
	"Agora/internal/repository"
	"context"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	ListUsers(ctx context.Context) ([]*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo      repository.UserRepo
	userRolesRepo repository.UserRolesRepo
}

func NewUserService(userRepo repository.UserRepo, userRolesRepo repository.UserRolesRepo) UserService {
	return &UserServiceImpl{
		userRepo:      userRepo,
		userRolesRepo: userRolesRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if existing == nil {
		existing, err = s.userRepo.GetUserByEmail(ctx, regDTO.Email)
		if err != nil {
			return err
		}
	}
	if existing != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: passwordHash,
	}

	role, err := s.userRolesRepo.EnsureRole(ctx, consts.RoleUser)
	if err != nil {
		return err
	}
	roles := []*model.UserRole{{RoleID: role.ID}}

	return s.userRepo.CreateUser(ctx, user, roles)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	roles, err := s.userRolesRepo.GetUserRoles(ctx, user.ID)
	if err != nil {
		return "", err
	}
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		roleNames = append(roleNames, role.Name)
	}

	return security.GenerateToken(user.ID, roleNames)
}

// Logout 将 Token 签名写入黑名单，剩余有效期内拒绝复用
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user)
}

func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*dto.UserDTO, 0, len(users))
	for _, user := range users {
		userDTO, err := toUserDTO(user)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, userDTO)
	}
	return dtos, nil
}

func toUserDTO(user *model.User) (*dto.UserDTO, error) {
	userDTO := &dto.UserDTO{}
	if err := copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}
