package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/util"
	"Agora/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc      service.UserService
	userAdminSvc service.UserAdminService
}

func NewUserHandler(userSvc service.UserService, userAdminSvc service.UserAdminService) *UserHandler {
	return &UserHandler{
		userSvc:      userSvc,
		userAdminSvc: userAdminSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := c.Request.Header.Get("Authorization")
	token = strings.Replace(token, "Bearer ", "", 1)
	err := s.userSvc.Logout(c.Request.Context(), token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "user_id")
	if !ok {
		return
	}
	userDTO, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	users, err := s.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// Promote 授予管理员角色
func (s *UserHandler) Promote(c *gin.Context) {
	var opDTO dto.UserRoleOpDTO
	if err := c.ShouldBind(&opDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userAdminSvc.Promote(c.Request.Context(), opDTO.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Demote 撤销管理员角色
func (s *UserHandler) Demote(c *gin.Context) {
	var opDTO dto.UserRoleOpDTO
	if err := c.ShouldBind(&opDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userAdminSvc.Demote(c.Request.Context(), opDTO.UserID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
