package handler

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/util"
	"Agora/internal/service"
	"fmt"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
}

func NewCommentHandler(commentSvc service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
	}
}

// viaPostID 取嵌套路由中的 post_id；扁平路由没有该参数时返回 nil
func (s *CommentHandler) viaPostID(c *gin.Context) (*uint64, bool) {
	if c.Param("post_id") == "" {
		return nil, true
	}
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return nil, false
	}
	return &postID, true
}

func (s *CommentHandler) ListByPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	comments, err := s.commentSvc.ListByPost(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) GetComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	viaPostID, ok := s.viaPostID(c)
	if !ok {
		return
	}

	comment, err := s.commentSvc.GetComment(c.Request.Context(), commentID, viaPostID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}

	var req dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), userID, postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.CreatedAt(c, fmt.Sprintf("/api/posts/%d/comments/%d", postID, comment.ID), comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	viaPostID, ok := s.viaPostID(c)
	if !ok {
		return
	}

	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	if err := s.commentSvc.UpdateComment(c.Request.Context(), userID, commentID, viaPostID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *CommentHandler) DeleteComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	viaPostID, ok := s.viaPostID(c)
	if !ok {
		return
	}

	if err := s.commentSvc.DeleteComment(c.Request.Context(), userID, commentID, viaPostID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
