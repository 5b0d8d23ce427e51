package handler

import (
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	log "log/slog"

	"github.com/gin-gonic/gin"
)

// ReportedItemHandler 举报与审核相关接口
type ReportedItemHandler struct {
	moderationSvc service.ModerationService
}

func NewReportedItemHandler(moderationSvc service.ModerationService) *ReportedItemHandler {
	return &ReportedItemHandler{
		moderationSvc: moderationSvc,
	}
}

// ReportPost 举报帖子，无需登录，重复举报不报错。
// 可选鉴权注入的身份只进审计日志，reporter_id 为 0 表示匿名
func (s *ReportedItemHandler) ReportPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	log.InfoContext(c.Request.Context(), "report received",
		"kind", "post", "target_id", postID, "reporter_id", c.GetUint64("user_id"))
	if err := s.moderationSvc.ReportPost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ReportComment 举报评论，身份处理同 ReportPost
func (s *ReportedItemHandler) ReportComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	log.InfoContext(c.Request.Context(), "report received",
		"kind", "comment", "target_id", commentID, "reporter_id", c.GetUint64("user_id"))
	if err := s.moderationSvc.ReportComment(c.Request.Context(), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *ReportedItemHandler) ListReportedPosts(c *gin.Context) {
	posts, err := s.moderationSvc.ListReportedPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *ReportedItemHandler) ListReportedComments(c *gin.Context) {
	comments, err := s.moderationSvc.ListReportedComments(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *ReportedItemHandler) UnreportPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	if err := s.moderationSvc.UnreportPost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *ReportedItemHandler) UnreportComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	if err := s.moderationSvc.UnreportComment(c.Request.Context(), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// DeleteReportedPost 管理员删除，不校验归属
func (s *ReportedItemHandler) DeleteReportedPost(c *gin.Context) {
	postID, ok := parseIDParam(c, "post_id")
	if !ok {
		return
	}
	if err := s.moderationSvc.DeleteReportedPost(c.Request.Context(), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func (s *ReportedItemHandler) DeleteReportedComment(c *gin.Context) {
	commentID, ok := parseIDParam(c, "comment_id")
	if !ok {
		return
	}
	if err := s.moderationSvc.DeleteReportedComment(c.Request.Context(), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
