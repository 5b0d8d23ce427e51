package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/webhook"
	"Agora/internal/repository"
	"context"
	"errors"
)

// ModerationService 帖子与评论共用的两态举报状态机（Normal/Reported）
// 以及管理员的举报收件箱。举报不做任何鉴权，撤销与删除仅限管理员，
// 管理员操作不检查内容归属。
type ModerationService interface {
	ReportPost(ctx context.Context, postID uint64) error
	ReportComment(ctx context.Context, commentID uint64) error
	UnreportPost(ctx context.Context, postID uint64) error
	UnreportComment(ctx context.Context, commentID uint64) error
	ListReportedPosts(ctx context.Context) ([]*dto.PostDTO, error)
	ListReportedComments(ctx context.Context) ([]*dto.CommentDTO, error)
	DeleteReportedPost(ctx context.Context, postID uint64) error
	DeleteReportedComment(ctx context.Context, commentID uint64) error
}

type moderationServiceImpl struct {
	postRepo    repository.PostRepo
	commentRepo repository.CommentRepo
	notifier    webhook.Notifier
}

func NewModerationService(postRepo repository.PostRepo, commentRepo repository.CommentRepo, notifier webhook.Notifier) ModerationService {
	return &moderationServiceImpl{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		notifier:    notifier,
	}
}

// ReportPost 幂等：已处于 Reported 状态时不再写库、不再通知
func (s *moderationServiceImpl) ReportPost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.IsReported {
		return nil
	}

	err = s.postRepo.SetReported(ctx, postID, true)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStalePost(ctx, postID)
	}
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyReported(ctx, consts.ReportKindPost, postID)
	}
	return nil
}

func (s *moderationServiceImpl) ReportComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.IsReported {
		return nil
	}

	err = s.commentRepo.SetReported(ctx, commentID, true)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStaleComment(ctx, commentID)
	}
	if err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.NotifyReported(ctx, consts.ReportKindComment, commentID)
	}
	return nil
}

func (s *moderationServiceImpl) UnreportPost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !post.IsReported {
		return nil
	}

	err = s.postRepo.SetReported(ctx, postID, false)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStalePost(ctx, postID)
	}
	return err
}

func (s *moderationServiceImpl) UnreportComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if !comment.IsReported {
		return nil
	}

	err = s.commentRepo.SetReported(ctx, commentID, false)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStaleComment(ctx, commentID)
	}
	return err
}

func (s *moderationServiceImpl) ListReportedPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListReported(ctx)
	if err != nil {
		return nil, err
	}
	return batchToPostDTO(posts)
}

func (s *moderationServiceImpl) ListReportedComments(ctx context.Context) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListReported(ctx)
	if err != nil {
		return nil, err
	}
	return batchToCommentDTO(comments)
}

// DeleteReportedPost 管理员兜底删除，不做归属检查
func (s *moderationServiceImpl) DeleteReportedPost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	err = s.postRepo.DeletePost(ctx, postID)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStalePost(ctx, postID)
	}
	return err
}

func (s *moderationServiceImpl) DeleteReportedComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	err = s.commentRepo.DeleteComment(ctx, commentID)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStaleComment(ctx, commentID)
	}
	return err
}

func (s *moderationServiceImpl) resolveStalePost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return ErrConflict
}

func (s *moderationServiceImpl) resolveStaleComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return ErrConflict
}
