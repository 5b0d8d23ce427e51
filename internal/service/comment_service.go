package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
)

type CommentService interface {
	ListByPost(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
	GetComment(ctx context.Context, commentID uint64, viaPostID *uint64) (*dto.CommentDTO, error)
	CreateComment(ctx context.Context, callerID uint64, postID uint64, base *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, callerID uint64, commentID uint64, viaPostID *uint64, upd *dto.CommentUpdateDTO) error
	DeleteComment(ctx context.Context, callerID uint64, commentID uint64, viaPostID *uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo, userRepo repository.UserRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *commentServiceImpl) ListByPost(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return batchToCommentDTO(comments)
}

func (s *commentServiceImpl) GetComment(ctx context.Context, commentID uint64, viaPostID *uint64) (*dto.CommentDTO, error) {
	comment, err := s.loadComment(ctx, commentID, viaPostID)
	if err != nil {
		return nil, err
	}
	return toCommentDTO(comment)
}

// CreateComment 父帖不存在时不会产生孤儿评论
func (s *commentServiceImpl) CreateComment(ctx context.Context, callerID uint64, postID uint64, base *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	caller, err := s.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrUnauthorized
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{}
	if err = copier.Copy(comment, base); err != nil {
		return nil, err
	}
	comment.PostID = postID
	comment.UserID = caller.ID
	comment.Author = caller.Username

	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return toCommentDTO(comment)
}

func (s *commentServiceImpl) UpdateComment(ctx context.Context, callerID uint64, commentID uint64, viaPostID *uint64, upd *dto.CommentUpdateDTO) error {
	if upd.ID != commentID {
		return ErrIDMismatch
	}

	existing, err := s.loadComment(ctx, commentID, viaPostID)
	if err != nil {
		return err
	}

	caller, err := s.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrUnauthorized
	}
	if !canModify(caller, existing.UserID) {
		return ErrForbidden
	}

	existing.Text = upd.Text
	existing.Image = upd.Image

	err = s.commentRepo.UpdateContent(ctx, existing)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStaleComment(ctx, commentID)
	}
	return err
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, callerID uint64, commentID uint64, viaPostID *uint64) error {
	existing, err := s.loadComment(ctx, commentID, viaPostID)
	if err != nil {
		return err
	}

	caller, err := s.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return err
	}
	if caller == nil {
		return ErrUnauthorized
	}
	if !canModify(caller, existing.UserID) {
		return ErrForbidden
	}

	err = s.commentRepo.DeleteComment(ctx, commentID)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStaleComment(ctx, commentID)
	}
	return err
}

// loadComment 扁平路径与嵌套路径解析到同一条记录；
// 嵌套路径下评论不属于该帖子时视为不存在
func (s *commentServiceImpl) loadComment(ctx context.Context, commentID uint64, viaPostID *uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if viaPostID != nil && comment.PostID != *viaPostID {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}

func (s *commentServiceImpl) resolveStaleComment(ctx context.Context, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	return ErrConflict
}

func toCommentDTO(comment *model.Comment) (*dto.CommentDTO, error) {
	commentDTO := &dto.CommentDTO{}
	if err := copier.Copy(commentDTO, comment); err != nil {
		return nil, err
	}
	return commentDTO, nil
}

func batchToCommentDTO(comments []*model.Comment) ([]*dto.CommentDTO, error) {
	dtos := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO, err := toCommentDTO(comment)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, commentDTO)
	}
	return dtos, nil
}
