package repository

import (
	"Agora/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error)
	ListReported(ctx context.Context) ([]*model.Comment, error)
	UpdateContent(ctx context.Context, comment *model.Comment) error
	SetReported(ctx context.Context, id uint64, reported bool) error
	DeleteComment(ctx context.Context, id uint64) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND is_deleted = 0", postID).
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentRepoImpl) ListReported(ctx context.Context) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := s.db.WithContext(ctx).
		Where("is_reported = 1 AND is_deleted = 0").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateContent 乐观锁更新，仅改动 text/image
func (s *CommentRepoImpl) UpdateContent(ctx context.Context, comment *model.Comment) error {
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND version = ? AND is_deleted = 0", comment.ID, comment.Version).
		Updates(map[string]interface{}{
			"text":    comment.Text,
			"image":   comment.Image,
			"version": comment.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}

func (s *CommentRepoImpl) SetReported(ctx context.Context, id uint64, reported bool) error {
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_deleted = 0", id).
		Updates(map[string]interface{}{
			"is_reported": reported,
			"version":     gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_deleted = 0", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}

func (s *CommentRepoImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_deleted = 1 AND updated_at < ?", before).
		Delete(&model.Comment{})
	return result.RowsAffected, result.Error
}
