package repository

import (
	"Agora/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error)
	ListPosts(ctx context.Context) ([]*model.Post, error)
	ListReported(ctx context.Context) ([]*model.Post, error)
	UpdateContent(ctx context.Context, post *model.Post) error
	SetReported(ctx context.Context, id uint64, reported bool) error
	DeletePost(ctx context.Context, id uint64) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = 0", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostWithComments(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Comments", "is_deleted = 0").
		Where("id = ? AND is_deleted = 0", id).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_deleted = 0").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListReported(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Where("is_reported = 1 AND is_deleted = 0").
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateContent 乐观锁更新：只允许改动 title/text/image，版本不匹配返回 ErrStaleRecord
func (s *PostRepoImpl) UpdateContent(ctx context.Context, post *model.Post) error {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND version = ? AND is_deleted = 0", post.ID, post.Version).
		Updates(map[string]interface{}{
			"title":   post.Title,
			"text":    post.Text,
			"image":   post.Image,
			"version": post.Version + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleRecord
	}
	return nil
}

func (s *PostRepoImpl) SetReported(ctx context.Context, id uint64, reported bool) error {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
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

// DeletePost 删除帖子并级联删除其下全部评论，同一事务内完成
func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Post{}).
			Where("id = ? AND is_deleted = 0", id).
			Update("is_deleted", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleRecord
		}
		return tx.Model(&model.Comment{}).
			Where("post_id = ? AND is_deleted = 0", id).
			Update("is_deleted", true).Error
	})
}

func (s *PostRepoImpl) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("is_deleted = 1 AND updated_at < ?", before).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
