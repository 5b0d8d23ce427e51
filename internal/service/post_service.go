package service

import (
	"Agora/internal/api/dto"
	"Agora/internal/model"
	"Agora/internal/repository"
	"context"
	"errors"

	"github.com/jinzhu/copier"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, postID uint64, includeComments bool) (*dto.PostDTO, error)
	CreatePost(ctx context.Context, callerID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, callerID uint64, postID uint64, upd *dto.PostUpdateDTO) error
	DeletePost(ctx context.Context, callerID uint64, postID uint64) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	posts, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}
	return batchToPostDTO(posts)
}

func (s *postServiceImpl) GetPost(ctx context.Context, postID uint64, includeComments bool) (*dto.PostDTO, error) {
	var (
		post *model.Post
		err  error
	)
	if includeComments {
		post, err = s.postRepo.GetPostWithComments(ctx, postID)
	} else {
		post, err = s.postRepo.GetPost(ctx, postID)
	}
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return toPostDTO(post)
}

// CreatePost 作者、归属与创建时间由服务端落定，客户端提交值不生效
func (s *postServiceImpl) CreatePost(ctx context.Context, callerID uint64, base *dto.PostBaseDTO) (*dto.PostDTO, error) {
	caller, err := s.userRepo.GetUserByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if caller == nil {
		return nil, ErrUnauthorized
	}

	post := &model.Post{}
	if err = copier.Copy(post, base); err != nil {
		return nil, err
	}
	post.UserID = caller.ID
	post.Author = caller.Username

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return toPostDTO(post)
}

func (s *postServiceImpl) UpdatePost(ctx context.Context, callerID uint64, postID uint64, upd *dto.PostUpdateDTO) error {
	// ID 不一致在任何存储访问之前拒绝
	if upd.ID != postID {
		return ErrIDMismatch
	}

	existing, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
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

	existing.Title = upd.Title
	existing.Text = upd.Text
	existing.Image = upd.Image

	err = s.postRepo.UpdateContent(ctx, existing)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStalePost(ctx, postID)
	}
	return err
}

func (s *postServiceImpl) DeletePost(ctx context.Context, callerID uint64, postID uint64) error {
	existing, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrPostNotFound
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

	err = s.postRepo.DeletePost(ctx, postID)
	if errors.Is(err, repository.ErrStaleRecord) {
		return s.resolveStalePost(ctx, postID)
	}
	return err
}

// resolveStalePost 并发冲突的就地消解：记录已消失报 404，仍在则升级为 409
func (s *postServiceImpl) resolveStalePost(ctx context.Context, postID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return ErrConflict
}

func toPostDTO(post *model.Post) (*dto.PostDTO, error) {
	postDTO := &dto.PostDTO{}
	if err := copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	return postDTO, nil
}

func batchToPostDTO(posts []*model.Post) ([]*dto.PostDTO, error) {
	dtos := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		postDTO, err := toPostDTO(post)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, postDTO)
	}
	return dtos, nil
}
