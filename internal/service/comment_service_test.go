package service

import (
	"Agora/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Comment is stamped with post and caller", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		caller := createTestUser(2, "bob", false)
		post := createTestPost(5, 1, "alice")
		mockUserRepo.On("GetUserByID", ctx, uint64(2)).Return(caller, nil)
		mockPostRepo.On("GetPost", ctx, uint64(5)).Return(post, nil)
		mockCommentRepo.On("CreateComment", ctx, mock.AnythingOfType("*model.Comment")).Return(nil)

		comment, err := svc.CreateComment(ctx, 2, 5, &dto.CommentBaseDTO{Text: "hi"})

		assert.NoError(t, err)
		assert.Equal(t, uint64(5), comment.PostID)
		assert.Equal(t, uint64(2), comment.UserID)
		assert.Equal(t, "bob", comment.Author)
		mockCommentRepo.AssertExpectations(t)
	})

	t.Run("Missing parent post leaves no orphan comment", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		caller := createTestUser(2, "bob", false)
		mockUserRepo.On("GetUserByID", ctx, uint64(2)).Return(caller, nil)
		mockPostRepo.On("GetPost", ctx, uint64(404)).Return(nil, nil)

		_, err := svc.CreateComment(ctx, 2, 404, &dto.CommentBaseDTO{Text: "hi"})

		assert.ErrorIs(t, err, ErrPostNotFound)
		mockCommentRepo.AssertNotCalled(t, "CreateComment", mock.Anything, mock.Anything)
	})
}

func TestGetComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Flat and nested lookups resolve the same record", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		comment := createTestComment(9, 5, 2, "bob")
		mockCommentRepo.On("GetComment", ctx, uint64(9)).Return(comment, nil)

		flat, err := svc.GetComment(ctx, 9, nil)
		assert.NoError(t, err)

		postID := uint64(5)
		nested, err := svc.GetComment(ctx, 9, &postID)
		assert.NoError(t, err)

		assert.Equal(t, flat.ID, nested.ID)
	})

	t.Run("Nested lookup under wrong post is treated as missing", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		comment := createTestComment(9, 5, 2, "bob")
		mockCommentRepo.On("GetComment", ctx, uint64(9)).Return(comment, nil)

		wrongPost := uint64(6)
		_, err := svc.GetComment(ctx, 9, &wrongPost)

		assert.ErrorIs(t, err, ErrCommentNotFound)
	})
}

func TestListByPost(t *testing.T) {
	ctx := context.Background()

	t.Run("Listing under missing post returns not found", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		mockPostRepo.On("GetPost", ctx, uint64(404)).Return(nil, nil)

		_, err := svc.ListByPost(ctx, 404)

		assert.ErrorIs(t, err, ErrPostNotFound)
		mockCommentRepo.AssertNotCalled(t, "ListByPost", mock.Anything, mock.Anything)
	})
}

func TestUpdateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("ID mismatch rejected before any store access", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		err := svc.UpdateComment(ctx, 2, 9, nil, &dto.CommentUpdateDTO{ID: 10, Text: "x"})

		assert.ErrorIs(t, err, ErrIDMismatch)
		mockCommentRepo.AssertNotCalled(t, "GetComment", mock.Anything, mock.Anything)
	})

	t.Run("Non-owner is forbidden", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		comment := createTestComment(9, 5, 2, "bob")
		stranger := createTestUser(3, "carol", false)
		mockCommentRepo.On("GetComment", ctx, uint64(9)).Return(comment, nil)
		mockUserRepo.On("GetUserByID", ctx, uint64(3)).Return(stranger, nil)

		err := svc.UpdateComment(ctx, 3, 9, nil, &dto.CommentUpdateDTO{ID: 9, Text: "x"})

		assert.ErrorIs(t, err, ErrForbidden)
		mockCommentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything)
	})

	t.Run("Nested update under wrong post returns not found", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		comment := createTestComment(9, 5, 2, "bob")
		mockCommentRepo.On("GetComment", ctx, uint64(9)).Return(comment, nil)

		wrongPost := uint64(6)
		err := svc.UpdateComment(ctx, 2, 9, &wrongPost, &dto.CommentUpdateDTO{ID: 9, Text: "x"})

		assert.ErrorIs(t, err, ErrCommentNotFound)
		mockUserRepo.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Admin can delete anyone's comment", func(t *testing.T) {
		mockCommentRepo := new(MockCommentRepo)
		mockPostRepo := new(MockPostRepo)
		mockUserRepo := new(MockUserRepo)
		svc := NewCommentService(mockCommentRepo, mockPostRepo, mockUserRepo)

		comment := createTestComment(9, 5, 2, "bob")
		admin := createTestUser(1, "root", true)
		mockCommentRepo.On("GetComment", ctx, uint64(9)).Return(comment, nil)
		mockUserRepo.On("GetUserByID", ctx, uint64(1)).Return(admin, nil)
		mockCommentRepo.On("DeleteComment", ctx, uint64(9)).Return(nil)

		err := svc.DeleteComment(ctx, 1, 9, nil)

		assert.NoError(t, err)
		mockCommentRepo.AssertExpectations(t)
	})
}
