package dto

import (
	"time"
)

type CommentBaseDTO struct {
	Text  string  `json:"text" binding:"required" validate:"min=1,max=1000"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=512"`
}

type CommentUpdateDTO struct {
	ID    uint64  `json:"id" binding:"required"`
	Text  string  `json:"text" binding:"required" validate:"min=1,max=1000"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=512"`
}

type CommentDTO struct {
	ID         uint64    `json:"id"`
	PostID     uint64    `json:"post_id"`
	UserID     uint64    `json:"user_id"`
	Author     string    `json:"author"`
	Text       string    `json:"text"`
	Image      *string   `json:"image,omitempty"`
	IsReported bool      `json:"is_reported"`
	CreatedAt  time.Time `json:"create_date"`
}
