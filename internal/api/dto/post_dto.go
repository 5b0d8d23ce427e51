package dto

import (
	"time"
)

// PostBaseDTO 创建帖子时客户端可提交的字段，作者与时间一律服务端填充
type PostBaseDTO struct {
	Title string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Text  string  `json:"text" binding:"required" validate:"min=1,max=10000"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=512"`
}

// PostUpdateDTO 更新请求体必须带 ID，与路径 ID 不一致时直接拒绝
type PostUpdateDTO struct {
	ID    uint64  `json:"id" binding:"required"`
	Title string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Text  string  `json:"text" binding:"required" validate:"min=1,max=10000"`
	Image *string `json:"image,omitempty" validate:"omitempty,max=512"`
}

type PostDTO struct {
	ID         uint64        `json:"id"`
	UserID     uint64        `json:"user_id"`
	Author     string        `json:"author"`
	Title      string        `json:"title"`
	Text       string        `json:"text"`
	Image      *string       `json:"image,omitempty"`
	IsReported bool          `json:"is_reported"`
	CreatedAt  time.Time     `json:"create_date"`
	Comments   []*CommentDTO `json:"comments,omitempty"`
}
