package model

import (
	"time"
)

type Comment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID     uint64    `gorm:"not null" json:"user_id"`
	Author     string    `gorm:"type:varchar(50);not null" json:"author"`
	Text       string    `gorm:"type:varchar(1000);not null" json:"text"`
	Image      *string   `gorm:"type:varchar(512)" json:"image,omitempty"`
	IsReported bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_reported"`
	IsDeleted  bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	Version    int       `gorm:"not null;default:1" json:"-"`
	CreatedAt  time.Time `json:"create_date"`
	UpdatedAt  time.Time `json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}
