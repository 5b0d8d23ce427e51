package model

import (
	"time"
)

type Post struct {
	ID     uint64 `gorm:"primaryKey" json:"id"`
	UserID uint64 `gorm:"not null;index:idx_user_id" json:"user_id"`
	// Author 冗余保存创建者用户名，创建后不再变更
	Author     string    `gorm:"type:varchar(50);not null" json:"author"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	Text       string    `gorm:"not null" json:"text"`
	Image      *string   `gorm:"type:varchar(512)" json:"image,omitempty"`
	IsReported bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_reported"`
	IsDeleted  bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	Version    int       `gorm:"not null;default:1" json:"-"`
	CreatedAt  time.Time `json:"create_date"`
	UpdatedAt  time.Time `json:"-"`

	// 关联关系
	Comments []Comment `gorm:"foreignKey:PostID;references:ID" json:"comments,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
