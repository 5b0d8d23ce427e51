package model

import (
	"time"
)

type User struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);uniqueIndex:idx_username;not null" json:"username"`
	Email    string `gorm:"type:varchar(100);uniqueIndex:idx_email;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	// IsAdmin 是 ADMIN 角色的冗余标记，仅由用户管理服务在事务内维护
	IsAdmin   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_admin"`
	CreatedAt time.Time `json:"join_date"`
	UpdatedAt time.Time `json:"-"`

	UserRoles []UserRole `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
