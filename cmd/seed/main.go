package main

import (
	"Agora/internal/api/config"
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/database"
	"Agora/internal/pkg/logger"
	"Agora/internal/pkg/security"
	log "log/slog"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 初始化数据库表结构并写入演示数据，可重复执行
func main() {
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	logger.InitLogger()

	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("Fatal error: failed to create database connection", "err", err)
		panic(err)
	}

	if err = seed(db); err != nil {
		log.Error("Fatal error: seeding failed", "err", err)
		panic(err)
	}
	log.Info("Seeding finished successfully.")
}

func seed(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.UserRole{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		return errors.Wrap(err, "auto migrate failed")
	}

	adminRole, err := ensureRole(db, consts.RoleAdmin)
	if err != nil {
		return err
	}
	userRole, err := ensureRole(db, consts.RoleUser)
	if err != nil {
		return err
	}

	admin, err := ensureUser(db, "admin", "admin@agora.local", "admin123", true)
	if err != nil {
		return err
	}
	demo, err := ensureUser(db, "demo", "demo@agora.local", "demo123", false)
	if err != nil {
		return err
	}

	if err = ensureUserRole(db, admin.ID, adminRole.ID); err != nil {
		return err
	}
	if err = ensureUserRole(db, admin.ID, userRole.ID); err != nil {
		return err
	}
	if err = ensureUserRole(db, demo.ID, userRole.ID); err != nil {
		return err
	}

	return ensureDemoContent(db, demo)
}

func ensureRole(db *gorm.DB, name string) (*model.Role, error) {
	role := &model.Role{Name: name}
	if err := db.Where("name = ?", name).FirstOrCreate(role).Error; err != nil {
		return nil, errors.Wrapf(err, "ensure role %s failed", name)
	}
	return role, nil
}

func ensureUser(db *gorm.DB, username, email, password string, isAdmin bool) (*model.User, error) {
	var existing model.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrapf(err, "query user %s failed", username)
	}

	hashed, err := security.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password failed")
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		IsAdmin:  isAdmin,
	}
	if err = db.Create(user).Error; err != nil {
		return nil, errors.Wrapf(err, "create user %s failed", username)
	}
	return user, nil
}

func ensureUserRole(db *gorm.DB, userID, roleID uint64) error {
	link := &model.UserRole{UserID: userID, RoleID: roleID}
	if err := db.Where("user_id = ? AND role_id = ?", userID, roleID).FirstOrCreate(link).Error; err != nil {
		return errors.Wrap(err, "ensure user role failed")
	}
	return nil
}

func ensureDemoContent(db *gorm.DB, author *model.User) error {
	var count int64
	if err := db.Model(&model.Post{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "count posts failed")
	}
	if count > 0 {
		return nil
	}

	post := &model.Post{
		UserID: author.ID,
		Author: author.Username,
		Title:  "欢迎来到 Agora",
		Text:   "这是第一篇示例帖子，欢迎发言。",
	}
	if err := db.Create(post).Error; err != nil {
		return errors.Wrap(err, "create demo post failed")
	}

	comment := &model.Comment{
		PostID: post.ID,
		UserID: author.ID,
		Author: author.Username,
		Text:   "第一条示例评论。",
	}
	if err := db.Create(comment).Error; err != nil {
		return errors.Wrap(err, "create demo comment failed")
	}
	return nil
}
