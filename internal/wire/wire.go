package wire

import (
	"Agora/internal/api"
	"Agora/internal/api/config"
	"Agora/internal/api/handler"
	"Agora/internal/job"
	"Agora/internal/pkg/cron"
	pkgmongo "Agora/internal/pkg/mongo"
	"Agora/internal/pkg/webhook"
	"Agora/internal/repository"
	"Agora/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	userRolesRepo := repository.NewUserRolesRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	messageRepo := pkgmongo.NewMessageRepo(mongoDB)

	notifier := webhook.NewNotifier(cfg.Moderation.WebhookURL)

	userService := service.NewUserService(userRepo, userRolesRepo)
	userAdminService := service.NewUserAdminService(userRepo, userRolesRepo)
	postService := service.NewPostService(postRepo, userRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	moderationService := service.NewModerationService(postRepo, commentRepo, notifier)
	messageService := service.NewMessageService(messageRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService, userAdminService),
		PostHandler:         handler.NewPostHandler(postService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		ReportedItemHandler: handler.NewReportedItemHandler(moderationService),
		MessageHandler:      handler.NewMessageHandler(messageService),
		MediaHandler:        handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	purgeJob := job.NewPurgeJob(postRepo, commentRepo, cfg.Moderation.PurgeRetentionDays)
	cronMgr := cron.NewCronManager(purgeJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
