package api

import (
	"Agora/internal/api/middleware"
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)

			loggedGroup := authGroup.Group("")
			loggedGroup.Use(middleware.AuthMiddleware())
			{
				loggedGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			// 无需登录即可访问的接口；带 Token 时可选鉴权注入身份
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("", group.PostHandler.ListPosts)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/:post_id/comments", group.CommentHandler.ListByPost)
				authOptGroup.POST("/:post_id/report", group.ReportedItemHandler.ReportPost)
				authOptGroup.POST("/:post_id/comments/:comment_id/report", group.ReportedItemHandler.ReportComment)
			}

			authedGroup := postGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware())
			{
				authedGroup.POST("", group.PostHandler.CreatePost)
				authedGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authedGroup.DELETE("/:post_id", group.PostHandler.DeletePost)
				authedGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				authedGroup.PUT("/:post_id/comments/:comment_id", group.CommentHandler.UpdateComment)
				authedGroup.DELETE("/:post_id/comments/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			authOptGroup := commentGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:comment_id", group.CommentHandler.GetComment)
				authOptGroup.POST("/:comment_id/report", group.ReportedItemHandler.ReportComment)
			}

			authedGroup := commentGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware())
			{
				authedGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
				authedGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		// 需要登录 & 拥有 admin 角色
		reportedGroup := apiGroup.Group("/reported-items")
		reportedGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			reportedGroup.GET("/posts", group.ReportedItemHandler.ListReportedPosts)
			reportedGroup.GET("/comments", group.ReportedItemHandler.ListReportedComments)
			reportedGroup.PUT("/posts/:post_id/unreport", group.ReportedItemHandler.UnreportPost)
			reportedGroup.PUT("/comments/:comment_id/unreport", group.ReportedItemHandler.UnreportComment)
			reportedGroup.DELETE("/posts/:post_id", group.ReportedItemHandler.DeleteReportedPost)
			reportedGroup.DELETE("/comments/:comment_id", group.ReportedItemHandler.DeleteReportedComment)
		}

		userGroup := apiGroup.Group("/users")
		userGroup.Use(middleware.AuthMiddleware())
		{
			userGroup.GET("/:user_id", group.UserHandler.GetUser)

			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.POST("/promote", group.UserHandler.Promote)
				adminGroup.POST("/demote", group.UserHandler.Demote)
			}
		}

		messageGroup := apiGroup.Group("/messages")
		messageGroup.Use(middleware.AuthMiddleware())
		{
			messageGroup.POST("", group.MessageHandler.Send)
			messageGroup.GET("/inbox", group.MessageHandler.Inbox)
			messageGroup.GET("/with/:user_id", group.MessageHandler.Conversation)
			messageGroup.POST("/:message_id/read", group.MessageHandler.MarkRead)
		}

		mediaGroup := apiGroup.Group("/media")
		mediaGroup.Use(middleware.AuthMiddleware())
		{
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}
	}

	return r
}
