package job

import (
	"Agora/internal/pkg/logger"
	"Agora/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// PurgeJob 定期物理清除超过保留期的软删除记录
type PurgeJob struct {
	postRepo      repository.PostRepo
	commentRepo   repository.CommentRepo
	retentionDays int
}

func NewPurgeJob(postRepo repository.PostRepo, commentRepo repository.CommentRepo, retentionDays int) *PurgeJob {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &PurgeJob{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		retentionDays: retentionDays,
	}
}

func (s *PurgeJob) Run() {
	traceID := "job-purge-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	before := time.Now().AddDate(0, 0, -s.retentionDays)

	postCount, err := s.postRepo.PurgeDeleted(ctx, before)
	if err != nil {
		log.ErrorContext(ctx, "purge deleted posts error", "err", err)
	}

	commentCount, err := s.commentRepo.PurgeDeleted(ctx, before)
	if err != nil {
		log.ErrorContext(ctx, "purge deleted comments error", "err", err)
	}

	if postCount > 0 || commentCount > 0 {
		log.InfoContext(ctx, "purge job finished",
			"purged_posts", postCount,
			"purged_comments", commentCount,
			"before", before,
		)
	}
}
