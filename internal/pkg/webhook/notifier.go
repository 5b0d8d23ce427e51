package webhook

import (
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier 内容被举报时向外部审核频道推送一条通知。
// 通知失败只记日志，不影响举报请求本身。
type Notifier interface {
	NotifyReported(ctx context.Context, kind string, targetID uint64)
}

type reportEvent struct {
	Kind       string    `json:"kind"`
	TargetID   uint64    `json:"target_id"`
	ReportedAt time.Time `json:"reported_at"`
}

type restyNotifier struct {
	client *resty.Client
	url    string
}

func NewNotifier(url string) Notifier {
	client := resty.New().
		SetTimeout(5 * time.Second).
		SetRetryCount(2)
	return &restyNotifier{
		client: client,
		url:    url,
	}
}

func (s *restyNotifier) NotifyReported(ctx context.Context, kind string, targetID uint64) {
	if s.url == "" {
		return
	}

	event := reportEvent{
		Kind:       kind,
		TargetID:   targetID,
		ReportedAt: time.Now().UTC(),
	}

	go func() {
		resp, err := s.client.R().
			SetContext(context.Background()).
			SetBody(event).
			Post(s.url)
		if err != nil {
			log.Warn("举报通知推送失败", "kind", kind, "target_id", targetID, "err", err)
			return
		}
		if resp.IsError() {
			log.Warn("举报通知被拒绝", "kind", kind, "target_id", targetID, "status", resp.StatusCode())
		}
	}()
}
