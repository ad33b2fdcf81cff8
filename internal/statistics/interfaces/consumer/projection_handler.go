package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	certnews "github.com/wyfcoding/certnews/internal/certnews/domain"
	"github.com/wyfcoding/certnews/internal/statistics/application"
)

// ProjectionHandler 消费认证新闻领域事件并刷新当日统计投影。
type ProjectionHandler struct {
	stats  *application.StatsService
	logger *slog.Logger
}

func NewProjectionHandler(stats *application.StatsService, logger *slog.Logger) *ProjectionHandler {
	return &ProjectionHandler{stats: stats, logger: logger}
}

func (h *ProjectionHandler) Handle(ctx context.Context, msg kafka.Message) error {
	switch msg.Topic {
	case certnews.RecordEscalatedEventType:
		var payload struct {
			RecordID string `json:"record_id"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			h.logger.ErrorContext(ctx, "failed to unmarshal escalated event", "error", err)
			return err
		}
		h.logger.InfoContext(ctx, "记录升级事件触发统计刷新", "record_id", payload.RecordID)
		return h.stats.CalculateDailyStats(ctx, time.Now())
	case certnews.RecordRelationChangedEventType:
		var payload struct {
			RecordID string `json:"record_id"`
			Related  bool   `json:"related"`
		}
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			h.logger.ErrorContext(ctx, "failed to unmarshal relation event", "error", err)
			return err
		}
		h.logger.InfoContext(ctx, "相关性变更事件触发统计刷新", "record_id", payload.RecordID, "related", payload.Related)
		return h.stats.CalculateDailyStats(ctx, time.Now())
	default:
		h.logger.WarnContext(ctx, "unknown certnews event topic", "topic", msg.Topic)
		return nil
	}
}
