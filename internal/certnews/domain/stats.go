package domain

import (
	"context"
	"time"
)

// DailyStatsCalculator 每日国家风险统计协作方。
// 重分类完成后以尽力而为的方式触发，失败不影响主流程。
type DailyStatsCalculator interface {
	CalculateDailyStats(ctx context.Context, date time.Time) error
}
