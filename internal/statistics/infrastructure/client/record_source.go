package client

import (
	"context"
	"time"

	certnews "github.com/wyfcoding/certnews/internal/certnews/domain"
	"github.com/wyfcoding/certnews/internal/statistics/domain"
)

// recordSource 以 certnews 仓储为数据来源的只读投影适配器。
type recordSource struct {
	records certnews.RecordRepository
}

// NewRecordSource 创建并返回一个新的 RecordSource 实例。
func NewRecordSource(records certnews.RecordRepository) domain.RecordSource {
	return &recordSource{records: records}
}

func (s *recordSource) ListActiveRecords(ctx context.Context) ([]domain.RecordSnapshot, error) {
	records, err := s.records.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	snapshots := make([]domain.RecordSnapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, domain.RecordSnapshot{
			Country:   record.Country,
			RiskLevel: string(record.RiskLevel),
		})
	}
	return snapshots, nil
}

func (s *recordSource) CountByCountryAndRiskLevelBetween(ctx context.Context, country, riskLevel string, start, end time.Time) (int64, error) {
	return s.records.CountByCountryRiskLevelAndCreatedBetween(ctx, country, certnews.RiskLevel(riskLevel), start, end)
}

func (s *recordSource) CountByCountryBetween(ctx context.Context, country string, start, end time.Time) (int64, error) {
	return s.records.CountByCountryAndCreatedBetween(ctx, country, start, end)
}
