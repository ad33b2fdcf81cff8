package application

import (
	"context"
	"fmt"
	"time"

	"github.com/wyfcoding/certnews/internal/statistics/domain"
	"github.com/wyfcoding/pkg/logging"
)

// StatsService 每日国家风险统计服务
type StatsService struct {
	source domain.RecordSource
	repo   domain.StatRepository
}

func NewStatsService(source domain.RecordSource, repo domain.StatRepository) *StatsService {
	return &StatsService{source: source, repo: repo}
}

// CalculateDailyStats 重算指定日期的每日国家风险统计。
// 统计对象是当前全量未删除记录快照（不按记录创建时间过滤），
// 对每个 (日期, 国家) 行做幂等覆盖；重复调用收敛到同一结果。
func (s *StatsService) CalculateDailyStats(ctx context.Context, date time.Time) error {
	statDate := truncateToDate(date)
	logging.Info(ctx, "开始更新每日国家风险统计", "stat_date", statDate.Format("2006-01-02"))

	counters := make(map[string]*domain.CountryCounter, len(domain.CanonicalCountries))
	for _, country := range domain.CanonicalCountries {
		counters[country] = &domain.CountryCounter{Country: country}
	}

	records, err := s.source.ListActiveRecords(ctx)
	if err != nil {
		return fmt.Errorf("load records for daily stats: %w", err)
	}

	for _, record := range records {
		counters[domain.BucketCountry(record.Country)].Add(record.RiskLevel)
	}

	var updated, created, failed int
	for _, country := range domain.CanonicalCountries {
		counter := counters[country]
		wasExisting, err := s.upsertStat(ctx, statDate, counter)
		if err != nil {
			logging.Warn(ctx, "处理国家统计行失败", "country", country, "error", err)
			failed++
			continue
		}
		if wasExisting {
			updated++
		} else {
			created++
		}
	}

	logging.Info(ctx, "每日国家风险统计更新完成",
		"stat_date", statDate.Format("2006-01-02"),
		"records", len(records),
		"updated", updated,
		"created", created,
		"failed", failed,
	)

	if failed == len(domain.CanonicalCountries) {
		return fmt.Errorf("daily stats for %s: all %d country rows failed", statDate.Format("2006-01-02"), failed)
	}
	return nil
}

// GetStatsByDate 查询指定日期的统计行
func (s *StatsService) GetStatsByDate(ctx context.Context, date time.Time) ([]*domain.DailyCountryRiskStat, error) {
	return s.repo.FindByDate(ctx, truncateToDate(date))
}

// GenerateStatsFromCreationDates 按记录创建时间区间生成指定日期的统计行。
// 这是与 CalculateDailyStats 不同口径的备用路径：只统计当天创建的记录，
// 两种口径的取舍待产品澄清，均予保留。
func (s *StatsService) GenerateStatsFromCreationDates(ctx context.Context, date time.Time) error {
	statDate := truncateToDate(date)
	start := statDate
	end := statDate.AddDate(0, 0, 1)
	logging.Info(ctx, "按创建时间生成统计", "stat_date", statDate.Format("2006-01-02"))

	var failed int
	for _, country := range domain.CanonicalCountries {
		counter := &domain.CountryCounter{Country: country}
		var countErr error
		for _, level := range []struct {
			name string
			dest *int64
		}{
			{"HIGH", &counter.HighRiskCount},
			{"MEDIUM", &counter.MediumRiskCount},
			{"LOW", &counter.LowRiskCount},
			{"NONE", &counter.NoRiskCount},
		} {
			count, err := s.source.CountByCountryAndRiskLevelBetween(ctx, country, level.name, start, end)
			if err != nil {
				countErr = err
				break
			}
			*level.dest = count
		}
		if countErr == nil {
			counter.TotalCount, countErr = s.source.CountByCountryBetween(ctx, country, start, end)
		}
		if countErr != nil {
			logging.Warn(ctx, "统计国家数据失败", "country", country, "error", countErr)
			failed++
			continue
		}
		if _, err := s.upsertStat(ctx, statDate, counter); err != nil {
			logging.Warn(ctx, "保存国家统计行失败", "country", country, "error", err)
			failed++
		}
	}

	if failed == len(domain.CanonicalCountries) {
		return fmt.Errorf("generate stats for %s: all %d country rows failed", statDate.Format("2006-01-02"), failed)
	}
	return nil
}

// upsertStat 幂等写入单个国家的统计行，返回该行是否已存在
func (s *StatsService) upsertStat(ctx context.Context, statDate time.Time, counter *domain.CountryCounter) (bool, error) {
	existing, err := s.repo.FindByDateAndCountry(ctx, statDate, counter.Country)
	if err != nil {
		return false, err
	}

	stat := existing
	wasExisting := existing != nil
	if stat == nil {
		stat = &domain.DailyCountryRiskStat{StatDate: statDate, Country: counter.Country}
	}
	stat.HighRiskCount = counter.HighRiskCount
	stat.MediumRiskCount = counter.MediumRiskCount
	stat.LowRiskCount = counter.LowRiskCount
	stat.NoRiskCount = counter.NoRiskCount
	stat.TotalCount = counter.TotalCount

	if err := s.repo.Save(ctx, stat); err != nil {
		return wasExisting, err
	}
	return wasExisting, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
