package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wyfcoding/certnews/internal/statistics/domain"
)

type fakeRecordSource struct {
	snapshots []domain.RecordSnapshot
	listErr   error
	counts    map[string]int64
	totals    map[string]int64
}

func (f *fakeRecordSource) ListActiveRecords(context.Context) ([]domain.RecordSnapshot, error) {
	return f.snapshots, f.listErr
}

func (f *fakeRecordSource) CountByCountryAndRiskLevelBetween(_ context.Context, country, riskLevel string, _, _ time.Time) (int64, error) {
	return f.counts[country+"/"+riskLevel], nil
}

func (f *fakeRecordSource) CountByCountryBetween(_ context.Context, country string, _, _ time.Time) (int64, error) {
	return f.totals[country], nil
}

type fakeStatRepo struct {
	stats     map[string]*domain.DailyCountryRiskStat
	nextID    uint
	saveCalls int
	saveErr   error
}

func newFakeStatRepo() *fakeStatRepo {
	return &fakeStatRepo{stats: make(map[string]*domain.DailyCountryRiskStat)}
}

func statKey(date time.Time, country string) string {
	return date.Format("2006-01-02") + "/" + country
}

func (f *fakeStatRepo) FindByDateAndCountry(_ context.Context, date time.Time, country string) (*domain.DailyCountryRiskStat, error) {
	s, ok := f.stats[statKey(date, country)]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (f *fakeStatRepo) FindByDate(_ context.Context, date time.Time) ([]*domain.DailyCountryRiskStat, error) {
	var out []*domain.DailyCountryRiskStat
	for _, s := range f.stats {
		if s.StatDate.Equal(date) {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeStatRepo) Save(_ context.Context, stat *domain.DailyCountryRiskStat) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saveCalls++
	if stat.ID == 0 {
		f.nextID++
		stat.ID = f.nextID
	}
	clone := *stat
	f.stats[statKey(stat.StatDate, stat.Country)] = &clone
	return nil
}

func snapshot(country, level string) domain.RecordSnapshot {
	return domain.RecordSnapshot{Country: country, RiskLevel: level}
}

func TestCalculateDailyStatsBucketsAndCounts(t *testing.T) {
	source := &fakeRecordSource{snapshots: []domain.RecordSnapshot{
		snapshot("美国", "HIGH"),
		snapshot("美国", "MEDIUM"),
		snapshot("日本", "LOW"),
		snapshot("", "HIGH"),
		snapshot("火星", "NONE"),
		snapshot("美国", ""),
	}}
	repo := newFakeStatRepo()
	svc := NewStatsService(source, repo)
	date := time.Date(2026, 8, 27, 15, 4, 5, 0, time.Local)

	require.NoError(t, svc.CalculateDailyStats(context.Background(), date))

	statDate := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)
	// 每个预定义国家都有一行，哪怕没有记录
	assert.Len(t, repo.stats, len(domain.CanonicalCountries))

	us := repo.stats[statKey(statDate, "美国")]
	require.NotNil(t, us)
	assert.Equal(t, int64(1), us.HighRiskCount)
	assert.Equal(t, int64(1), us.MediumRiskCount)
	assert.Equal(t, int64(1), us.NoRiskCount)
	assert.Equal(t, int64(3), us.TotalCount)

	undetermined := repo.stats[statKey(statDate, domain.CountryUndetermined)]
	require.NotNil(t, undetermined)
	assert.Equal(t, int64(1), undetermined.HighRiskCount)

	other := repo.stats[statKey(statDate, domain.CountryOther)]
	require.NotNil(t, other)
	assert.Equal(t, int64(1), other.NoRiskCount)

	// 各桶记录数之和等于记录总数
	var total int64
	for _, s := range repo.stats {
		total += s.TotalCount
	}
	assert.Equal(t, int64(len(source.snapshots)), total)
}

func TestCalculateDailyStatsIsIdempotent(t *testing.T) {
	source := &fakeRecordSource{snapshots: []domain.RecordSnapshot{snapshot("中国", "HIGH")}}
	repo := newFakeStatRepo()
	svc := NewStatsService(source, repo)
	date := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)

	require.NoError(t, svc.CalculateDailyStats(context.Background(), date))
	firstID := repo.stats[statKey(date, "中国")].ID

	require.NoError(t, svc.CalculateDailyStats(context.Background(), date))

	cn := repo.stats[statKey(date, "中国")]
	// 重复执行覆盖同一行，不新建也不累加
	assert.Equal(t, firstID, cn.ID)
	assert.Equal(t, int64(1), cn.HighRiskCount)
	assert.Len(t, repo.stats, len(domain.CanonicalCountries))
}

func TestCalculateDailyStatsSourceErrorIsFatal(t *testing.T) {
	source := &fakeRecordSource{listErr: errors.New("db down")}
	repo := newFakeStatRepo()
	svc := NewStatsService(source, repo)

	err := svc.CalculateDailyStats(context.Background(), time.Now())
	assert.Error(t, err)
	assert.Zero(t, repo.saveCalls)
}

func TestCalculateDailyStatsAllRowsFailed(t *testing.T) {
	source := &fakeRecordSource{snapshots: []domain.RecordSnapshot{snapshot("中国", "HIGH")}}
	repo := newFakeStatRepo()
	repo.saveErr = errors.New("disk full")
	svc := NewStatsService(source, repo)

	err := svc.CalculateDailyStats(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestGetStatsByDateTruncatesTime(t *testing.T) {
	repo := newFakeStatRepo()
	statDate := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)
	repo.stats[statKey(statDate, "美国")] = &domain.DailyCountryRiskStat{StatDate: statDate, Country: "美国", TotalCount: 5}
	svc := NewStatsService(&fakeRecordSource{}, repo)

	stats, err := svc.GetStatsByDate(context.Background(), statDate.Add(10*time.Hour))
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, int64(5), stats[0].TotalCount)
}

func TestGenerateStatsFromCreationDates(t *testing.T) {
	source := &fakeRecordSource{
		counts: map[string]int64{
			"美国/HIGH":   2,
			"美国/MEDIUM": 1,
			"美国/LOW":    0,
			"美国/NONE":   3,
		},
		totals: map[string]int64{"美国": 6},
	}
	repo := newFakeStatRepo()
	svc := NewStatsService(source, repo)
	date := time.Date(2026, 8, 27, 9, 0, 0, 0, time.Local)

	require.NoError(t, svc.GenerateStatsFromCreationDates(context.Background(), date))

	statDate := time.Date(2026, 8, 27, 0, 0, 0, 0, time.Local)
	us := repo.stats[statKey(statDate, "美国")]
	require.NotNil(t, us)
	assert.Equal(t, int64(2), us.HighRiskCount)
	assert.Equal(t, int64(1), us.MediumRiskCount)
	assert.Equal(t, int64(3), us.NoRiskCount)
	assert.Equal(t, int64(6), us.TotalCount)
	assert.Len(t, repo.stats, len(domain.CanonicalCountries))
}
