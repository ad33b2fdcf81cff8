package domain

import (
	"context"
	"strings"
	"time"
)

// 哨兵国家标签：国家缺失与不在预定义列表内的归类
const (
	CountryUndetermined = "未确定"
	CountryOther        = "其它国家"
)

// CanonicalCountries 预定义国家列表，含两个哨兵标签
var CanonicalCountries = []string{
	"泰国", "印尼", "欧盟", "美国", "智利", "秘鲁", "韩国", "日本",
	"南非", "以色列", "阿联酋", "马来西亚", "中国", "澳大利亚",
	"印度", "台湾", CountryUndetermined, CountryOther, "新加坡",
}

var canonicalSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CanonicalCountries))
	for _, c := range CanonicalCountries {
		set[c] = struct{}{}
	}
	return set
}()

// BucketCountry 把记录上的国家归入唯一的统计桶：
// 空值归入未确定，预定义之外的归入其它国家。
func BucketCountry(raw string) string {
	country := strings.TrimSpace(raw)
	if country == "" {
		return CountryUndetermined
	}
	if _, ok := canonicalSet[country]; !ok {
		return CountryOther
	}
	return country
}

// DailyCountryRiskStat 每日国家风险统计行，(统计日期, 国家) 唯一
type DailyCountryRiskStat struct {
	ID              uint
	StatDate        time.Time
	Country         string
	HighRiskCount   int64
	MediumRiskCount int64
	LowRiskCount    int64
	NoRiskCount     int64
	TotalCount      int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CountryCounter 单个国家的运行计数器
type CountryCounter struct {
	Country         string
	HighRiskCount   int64
	MediumRiskCount int64
	LowRiskCount    int64
	NoRiskCount     int64
	TotalCount      int64
}

// Add 按风险等级累加一条记录，空等级计入无风险
func (c *CountryCounter) Add(riskLevel string) {
	c.TotalCount++
	switch riskLevel {
	case "HIGH":
		c.HighRiskCount++
	case "MEDIUM":
		c.MediumRiskCount++
	case "LOW":
		c.LowRiskCount++
	default:
		c.NoRiskCount++
	}
}

// RecordSnapshot 统计所需的记录快照
type RecordSnapshot struct {
	Country   string
	RiskLevel string
}

// RecordSource 记录数据来源（certnews 上下文的只读投影）
type RecordSource interface {
	// ListActiveRecords 全量未删除记录快照
	ListActiveRecords(ctx context.Context) ([]RecordSnapshot, error)
	// CountByCountryAndRiskLevelBetween 按创建时间区间的计数（备用统计路径）
	CountByCountryAndRiskLevelBetween(ctx context.Context, country, riskLevel string, start, end time.Time) (int64, error)
	CountByCountryBetween(ctx context.Context, country string, start, end time.Time) (int64, error)
}

// StatRepository 统计行仓储
type StatRepository interface {
	FindByDateAndCountry(ctx context.Context, date time.Time, country string) (*DailyCountryRiskStat, error)
	FindByDate(ctx context.Context, date time.Time) ([]*DailyCountryRiskStat, error)
	Save(ctx context.Context, stat *DailyCountryRiskStat) error
}
