package domain

import (
	"context"
	"time"
)

// RiskLevel 风险等级
type RiskLevel string

const (
	RiskLevelNone   RiskLevel = "NONE"
	RiskLevelLow    RiskLevel = "LOW"
	RiskLevelMedium RiskLevel = "MEDIUM"
	RiskLevelHigh   RiskLevel = "HIGH"
)

// Relation 相关性三态：未判定 / 相关 / 不相关
type Relation string

const (
	RelationUnknown Relation = "UNKNOWN"
	RelationYes     Relation = "YES"
	RelationNo      Relation = "NO"
)

// Known 是否已有判定结果
func (r Relation) Known() bool {
	return r == RelationYes || r == RelationNo
}

// RelationOf 由匹配结果得到相关性
func RelationOf(related bool) Relation {
	if related {
		return RelationYes
	}
	return RelationNo
}

// Record 一条认证新闻记录
type Record struct {
	ID              string
	SourceName      string
	Title           string
	Content         string
	Summary         string
	Product         string
	Type            string
	Country         string
	RiskLevel       RiskLevel
	Related         Relation
	MatchedKeywords []string
	Deleted         bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RecordRepository 新闻记录仓储
type RecordRepository interface {
	// FindMediumRiskActive 查询所有未删除的中风险记录
	FindMediumRiskActive(ctx context.Context) ([]*Record, error)
	// FindBySourceActive 查询指定数据源的所有未删除记录
	FindBySourceActive(ctx context.Context, sourceName string) ([]*Record, error)
	// FindActive 查询全部未删除记录
	FindActive(ctx context.Context) ([]*Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	Save(ctx context.Context, record *Record) error
	// CountByCountryRiskLevelAndCreatedBetween 统计国家+风险等级在创建时间区间内的记录数
	CountByCountryRiskLevelAndCreatedBetween(ctx context.Context, country string, level RiskLevel, start, end time.Time) (int64, error)
	// CountByCountryAndCreatedBetween 统计国家在创建时间区间内的记录总数
	CountByCountryAndCreatedBetween(ctx context.Context, country string, start, end time.Time) (int64, error)
}
