package mysql

import (
	"time"

	"github.com/wyfcoding/certnews/internal/statistics/domain"
)

// DailyCountryRiskStatModel MySQL 每日国家风险统计表映射。
// deleted 为存储层软删除标记，聚合流程不读写它。
type DailyCountryRiskStatModel struct {
	ID              uint      `gorm:"primaryKey;autoIncrement"`
	StatDate        time.Time `gorm:"column:stat_date;type:date;uniqueIndex:idx_stat_date_country;not null"`
	Country         string    `gorm:"column:country;type:varchar(100);uniqueIndex:idx_stat_date_country;not null"`
	HighRiskCount   int64     `gorm:"column:high_risk_count;default:0"`
	MediumRiskCount int64     `gorm:"column:medium_risk_count;default:0"`
	LowRiskCount    int64     `gorm:"column:low_risk_count;default:0"`
	NoRiskCount     int64     `gorm:"column:no_risk_count;default:0"`
	TotalCount      int64     `gorm:"column:total_count;default:0"`
	Deleted         int       `gorm:"column:deleted;default:0"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (DailyCountryRiskStatModel) TableName() string {
	return "t_daily_country_risk_stats"
}

func toStatModel(stat *domain.DailyCountryRiskStat) *DailyCountryRiskStatModel {
	if stat == nil {
		return nil
	}
	return &DailyCountryRiskStatModel{
		ID:              stat.ID,
		StatDate:        stat.StatDate,
		Country:         stat.Country,
		HighRiskCount:   stat.HighRiskCount,
		MediumRiskCount: stat.MediumRiskCount,
		LowRiskCount:    stat.LowRiskCount,
		NoRiskCount:     stat.NoRiskCount,
		TotalCount:      stat.TotalCount,
		CreatedAt:       stat.CreatedAt,
		UpdatedAt:       stat.UpdatedAt,
	}
}

func toStat(model *DailyCountryRiskStatModel) *domain.DailyCountryRiskStat {
	if model == nil {
		return nil
	}
	return &domain.DailyCountryRiskStat{
		ID:              model.ID,
		StatDate:        model.StatDate,
		Country:         model.Country,
		HighRiskCount:   model.HighRiskCount,
		MediumRiskCount: model.MediumRiskCount,
		LowRiskCount:    model.LowRiskCount,
		NoRiskCount:     model.NoRiskCount,
		TotalCount:      model.TotalCount,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
