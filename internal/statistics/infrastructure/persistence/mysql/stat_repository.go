package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/wyfcoding/certnews/internal/statistics/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type statRepository struct {
	db *gorm.DB
}

// NewStatRepository 创建并返回一个新的 StatRepository 实例。
func NewStatRepository(db *gorm.DB) domain.StatRepository {
	return &statRepository{db: db}
}

func (r *statRepository) FindByDateAndCountry(ctx context.Context, date time.Time, country string) (*domain.DailyCountryRiskStat, error) {
	var model DailyCountryRiskStatModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("stat_date = ? AND country = ? AND deleted = 0", date.Format("2006-01-02"), country).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return toStat(&model), err
}

func (r *statRepository) FindByDate(ctx context.Context, date time.Time) ([]*domain.DailyCountryRiskStat, error) {
	var models []*DailyCountryRiskStatModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("stat_date = ? AND deleted = 0", date.Format("2006-01-02")).
		Order("country ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	stats := make([]*domain.DailyCountryRiskStat, 0, len(models))
	for _, m := range models {
		stats = append(stats, toStat(m))
	}
	return stats, nil
}

func (r *statRepository) Save(ctx context.Context, stat *domain.DailyCountryRiskStat) error {
	if stat == nil {
		return nil
	}
	model := toStatModel(stat)
	db := r.getDB(ctx).WithContext(ctx)

	var existing DailyCountryRiskStatModel
	err := db.Where("stat_date = ? AND country = ?", stat.StatDate.Format("2006-01-02"), stat.Country).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(model).Error
	}
	if err != nil {
		return err
	}

	model.ID = existing.ID
	model.CreatedAt = existing.CreatedAt
	return db.Save(model).Error
}

func (r *statRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}
