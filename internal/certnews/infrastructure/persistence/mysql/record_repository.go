package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wyfcoding/certnews/internal/certnews/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository 创建并返回一个新的 RecordRepository 实例。
func NewRecordRepository(db *gorm.DB) domain.RecordRepository {
	return &recordRepository{db: db}
}

func (r *recordRepository) FindMediumRiskActive(ctx context.Context) ([]*domain.Record, error) {
	var models []*RecordModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("risk_level = ? AND deleted = 0", string(domain.RiskLevelMedium)).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toRecords(models), nil
}

func (r *recordRepository) FindBySourceActive(ctx context.Context, sourceName string) ([]*domain.Record, error) {
	var models []*RecordModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("source_name = ? AND deleted = 0", sourceName).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toRecords(models), nil
}

func (r *recordRepository) FindActive(ctx context.Context) ([]*domain.Record, error) {
	var models []*RecordModel
	err := r.getDB(ctx).WithContext(ctx).Where("deleted = 0").Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toRecords(models), nil
}

func (r *recordRepository) FindByID(ctx context.Context, id string) (*domain.Record, error) {
	var model RecordModel
	err := r.getDB(ctx).WithContext(ctx).Where("id = ?", id).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return toRecord(&model), err
}

func (r *recordRepository) Save(ctx context.Context, record *domain.Record) error {
	if record == nil {
		return nil
	}
	model := toRecordModel(record)
	db := r.getDB(ctx).WithContext(ctx)

	// 爬虫之外新建的记录在此补全主键
	if model.ID == "" {
		model.ID = uuid.NewString()
		record.ID = model.ID
		return db.Create(model).Error
	}

	var existing RecordModel
	err := db.Where("id = ?", record.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(model).Error
	}
	if err != nil {
		return err
	}

	model.CreatedAt = existing.CreatedAt
	return db.Save(model).Error
}

func (r *recordRepository) CountByCountryRiskLevelAndCreatedBetween(ctx context.Context, country string, level domain.RiskLevel, start, end time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).WithContext(ctx).Model(&RecordModel{}).
		Where("country = ? AND risk_level = ? AND created_at >= ? AND created_at < ? AND deleted = 0",
			country, string(level), start, end).
		Count(&count).Error
	return count, err
}

func (r *recordRepository) CountByCountryAndCreatedBetween(ctx context.Context, country string, start, end time.Time) (int64, error) {
	var count int64
	err := r.getDB(ctx).WithContext(ctx).Model(&RecordModel{}).
		Where("country = ? AND created_at >= ? AND created_at < ? AND deleted = 0", country, start, end).
		Count(&count).Error
	return count, err
}

func (r *recordRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func toRecords(models []*RecordModel) []*domain.Record {
	records := make([]*domain.Record, 0, len(models))
	for _, m := range models {
		records = append(records, toRecord(m))
	}
	return records
}
