package infrastructure

import (
	"context"
	"errors"

	"github.com/wyfcoding/certnews/internal/keyword/domain"
	"gorm.io/gorm"
)

type GormKeywordRepository struct {
	db *gorm.DB
}

func NewGormKeywordRepository(db *gorm.DB) *GormKeywordRepository {
	return &GormKeywordRepository{db: db}
}

func (r *GormKeywordRepository) Save(ctx context.Context, keyword *domain.Keyword) error {
	return r.db.WithContext(ctx).Save(keyword).Error
}

func (r *GormKeywordRepository) FindByKeyword(ctx context.Context, keyword string) (*domain.Keyword, error) {
	var entity domain.Keyword
	err := r.db.WithContext(ctx).Where("keyword = ?", keyword).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entity, err
}

func (r *GormKeywordRepository) FindAllEnabled(ctx context.Context) ([]*domain.Keyword, error) {
	var keywords []*domain.Keyword
	err := r.db.WithContext(ctx).
		Where("enabled = ?", true).
		Order("sort_order ASC, id ASC").
		Find(&keywords).Error
	return keywords, err
}

func (r *GormKeywordRepository) FindAll(ctx context.Context) ([]*domain.Keyword, error) {
	var keywords []*domain.Keyword
	err := r.db.WithContext(ctx).Order("sort_order ASC, id ASC").Find(&keywords).Error
	return keywords, err
}

func (r *GormKeywordRepository) Delete(ctx context.Context, keyword string) error {
	return r.db.WithContext(ctx).Where("keyword = ?", keyword).Delete(&domain.Keyword{}).Error
}
