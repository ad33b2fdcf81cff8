package domain

import (
	"context"

	"gorm.io/gorm"
)

// Keyword 认证新闻关键词实体
type Keyword struct {
	gorm.Model
	Keyword     string `gorm:"column:keyword;type:varchar(255);uniqueIndex;not null"`
	Description string `gorm:"column:description;type:varchar(512)"`
	Enabled     bool   `gorm:"column:enabled;default:true;index"`
	SortOrder   int    `gorm:"column:sort_order;default:0"`
}

func (Keyword) TableName() string { return "t_keywords" }

// KeywordRepository 关键词仓储
type KeywordRepository interface {
	Save(ctx context.Context, keyword *Keyword) error
	FindByKeyword(ctx context.Context, keyword string) (*Keyword, error)
	FindAllEnabled(ctx context.Context) ([]*Keyword, error)
	FindAll(ctx context.Context) ([]*Keyword, error)
	Delete(ctx context.Context, keyword string) error
}
