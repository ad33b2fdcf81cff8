package mysql

import (
	"strings"
	"time"

	"github.com/wyfcoding/certnews/internal/certnews/domain"
)

// RecordModel MySQL 认证新闻表映射。
// matched_keywords 以逗号分隔串落库，related 为可空布尔。
type RecordModel struct {
	ID              string     `gorm:"column:id;type:varchar(36);primaryKey"`
	SourceName      string     `gorm:"column:source_name;type:varchar(100);index"`
	Title           string     `gorm:"column:title;type:varchar(512)"`
	Content         string     `gorm:"column:content;type:longtext"`
	Summary         string     `gorm:"column:summary;type:text"`
	Product         string     `gorm:"column:product;type:varchar(255)"`
	Type            string     `gorm:"column:type;type:varchar(100)"`
	Country         string     `gorm:"column:country;type:varchar(100);index"`
	RiskLevel       string     `gorm:"column:risk_level;type:varchar(10);index"`
	Related         *bool      `gorm:"column:related"`
	MatchedKeywords string     `gorm:"column:matched_keywords;type:text"`
	Deleted         int        `gorm:"column:deleted;default:0;index"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (RecordModel) TableName() string {
	return "t_crawler_data"
}

func toRecordModel(record *domain.Record) *RecordModel {
	if record == nil {
		return nil
	}
	deleted := 0
	if record.Deleted {
		deleted = 1
	}
	return &RecordModel{
		ID:              record.ID,
		SourceName:      record.SourceName,
		Title:           record.Title,
		Content:         record.Content,
		Summary:         record.Summary,
		Product:         record.Product,
		Type:            record.Type,
		Country:         record.Country,
		RiskLevel:       string(record.RiskLevel),
		Related:         toRelatedColumn(record.Related),
		MatchedKeywords: strings.Join(record.MatchedKeywords, ","),
		Deleted:         deleted,
		CreatedAt:       record.CreatedAt,
		UpdatedAt:       record.UpdatedAt,
	}
}

func toRecord(model *RecordModel) *domain.Record {
	if model == nil {
		return nil
	}
	return &domain.Record{
		ID:              model.ID,
		SourceName:      model.SourceName,
		Title:           model.Title,
		Content:         model.Content,
		Summary:         model.Summary,
		Product:         model.Product,
		Type:            model.Type,
		Country:         model.Country,
		RiskLevel:       domain.RiskLevel(model.RiskLevel),
		Related:         toRelation(model.Related),
		MatchedKeywords: splitKeywords(model.MatchedKeywords),
		Deleted:         model.Deleted != 0,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func toRelatedColumn(relation domain.Relation) *bool {
	switch relation {
	case domain.RelationYes:
		v := true
		return &v
	case domain.RelationNo:
		v := false
		return &v
	default:
		return nil
	}
}

func toRelation(related *bool) domain.Relation {
	if related == nil {
		return domain.RelationUnknown
	}
	return domain.RelationOf(*related)
}

func splitKeywords(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if kw := strings.TrimSpace(part); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
