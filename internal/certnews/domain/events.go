package domain

import (
	"context"
	"time"
)

const (
	RecordEscalatedEventType       = "certnews.record.escalated"
	RecordRelationChangedEventType = "certnews.record.relation_changed"
)

// RecordEscalatedEvent 记录升级为高风险事件
type RecordEscalatedEvent struct {
	RecordID        string    `json:"record_id"`
	SourceName      string    `json:"source_name"`
	OldRiskLevel    RiskLevel `json:"old_risk_level"`
	NewRiskLevel    RiskLevel `json:"new_risk_level"`
	MatchedKeywords []string  `json:"matched_keywords"`
	Timestamp       time.Time `json:"timestamp"`
}

// RecordRelationChangedEvent 记录相关性变更事件
type RecordRelationChangedEvent struct {
	RecordID        string    `json:"record_id"`
	SourceName      string    `json:"source_name"`
	Related         bool      `json:"related"`
	MatchedKeywords []string  `json:"matched_keywords"`
	Timestamp       time.Time `json:"timestamp"`
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, event any) error
	PublishInTx(ctx context.Context, tx any, topic string, key string, event any) error
}
