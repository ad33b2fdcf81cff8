package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wyfcoding/certnews/internal/certnews/domain"
	"github.com/wyfcoding/pkg/logging"
)

// 分批大小仅用于进度日志，不具有事务含义
const escalateBatchSize = 100

// AnalysisService 认证新闻分析服务。
// 负责中风险数据的关键词升级、按数据源的相关性重分类以及文件关键词管理。
type AnalysisService struct {
	records   domain.RecordRepository
	store     domain.KeywordStore
	resolver  *domain.KeywordResolver
	stats     domain.DailyStatsCalculator
	publisher domain.EventPublisher
}

func NewAnalysisService(
	records domain.RecordRepository,
	store domain.KeywordStore,
	catalog domain.KeywordCatalog,
	stats domain.DailyStatsCalculator,
	publisher domain.EventPublisher,
) *AnalysisService {
	return &AnalysisService{
		records:   records,
		store:     store,
		resolver:  domain.NewKeywordResolver(store, catalog),
		stats:     stats,
		publisher: publisher,
	}
}

// EscalateMediumRisk 处理中风险数据：命中关键词的记录升级为高风险。
// customKeywords 非空时覆盖文件与目录服务的关键词。
func (s *AnalysisService) EscalateMediumRisk(ctx context.Context, customKeywords []string) *Outcome {
	logging.Info(ctx, "开始处理中风险数据", "custom_keywords", len(customKeywords))

	records, err := s.records.FindMediumRiskActive(ctx)
	if err != nil {
		logging.Error(ctx, "加载中风险数据失败", "error", err)
		return failedOutcome("自动处理失败: " + err.Error())
	}
	if len(records) == 0 {
		out := newOutcome()
		out.Success = true
		out.Message = "没有中风险数据需要处理"
		return out
	}
	logging.Info(ctx, "找到中风险数据", "count", len(records))

	// 关键词整批解析一次，目录服务失败对本次操作致命
	keywords, sourceKind, err := s.resolver.Resolve(ctx, customKeywords)
	if err != nil {
		logging.Error(ctx, "解析关键词失败", "source", sourceKind, "error", err)
		return failedOutcome("自动处理失败: " + err.Error())
	}

	out := newOutcome()
	out.TotalData = len(records)
	out.UsedKeywords = len(keywords)

	for start := 0; start < len(records); start += escalateBatchSize {
		end := min(start+escalateBatchSize, len(records))
		for _, record := range records[start:end] {
			matched := domain.MatchedKeywords(domain.BuildEnhancedSearchText(record), keywords)
			if len(matched) == 0 {
				out.UnchangedCount++
				continue
			}

			oldLevel := record.RiskLevel
			record.MatchedKeywords = matched
			record.Related = domain.RelationYes
			record.RiskLevel = domain.RiskLevelHigh
			if err := s.records.Save(ctx, record); err != nil {
				logging.Error(ctx, "保存记录失败", "record_id", record.ID, "error", err)
				out.ErrorCount++
				continue
			}

			out.TotalProcessed++
			out.RelatedCount++
			out.RiskProcessedCount++
			s.publishEscalated(ctx, record, oldLevel)
		}
		logging.Info(ctx, "批次处理完成",
			"progress", fmt.Sprintf("%d/%d", end, len(records)),
			"escalated", out.RiskProcessedCount,
			"unchanged", out.UnchangedCount,
			"errors", out.ErrorCount,
		)
	}

	out.Success = true
	out.Message = fmt.Sprintf(
		"中风险数据处理完成，共检查 %d 条中风险数据，匹配关键词 %d 条，升级为高风险 %d 条，未变更 %d 条，使用 %d 个关键词",
		out.TotalData, out.RelatedCount, out.RiskProcessedCount, out.UnchangedCount, out.UsedKeywords,
	)
	logging.Info(ctx, "中风险数据处理完成",
		"total", out.TotalData,
		"matched", out.RelatedCount,
		"escalated", out.RiskProcessedCount,
		"unchanged", out.UnchangedCount,
		"errors", out.ErrorCount,
		"keyword_source", sourceKind,
	)

	s.refreshDailyStats(ctx)
	return out
}

// ReclassifyBySource 按数据源重算相关性。
// 与中风险升级不同，未命中的记录也会被写为不相关并清空匹配关键词。
func (s *AnalysisService) ReclassifyBySource(ctx context.Context, sourceName string) *Outcome {
	logging.Info(ctx, "开始按数据源处理相关状态", "source", sourceName)

	records, err := s.records.FindBySourceActive(ctx, sourceName)
	if err != nil {
		logging.Error(ctx, "加载数据源记录失败", "source", sourceName, "error", err)
		out := failedOutcome("自动处理失败: " + err.Error())
		out.SourceName = sourceName
		return out
	}

	// 文件关键词优先，否则使用目录服务的启用关键词
	keywords, sourceKind, err := s.resolver.Resolve(ctx, nil)
	if err != nil {
		logging.Error(ctx, "解析关键词失败", "source", sourceKind, "error", err)
		out := failedOutcome("自动处理失败: " + err.Error())
		out.SourceName = sourceName
		return out
	}

	out := newOutcome()
	out.SourceName = sourceName
	out.TotalData = len(records)
	out.UsedKeywords = len(keywords)

	for _, record := range records {
		matched := domain.MatchedKeywords(domain.BuildSearchText(record), keywords)
		isRelated := len(matched) > 0

		if record.Related.Known() && record.Related == domain.RelationOf(isRelated) {
			out.UnchangedCount++
			continue
		}

		record.Related = domain.RelationOf(isRelated)
		record.MatchedKeywords = matched
		if err := s.records.Save(ctx, record); err != nil {
			logging.Error(ctx, "更新相关状态失败", "record_id", record.ID, "error", err)
			out.ErrorCount++
			continue
		}

		out.TotalProcessed++
		if isRelated {
			out.RelatedCount++
			// 相关记录同时升级为高风险，失败不影响相关性更新的计数
			record.RiskLevel = domain.RiskLevelHigh
			if err := s.records.Save(ctx, record); err != nil {
				logging.Warn(ctx, "设置风险等级失败", "record_id", record.ID, "error", err)
			} else {
				out.RiskProcessedCount++
			}
		} else {
			out.UnrelatedCount++
		}
		s.publishRelationChanged(ctx, record, isRelated)
	}

	out.Success = true
	out.Message = fmt.Sprintf(
		"数据源 %s 自动处理完成，共处理 %d 条数据，相关 %d 条（设置为高风险 %d 条），不相关 %d 条，未变更 %d 条，使用 %d 个关键词",
		sourceName, out.TotalProcessed, out.RelatedCount, out.RiskProcessedCount,
		out.UnrelatedCount, out.UnchangedCount, out.UsedKeywords,
	)
	logging.Info(ctx, "数据源处理完成",
		"source", sourceName,
		"processed", out.TotalProcessed,
		"related", out.RelatedCount,
		"unrelated", out.UnrelatedCount,
		"unchanged", out.UnchangedCount,
		"errors", out.ErrorCount,
	)

	s.refreshDailyStats(ctx)
	return out
}

// LoadKeywords 读取文件关键词，失败时返回空列表
func (s *AnalysisService) LoadKeywords() []string {
	keywords, err := s.store.Load()
	if err != nil {
		logging.Warn(context.Background(), "加载关键词文件失败", "path", s.store.Path(), "error", err)
		return []string{}
	}
	return keywords
}

// SaveKeywords 保存关键词到文件，任何 I/O 失败只返回 false
func (s *AnalysisService) SaveKeywords(keywords []string) bool {
	if err := s.store.Save(keywords); err != nil {
		logging.Error(context.Background(), "保存关键词文件失败", "path", s.store.Path(), "error", err)
		return false
	}
	return true
}

// GetKeywordInfo 返回文件关键词信息
func (s *AnalysisService) GetKeywordInfo() *KeywordFileInfo {
	keywords := s.LoadKeywords()
	return &KeywordFileInfo{
		Success:   true,
		Keywords:  keywords,
		Count:     len(keywords),
		FilePath:  s.store.Path(),
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// MigrateKeywords 将调用方本地维护的关键词列表迁移到文件
func (s *AnalysisService) MigrateKeywords(keywords []string) *MigrateResult {
	trimmed := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			trimmed = append(trimmed, strings.TrimSpace(kw))
		}
	}
	if len(trimmed) == 0 {
		return &MigrateResult{Success: false, Error: "没有提供要迁移的关键词"}
	}
	if !s.SaveKeywords(trimmed) {
		return &MigrateResult{Success: false, Error: "保存关键词到文件失败"}
	}
	logging.Info(context.Background(), "关键词迁移完成", "count", len(trimmed), "path", s.store.Path())
	return &MigrateResult{
		Success:       true,
		Message:       "成功将本地关键词迁移到文件",
		MigratedCount: len(trimmed),
		FilePath:      s.store.Path(),
	}
}

// UpdateTodayStats 手动触发今日国家风险统计重算
func (s *AnalysisService) UpdateTodayStats(ctx context.Context) *Outcome {
	out := newOutcome()
	if err := s.stats.CalculateDailyStats(ctx, time.Now()); err != nil {
		logging.Error(ctx, "更新今日统计失败", "error", err)
		out.Error = "更新今天的数据失败: " + err.Error()
		return out
	}
	out.Success = true
	out.Message = "今天的数据更新成功"
	out.StatDate = time.Now().Format("2006-01-02")
	return out
}

// refreshDailyStats 重分类后的尽力而为统计刷新
func (s *AnalysisService) refreshDailyStats(ctx context.Context) {
	if s.stats == nil {
		return
	}
	if err := s.stats.CalculateDailyStats(ctx, time.Now()); err != nil {
		logging.Warn(ctx, "更新每日国家风险统计数据失败", "error", err)
		return
	}
	logging.Info(ctx, "每日国家风险统计数据更新完成")
}

func (s *AnalysisService) publishEscalated(ctx context.Context, record *domain.Record, oldLevel domain.RiskLevel) {
	if s.publisher == nil {
		return
	}
	event := domain.RecordEscalatedEvent{
		RecordID:        record.ID,
		SourceName:      record.SourceName,
		OldRiskLevel:    oldLevel,
		NewRiskLevel:    record.RiskLevel,
		MatchedKeywords: record.MatchedKeywords,
		Timestamp:       time.Now(),
	}
	_ = s.publisher.Publish(ctx, domain.RecordEscalatedEventType, record.ID, event)
}

func (s *AnalysisService) publishRelationChanged(ctx context.Context, record *domain.Record, related bool) {
	if s.publisher == nil {
		return
	}
	event := domain.RecordRelationChangedEvent{
		RecordID:        record.ID,
		SourceName:      record.SourceName,
		Related:         related,
		MatchedKeywords: record.MatchedKeywords,
		Timestamp:       time.Now(),
	}
	_ = s.publisher.Publish(ctx, domain.RecordRelationChangedEventType, record.ID, event)
}

func newOutcome() *Outcome {
	return &Outcome{Timestamp: time.Now().Format(time.RFC3339)}
}

func failedOutcome(message string) *Outcome {
	out := newOutcome()
	out.Error = message
	return out
}
