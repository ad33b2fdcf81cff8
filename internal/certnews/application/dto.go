package application

// Outcome 一次分析操作的结构化结果
type Outcome struct {
	Success            bool   `json:"success"`
	TotalProcessed     int    `json:"totalProcessed"`
	RelatedCount       int    `json:"relatedCount"`
	UnrelatedCount     int    `json:"unrelatedCount"`
	UnchangedCount     int    `json:"unchangedCount"`
	RiskProcessedCount int    `json:"riskProcessedCount"`
	ErrorCount         int    `json:"errorCount"`
	TotalData          int    `json:"totalData"`
	UsedKeywords       int    `json:"usedKeywords"`
	SourceName         string `json:"sourceName,omitempty"`
	StatDate           string `json:"statDate,omitempty"`
	Message            string `json:"message,omitempty"`
	Timestamp          string `json:"timestamp"`
	Error              string `json:"error,omitempty"`
}

// KeywordFileInfo 文件关键词信息
type KeywordFileInfo struct {
	Success   bool     `json:"success"`
	Keywords  []string `json:"keywords"`
	Count     int      `json:"count"`
	FilePath  string   `json:"filePath"`
	Timestamp string   `json:"timestamp"`
	Error     string   `json:"error,omitempty"`
}

// MigrateResult 关键词迁移结果
type MigrateResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	MigratedCount int    `json:"migratedCount"`
	FilePath      string `json:"filePath,omitempty"`
	Error         string `json:"error,omitempty"`
}

// EscalateRequest 中风险升级请求
type EscalateRequest struct {
	Keywords []string `json:"keywords"`
}

// ReclassifyBySourceRequest 按数据源重分类请求
type ReclassifyBySourceRequest struct {
	SourceName string `json:"sourceName" binding:"required"`
}

// SaveKeywordsRequest 保存关键词请求
type SaveKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
}
