package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/certnews/internal/certnews/application"
	"github.com/wyfcoding/pkg/response"
)

// AnalysisHandler 负责处理认证新闻分析相关的 HTTP 请求
type AnalysisHandler struct {
	svc *application.AnalysisService
}

func NewAnalysisHandler(svc *application.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/certnews")
	{
		api.POST("/analysis/escalate", h.Escalate)
		api.POST("/analysis/reclassify-by-source", h.ReclassifyBySource)
		api.GET("/keywords/file", h.GetKeywordInfo)
		api.POST("/keywords/file", h.SaveKeywords)
		api.POST("/keywords/migrate", h.MigrateKeywords)
		api.POST("/stats/update-today", h.UpdateTodayStats)
	}
}

// Escalate 触发中风险数据升级处理
func (h *AnalysisHandler) Escalate(c *gin.Context) {
	var req application.EscalateRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	response.Success(c, h.svc.EscalateMediumRisk(c.Request.Context(), req.Keywords))
}

// ReclassifyBySource 触发指定数据源的相关性重分类
func (h *AnalysisHandler) ReclassifyBySource(c *gin.Context) {
	var req application.ReclassifyBySourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	response.Success(c, h.svc.ReclassifyBySource(c.Request.Context(), req.SourceName))
}

// GetKeywordInfo 获取文件关键词信息
func (h *AnalysisHandler) GetKeywordInfo(c *gin.Context) {
	response.Success(c, h.svc.GetKeywordInfo())
}

// SaveKeywords 保存关键词到文件
func (h *AnalysisHandler) SaveKeywords(c *gin.Context) {
	var req application.SaveKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	if !h.svc.SaveKeywords(req.Keywords) {
		response.ErrorWithStatus(c, http.StatusInternalServerError, "保存关键词到文件失败", "")
		return
	}
	response.Success(c, gin.H{"success": true, "count": len(req.Keywords)})
}

// MigrateKeywords 迁移调用方本地关键词到文件
func (h *AnalysisHandler) MigrateKeywords(c *gin.Context) {
	var req application.SaveKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	result := h.svc.MigrateKeywords(req.Keywords)
	if !result.Success {
		response.ErrorWithStatus(c, http.StatusBadRequest, result.Error, "")
		return
	}
	response.Success(c, result)
}

// UpdateTodayStats 手动触发今日统计更新
func (h *AnalysisHandler) UpdateTodayStats(c *gin.Context) {
	out := h.svc.UpdateTodayStats(c.Request.Context())
	if !out.Success {
		response.ErrorWithStatus(c, http.StatusInternalServerError, out.Error, "")
		return
	}
	response.Success(c, out)
}
