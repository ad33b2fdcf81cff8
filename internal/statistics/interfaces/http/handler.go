package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/certnews/internal/statistics/application"
	"github.com/wyfcoding/pkg/response"
)

// StatsHandler 负责处理每日国家风险统计相关的 HTTP 请求
type StatsHandler struct {
	svc *application.StatsService
}

func NewStatsHandler(svc *application.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/stats")
	{
		api.GET("/daily", h.GetDaily)
		api.POST("/recalculate", h.Recalculate)
		api.POST("/generate-by-date", h.GenerateByDate)
	}
}

// GetDaily 查询指定日期（缺省为今天）的统计行
func (h *StatsHandler) GetDaily(c *gin.Context) {
	date, err := parseDate(c.Query("date"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "日期格式错误，应为 YYYY-MM-DD", "")
		return
	}
	stats, err := h.svc.GetStatsByDate(c.Request.Context(), date)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, stats)
}

type statDateRequest struct {
	Date string `json:"date"`
}

// Recalculate 按当前记录快照重算指定日期（缺省为今天）的统计
func (h *StatsHandler) Recalculate(c *gin.Context) {
	var req statDateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "日期格式错误，应为 YYYY-MM-DD", "")
		return
	}
	if err := h.svc.CalculateDailyStats(c.Request.Context(), date); err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"statDate": date.Format("2006-01-02")})
}

// GenerateByDate 按记录创建时间区间生成指定日期（缺省为今天）的统计
func (h *StatsHandler) GenerateByDate(c *gin.Context) {
	var req statDateRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "日期格式错误，应为 YYYY-MM-DD", "")
		return
	}
	if err := h.svc.GenerateStatsFromCreationDates(c.Request.Context(), date); err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"statDate": date.Format("2006-01-02")})
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", raw, time.Local)
}
