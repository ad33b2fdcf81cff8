package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/certnews/internal/keyword/application"
	"github.com/wyfcoding/pkg/response"
)

// KeywordHandler 负责处理关键词目录相关的 HTTP 请求
type KeywordHandler struct {
	svc *application.KeywordService
}

func NewKeywordHandler(svc *application.KeywordService) *KeywordHandler {
	return &KeywordHandler{svc: svc}
}

// RegisterRoutes 注册路由
func (h *KeywordHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api/v1/keywords")
	{
		api.GET("", h.List)
		api.GET("/enabled", h.ListEnabled)
		api.POST("", h.Create)
		api.PUT("/:keyword/enabled", h.SetEnabled)
		api.DELETE("/:keyword", h.Delete)
	}
}

type createKeywordRequest struct {
	Keyword     string `json:"keyword" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

type setEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// List 返回全部关键词
func (h *KeywordHandler) List(c *gin.Context) {
	keywords, err := h.svc.List(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, keywords)
}

// ListEnabled 返回全部启用关键词
func (h *KeywordHandler) ListEnabled(c *gin.Context) {
	keywords, err := h.svc.GetAllEnabledKeywords(c.Request.Context())
	if err != nil {
		response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
		return
	}
	response.Success(c, keywords)
}

// Create 新增关键词
func (h *KeywordHandler) Create(c *gin.Context) {
	var req createKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	entity, err := h.svc.Create(c.Request.Context(), req.Keyword, req.Description, req.SortOrder)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, application.ErrKeywordExists) || errors.Is(err, application.ErrEmptyKeyword) {
			status = http.StatusBadRequest
		}
		response.ErrorWithStatus(c, status, err.Error(), "")
		return
	}
	response.Success(c, entity)
}

// SetEnabled 启用或停用关键词
func (h *KeywordHandler) SetEnabled(c *gin.Context) {
	var req setEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	entity, err := h.svc.SetEnabled(c.Request.Context(), c.Param("keyword"), *req.Enabled)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, application.ErrKeywordNotFound) {
			status = http.StatusNotFound
		}
		response.ErrorWithStatus(c, status, err.Error(), "")
		return
	}
	response.Success(c, entity)
}

// Delete 删除关键词
func (h *KeywordHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("keyword")); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, application.ErrKeywordNotFound) {
			status = http.StatusNotFound
		}
		response.ErrorWithStatus(c, status, err.Error(), "")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
