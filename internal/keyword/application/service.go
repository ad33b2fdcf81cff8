package application

import (
	"context"
	"errors"
	"strings"

	"github.com/wyfcoding/certnews/internal/keyword/domain"
)

var (
	ErrKeywordExists   = errors.New("keyword already exists")
	ErrKeywordNotFound = errors.New("keyword not found")
	ErrEmptyKeyword    = errors.New("keyword is empty")
)

// KeywordService 关键词目录服务。
// 同时实现 certnews 上下文的 KeywordCatalog 协作接口。
type KeywordService struct {
	repo domain.KeywordRepository
}

func NewKeywordService(repo domain.KeywordRepository) *KeywordService {
	return &KeywordService{repo: repo}
}

// GetAllEnabledKeywords 返回全部启用关键词，按排序字段有序
func (s *KeywordService) GetAllEnabledKeywords(ctx context.Context) ([]string, error) {
	entities, err := s.repo.FindAllEnabled(ctx)
	if err != nil {
		return nil, err
	}
	keywords := make([]string, 0, len(entities))
	for _, e := range entities {
		keywords = append(keywords, e.Keyword)
	}
	return keywords, nil
}

// GetContainedKeywords 返回文本中出现的启用关键词，大小写不敏感
func (s *KeywordService) GetContainedKeywords(ctx context.Context, text string) ([]string, error) {
	enabled, err := s.GetAllEnabledKeywords(ctx)
	if err != nil {
		return nil, err
	}
	contained := make([]string, 0)
	if text == "" {
		return contained, nil
	}
	lowerText := strings.ToLower(text)
	for _, keyword := range enabled {
		if strings.Contains(lowerText, strings.ToLower(keyword)) {
			contained = append(contained, keyword)
		}
	}
	return contained, nil
}

// Create 新增关键词
func (s *KeywordService) Create(ctx context.Context, keyword, description string, sortOrder int) (*domain.Keyword, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	existing, err := s.repo.FindByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrKeywordExists
	}
	entity := &domain.Keyword{
		Keyword:     keyword,
		Description: description,
		Enabled:     true,
		SortOrder:   sortOrder,
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// SetEnabled 启用或停用关键词
func (s *KeywordService) SetEnabled(ctx context.Context, keyword string, enabled bool) (*domain.Keyword, error) {
	entity, err := s.repo.FindByKeyword(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrKeywordNotFound
	}
	entity.Enabled = enabled
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// List 返回全部关键词
func (s *KeywordService) List(ctx context.Context) ([]*domain.Keyword, error) {
	return s.repo.FindAll(ctx)
}

// Delete 删除关键词
func (s *KeywordService) Delete(ctx context.Context, keyword string) error {
	entity, err := s.repo.FindByKeyword(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return err
	}
	if entity == nil {
		return ErrKeywordNotFound
	}
	return s.repo.Delete(ctx, entity.Keyword)
}
