package domain

import "context"

// KeywordSourceKind 本次解析实际使用的关键词来源
type KeywordSourceKind string

const (
	KeywordSourceCustom  KeywordSourceKind = "CUSTOM"
	KeywordSourceFile    KeywordSourceKind = "FILE"
	KeywordSourceCatalog KeywordSourceKind = "CATALOG"
)

// KeywordCatalog 关键词目录服务（外部协作方）
type KeywordCatalog interface {
	GetAllEnabledKeywords(ctx context.Context) ([]string, error)
	GetContainedKeywords(ctx context.Context, text string) ([]string, error)
}

// KeywordStore 文件关键词存储
type KeywordStore interface {
	// Load 读取关键词列表，读取失败视为空列表
	Load() ([]string, error)
	Save(keywords []string) error
	Path() string
}

// KeywordResolver 按优先级解析生效的关键词列表：
// 调用方显式传入 > 文件 > 目录服务。文件读取失败降级到下一来源，
// 目录服务失败向上传播。
type KeywordResolver struct {
	store   KeywordStore
	catalog KeywordCatalog
}

func NewKeywordResolver(store KeywordStore, catalog KeywordCatalog) *KeywordResolver {
	return &KeywordResolver{store: store, catalog: catalog}
}

// Resolve 返回生效关键词列表及其来源
func (r *KeywordResolver) Resolve(ctx context.Context, custom []string) ([]string, KeywordSourceKind, error) {
	if len(custom) > 0 {
		return custom, KeywordSourceCustom, nil
	}
	if r.store != nil {
		if fileKeywords, err := r.store.Load(); err == nil && len(fileKeywords) > 0 {
			return fileKeywords, KeywordSourceFile, nil
		}
	}
	catalogKeywords, err := r.catalog.GetAllEnabledKeywords(ctx)
	if err != nil {
		return nil, KeywordSourceCatalog, err
	}
	return catalogKeywords, KeywordSourceCatalog, nil
}
