// Package keywordfile 提供基于本地文本文件的关键词存储。
// 文件为 UTF-8 文本，每行一个关键词，# 开头的行为注释，空行忽略。
package keywordfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/wyfcoding/certnews/internal/certnews/domain"
)

const commentPrefix = "#"

type Store struct {
	path string
}

// NewStore 创建文件关键词存储
func NewStore(path string) *Store {
	return &Store{path: path}
}

var _ domain.KeywordStore = (*Store)(nil)

func (s *Store) Path() string {
	return s.path
}

// Load 逐行读取关键词，去掉空行与注释行
func (s *Store) Load() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	keywords := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keywords, nil
}

// Save 覆盖写入关键词文件，带注释头与生成时间，必要时创建父目录
func (s *Store) Save(keywords []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("# 认证新闻关键词列表\n")
	sb.WriteString("# 每行一个关键词，以#开头的行为注释\n")
	sb.WriteString(fmt.Sprintf("# 生成时间: %s\n\n", time.Now().Format(time.RFC3339)))
	for _, keyword := range keywords {
		if kw := strings.TrimSpace(keyword); kw != "" {
			sb.WriteString(kw)
			sb.WriteString("\n")
		}
	}

	return os.WriteFile(s.path, []byte(sb.String()), 0o644)
}
