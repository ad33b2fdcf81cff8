package domain

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	entityPattern     = regexp.MustCompile(`&[a-zA-Z0-9#]+;`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// 内容字段参与匹配的最大长度，超长正文只取前段
const maxContentSearchLength = 1500

// CleanText 清理文本：去掉 HTML 标签与实体，压缩空白
func CleanText(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	text = tagPattern.ReplaceAllString(text, " ")
	text = entityPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// BuildSearchText 构建基础搜索文本（标题+内容+摘要+产品）
func BuildSearchText(record *Record) string {
	var sb strings.Builder
	for _, field := range []string{record.Title, record.Content, record.Summary, record.Product} {
		if field != "" {
			sb.WriteString(CleanText(field))
			sb.WriteString(" ")
		}
	}
	return strings.TrimSpace(sb.String())
}

// BuildEnhancedSearchText 构建增强搜索文本。
// 按优先级拼接标题、摘要、产品、类型，内容截断到前 1500 字符。
func BuildEnhancedSearchText(record *Record) string {
	var sb strings.Builder
	for _, field := range []string{record.Title, record.Summary, record.Product, record.Type} {
		if cleaned := CleanText(field); cleaned != "" {
			sb.WriteString(cleaned)
			sb.WriteString(" ")
		}
	}
	if content := CleanText(record.Content); content != "" {
		if runes := []rune(content); len(runes) > maxContentSearchLength {
			content = string(runes[:maxContentSearchLength])
		}
		sb.WriteString(content)
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
