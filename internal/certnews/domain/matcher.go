package domain

import "strings"

// MatchedKeywords 返回文本中命中的关键词，顺序与传入的关键词列表一致。
// 匹配为大小写不敏感的子串包含。
func MatchedKeywords(text string, keywords []string) []string {
	matched := make([]string, 0)
	if text == "" || len(keywords) == 0 {
		return matched
	}
	lowerText := strings.ToLower(text)
	for _, keyword := range keywords {
		kw := strings.TrimSpace(keyword)
		if kw == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}

// ContainsAnyKeyword 文本是否命中任意关键词
func ContainsAnyKeyword(text string, keywords []string) bool {
	if text == "" || len(keywords) == 0 {
		return false
	}
	lowerText := strings.ToLower(text)
	for _, keyword := range keywords {
		kw := strings.TrimSpace(keyword)
		if kw == "" {
			continue
		}
		if strings.Contains(lowerText, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
