package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"空白输入", "   \t\n ", ""},
		{"去除HTML标签", "<p>产品<b>召回</b></p>", "产品 召回"},
		{"去除HTML实体", "FDA&nbsp;warning&amp;recall", "FDA warning recall"},
		{"压缩连续空白", "a   b\t\tc\n\nd", "a b c d"},
		{"普通文本原样保留", "认证新闻", "认证新闻"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestBuildSearchText(t *testing.T) {
	record := &Record{
		Title:   "<h1>召回公告</h1>",
		Content: "某产品存在安全隐患",
		Summary: "安全警告",
		Product: "玩具",
	}
	got := BuildSearchText(record)
	assert.Equal(t, "召回公告 某产品存在安全隐患 安全警告 玩具", got)
}

func TestBuildSearchTextSkipsEmptyFields(t *testing.T) {
	record := &Record{Title: "召回"}
	assert.Equal(t, "召回", BuildSearchText(record))
}

func TestBuildEnhancedSearchTextFieldOrder(t *testing.T) {
	record := &Record{
		Title:   "标题",
		Content: "正文",
		Summary: "摘要",
		Product: "产品",
		Type:    "类型",
	}
	assert.Equal(t, "标题 摘要 产品 类型 正文", BuildEnhancedSearchText(record))
}

func TestBuildEnhancedSearchTextTruncatesContent(t *testing.T) {
	record := &Record{Content: strings.Repeat("安", maxContentSearchLength+200)}
	got := BuildEnhancedSearchText(record)
	assert.Equal(t, maxContentSearchLength, len([]rune(got)))
	// 截断不破坏多字节字符
	assert.True(t, strings.HasSuffix(got, "安"))
}

func TestBuildEnhancedSearchTextKeywordBeyondTruncationNotVisible(t *testing.T) {
	content := strings.Repeat("x", maxContentSearchLength) + "召回"
	record := &Record{Content: content}
	got := BuildEnhancedSearchText(record)
	assert.NotContains(t, got, "召回")
}
