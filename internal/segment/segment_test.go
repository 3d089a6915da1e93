package segment

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanfz/docfreq/internal/stopwords"
)

var (
	segOnce sync.Once
	seg     *Segmenter
	segErr  error
)

func sharedSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	segOnce.Do(func() {
		seg, segErr = New()
	})
	require.NoError(t, segErr, "初始化分词器失败")
	return seg
}

func TestSegmenter_Cut(t *testing.T) {
	s := sharedSegmenter(t)

	tokens := s.Cut("你好世界你好")

	// 全量切分：保留顺序与重复
	count := 0
	for _, tok := range tokens {
		if tok == "你好" {
			count++
		}
	}
	assert.Equal(t, 2, count, "重复词元必须全部保留: %v", tokens)
}

func TestSegmenter_Cut_Empty(t *testing.T) {
	s := sharedSegmenter(t)
	assert.Empty(t, s.Cut(""))
}

func TestSegmenter_ExtractKeywords(t *testing.T) {
	s := sharedSegmenter(t)

	text := "自然语言处理 自然语言处理 自然语言处理 机器学习 机器学习 数据"
	keywords := s.ExtractKeywords(text, 2)

	assert.LessOrEqual(t, len(keywords), 2)
	assert.NotEmpty(t, keywords)

	// 返回的关键词互不相同
	seen := make(map[string]bool)
	for _, w := range keywords {
		assert.False(t, seen[w], "关键词不应重复: %v", keywords)
		seen[w] = true
	}
}

func TestFilterTokens(t *testing.T) {
	stop := stopwords.Set{"但是": {}}

	got := FilterTokens([]string{"你好", "的", "但是", "a", "世界", ""}, stop)

	// 单字、空串与停用词全部过滤
	assert.Equal(t, []string{"你好", "世界"}, got)
}

func TestFilterTokens_EmptyStopwordSet(t *testing.T) {
	got := FilterTokens([]string{"你好", "了"}, stopwords.Set{})
	assert.Equal(t, []string{"你好"}, got)
}
