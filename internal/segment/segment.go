package segment

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/extracker"

	"github.com/hanfz/docfreq/internal/stopwords"
)

// Segmenter 封装gse分词器与TF-IDF关键词提取器
// 词典加载开销较大，进程内共享同一个实例
type Segmenter struct {
	seg gse.Segmenter
	tag extracker.TagExtracter
}

// New 加载内置简体中文词典与IDF语料
func New() (*Segmenter, error) {
	var s Segmenter
	s.seg.AlphaNum = true
	if err := s.seg.LoadDictEmbed("zh_s"); err != nil {
		return nil, fmt.Errorf("加载分词词典失败: %w", err)
	}
	s.tag.WithGse(s.seg)
	if err := s.tag.LoadIdf(); err != nil {
		return nil, fmt.Errorf("加载IDF语料失败: %w", err)
	}
	return &s, nil
}

// Cut 全量切分，按原文顺序返回所有词元，不去重、不过滤单字
func (s *Segmenter) Cut(text string) []string {
	return s.seg.Cut(text, true)
}

// ExtractKeywords 基于TF-IDF返回至多limit个按权重降序排列的关键词
// 权重不对外暴露
func (s *Segmenter) ExtractKeywords(text string, limit int) []string {
	tags := s.tag.ExtractTags(text, limit)
	words := make([]string, 0, len(tags))
	for _, t := range tags {
		words = append(words, t.Text)
	}
	return words
}

// FilterTokens 去掉长度不超过一个字符的词元以及停用词
// 只在Top-K分析路径上使用，精确词频统计不经过该过滤
func FilterTokens(tokens []string, stop stopwords.Set) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 1 {
			continue
		}
		if stop.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}
