package analyzer

import (
	"errors"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hanfz/docfreq/internal/extractor"
	"github.com/hanfz/docfreq/internal/segment"
	"github.com/hanfz/docfreq/internal/stopwords"
)

const (
	// DefaultTopK 每类默认返回的条目数
	DefaultTopK = 10
	// DefaultKeywordLimit 关键词抽取的候选上限
	DefaultKeywordLimit = 1000
)

var (
	// chineseWordPattern 整词匹配连续的CJK统一表意文字
	chineseWordPattern = regexp.MustCompile(`^[\x{4e00}-\x{9fff}]+$`)
	// digitPattern 逐个匹配十进制数字字符，不合并为多位数
	digitPattern = regexp.MustCompile(`[0-9]`)
	// specialCharPattern 非单词字符且非空白
	// 原实现用的是Unicode语义下的[^\w\s]，汉字属于\w不会被命中，
	// Go的\w只覆盖ASCII，因此展开为[^\p{L}\p{N}_\s]保持同样的行为
	specialCharPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)
	// punctuationPattern 精确词频统计前替换为空格的CJK与ASCII标点
	punctuationPattern = regexp.MustCompile("[。，、；：？！「」『』（）【】《》〈〉——……—·～“”‘’.,;:?!\"'()\\[\\]{}\\-_=+&@#$%*~/|\\\\<>^`]")
)

// Result 三类Top-K统计结果，互相独立
type Result struct {
	ChineseWords []Entry
	Numbers      []Entry
	SpecialChars []Entry
}

// ClassifyAndRank 对同一份文本做三类频次统计
// 中文词取自关键词抽取结果并要求整词为连续汉字；
// 数字与特殊字符直接逐字符扫描原文。
// 三类词元来源不一致是原始实现的既有行为，刻意保留，不做统一。
func ClassifyAndRank(text string, keywords []string, topK int) *Result {
	chinese := make([]string, 0, len(keywords))
	for _, w := range keywords {
		if chineseWordPattern.MatchString(w) {
			chinese = append(chinese, w)
		}
	}
	numbers := digitPattern.FindAllString(text, -1)
	specials := specialCharPattern.FindAllString(text, -1)

	return &Result{
		ChineseWords: Tally(chinese).TopK(topK),
		Numbers:      Tally(numbers).TopK(topK),
		SpecialChars: Tally(specials).TopK(topK),
	}
}

// CountWordInText 统计目标词在文本分词结果中的精确出现次数
// 先把标点替换成空格再全量切分，词元去掉首尾空白后与目标词做全等比较。
// 不过滤停用词，不做大小写归一。
func CountWordInText(seg *segment.Segmenter, text, target string) int {
	cleaned := punctuationPattern.ReplaceAllString(text, " ")
	count := 0
	for _, tok := range seg.Cut(cleaned) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if tok == target {
			count++
		}
	}
	return count
}

// Session 绑定单个文件的分析会话
// 停用词在每次构造时从磁盘重建，logger由调用方注入并管理生命周期
type Session struct {
	filePath string
	stop     stopwords.Set
	seg      *segment.Segmenter
	logger   *logrus.Logger

	// KeywordLimit 关键词抽取候选上限，构造后可按配置覆盖
	KeywordLimit int
}

// NewSession 创建分析会话并加载停用词目录
func NewSession(filePath, stopwordDir string, seg *segment.Segmenter, logger *logrus.Logger) *Session {
	return &Session{
		filePath:     filePath,
		stop:         stopwords.Load(stopwordDir),
		seg:          seg,
		logger:       logger,
		KeywordLimit: DefaultKeywordLimit,
	}
}

// extract 提取文档全文，不支持的格式记录错误日志后原样返回
func (s *Session) extract() (string, error) {
	text, err := extractor.Extract(s.filePath)
	if errors.Is(err, extractor.ErrUnsupportedFormat) {
		s.logger.WithField("file", s.filePath).Error("Unsupported file format")
	}
	return text, err
}

// Analyze 执行Top-K分析：提取全文、切分、过滤停用词、抽取关键词、三类统计
func (s *Session) Analyze(topK int) (*Result, error) {
	text, err := s.extract()
	if err != nil {
		return nil, err
	}

	tokens := s.seg.Cut(text)
	cleaned := segment.FilterTokens(tokens, s.stop)
	keywords := s.seg.ExtractKeywords(strings.Join(cleaned, " "), s.KeywordLimit)

	result := ClassifyAndRank(text, keywords, topK)
	s.logger.WithField("words", result.ChineseWords).Info("Most common chinese words")
	s.logger.WithField("numbers", result.Numbers).Info("Most common numbers")
	s.logger.WithField("chars", result.SpecialChars).Info("Most common special characters")
	return result, nil
}

// CountWord 统计目标词在该文件全文中的精确出现次数，不做停用词过滤
func (s *Session) CountWord(target string) (int, error) {
	text, err := s.extract()
	if err != nil {
		return 0, err
	}
	return CountWordInText(s.seg, text, target), nil
}
