package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// runTextPattern 匹配 <w:t> 标签中的文本片段
var runTextPattern = regexp.MustCompile(`<w:t[^>]*>([^<]*)</w:t>`)

// xmlUnescaper 还原 document.xml 中转义的字符
var xmlUnescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDOCX 提取DOCX文档各段落文本，按文档顺序以换行符拼接
func extractDOCX(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("打开DOCX文件失败: %w", err)
	}
	defer reader.Close()

	content := reader.Editable().GetContent()

	// 以段落结束标签切分document.xml，逐段收集<w:t>文本
	var paragraphs []string
	for _, block := range strings.Split(content, "</w:p>") {
		if !strings.Contains(block, "<w:p") {
			continue
		}
		var sb strings.Builder
		for _, match := range runTextPattern.FindAllStringSubmatch(block, -1) {
			sb.WriteString(xmlUnescaper.Replace(match[1]))
		}
		paragraphs = append(paragraphs, sb.String())
	}

	return strings.Join(paragraphs, "\n"), nil
}
