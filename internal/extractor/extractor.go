package extractor

import (
	"errors"
	"strings"
)

// Format 文档格式，入口处一次性判定后分派到对应的提取函数
type Format int

const (
	FormatUnsupported Format = iota
	FormatPDF
	FormatDOCX
)

// ErrUnsupportedFormat 不支持的文件格式，在读取文件内容之前返回
var ErrUnsupportedFormat = errors.New("unsupported file format. Only .pdf and .docx are supported")

// DetectFormat 按文件名后缀判定文档格式，后缀区分大小写
func DetectFormat(path string) Format {
	switch {
	case strings.HasSuffix(path, ".pdf"):
		return FormatPDF
	case strings.HasSuffix(path, ".docx"):
		return FormatDOCX
	default:
		return FormatUnsupported
	}
}

// Extract 提取文档的纯文本内容
// PDF 按页序拼接各页文本，DOCX 按文档顺序以换行符拼接各段落
func Extract(path string) (string, error) {
	switch DetectFormat(path) {
	case FormatPDF:
		return extractPDF(path)
	case FormatDOCX:
		return extractDOCX(path)
	default:
		return "", ErrUnsupportedFormat
	}
}
