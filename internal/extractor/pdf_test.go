package extractor

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestPDF 在临时目录生成一个最小可读的PDF文件，每个元素对应一页
// 交叉引用表的偏移量按实际写入长度计算，标准Type1字体，文本限ASCII
func createTestPDF(t *testing.T, pageTexts []string) string {
	t.Helper()

	n := len(pageTexts)
	fontObj := 3 + 2*n

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	addObj := func(format string, args ...interface{}) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, format, args...)
	}

	kids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", strings.Join(kids, " "), n)
	for i, text := range pageTexts {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		addObj("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>\nendobj\n",
			pageObj, fontObj, contentObj)
		addObj("%d 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n",
			contentObj, len(stream), stream)
	}
	addObj("%d 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>\nendobj\n", fontObj)

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xrefOffset)

	path := filepath.Join(t.TempDir(), "test.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path
}

func TestExtractPDF_SinglePage(t *testing.T) {
	path := createTestPDF(t, []string{"hello pdf world"})

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "hello pdf world")
}

func TestExtractPDF_PagesInOrder(t *testing.T) {
	path := createTestPDF(t, []string{"first page alpha", "second page beta"})

	text, err := Extract(path)
	require.NoError(t, err)
	assert.Contains(t, text, "first page alpha")
	assert.Contains(t, text, "second page beta")
	// 页序决定拼接顺序
	assert.Less(t, strings.Index(text, "first page alpha"), strings.Index(text, "second page beta"))
}

func TestExtractPDF_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("这不是一个PDF文件"), 0644))

	_, err := Extract(path)
	assert.Error(t, err)
}
