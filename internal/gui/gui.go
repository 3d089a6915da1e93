package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/hanfz/docfreq/internal/analyzer"
	"github.com/hanfz/docfreq/internal/config"
	"github.com/hanfz/docfreq/internal/segment"
)

// App 桌面界面：三个操作按钮加一个可滚动的只读输出区
// 分析管线在工作goroutine中执行，结果经fyne.Do回到界面线程，
// 执行期间按钮禁用，保持一次只处理一个动作，不支持取消
type App struct {
	cfg    *config.Config
	seg    *segment.Segmenter
	logger *logrus.Logger

	win        fyne.Window
	output     *widget.Label
	selectBtn  *widget.Button
	analyzeBtn *widget.Button
	countBtn   *widget.Button

	filePath string
}

// Run 构建窗口并进入事件循环，阻塞直到窗口关闭
func Run(cfg *config.Config, seg *segment.Segmenter, logger *logrus.Logger) {
	a := app.New()
	g := &App{
		cfg:    cfg,
		seg:    seg,
		logger: logger,
		win:    a.NewWindow("Text File Analyzer"),
	}

	g.output = widget.NewLabel("")
	g.output.Wrapping = fyne.TextWrapWord
	g.selectBtn = widget.NewButton("Select File", g.selectFile)
	g.analyzeBtn = widget.NewButton("Analyze File", g.analyzeFile)
	g.countBtn = widget.NewButton("Count Word Frequency", g.countWordFrequency)

	buttons := container.NewVBox(g.selectBtn, g.analyzeBtn, g.countBtn)
	g.win.SetContent(container.NewBorder(buttons, nil, nil, nil, container.NewVScroll(g.output)))
	g.win.Resize(fyne.NewSize(900, 700))
	g.win.ShowAndRun()
}

// selectFile 弹出文件选择对话框，只显示 .pdf / .docx
func (g *App) selectFile() {
	fo := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, g.win)
			return
		}
		if rc == nil {
			// 用户取消
			return
		}
		defer rc.Close()

		g.filePath = rc.URI().Path()
		dialog.ShowInformation("File Selected", fmt.Sprintf("Selected file: %s", g.filePath), g.win)
	}, g.win)
	fo.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".docx"}))
	fo.Show()
}

// analyzeFile 执行Top-K分析并把三类结果渲染到输出区
func (g *App) analyzeFile() {
	if g.filePath == "" {
		// fyne没有警告级别对话框，未选文件的提醒用信息对话框代替
		dialog.ShowInformation("No File", "Please select a file first.", g.win)
		return
	}

	g.setBusy(true)
	path := g.filePath
	go func() {
		sess := analyzer.NewSession(path, g.cfg.StopwordsDir, g.seg, g.logger)
		sess.KeywordLimit = g.cfg.KeywordLimit
		result, err := sess.Analyze(g.cfg.TopK)

		fyne.Do(func() {
			g.setBusy(false)
			if err != nil {
				dialog.ShowError(err, g.win)
				return
			}
			g.output.SetText(renderResult(result))
		})
	}()
}

// countWordFrequency 弹出输入框询问目标词并显示精确出现次数
// 输入为空或取消时静默忽略
func (g *App) countWordFrequency() {
	if g.filePath == "" {
		// 同analyzeFile：信息对话框代替警告对话框
		dialog.ShowInformation("No File", "Please select a file first.", g.win)
		return
	}

	entry := widget.NewEntry()
	items := []*widget.FormItem{widget.NewFormItem("Word", entry)}
	dialog.ShowForm("Count Word Frequency", "Count", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		word := strings.TrimSpace(entry.Text)
		if word == "" {
			return
		}

		g.setBusy(true)
		path := g.filePath
		go func() {
			sess := analyzer.NewSession(path, g.cfg.StopwordsDir, g.seg, g.logger)
			count, err := sess.CountWord(word)

			fyne.Do(func() {
				g.setBusy(false)
				if err != nil {
					dialog.ShowError(err, g.win)
					return
				}
				dialog.ShowInformation("Word Frequency",
					fmt.Sprintf("The frequency of '%s' is: %d", word, count), g.win)
			})
		}()
	}, g.win)
}

func (g *App) setBusy(busy bool) {
	if busy {
		g.selectBtn.Disable()
		g.analyzeBtn.Disable()
		g.countBtn.Disable()
	} else {
		g.selectBtn.Enable()
		g.analyzeBtn.Enable()
		g.countBtn.Enable()
	}
}

// renderResult 把三类Top-K列表渲染为"token: count"行，替换原有输出
func renderResult(r *analyzer.Result) string {
	var sb strings.Builder
	sb.WriteString("Most Common Chinese Words:\n")
	for _, e := range r.ChineseWords {
		fmt.Fprintf(&sb, "%s: %d\n", e.Token, e.Count)
	}
	sb.WriteString("\nMost Common Numbers:\n")
	for _, e := range r.Numbers {
		fmt.Fprintf(&sb, "%s: %d\n", e.Token, e.Count)
	}
	sb.WriteString("\nMost Common Special Characters:\n")
	for _, e := range r.SpecialChars {
		fmt.Fprintf(&sb, "%s: %d\n", e.Token, e.Count)
	}
	return sb.String()
}
