package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/hanfz/docfreq/internal/analyzer"
	"github.com/hanfz/docfreq/internal/config"
	"github.com/hanfz/docfreq/internal/logging"
	"github.com/hanfz/docfreq/internal/segment"
)

var (
	app        = kingpin.New("docfreq-cli", "统计PDF/DOCX文档的词频")
	input      = app.Flag("in", "输入文件路径(.pdf或.docx)").Short('i').Required().String()
	word       = app.Flag("word", "只统计该词的精确出现次数").Short('w').String()
	topK       = app.Flag("top", "每类显示的条目数").Short('t').Default("10").Int()
	configFile = app.Flag("config", "配置文件路径").Default("config.json").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}

	seg, err := segment.New()
	if err != nil {
		logger.Fatalf("初始化分词器失败: %v", err)
	}

	sess := analyzer.NewSession(*input, cfg.StopwordsDir, seg, logger)
	sess.KeywordLimit = cfg.KeywordLimit

	if *word != "" {
		count, err := sess.CountWord(*word)
		if err != nil {
			logger.Fatalf("统计失败: %v", err)
		}
		fmt.Printf("The frequency of '%s' is: %d\n", *word, count)
		return
	}

	result, err := sess.Analyze(*topK)
	if err != nil {
		logger.Fatalf("分析失败: %v", err)
	}

	printEntries("Most Common Chinese Words:", result.ChineseWords)
	printEntries("\nMost Common Numbers:", result.Numbers)
	printEntries("\nMost Common Special Characters:", result.SpecialChars)
}

func printEntries(title string, entries []analyzer.Entry) {
	fmt.Println(title)
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.Token, e.Count)
	}
}
