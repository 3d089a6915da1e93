package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/hanfz/docfreq/internal/config"
	"github.com/hanfz/docfreq/internal/gui"
	"github.com/hanfz/docfreq/internal/logging"
	"github.com/hanfz/docfreq/internal/segment"
)

func main() {
	configFile := flag.String("config", "config.json", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.Fatalf("加载配置失败: %v", err)
	}

	logger, err := logging.New(cfg.LogDir)
	if err != nil {
		logrus.Fatalf("初始化日志失败: %v", err)
	}

	seg, err := segment.New()
	if err != nil {
		logger.Fatalf("初始化分词器失败: %v", err)
	}

	gui.Run(cfg, seg, logger)
}
