package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hanfz/docfreq/internal/analyzer"
)

// Config 应用配置
type Config struct {
	StopwordsDir string `json:"stopwords_dir"`
	TopK         int    `json:"top_k"`
	KeywordLimit int    `json:"keyword_limit"`
	LogDir       string `json:"log_dir"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		StopwordsDir: "stopwords",
		TopK:         analyzer.DefaultTopK,
		KeywordLimit: analyzer.DefaultKeywordLimit,
		LogDir:       ".",
	}
}

// Load 从JSON文件加载配置，文件不存在时返回默认配置
func Load(filePath string) (*Config, error) {
	cfg := Default()
	if filePath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k 必须大于0")
	}
	if c.KeywordLimit <= 0 {
		return fmt.Errorf("keyword_limit 必须大于0")
	}
	if c.StopwordsDir == "" {
		return fmt.Errorf("stopwords_dir 不能为空")
	}
	return nil
}
