package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"resume-match-go/internal/logger"
)

// EmbeddingConfig 嵌入服务配置（OpenAI兼容端点）
type EmbeddingConfig struct {
	Model      string `yaml:"model"`      // 模型名称，同时作为编码器指纹的一部分
	Dimensions int    `yaml:"dimensions"` // 向量维度
	BaseURL    string `yaml:"base_url"`   // OpenAI兼容的embeddings端点
	APIKey     string `yaml:"api_key"`    // 推荐通过环境变量 EMBEDDING_API_KEY 注入
}

// MatchingConfig 匹配打分配置
type MatchingConfig struct {
	KeywordWeight   float64 `yaml:"keyword_weight"`   // 关键词得分权重，默认0.6
	SemanticWeight  float64 `yaml:"semantic_weight"`  // 语义得分权重，默认0.4
	SimilarityFloor float64 `yaml:"similarity_floor"` // 语义命中的相似度下限，默认0.5
	TopK            int     `yaml:"top_k"`            // 每条需求检索的候选数，默认3
}

// Config 应用程序配置
type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Matching  MatchingConfig  `yaml:"matching"`
	Logger    logger.Config   `yaml:"logger"`
}

// LoadConfig 从文件加载配置。路径为空时返回默认配置。
// Embedding API Key 可被环境变量 EMBEDDING_API_KEY 覆盖。
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	if envKey := os.Getenv("EMBEDDING_API_KEY"); envKey != "" {
		config.Embedding.APIKey = envKey
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig 返回带默认值的配置
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

func applyDefaults(config *Config) {
	if config.Embedding.Model == "" {
		config.Embedding.Model = "text-embedding-v3"
	}
	if config.Embedding.Dimensions == 0 {
		config.Embedding.Dimensions = 1024
	}
	if config.Embedding.BaseURL == "" {
		config.Embedding.BaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/embeddings"
	}
	if config.Matching.KeywordWeight == 0 && config.Matching.SemanticWeight == 0 {
		config.Matching.KeywordWeight = 0.6
		config.Matching.SemanticWeight = 0.4
	}
	if config.Matching.SimilarityFloor == 0 {
		config.Matching.SimilarityFloor = 0.5
	}
	if config.Matching.TopK == 0 {
		config.Matching.TopK = 3
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
}

// Validate 校验配置的内部一致性
func (c *Config) Validate() error {
	if c.Matching.KeywordWeight < 0 || c.Matching.SemanticWeight < 0 {
		return fmt.Errorf("匹配权重不能为负: keyword=%.2f, semantic=%.2f",
			c.Matching.KeywordWeight, c.Matching.SemanticWeight)
	}
	sum := c.Matching.KeywordWeight + c.Matching.SemanticWeight
	if sum <= 0 {
		return fmt.Errorf("匹配权重之和必须大于0")
	}
	if c.Matching.SimilarityFloor < -1 || c.Matching.SimilarityFloor > 1 {
		return fmt.Errorf("相似度下限必须在[-1,1]范围内: %.2f", c.Matching.SimilarityFloor)
	}
	if c.Matching.TopK < 1 {
		return fmt.Errorf("top_k必须至少为1: %d", c.Matching.TopK)
	}
	return nil
}
