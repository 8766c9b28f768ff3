package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "text-embedding-v3", cfg.Embedding.Model)
	assert.Equal(t, 1024, cfg.Embedding.Dimensions)
	assert.Equal(t, 0.6, cfg.Matching.KeywordWeight)
	assert.Equal(t, 0.4, cfg.Matching.SemanticWeight)
	assert.Equal(t, 0.5, cfg.Matching.SimilarityFloor)
	assert.Equal(t, 3, cfg.Matching.TopK)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `embedding:
  model: text-embedding-3-small
  dimensions: 512
matching:
  keyword_weight: 0.7
  semantic_weight: 0.3
  top_k: 5
logger:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", cfg.Embedding.Model)
	assert.Equal(t, 512, cfg.Embedding.Dimensions)
	assert.Equal(t, 0.7, cfg.Matching.KeywordWeight)
	assert.Equal(t, 0.3, cfg.Matching.SemanticWeight)
	assert.Equal(t, 5, cfg.Matching.TopK)
	assert.Equal(t, "debug", cfg.Logger.Level)
	// 未显式配置的字段仍取默认值
	assert.Equal(t, 0.5, cfg.Matching.SimilarityFloor)
}

func TestLoadConfig_EnvOverridesAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("embedding:\n  api_key: from-file\n"), 0644))
	t.Setenv("EMBEDDING_API_KEY", "from-env")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Embedding.APIKey, "环境变量必须覆盖文件中的密钥")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))

	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("matching: [not a map"), 0644))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"负的关键词权重", func(c *Config) { c.Matching.KeywordWeight = -0.1 }},
		{"权重之和为0", func(c *Config) {
			c.Matching.KeywordWeight = 0
			c.Matching.SemanticWeight = 0
		}},
		{"下限超出范围", func(c *Config) { c.Matching.SimilarityFloor = 1.5 }},
		{"topK小于1", func(c *Config) { c.Matching.TopK = -2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
