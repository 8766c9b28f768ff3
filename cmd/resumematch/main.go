package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"resume-match-go/internal/config"
	"resume-match-go/internal/embedding"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/processor"
)

func main() {
	var (
		configPath  string
		resumePath  string
		jdPath      string
		keywordOnly bool
		pretty      bool
	)

	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径（可选，缺省用内置默认值）")
	pflag.StringVarP(&resumePath, "resume", "r", "", "简历文本文件路径")
	pflag.StringVarP(&jdPath, "jd", "j", "", "职位描述文本文件路径")
	pflag.BoolVar(&keywordOnly, "keyword-only", false, "跳过嵌入调用，只做关键词匹配")
	pflag.BoolVar(&pretty, "pretty", false, "缩进输出JSON")
	pflag.Parse()

	if resumePath == "" || jdPath == "" {
		fmt.Fprintln(os.Stderr, "用法: resumematch --resume <file> --jd <file> [--config <file>] [--keyword-only]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Logger)

	resumeText, err := os.ReadFile(resumePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", resumePath).Msg("读取简历文件失败")
	}
	jdText, err := os.ReadFile(jdPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", jdPath).Msg("读取JD文件失败")
	}

	opts := []processor.Option{
		processor.WithMatchingConfig(cfg.Matching),
	}

	if !keywordOnly {
		if cfg.Embedding.APIKey == "" {
			logger.Warn().Msg("未配置embedding API密钥，回退为纯关键词匹配")
		} else {
			embedder, err := embedding.NewOpenAIEmbedder(cfg.Embedding)
			if err != nil {
				logger.Fatal().Err(err).Msg("创建Embedder失败")
			}
			opts = append(opts, processor.WithEmbedder(embedder))
		}
	}

	proc := processor.NewMatchProcessor(opts...)
	result, err := proc.Process(context.Background(), string(resumeText), string(jdText))
	if err != nil {
		logger.Fatal().Err(err).Msg("匹配流水线失败")
	}

	encoder := json.NewEncoder(os.Stdout)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		logger.Fatal().Err(err).Msg("输出JSON失败")
	}
}
