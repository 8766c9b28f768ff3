package processor

import (
	"resume-match-go/internal/config"
	"resume-match-go/internal/embedding"
	"resume-match-go/internal/matcher"
)

// Option MatchProcessor的函数式配置项
type Option func(*MatchProcessor)

// WithEmbedder 注入嵌入服务。缺省时只做关键词匹配，语义得分为0。
func WithEmbedder(embedder embedding.TextEmbedder) Option {
	return func(p *MatchProcessor) {
		p.embedder = embedder
	}
}

// WithEquivalenceTable 注入自定义技能等价表
func WithEquivalenceTable(table *matcher.EquivalenceTable) Option {
	return func(p *MatchProcessor) {
		p.skillMatcher = matcher.NewSkillMatcher(table)
	}
}

// WithWeights 设置关键词/语义得分的混合权重
func WithWeights(keyword, semantic float64) Option {
	return func(p *MatchProcessor) {
		if keyword >= 0 && semantic >= 0 && keyword+semantic > 0 {
			p.keywordWeight = keyword
			p.semanticWeight = semantic
		}
	}
}

// WithSimilarityFloor 设置语义命中的最低相似度。
// 低于下限的需求按"无语义命中"报告，不强行配对。
func WithSimilarityFloor(floor float64) Option {
	return func(p *MatchProcessor) {
		if floor >= -1 && floor <= 1 {
			p.similarityFloor = floor
		}
	}
}

// WithTopK 设置每条需求检索的候选数
func WithTopK(topK int) Option {
	return func(p *MatchProcessor) {
		if topK >= 1 {
			p.topK = topK
		}
	}
}

// WithMatchingConfig 从配置整体应用匹配参数
func WithMatchingConfig(cfg config.MatchingConfig) Option {
	return func(p *MatchProcessor) {
		WithWeights(cfg.KeywordWeight, cfg.SemanticWeight)(p)
		WithSimilarityFloor(cfg.SimilarityFloor)(p)
		WithTopK(cfg.TopK)(p)
	}
}
