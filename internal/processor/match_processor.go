package processor

import (
	"context"
	"fmt"
	"strings"

	"resume-match-go/internal/embedding"
	"resume-match-go/internal/logger"
	"resume-match-go/internal/matcher"
	"resume-match-go/internal/parser"
	"resume-match-go/internal/types"
	"resume-match-go/internal/vectorstore"
)

// 匹配参数默认值，来源见配置包
const (
	defaultKeywordWeight   = 0.6
	defaultSemanticWeight  = 0.4
	defaultSimilarityFloor = 0.5
	defaultTopK            = 3
)

// MatchProcessor 匹配流水线的编排层：
// 结构化 → 关键词匹配 → 向量检索 → 加权打分。
// 单个（简历, JD）对内严格串行，同输入必得同报告。
type MatchProcessor struct {
	resumeParser *parser.ResumeParser
	jdParser     *parser.JDParser
	skillMatcher *matcher.SkillMatcher
	embedder     embedding.TextEmbedder

	keywordWeight   float64
	semanticWeight  float64
	similarityFloor float64
	topK            int
}

// Result 一次完整匹配的输出：两侧的结构化形式与匹配报告
type Result struct {
	Resume *types.StructuredResume         `json:"resume"`
	JD     *types.StructuredJobDescription `json:"job_description"`
	Report *types.MatchReport              `json:"report"`
}

// NewMatchProcessor 创建匹配编排器
func NewMatchProcessor(opts ...Option) *MatchProcessor {
	p := &MatchProcessor{
		resumeParser:    parser.NewResumeParser(),
		jdParser:        parser.NewJDParser(),
		skillMatcher:    matcher.NewSkillMatcher(nil),
		keywordWeight:   defaultKeywordWeight,
		semanticWeight:  defaultSemanticWeight,
		similarityFloor: defaultSimilarityFloor,
		topK:            defaultTopK,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process 对一对原始文本执行完整流水线。
// 结构化阶段从不失败；错误只可能来自嵌入调用或编码器配置。
func (p *MatchProcessor) Process(ctx context.Context, resumeText, jdText string) (*Result, error) {
	resume := p.resumeParser.Parse(resumeText)
	jd := p.jdParser.Parse(jdText)

	report, err := p.MatchStructured(ctx, resume, jd)
	if err != nil {
		return nil, err
	}
	return &Result{Resume: resume, JD: jd, Report: report}, nil
}

// MatchStructured 对已结构化的简历与JD生成匹配报告。
// 报告构建后不再修改；任何一侧变化都需要全新的报告。
func (p *MatchProcessor) MatchStructured(ctx context.Context, resume *types.StructuredResume, jd *types.StructuredJobDescription) (*types.MatchReport, error) {
	matches, missing := p.skillMatcher.MatchRequired(jd.RequiredSkills, resume)

	keywordScore := 0.0
	if len(jd.RequiredSkills) > 0 {
		matched := len(jd.RequiredSkills) - len(missing)
		keywordScore = float64(matched) / float64(len(jd.RequiredSkills)) * 100
	}

	semanticScore := 0.0
	haveSemantic := false
	if p.embedder != nil {
		score, semanticBest, err := p.semanticPass(ctx, resume, jd)
		if err != nil {
			return nil, err
		}
		semanticScore = score
		haveSemantic = true

		// 关键词各层未命中、但语义检索过线的必备技能，升级为语义命中。
		// 缺失列表不受影响：它只看关键词层，供"需要补充什么"使用。
		for i := range matches {
			if matches[i].Kind != types.MatchNone {
				continue
			}
			if best, ok := semanticBest[matches[i].Requirement]; ok {
				matches[i].Kind = types.MatchSemantic
				matches[i].Confidence = best.Similarity
				matches[i].BestEvidence = best.Record.SourceText
			}
		}
	}

	overall := keywordScore
	if haveSemantic {
		total := p.keywordWeight + p.semanticWeight
		overall = (keywordScore*p.keywordWeight + semanticScore*p.semanticWeight) / total
	}

	report := &types.MatchReport{
		Matches:          matches,
		KeywordScore:     keywordScore,
		SemanticScore:    semanticScore,
		OverallScore:     overall,
		MissingSkills:    missing,
		SkillSuggestions: p.skillMatcher.Suggestions(missing, resume.AllSkills()),
	}

	logger.Info().
		Float64("keyword", keywordScore).
		Float64("semantic", semanticScore).
		Float64("overall", overall).
		Int("missing", len(missing)).
		Msg("匹配报告生成")

	return report, nil
}

// semanticPass 语义检索：简历侧内容入索引，JD侧逐条需求查询，
// 留存下限之上的最佳命中，均值即语义得分（百分制）。
func (p *MatchProcessor) semanticPass(ctx context.Context, resume *types.StructuredResume, jd *types.StructuredJobDescription) (float64, map[string]vectorstore.QueryResult, error) {
	index, err := p.buildIndex(ctx, resume)
	if err != nil {
		return 0, nil, err
	}
	if index.Len() == 0 {
		return 0, map[string]vectorstore.QueryResult{}, nil
	}

	requirements := jd.AllRequirements()
	if len(requirements) == 0 {
		return 0, map[string]vectorstore.QueryResult{}, nil
	}

	// 查询与索引必须出自同一编码器，算相似度之前拦截
	if index.Fingerprint() != p.embedder.Fingerprint() {
		return 0, nil, fmt.Errorf("%w: 索引=%s, 查询=%s",
			vectorstore.ErrEncoderMismatch, index.Fingerprint(), p.embedder.Fingerprint())
	}

	vectors, err := p.embedder.EmbedStrings(ctx, requirements)
	if err != nil {
		return 0, nil, fmt.Errorf("需求向量化失败: %w", err)
	}
	if len(vectors) != len(requirements) {
		return 0, nil, fmt.Errorf("需求向量数量不一致: %d != %d", len(vectors), len(requirements))
	}

	best := make(map[string]vectorstore.QueryResult)
	var sum float64
	var retained int
	for i, requirement := range requirements {
		results, err := index.Query(vectors[i], p.topK)
		if err != nil {
			return 0, nil, fmt.Errorf("检索需求 %q 失败: %w", requirement, err)
		}
		if len(results) == 0 || results[0].Similarity < p.similarityFloor {
			continue // 低于下限按无语义命中报告
		}
		best[requirement] = results[0]
		sum += results[0].Similarity
		retained++
	}

	if retained == 0 {
		return 0, best, nil
	}
	return sum / float64(retained) * 100, best, nil
}

// buildIndex 将简历的总结、经历要点、技能、教育与项目批量向量化入索引。
// 一次嵌入调用完成全部文本，保持与输入的一一对应。
func (p *MatchProcessor) buildIndex(ctx context.Context, resume *types.StructuredResume) (*vectorstore.MemoryIndex, error) {
	var texts []string
	var kinds []types.SectionKind

	add := func(text string, kind types.SectionKind) {
		text = strings.TrimSpace(text)
		if text != "" {
			texts = append(texts, text)
			kinds = append(kinds, kind)
		}
	}

	add(resume.Summary, types.KindSummary)
	for _, exp := range resume.Experience {
		add(exp.Title+" at "+exp.Company, types.KindExperience)
		for _, bullet := range exp.Bullets {
			add(bullet, types.KindExperienceBullet)
		}
	}
	if len(resume.AllSkills()) > 0 {
		add(strings.Join(resume.AllSkills(), ", "), types.KindSkills)
	}
	for _, edu := range resume.Education {
		add(strings.TrimSpace(edu.Degree+" "+edu.FieldOfStudy+" "+edu.Institution), types.KindEducation)
	}
	for _, project := range resume.Projects {
		add(project.Name, types.KindProject)
		for _, bullet := range project.Bullets {
			add(bullet, types.KindProject)
		}
	}

	fingerprint := p.embedder.Fingerprint()
	index := vectorstore.NewMemoryIndex(fingerprint, p.embedder.Dimensions())
	if len(texts) == 0 {
		return index, nil
	}

	vectors, err := p.embedder.EmbedStrings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("简历向量化失败: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("简历向量数量不一致: %d != %d", len(vectors), len(texts))
	}

	for i, vector := range vectors {
		record := types.EmbeddingRecord{
			Vector:        vector,
			SourceText:    texts[i],
			OwnerDocument: "resume",
			Kind:          kinds[i],
		}
		if err := index.Add(record, fingerprint); err != nil {
			return nil, fmt.Errorf("写入向量索引失败: %w", err)
		}
	}

	return index, nil
}
