package types

// MatchKind 表示某条需求被满足的匹配层级
type MatchKind string

const (
	// MatchExact 技能列表中精确命中（忽略大小写）
	MatchExact MatchKind = "exact"
	// MatchAbbreviation 通过缩写展开命中（如 ADF → Azure Data Factory）
	MatchAbbreviation MatchKind = "abbreviation"
	// MatchSynonym 同义词组内命中（如 Spark ↔ PySpark）
	MatchSynonym MatchKind = "synonym"
	// MatchFallback 仅在经历要点文本中以子串形式命中
	MatchFallback MatchKind = "fallback"
	// MatchSemantic 仅由向量相似度命中，关键词各层均未命中
	MatchSemantic MatchKind = "semantic"
	// MatchNone 未命中
	MatchNone MatchKind = "none"
)

// RequirementMatch 单条JD需求的匹配结果
type RequirementMatch struct {
	Requirement  string    `json:"requirement"`
	MatchedSkill string    `json:"matched_skill,omitempty"` // 命中的简历侧技能/文本，未命中为空
	Kind         MatchKind `json:"kind"`
	Confidence   float64   `json:"confidence"` // [0,1]，关键词层级为固定置信度，语义层为相似度
	BestEvidence string    `json:"best_evidence,omitempty"`
}

// MatchReport 单次（简历, JD）匹配的完整报告。
// 构建后不再修改；简历或JD任何一侧变化都生成新报告。
type MatchReport struct {
	Matches          []RequirementMatch `json:"matches"`
	KeywordScore     float64            `json:"keyword_score"`  // 必备技能命中率，百分制
	SemanticScore    float64            `json:"semantic_score"` // 留存最佳相似度均值，百分制
	OverallScore     float64            `json:"overall_score"`  // 加权混合，百分制
	MissingSkills    []string           `json:"missing_skills"`
	SkillSuggestions map[string]string  `json:"skill_suggestions,omitempty"` // 缺失技能 → 简历中的近似技能
}
