package matcher

import (
	"regexp"
	"strings"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"
)

// 各关键词层级的固定置信度
const (
	confidenceExact        = 1.0
	confidenceAbbreviation = 0.9
	confidenceSynonym      = 0.8
	confidenceFallback     = 0.6
)

// parenPattern 提取技能中的括号组，如 "Azure Data Factory (ADF)"
var parenPattern = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)\s*$`)

// SkillMatcher 技能匹配器。等价表在构建时注入，匹配过程只读。
type SkillMatcher struct {
	table *EquivalenceTable
}

// NewSkillMatcher 创建技能匹配器
func NewSkillMatcher(table *EquivalenceTable) *SkillMatcher {
	if table == nil {
		table = NewEquivalenceTable()
	}
	return &SkillMatcher{table: table}
}

// Table 返回匹配器持有的等价表
func (m *SkillMatcher) Table() *EquivalenceTable {
	return m.table
}

// skillForms 返回技能字符串的可比较形式：完整归一化形式、
// 去括号的主体形式、括号内形式。"Azure Data Factory (ADF)" 产生三者。
func skillForms(skill string) []string {
	full := NormalizeSkill(skill)
	forms := []string{full}
	if sub := parenPattern.FindStringSubmatch(strings.TrimSpace(skill)); sub != nil {
		base := NormalizeSkill(sub[1])
		paren := NormalizeSkill(sub[2])
		if base != "" && base != full {
			forms = append(forms, base)
		}
		if paren != "" && paren != full {
			forms = append(forms, paren)
		}
	}
	return forms
}

// Match 按四级优先顺序匹配单条需求：精确 → 缩写 → 同义词 → 经历文本兜底。
// 层级顺序不可调换：兜底的子串命中不能掩盖技能列表中真实缺失的技能。
func (m *SkillMatcher) Match(requirement string, resume *types.StructuredResume) types.RequirementMatch {
	result := types.RequirementMatch{
		Requirement: requirement,
		Kind:        types.MatchNone,
	}

	reqNorm := NormalizeSkill(requirement)
	if reqNorm == "" {
		return result
	}
	resumeSkills := resume.AllSkills()

	// 第一层：技能列表精确命中（完整形式相等，忽略大小写）
	for _, skill := range resumeSkills {
		if NormalizeSkill(skill) == reqNorm {
			result.MatchedSkill = skill
			result.Kind = types.MatchExact
			result.Confidence = confidenceExact
			return result
		}
	}

	// 第二层：缩写展开命中
	for _, skill := range resumeSkills {
		if m.matchByAbbreviation(reqNorm, skill) {
			result.MatchedSkill = skill
			result.Kind = types.MatchAbbreviation
			result.Confidence = confidenceAbbreviation
			return result
		}
	}

	// 第三层：同义词组命中，含长技能名的包含关系
	reqVariations := m.table.Variations(reqNorm)
	for _, skill := range resumeSkills {
		if m.matchBySynonym(reqNorm, reqVariations, skill) {
			result.MatchedSkill = skill
			result.Kind = types.MatchSynonym
			result.Confidence = confidenceSynonym
			return result
		}
	}

	// 第四层：经历要点文本兜底，词边界子串检索
	if evidence := m.searchText(resume.ExperienceText(), reqVariations); evidence != "" {
		result.MatchedSkill = requirement
		result.Kind = types.MatchFallback
		result.Confidence = confidenceFallback
		result.BestEvidence = evidence
		return result
	}

	return result
}

// matchByAbbreviation 判断需求与简历技能之间是否存在缩写/全称关系
func (m *SkillMatcher) matchByAbbreviation(reqNorm, skill string) bool {
	forms := skillForms(skill)

	// 需求是缩写：其全称是否出现在技能的任一形式中
	for _, full := range m.table.ExpandAbbreviation(reqNorm) {
		for _, f := range forms {
			if f == full {
				return true
			}
		}
	}
	// 需求是全称：其缩写是否出现在技能的任一形式中
	if abbr := m.table.AbbreviationOf(reqNorm); abbr != "" {
		for _, f := range forms {
			if f == abbr {
				return true
			}
		}
	}
	// 技能侧是缩写（含括号内形式）：展开后与需求比较
	for _, f := range forms {
		for _, full := range m.table.ExpandAbbreviation(f) {
			if full == reqNorm {
				return true
			}
		}
	}
	return false
}

// matchBySynonym 判断需求与技能是否属于同一同义词组；
// 双方长度均超过3时允许整体包含关系（如 "Apache Spark" 与 "Spark Streaming"）
func (m *SkillMatcher) matchBySynonym(reqNorm string, reqVariations map[string]struct{}, skill string) bool {
	for _, f := range skillForms(skill) {
		for v := range m.table.Variations(f) {
			if _, ok := reqVariations[v]; ok {
				return true
			}
		}
	}
	skillNorm := NormalizeSkill(skill)
	if len(reqNorm) > 3 && len(skillNorm) > 3 {
		if strings.Contains(skillNorm, reqNorm) || strings.Contains(reqNorm, skillNorm) {
			return true
		}
	}
	return false
}

// searchText 在文本中按词边界检索任一变体，返回命中的变体
func (m *SkillMatcher) searchText(text string, variations map[string]struct{}) string {
	if text == "" {
		return ""
	}
	lower := strings.ToLower(text)
	for v := range variations {
		if v == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(v) + `\b`)
		if err != nil {
			continue
		}
		if pattern.MatchString(lower) {
			return v
		}
	}
	return ""
}

// MatchRequired 对JD必备技能逐条匹配，返回逐条结果与缺失技能列表
func (m *SkillMatcher) MatchRequired(requiredSkills []string, resume *types.StructuredResume) ([]types.RequirementMatch, []string) {
	matches := make([]types.RequirementMatch, 0, len(requiredSkills))
	var missing []string
	for _, req := range requiredSkills {
		match := m.Match(req, resume)
		matches = append(matches, match)
		if match.Kind == types.MatchNone {
			missing = append(missing, req)
		}
	}
	logger.Debug().
		Int("required", len(requiredSkills)).
		Int("missing", len(missing)).
		Msg("关键词技能匹配完成")
	return matches, missing
}

// Suggestions 为缺失技能寻找简历中的近似技能（变体间的包含关系）
func (m *SkillMatcher) Suggestions(missingSkills []string, resumeSkills []string) map[string]string {
	suggestions := make(map[string]string)
	for _, missing := range missingSkills {
		variations := m.table.Variations(missing)
		for _, skill := range resumeSkills {
			skillNorm := NormalizeSkill(skill)
			found := false
			for v := range variations {
				if len(v) > 2 && (strings.Contains(skillNorm, v) || strings.Contains(v, skillNorm)) {
					suggestions[missing] = skill
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return suggestions
}
