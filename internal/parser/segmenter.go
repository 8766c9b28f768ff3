package parser

import (
	"strings"

	"resume-match-go/internal/types"
)

// headerTokenLimit 标题候选行的最大词数。超过即视为正文。
const headerTokenLimit = 5

// headerKeywords 各分区的标题关键词集合。
// AI/ML技能的标题集独立于通用技能，顺序保证先于通用技能比对。
var headerKeywords = []struct {
	section  types.SectionType
	keywords []string
}{
	{types.SectionAISkills, []string{
		"ai/ml skills", "ai ml skills", "ai skills", "gen ai skill set",
		"genai skills", "gen ai skills", "machine learning skills",
	}},
	{types.SectionSkills, []string{
		"skills", "technical skills", "core competencies", "technologies",
		"skills & tools", "technical proficiencies", "tech stack",
	}},
	{types.SectionExperience, []string{
		"experience", "work experience", "work history",
		"professional experience", "employment", "employment history",
	}},
	{types.SectionEducation, []string{
		"education", "academic background", "academics",
		"education & training",
	}},
	{types.SectionProjects, []string{
		"projects", "personal projects", "academic projects",
		"key projects", "selected projects",
	}},
	{types.SectionCertifications, []string{
		"certifications", "certificates", "licenses",
		"certifications & licenses", "licenses & certifications",
	}},
	{types.SectionSummary, []string{
		"summary", "professional summary", "objective", "profile",
		"about me", "career objective",
	}},
	{types.SectionContact, []string{
		"contact", "contact information", "contact info",
	}},
}

// SegmentText 将归一化文本切分为带标签的连续分区。
// 标题候选行的形状规则：短、不以句号结尾、非项目符号行、命中关键词。
// 首个标题之前的未分类文本按位置归入联系方式/总结分区。
// 对归一化文本幂等：重复切分得到相同的分区边界。
func SegmentText(text string) []types.DocumentZone {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.Split(text, "\n")

	var zones []types.DocumentZone
	current := types.DocumentZone{Type: types.SectionContact, StartLine: 0}
	var content []string

	flush := func() {
		body := strings.TrimSpace(strings.Join(content, "\n"))
		if body != "" || current.Title != "" {
			current.Content = body
			zones = append(zones, current)
		}
		content = content[:0]
	}

	for i, line := range lines {
		if section, ok := classifyHeader(line); ok {
			flush()
			current = types.DocumentZone{
				Type:      section,
				Title:     strings.TrimSpace(line),
				StartLine: i + 1,
			}
			continue
		}
		content = append(content, line)
	}
	flush()

	return zones
}

// classifyHeader 判断一行是否为分区标题。
// 以句号结尾的行一律不是标题：正文要点即使包含
// "projects"这类关键词（如 "...delivered three projects."），
// 也必须留在当前分区内。误放新区比漏掉标题破坏更大。
func classifyHeader(line string) (types.SectionType, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return types.SectionUnknown, false
	}
	// 项目符号行是正文
	if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "- ") {
		return types.SectionUnknown, false
	}
	// 完整句子（句号结尾）不是标题
	if strings.HasSuffix(trimmed, ".") {
		return types.SectionUnknown, false
	}
	// 缩进行按形状视为正文
	if line != trimmed && len(line)-len(strings.TrimLeft(line, " ")) >= 2 {
		return types.SectionUnknown, false
	}

	cleaned := cleanHeaderLine(trimmed)
	if cleaned == "" || len(strings.Fields(cleaned)) > headerTokenLimit {
		return types.SectionUnknown, false
	}

	for _, entry := range headerKeywords {
		for _, keyword := range entry.keywords {
			if cleaned == keyword {
				return entry.section, true
			}
		}
	}
	return types.SectionUnknown, false
}

// cleanHeaderLine 标题行比较前的清理：小写、去尾冒号与两侧装饰符
func cleanHeaderLine(line string) string {
	s := strings.ToLower(line)
	s = strings.TrimSuffix(s, ":")
	s = strings.Trim(s, "-–—= ")
	return strings.Join(strings.Fields(s), " ")
}
