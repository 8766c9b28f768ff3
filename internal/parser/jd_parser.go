package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"
)

// jdSection JD内部分区标签
type jdSection int

const (
	jdOverview jdSection = iota
	jdResponsibilities
	jdRequirements
	jdPreferred
	jdOther
)

// jdSectionCues 各分区的标题/短语线索。
// "must have" 一类归必备，"nice to have"/"preferred" 一类归优先。
var jdSectionCues = []struct {
	section jdSection
	cues    []string
}{
	{jdResponsibilities, []string{
		"responsibilities", "duties", "what you will do", "what you'll do",
		"key responsibilities", "your responsibilities", "job responsibilities",
		"key duties", "main responsibilities",
	}},
	{jdPreferred, []string{
		"preferred", "nice to have", "bonus", "preferred qualifications",
		"plus", "desired", "preferred skills", "good to have", "additional skills",
	}},
	{jdRequirements, []string{
		"requirements", "qualifications", "what we're looking for",
		"what we are looking for", "required qualifications",
		"minimum qualifications", "required skills", "must have",
		"essential skills", "mandatory skills", "required experience",
	}},
	{jdOther, []string{
		"benefits", "what we offer", "perks", "compensation", "salary",
		"about us", "about the company", "company overview", "who we are",
	}},
}

// titleIndicators 职位名中的常见角色词
var titleIndicators = []string{
	"engineer", "developer", "manager", "analyst", "scientist", "designer",
	"architect", "lead", "senior", "junior", "specialist", "consultant",
}

// JDParser 职位描述结构化器
type JDParser struct {
	// yearsPatterns 工作年限模式，按特异性从高到低排列。
	// "X-Y years" 必须先于 "X+ years"，"X+ years" 先于裸 "X years"，
	// 否则宽松模式会在子串上抢先命中并截断真实数值。
	yearsPatterns []*regexp.Regexp

	companyPattern  *regexp.Regexp
	locationList    []*regexp.Regexp
	numberedPattern *regexp.Regexp
	skillClauses    []*regexp.Regexp
}

// NewJDParser 创建职位描述结构化器
func NewJDParser() *JDParser {
	return &JDParser{
		yearsPatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(\d+\s*[-–]\s*\d+)\s*\+?\s*(?:years?|yrs?)`),
			regexp.MustCompile(`(?i)(\d+\s*\+)\s*(?:years?|yrs?)`),
			regexp.MustCompile(`(?i)(?:minimum|at least)\s+(?:of\s+)?(\d+)\s*(?:years?|yrs?)`),
			regexp.MustCompile(`(?i)(\d+)\s*(?:years?|yrs?)`),
		},
		companyPattern: regexp.MustCompile(`(?i)(?:company|employer)[\s:]+([A-Z][A-Za-z\s&.]+?)(?:\n|$| is | was )`),
		locationList: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:Job\s+)?Location[\s:]+([A-Za-z][A-Za-z\s,/-]+?)(?:\n|$)`),
			regexp.MustCompile(`(?i)\b(Remote|Hybrid|On-site|Onsite)\b`),
			regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
		},
		numberedPattern: regexp.MustCompile(`^\d+[.)]\s*`),
		skillClauses: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:proficiency|experience|expertise|knowledge|skills?)\s+(?:in|with|of)\s+(.+)$`),
			regexp.MustCompile(`(?i)(?:familiarity|familiar)\s+with\s+(.+)$`),
			regexp.MustCompile(`(?i)\d+\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience\s+)?(?:with|in|using)\s+(.+)$`),
		},
	}
}

// Parse 将原始JD文本结构化。与简历侧相同的失败语义：
// 从不返回错误，未识别的内容退化为空列表。
func (p *JDParser) Parse(raw string) *types.StructuredJobDescription {
	jd := &types.StructuredJobDescription{
		Responsibilities: []string{},
		RequiredSkills:   []string{},
		PreferredSkills:  []string{},
	}

	text := NormalizeText(raw)
	if text == "" {
		return jd
	}

	jd.Title = p.extractTitle(text)
	jd.Company = p.extractCompany(text)
	jd.Location = p.extractLocation(text)
	jd.JobType = p.extractJobType(text)
	jd.YearsOfExperience = p.ExtractYearsOfExperience(text)

	sections := p.splitSections(text)
	jd.Responsibilities = p.listItems(sections[jdResponsibilities])
	jd.RequiredSkills = p.extractSkillTokens(sections[jdRequirements])
	jd.PreferredSkills = p.extractSkillTokens(sections[jdPreferred])

	logger.Debug().
		Str("title", jd.Title).
		Int("required", len(jd.RequiredSkills)).
		Int("preferred", len(jd.PreferredSkills)).
		Int("responsibilities", len(jd.Responsibilities)).
		Msg("JD结构化完成")

	return jd
}

// splitSections 按线索行把JD切成必备/优先/职责等分区
func (p *JDParser) splitSections(text string) map[jdSection]string {
	sections := make(map[jdSection]string)
	current := jdOverview
	content := make(map[jdSection][]string)

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if section, ok := p.classifyCue(trimmed); ok {
			current = section
			continue
		}
		content[current] = append(content[current], line)
	}

	for section, lines := range content {
		sections[section] = strings.Join(lines, "\n")
	}
	return sections
}

// classifyCue 判断一行是否为分区线索。
// 线索行要短且不是项目符号正文；句号结尾的完整句子不算。
func (p *JDParser) classifyCue(line string) (jdSection, bool) {
	if isBulletLine(line) || strings.HasSuffix(line, ".") || len(line) > 60 {
		return jdOther, false
	}
	lower := cleanHeaderLine(line)
	for _, entry := range jdSectionCues {
		for _, cue := range entry.cues {
			if lower == cue {
				return entry.section, true
			}
			// 线索在行首且行内无多余内容，如 "Requirements:" / "Required Skills"
			if strings.HasPrefix(lower, cue) && len(lower) < len(cue)+10 {
				return entry.section, true
			}
		}
	}
	return jdOther, false
}

// extractTitle 职位名通常在前几行，包含角色词且长度适中
func (p *JDParser) extractTitle(text string) string {
	lines := nonEmptyLines(text)
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "job location") || strings.HasPrefix(lower, "location:") ||
			strings.HasPrefix(lower, "about") || strings.HasPrefix(lower, "company") {
			continue
		}
		for _, indicator := range titleIndicators {
			if strings.Contains(lower, indicator) && len(line) < 100 {
				return strings.TrimSpace(line)
			}
		}
	}
	// 兜底：首个长度适中的行
	for i := 0; i < limit && i < 3; i++ {
		if len(lines[i]) > 5 && len(lines[i]) < 100 {
			return lines[i]
		}
	}
	return ""
}

func (p *JDParser) extractCompany(text string) string {
	if sub := p.companyPattern.FindStringSubmatch(text); sub != nil {
		return strings.TrimSpace(sub[1])
	}
	return ""
}

func (p *JDParser) extractLocation(text string) string {
	for _, pattern := range p.locationList {
		if sub := pattern.FindStringSubmatch(text); sub != nil {
			return strings.Join(strings.Fields(sub[1]), " ")
		}
	}
	return ""
}

func (p *JDParser) extractJobType(text string) string {
	jobTypes := []string{"full-time", "full time", "part-time", "part time",
		"contract", "freelance", "internship", "temporary"}
	lower := strings.ToLower(text)
	for _, jt := range jobTypes {
		if strings.Contains(lower, jt) {
			return titleCase(jt)
		}
	}
	return ""
}

// ExtractYearsOfExperience 按模式特异性从高到低提取工作年限短语。
// "over 4+ years of experience" 必须得到 "4+"，而不是宽松模式
// 在子串上命中的 "4"。返回保留原始写法的文本，无法数值化。
func (p *JDParser) ExtractYearsOfExperience(text string) string {
	for _, pattern := range p.yearsPatterns {
		if sub := pattern.FindStringSubmatch(text); sub != nil {
			return strings.ReplaceAll(strings.ReplaceAll(sub[1], " ", ""), "–", "-")
		}
	}
	return ""
}

// listItems 提取分区内的条目行：去项目符号、去编号，过滤过短行
func (p *JDParser) listItems(text string) []string {
	items := []string{}
	for _, line := range nonEmptyLines(text) {
		line = stripBullet(line)
		line = p.numberedPattern.ReplaceAllString(line, "")
		if len(line) > 10 {
			items = append(items, line)
		}
	}
	return items
}

// extractSkillTokens 从需求分区提取技能集合。
// 条目行先尝试取"experience with X"等从句的技能部分，
// 再按逗号/"and"/"or"拆分，括号组保持为单个技能。
func (p *JDParser) extractSkillTokens(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var items []string
	for _, line := range nonEmptyLines(text) {
		line = p.numberedPattern.ReplaceAllString(stripBullet(line), "")
		// 技能条目可以很短（"Tableau"），不沿用职责条目的长度门槛
		if len(line) > 2 {
			items = append(items, line)
		}
	}

	var collected []string
	for _, item := range items {
		clause := item
		for _, pattern := range p.skillClauses {
			if sub := pattern.FindStringSubmatch(item); sub != nil {
				clause = sub[1]
				break
			}
		}
		clause = strings.TrimRight(clause, ".;")

		tokens := splitRequirementList(clause)
		kept := false
		for _, token := range tokens {
			if len(strings.Fields(token)) <= maxSkillTokens && len(token) > 1 && len(token) < 60 {
				collected = append(collected, token)
				kept = true
			}
		}
		// 整行都拆不出技能时，条目本身作为一条需求保留
		if !kept && len(strings.Fields(item)) <= maxSkillTokens {
			collected = append(collected, item)
		}
	}

	return dedupeSkills(collected)
}

// titleCase 各词首字母大写，连字符词整体处理（"full-time" → "Full-time"）
func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

// splitRequirementList 拆分 "Python, SQL, and Tableau" 形式的列举
func splitRequirementList(clause string) []string {
	replacer := strings.NewReplacer(" and ", ",", " or ", ",")
	parts := strings.Split(replacer.Replace(clause), ",")
	var tokens []string
	for _, part := range parts {
		token := strings.Join(strings.Fields(part), " ")
		token = strings.Trim(token, ".;: ")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
