package parser

import (
	"regexp"
	"strings"

	"resume-match-go/internal/logger"
	"resume-match-go/internal/types"
)

// maxSkillTokens 单个技能的最大词数，超长短语在结构化阶段拒收
const maxSkillTokens = 10

const monthPattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`

// skillStoplist 表格版式噪声词，命中即不作为技能收录
var skillStoplist = map[string]bool{
	"proficiency":    true,
	"beginner":       true,
	"intermediate":   true,
	"advanced":       true,
	"expert":         true,
	"applications":   true,
	"skill category": true,
	"learning":       true,
	"skills":         true,
	"level":          true,
	"years":          true,
}

// ResumeParser 简历结构化器。任何输入都不报错，
// 解析失败的分区退化为空结构。
type ResumeParser struct {
	emailPattern    *regexp.Regexp
	phonePattern    *regexp.Regexp
	linkedinPattern *regexp.Regexp
	githubPattern   *regexp.Regexp
	locationList    []*regexp.Regexp

	// 工作经历的三种版式，依次尝试
	jobInline    *regexp.Regexp // "Title – Company, Location | Date – Date"
	jobCompany   *regexp.Regexp // "Company, Location | Date – Date"，职位在上一行
	jobDateRange *regexp.Regexp // 独立的日期范围行，公司与职位在上方

	eduSingleLine *regexp.Regexp // "Date Degree: Field, Institution - Location"
	eduDegree     *regexp.Regexp
	eduDate       *regexp.Regexp
	eduGPA        *regexp.Regexp
	eduField      *regexp.Regexp
	eduInst       *regexp.Regexp
	eduLocation   *regexp.Regexp

	leadingLabel  *regexp.Regexp // 行首的类别标签 "Tools:" / "Skill Category:"
	embeddedLabel *regexp.Regexp // 行中嵌入的类别标签，只认单词形式
	certSeparator *regexp.Regexp // 两侧带空白的连字符，证书名/颁发方分隔
	yearPattern   *regexp.Regexp
	urlPattern    *regexp.Regexp
	nameCasing    *regexp.Regexp
}

// NewResumeParser 创建简历结构化器，编译全部识别模式
func NewResumeParser() *ResumeParser {
	return &ResumeParser{
		emailPattern:    regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`),
		phonePattern:    regexp.MustCompile(`[+(]?[1-9][0-9 .\-()]{8,}[0-9]`),
		linkedinPattern: regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/([\w-]+)`),
		githubPattern:   regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/([\w-]+)`),
		locationList: []*regexp.Regexp{
			regexp.MustCompile(`Location[\s:]+([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2}(?:,\s*[A-Z]{2,})?)`),
			regexp.MustCompile(`\|\s*([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2})\s*$`),
			regexp.MustCompile(`([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2},\s*(?:USA|United States))`),
		},

		jobInline: regexp.MustCompile(`(?i)^([^–—|-]+?)\s*[–—-]\s*([^,|]+(?:,\s*[^|]+)?)\s*\|\s*(` +
			monthPattern + `)\s*[–—-]\s*(Present|Current|` + monthPattern + `)`),
		jobCompany: regexp.MustCompile(`(?i)^([^|]+?),\s*([^|]+?)\s*\|\s*(` +
			monthPattern + `)\s*[–—-]\s*(Present|Current|` + monthPattern + `)`),
		jobDateRange: regexp.MustCompile(`(?i)^(` + monthPattern + `)\s*[–—-]\s*(Present|Current|` + monthPattern + `)`),

		eduSingleLine: regexp.MustCompile(`(?i)(?:(\d{2}/\d{4})\s+)?` +
			`(Master\s+of\s+\w+|Bachelor\s+of\s+\w+|M\.S\.|B\.S\.|M\.A\.|B\.A\.|PhD|Ph\.D\.)` +
			`(?:\s+in)?\s*:?\s*([^,]+)?,\s*(.+?)(?:\s*[-–—]\s*(.+))?$`),
		eduDegree:   regexp.MustCompile(`(?i)(Bachelor\s+of\s+\w+|Master\s+of\s+\w+|PhD|Ph\.D\.|B\.S\.|M\.S\.|B\.A\.|M\.A\.)`),
		eduDate:     regexp.MustCompile(`(\d{2}/\d{4}|\d{4})`),
		eduGPA:      regexp.MustCompile(`(?i)GPA:?\s*([\d.]+)`),
		eduField:    regexp.MustCompile(`(?:in|:)\s+([A-Z][a-zA-Z\s]+?)(?:,|\s+-|\s+at|$)`),
		eduInst:     regexp.MustCompile(`(?i)((?:The\s+)?(?:University|College|Institute|School)\s+[^,\-|]+|[^,\-|]+(?:University|College|Institute|School))`),
		eduLocation: regexp.MustCompile(`[-–—]\s*([A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z]{2}(?:,\s*[A-Z]+)?)`),

		leadingLabel:  regexp.MustCompile(`^[A-Za-z][A-Za-z &/]{0,40}:`),
		embeddedLabel: regexp.MustCompile(`\s([A-Z][A-Za-z&/]+):`),
		certSeparator: regexp.MustCompile(`\s[-–—]\s`),
		yearPattern:   regexp.MustCompile(`\d{4}`),
		urlPattern:    regexp.MustCompile(`https?://\S+`),
		nameCasing:    regexp.MustCompile(`^[A-Z][a-z]+\s+[A-Z][a-z]+`),
	}
}

// Parse 将原始简历文本结构化：归一化 → 分区 → 逐区提取。
// 从不返回错误，无法解析的分区退化为空列表/空串。
func (p *ResumeParser) Parse(raw string) *types.StructuredResume {
	resume := &types.StructuredResume{
		Experience:     []types.ExperienceEntry{},
		Education:      []types.EducationEntry{},
		Skills:         []string{},
		AISkills:       []string{},
		Projects:       []types.ProjectEntry{},
		Certifications: []string{},
	}

	text := NormalizeText(raw)
	zones := SegmentText(text)
	if len(zones) == 0 {
		return resume
	}

	var leadContent string
	for _, zone := range zones {
		switch zone.Type {
		case types.SectionContact:
			if zone.Title == "" {
				leadContent = zone.Content
			} else {
				leadContent += "\n" + zone.Content
			}
		case types.SectionSummary:
			resume.Summary = strings.TrimSpace(zone.Content)
		case types.SectionExperience:
			resume.Experience = append(resume.Experience, p.parseExperience(zone.Content)...)
		case types.SectionEducation:
			resume.Education = append(resume.Education, p.parseEducation(zone.Content)...)
		case types.SectionSkills:
			resume.Skills = mergeSkills(resume.Skills, p.parseSkills(zone.Content))
		case types.SectionAISkills:
			resume.AISkills = mergeSkills(resume.AISkills, p.parseSkills(zone.Content))
		case types.SectionProjects:
			resume.Projects = append(resume.Projects, p.parseProjects(zone.Content)...)
		case types.SectionCertifications:
			resume.Certifications = append(resume.Certifications, p.parseCertifications(zone.Content)...)
		}
	}

	resume.Contact = p.parseContact(leadContent)
	// 无独立总结分区时，首段联系信息之外的文本充当总结
	if resume.Summary == "" {
		resume.Summary = p.leadSummary(leadContent, resume.Contact)
	}

	logger.Debug().
		Int("experience", len(resume.Experience)).
		Int("education", len(resume.Education)).
		Int("skills", len(resume.Skills)).
		Int("ai_skills", len(resume.AISkills)).
		Msg("简历结构化完成")

	return resume
}

// parseContact 从首段文本提取联系信息
func (p *ResumeParser) parseContact(text string) types.ContactInfo {
	contact := types.ContactInfo{}
	if strings.TrimSpace(text) == "" {
		return contact
	}

	if m := p.emailPattern.FindString(text); m != "" {
		contact.Email = m
	}
	if m := p.phonePattern.FindString(text); m != "" {
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 10 {
			contact.Phone = strings.TrimSpace(m)
		}
	}
	if sub := p.linkedinPattern.FindStringSubmatch(text); sub != nil {
		contact.LinkedIn = "linkedin.com/in/" + sub[1]
	}
	if sub := p.githubPattern.FindStringSubmatch(text); sub != nil {
		contact.GitHub = "github.com/" + sub[1]
	}

	// 姓名通常是前几行中不含联系方式标记的首个短行
	lines := nonEmptyLines(text)
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@|") ||
			strings.Contains(lower, "phone") || strings.Contains(lower, "email") ||
			strings.Contains(lower, "linkedin") || strings.Contains(lower, "github") ||
			strings.Contains(lower, "http") {
			continue
		}
		if _, isHeader := classifyHeader(line); isHeader {
			continue
		}
		if len(line) > 3 && len(line) < 50 && looksLikeName(line) {
			contact.FullName = line
			break
		}
	}

	// 地点模式只在文本头部查找，避免命中技能区的术语
	head := text
	if len(head) > 500 {
		head = head[:500]
	}
	for _, pattern := range p.locationList {
		if sub := pattern.FindStringSubmatch(head); sub != nil {
			contact.Location = strings.TrimSpace(sub[1])
			break
		}
	}

	return contact
}

// leadSummary 从首段中剔除联系信息行后，剩余文本作为总结
func (p *ResumeParser) leadSummary(text string, contact types.ContactInfo) string {
	var kept []string
	for _, line := range nonEmptyLines(text) {
		if line == contact.FullName {
			continue
		}
		if p.emailPattern.MatchString(line) || p.linkedinPattern.MatchString(line) ||
			p.githubPattern.MatchString(line) || p.phonePattern.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// parseExperience 解析工作经历分区。
// 职位/公司行与要点行按形状区分：要点带项目符号前缀，
// 多行要点向上拼接，直到出现新的要点或新的职位块。
func (p *ResumeParser) parseExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	if strings.TrimSpace(text) == "" {
		return entries
	}

	lines := strings.Split(text, "\n")
	var current *types.ExperienceEntry

	commit := func() {
		if current != nil && (current.Company != "" || current.Title != "") {
			entries = append(entries, *current)
		}
		current = nil
	}

	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if sub := p.jobInline.FindStringSubmatch(line); sub != nil {
			commit()
			company, location := splitCompanyLocation(sub[2])
			current = &types.ExperienceEntry{
				Title:     strings.TrimSpace(sub[1]),
				Company:   company,
				Location:  location,
				StartDate: strings.TrimSpace(sub[3]),
				EndDate:   strings.TrimSpace(sub[4]),
				IsCurrent: isCurrentDate(sub[4]),
				Bullets:   []string{},
			}
			continue
		}

		if sub := p.jobCompany.FindStringSubmatch(line); sub != nil {
			commit()
			current = &types.ExperienceEntry{
				Title:     p.lookBackTitle(lines, i),
				Company:   strings.TrimSpace(sub[1]),
				Location:  strings.TrimSpace(sub[2]),
				StartDate: strings.TrimSpace(sub[3]),
				EndDate:   strings.TrimSpace(sub[4]),
				IsCurrent: isCurrentDate(sub[4]),
				Bullets:   []string{},
			}
			continue
		}

		if sub := p.jobDateRange.FindStringSubmatch(line); sub != nil && i >= 2 {
			// 独立日期行：职位与公司在上方两行
			title, companyLine := p.lookBackTitleCompany(lines, i)
			if title != "" && companyLine != "" && !p.yearPattern.MatchString(title) {
				commit()
				company, location := splitCompanyLocation(companyLine)
				current = &types.ExperienceEntry{
					Title:     title,
					Company:   company,
					Location:  location,
					StartDate: strings.TrimSpace(sub[1]),
					EndDate:   strings.TrimSpace(sub[2]),
					IsCurrent: isCurrentDate(sub[2]),
					Bullets:   []string{},
				}
				continue
			}
		}

		if current == nil {
			continue
		}

		switch {
		case isBulletLine(line):
			if cleaned := stripBullet(line); cleaned != "" {
				current.Bullets = append(current.Bullets, cleaned)
			}
		case len(current.Bullets) > 0 && !p.nameCasing.MatchString(line):
			// 上一要点的折行延续
			current.Bullets[len(current.Bullets)-1] += " " + line
		case !strings.Contains(line, "|") && !p.yearPattern.MatchString(line) && len(line) > 20:
			// 无要点前缀的描述行，按要点收录
			current.Bullets = append(current.Bullets, line)
		}
	}
	commit()

	return entries
}

// lookBackTitle 向上回看最近的非要点行作为职位名
func (p *ResumeParser) lookBackTitle(lines []string, i int) string {
	for j := i - 1; j >= 0 && j >= i-5; j-- {
		prev := strings.TrimSpace(lines[j])
		if prev == "" || isBulletLine(prev) {
			continue
		}
		if !p.yearPattern.MatchString(prev) && !strings.Contains(prev, "|") {
			return prev
		}
	}
	return ""
}

// lookBackTitleCompany 向上回看最近两个非要点行：近者为职位，远者为公司
func (p *ResumeParser) lookBackTitleCompany(lines []string, i int) (string, string) {
	var found []string
	for j := i - 1; j >= 0 && j >= i-10; j-- {
		prev := strings.TrimSpace(lines[j])
		if prev == "" || isBulletLine(prev) {
			continue
		}
		found = append(found, prev)
		if len(found) == 2 {
			return found[0], found[1]
		}
	}
	return "", ""
}

// parseEducation 解析教育经历。先逐行尝试单行版式；
// 当学位、专业、日期三者无法同时命中时改走多行版式，
// 而不是接受残缺的单行解析结果。
func (p *ResumeParser) parseEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	if strings.TrimSpace(text) == "" {
		return entries
	}

	for _, line := range nonEmptyLines(text) {
		line = stripBullet(line)

		if sub := p.eduSingleLine.FindStringSubmatch(line); sub != nil {
			degree := strings.TrimSpace(sub[2])
			field := strings.Trim(strings.TrimSpace(sub[3]), ":,")
			date := strings.TrimSpace(sub[1])
			if degree != "" && field != "" && (date != "" || p.eduDate.MatchString(line)) {
				if date == "" {
					date = p.eduDate.FindString(line)
				}
				entries = append(entries, types.EducationEntry{
					Institution:    strings.TrimLeft(strings.TrimSpace(sub[4]), ":, "),
					Degree:         degree,
					FieldOfStudy:   field,
					Location:       strings.TrimSpace(sub[5]),
					GraduationDate: date,
					GPA:            p.extractGPA(line),
				})
				continue
			}
		}

		// 多行/宽松版式：按学位关键词兜底解析
		if entry, ok := p.parseEducationLoose(line); ok {
			entries = append(entries, entry)
		}
	}

	return entries
}

// parseEducationLoose 含学位关键词的行的宽松解析
func (p *ResumeParser) parseEducationLoose(line string) (types.EducationEntry, bool) {
	lower := strings.ToLower(line)
	degreeWords := []string{"bachelor", "master", "phd", "ph.d", "b.s.", "m.s.", "b.a.", "m.a.", "degree", "diploma"}
	hasDegree := false
	for _, w := range degreeWords {
		if strings.Contains(lower, w) {
			hasDegree = true
			break
		}
	}
	if !hasDegree {
		return types.EducationEntry{}, false
	}

	entry := types.EducationEntry{}
	working := line

	if m := p.eduDate.FindString(working); m != "" {
		entry.GraduationDate = m
		working = strings.TrimSpace(strings.Replace(working, m, "", 1))
	}
	entry.GPA = p.extractGPA(line)
	if m := p.eduDegree.FindString(working); m != "" {
		entry.Degree = m
	}
	if sub := p.eduField.FindStringSubmatch(working); sub != nil {
		entry.FieldOfStudy = strings.TrimSpace(sub[1])
	}
	if sub := p.eduInst.FindStringSubmatch(working); sub != nil {
		entry.Institution = strings.TrimSpace(sub[1])
	}
	if sub := p.eduLocation.FindStringSubmatch(line); sub != nil {
		entry.Location = strings.TrimSpace(sub[1])
	}

	if entry.Institution == "" {
		cleaned := p.eduGPA.ReplaceAllString(line, "")
		cleaned = p.eduDate.ReplaceAllString(cleaned, "")
		cleaned = strings.Trim(cleaned, " -–—,:")
		if len(cleaned) > 5 {
			entry.Institution = cleaned
		}
	}

	return entry, entry.Institution != ""
}

func (p *ResumeParser) extractGPA(line string) string {
	if sub := p.eduGPA.FindStringSubmatch(line); sub != nil {
		return strings.TrimRight(sub[1], ".")
	}
	return ""
}

// parseSkills 解析技能分区：逐行去除项目符号，按嵌入的类别标签
// 切成若干组（"Tools: A, B Languages: C, D" 必须切成两组），
// 组内按逗号/竖线分词，括号组保持为单个技能。
// 噪声词表过滤表格版式的列头，超长短语拒收。
func (p *ResumeParser) parseSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	var collected []string
	for _, line := range nonEmptyLines(text) {
		line = stripBullet(line)
		if len(line) < 3 || strings.HasPrefix(line, "http") {
			continue
		}
		for _, segment := range p.splitCategories(line) {
			for _, token := range splitSkillTokens(segment) {
				collected = append(collected, token)
			}
		}
	}

	return dedupeSkills(collected)
}

// splitCategories 把一行拆成类别段，去掉类别标签本身。
// 行首标签可以是短语（"Skill Category:"）；行中嵌入的标签只认
// 单词形式（"... Languages: ..."），否则标签前的技能会被吞掉。
func (p *ResumeParser) splitCategories(line string) []string {
	if loc := p.leadingLabel.FindStringIndex(line); loc != nil {
		label := line[:loc[1]-1]
		if !strings.Contains(label, ",") {
			line = strings.TrimSpace(line[loc[1]:])
		}
	}

	locs := p.embeddedLabel.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return []string{line}
	}

	var segments []string
	prev := 0
	for _, loc := range locs {
		if seg := strings.TrimSpace(line[prev:loc[0]]); seg != "" {
			segments = append(segments, seg)
		}
		prev = loc[1]
	}
	if seg := strings.TrimSpace(line[prev:]); seg != "" {
		segments = append(segments, seg)
	}
	return segments
}

// splitSkillTokens 段内分词：优先逗号，其次竖线，都没有时整段为一个技能
func splitSkillTokens(segment string) []string {
	var parts []string
	switch {
	case strings.Contains(segment, ","):
		parts = strings.Split(segment, ",")
	case strings.Contains(segment, "|"):
		parts = strings.Split(segment, "|")
	default:
		parts = []string{segment}
	}

	var tokens []string
	for _, part := range parts {
		token := strings.Join(strings.Fields(part), " ")
		if token == "" || len(token) <= 2 || len(token) >= 80 {
			continue
		}
		if skillStoplist[strings.ToLower(token)] {
			continue
		}
		if len(strings.Fields(token)) > maxSkillTokens {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// dedupeSkills 忽略大小写去重，保留首次出现的原始大小写
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func mergeSkills(existing, added []string) []string {
	return dedupeSkills(append(existing, added...))
}

// parseProjects 解析项目分区。项目标题行是非要点行，
// 且带名称/副标题分隔破折号，或紧跟要点行。
func (p *ResumeParser) parseProjects(text string) []types.ProjectEntry {
	var projects []types.ProjectEntry
	if strings.TrimSpace(text) == "" {
		return projects
	}

	lines := strings.Split(text, "\n")
	var current *types.ProjectEntry

	commit := func() {
		if current != nil && (len(current.Bullets) > 0 || current.Description != "") {
			projects = append(projects, *current)
		}
		current = nil
	}

	for i, rawLine := range lines {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if !isBulletLine(line) {
			nextIsBullet := false
			for j := i + 1; j < len(lines); j++ {
				next := strings.TrimSpace(lines[j])
				if next == "" {
					continue
				}
				nextIsBullet = isBulletLine(next)
				break
			}
			hasSeparator := strings.Contains(line, "–") || strings.Contains(line, "—")
			if len(line) > 10 && (hasSeparator || nextIsBullet) {
				commit()
				current = &types.ProjectEntry{Bullets: []string{}}
				if link := p.urlPattern.FindString(line); link != "" {
					current.Link = link
					line = strings.TrimSpace(strings.Replace(line, link, "", 1))
				}
				current.Name = strings.Trim(line, " -–—|")
				continue
			}
			if current != nil && current.Description == "" {
				current.Description = line
			}
			continue
		}

		if current == nil {
			continue
		}
		cleaned := stripBullet(line)
		if cleaned == "" {
			continue
		}
		// 技术栈行单独归集
		lower := strings.ToLower(cleaned)
		if strings.HasPrefix(lower, "technologies:") || strings.HasPrefix(lower, "tech stack:") {
			_, after, _ := strings.Cut(cleaned, ":")
			current.Technologies = dedupeSkills(splitSkillTokens(after))
			continue
		}
		current.Bullets = append(current.Bullets, cleaned)
	}
	commit()

	return projects
}

// parseCertifications 解析证书分区。逗号与换行是条目分隔符；
// 条目内两侧带空白的连字符分隔名称与颁发方。
// "AZ-900" 一类证书代码中的内部连字符绝不拆分。
func (p *ResumeParser) parseCertifications(text string) []string {
	var certs []string
	if strings.TrimSpace(text) == "" {
		return certs
	}

	for _, line := range nonEmptyLines(text) {
		line = stripBullet(line)
		for _, entry := range strings.Split(line, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			certs = append(certs, entry)
		}
	}

	return certs
}

// CertificationParts 拆出条目中的名称与颁发方。
// 分隔符是两侧带空白的连字符；无分隔符时整条为名称。
func (p *ResumeParser) CertificationParts(entry string) (name, issuer string) {
	parts := p.certSeparator.Split(entry, 2)
	name = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		issuer = strings.TrimSpace(parts[1])
	}
	return name, issuer
}

// 行形状判定

func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "•") ||
		strings.HasPrefix(trimmed, "- ") ||
		strings.HasPrefix(trimmed, "– ")
}

var bulletPrefix = regexp.MustCompile(`^[\s]*[•\-–]\s*`)

func stripBullet(line string) string {
	return strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func splitCompanyLocation(s string) (company, location string) {
	parts := strings.SplitN(s, ",", 2)
	company = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		location = strings.TrimSpace(parts[1])
	}
	return company, location
}

func isCurrentDate(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return lower == "present" || lower == "current"
}

// looksLikeName 全大写或逐词首字母大写的短行
func looksLikeName(line string) bool {
	if line == strings.ToUpper(line) && strings.ContainsAny(line, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return true
	}
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 4 {
		return false
	}
	for _, f := range fields {
		r := rune(f[0])
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
