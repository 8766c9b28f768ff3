package types

// SectionType 表示文档分区类型
type SectionType string

const (
	// SectionContact 联系方式分区
	SectionContact SectionType = "CONTACT"
	// SectionSummary 个人总结分区
	SectionSummary SectionType = "SUMMARY"
	// SectionExperience 工作经历分区
	SectionExperience SectionType = "EXPERIENCE"
	// SectionEducation 教育经历分区
	SectionEducation SectionType = "EDUCATION"
	// SectionSkills 通用技能分区
	SectionSkills SectionType = "SKILLS"
	// SectionAISkills AI/ML技能分区（独立于通用技能）
	SectionAISkills SectionType = "AI_SKILLS"
	// SectionProjects 项目经历分区
	SectionProjects SectionType = "PROJECTS"
	// SectionCertifications 证书分区
	SectionCertifications SectionType = "CERTIFICATIONS"
	// SectionUnknown 未分类内容分区
	SectionUnknown SectionType = "UNKNOWN"
)

// DocumentZone 文档中一段连续的、归属于单一语义分区的文本
type DocumentZone struct {
	Type      SectionType // 分区类型
	Title     string      // 实际命中的标题行；按位置推断的首段为空
	Content   string      // 分区内容（不含标题行）
	StartLine int         // 分区内容在文档中的起始行号
}

// ContactInfo 简历联系信息，所有字段均可缺失
type ContactInfo struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry 一段工作经历
type ExperienceEntry struct {
	Company   string   `json:"company"`
	Title     string   `json:"title"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"` // 在职时为 "Present"
	IsCurrent bool     `json:"is_current"`
	Bullets   []string `json:"bullets"`
}

// EducationEntry 一段教育经历
type EducationEntry struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree,omitempty"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	Location       string `json:"location,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ProjectEntry 一个项目条目
type ProjectEntry struct {
	Name         string   `json:"name"`
	Link         string   `json:"link,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Bullets      []string `json:"bullets,omitempty"`
}

// StructuredResume 简历的规范化结构形式。
// 技能集合按插入顺序保存、按小写去重，展示时保留原始大小写。
type StructuredResume struct {
	Contact        ContactInfo       `json:"contact"`
	Summary        string            `json:"summary,omitempty"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	AISkills       []string          `json:"ai_skills"`
	Projects       []ProjectEntry    `json:"projects"`
	Certifications []string          `json:"certifications"`
}

// ExperienceText 返回全部经历要点拼接成的一段文本，
// 供技能匹配的兜底检索使用。
func (r *StructuredResume) ExperienceText() string {
	var total int
	for _, exp := range r.Experience {
		for _, b := range exp.Bullets {
			total += len(b) + 1
		}
	}
	buf := make([]byte, 0, total)
	for _, exp := range r.Experience {
		for _, b := range exp.Bullets {
			buf = append(buf, b...)
			buf = append(buf, ' ')
		}
	}
	return string(buf)
}

// AllSkills 返回通用技能与AI/ML技能的合并视图（不去重，两侧各自已去重）
func (r *StructuredResume) AllSkills() []string {
	out := make([]string, 0, len(r.Skills)+len(r.AISkills))
	out = append(out, r.Skills...)
	out = append(out, r.AISkills...)
	return out
}
