package types

// StructuredJobDescription 职位描述的规范化结构形式。
// YearsOfExperience 保留原始文本（如 "3-5"、"4+"），
// 招聘方写法不统一，不做数值化。
type StructuredJobDescription struct {
	Title             string   `json:"title,omitempty"`
	Company           string   `json:"company,omitempty"`
	Location          string   `json:"location,omitempty"`
	JobType           string   `json:"job_type,omitempty"`
	Responsibilities  []string `json:"responsibilities"`
	RequiredSkills    []string `json:"required_skills"`
	PreferredSkills   []string `json:"preferred_skills"`
	YearsOfExperience string   `json:"years_of_experience,omitempty"`
}

// AllRequirements 返回语义检索用的需求全集：
// 必备技能、优先技能与职责逐条合并，顺序稳定。
func (jd *StructuredJobDescription) AllRequirements() []string {
	out := make([]string, 0, len(jd.RequiredSkills)+len(jd.PreferredSkills)+len(jd.Responsibilities))
	out = append(out, jd.RequiredSkills...)
	out = append(out, jd.PreferredSkills...)
	out = append(out, jd.Responsibilities...)
	return out
}
