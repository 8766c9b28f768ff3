package types

// SectionKind 向量记录来源的简历部位
type SectionKind string

const (
	KindSummary          SectionKind = "summary"
	KindExperience       SectionKind = "experience"
	KindExperienceBullet SectionKind = "experience_bullet"
	KindEducation        SectionKind = "education"
	KindSkills           SectionKind = "skills"
	KindProject          SectionKind = "project"
)

// EmbeddingRecord 向量索引中的一条记录。
// 向量维度由激活的编码器决定，同一会话内所有参与比较的
// 记录必须来自同一编码器，混用会无声地破坏相似度。
type EmbeddingRecord struct {
	ID            string      `json:"id"`
	Vector        []float64   `json:"vector"`
	SourceText    string      `json:"source_text"`
	OwnerDocument string      `json:"owner_document"`
	Kind          SectionKind `json:"kind"`
}
