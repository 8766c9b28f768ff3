package matcher

import (
	"regexp"
	"strings"
)

// skillCharPattern 技能归一化时保留字母数字、空白和 -+#/. 字符
var skillCharPattern = regexp.MustCompile(`[^\w\s\-+#/.]`)

// defaultAbbreviations 缩写 → 全称列表
var defaultAbbreviations = map[string][]string{
	"adf":     {"azure data factory", "azure datafactory"},
	"aws":     {"amazon web services"},
	"gcp":     {"google cloud platform", "google cloud"},
	"ci/cd":   {"cicd", "continuous integration", "continuous deployment", "ci cd"},
	"ml":      {"machine learning"},
	"ai":      {"artificial intelligence"},
	"nlp":     {"natural language processing"},
	"etl":     {"extract transform load", "extract-transform-load"},
	"elt":     {"extract load transform"},
	"api":     {"application programming interface"},
	"rest":    {"restful", "rest api", "restful api"},
	"sql":     {"structured query language"},
	"nosql":   {"no sql", "non-sql"},
	"db":      {"database"},
	"k8s":     {"kubernetes"},
	"pyspark": {"py spark", "apache pyspark"},
	"bi":      {"business intelligence"},
	"iot":     {"internet of things"},
	"devops":  {"dev ops"},
	"saas":    {"software as a service"},
	"paas":    {"platform as a service"},
	"iaas":    {"infrastructure as a service"},
}

// defaultSynonyms 规范名 → 同义词列表
var defaultSynonyms = map[string][]string{
	"python":           {"python3", "py"},
	"javascript":       {"js", "ecmascript"},
	"typescript":       {"ts"},
	"docker":           {"containerization", "containers"},
	"kubernetes":       {"k8s", "container orchestration"},
	"databricks":       {"databricks platform", "databricks workspace"},
	"spark":            {"apache spark", "pyspark"},
	"kafka":            {"apache kafka"},
	"airflow":          {"apache airflow"},
	"postgresql":       {"postgres", "psql"},
	"mongodb":          {"mongo"},
	"github":           {"github actions", "gh"},
	"gitlab":           {"gitlab ci"},
	"azure":            {"microsoft azure", "azure cloud"},
	"aws":              {"amazon aws", "amazon web services"},
	"data engineering": {"data engineer", "data pipeline", "data pipelines"},
	"data science":     {"data scientist"},
	"machine learning": {"ml", "machine learning engineer"},
	"data modeling":    {"data model", "dimensional modeling"},
	"data governance":  {"data quality", "governance framework"},
	"unity catalog":    {"unity", "databricks unity catalog"},
	"delta lake":       {"delta", "databricks delta"},
	"data warehouse":   {"dwh", "data warehousing"},
	"data lake":        {"datalake"},
	"power bi":         {"powerbi", "microsoft power bi"},
	"tableau":          {"tableau desktop", "tableau server"},
}

// EquivalenceTable 技能等价表：缩写展开与同义词组。
// 构建后只读，进程生命周期内共享同一实例。
type EquivalenceTable struct {
	abbreviations map[string][]string // 缩写 → 全称
	abbrevOf      map[string]string   // 全称 → 缩写
	synonyms      map[string][]string // 规范名 → 同义词
	groupOf       map[string][]string // 任意变体 → 所属同义词组全员
}

// NewEquivalenceTable 基于内置映射构建等价表
func NewEquivalenceTable() *EquivalenceTable {
	return NewEquivalenceTableFrom(defaultAbbreviations, defaultSynonyms)
}

// NewEquivalenceTableFrom 基于自定义映射构建等价表，键与值在构建时统一归一化
func NewEquivalenceTableFrom(abbreviations, synonyms map[string][]string) *EquivalenceTable {
	t := &EquivalenceTable{
		abbreviations: make(map[string][]string, len(abbreviations)),
		abbrevOf:      make(map[string]string),
		synonyms:      make(map[string][]string, len(synonyms)),
		groupOf:       make(map[string][]string),
	}

	for abbr, fullForms := range abbreviations {
		na := NormalizeSkill(abbr)
		forms := make([]string, 0, len(fullForms))
		for _, f := range fullForms {
			nf := NormalizeSkill(f)
			forms = append(forms, nf)
			t.abbrevOf[nf] = na
		}
		t.abbreviations[na] = forms
	}

	for main, syns := range synonyms {
		nm := NormalizeSkill(main)
		group := make([]string, 0, len(syns)+1)
		group = append(group, nm)
		for _, s := range syns {
			group = append(group, NormalizeSkill(s))
		}
		t.synonyms[nm] = group[1:]
		for _, member := range group {
			t.groupOf[member] = append(t.groupOf[member], group...)
		}
	}

	return t
}

// NormalizeSkill 技能比较用的归一化：小写、去除特殊字符、压缩空白
func NormalizeSkill(skill string) string {
	s := strings.ToLower(strings.TrimSpace(skill))
	s = skillCharPattern.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// ExpandAbbreviation 返回缩写的全称列表；非缩写返回nil
func (t *EquivalenceTable) ExpandAbbreviation(skill string) []string {
	return t.abbreviations[NormalizeSkill(skill)]
}

// AbbreviationOf 返回全称对应的缩写；无缩写返回空串
func (t *EquivalenceTable) AbbreviationOf(skill string) string {
	return t.abbrevOf[NormalizeSkill(skill)]
}

// Variations 返回技能的全部变体集合：自身、缩写、全称与同义词组成员。
// 键为归一化形式。
func (t *EquivalenceTable) Variations(skill string) map[string]struct{} {
	normalized := NormalizeSkill(skill)
	variations := map[string]struct{}{normalized: {}}

	if abbr, ok := t.abbrevOf[normalized]; ok {
		variations[abbr] = struct{}{}
	}
	for _, full := range t.abbreviations[normalized] {
		variations[full] = struct{}{}
	}
	for _, syn := range t.synonyms[normalized] {
		variations[syn] = struct{}{}
	}
	for _, member := range t.groupOf[normalized] {
		variations[member] = struct{}{}
	}

	return variations
}

// SameGroup 判断两个技能是否通过同义词组关联
func (t *EquivalenceTable) SameGroup(a, b string) bool {
	va := t.Variations(a)
	for v := range t.Variations(b) {
		if _, ok := va[v]; ok {
			return true
		}
	}
	return false
}
