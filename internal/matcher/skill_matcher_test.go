package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

func testResume() *types.StructuredResume {
	return &types.StructuredResume{
		Skills: []string{"Python (PySpark)", "Azure Data Factory (ADF)", "SQL"},
		Experience: []types.ExperienceEntry{
			{
				Company: "Acme Corp",
				Title:   "Data Engineer",
				Bullets: []string{
					"Orchestrated workflows with Airflow across three regions.",
					"Tuned Snowflake warehouses for analytics workloads.",
				},
			},
		},
	}
}

func TestMatch_ExactTier(t *testing.T) {
	m := NewSkillMatcher(nil)

	result := m.Match("SQL", testResume())

	assert.Equal(t, types.MatchExact, result.Kind)
	assert.Equal(t, "SQL", result.MatchedSkill)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestMatch_AbbreviationTier(t *testing.T) {
	m := NewSkillMatcher(nil)

	// "ADF" 对 "Azure Data Factory (ADF)" 必须按缩写层命中
	result := m.Match("ADF", testResume())

	assert.Equal(t, types.MatchAbbreviation, result.Kind)
	assert.Equal(t, "Azure Data Factory (ADF)", result.MatchedSkill)
}

func TestMatch_SynonymTier(t *testing.T) {
	m := NewSkillMatcher(nil)

	// Spark 经由同义词组（apache spark/pyspark）命中 "Python (PySpark)"
	result := m.Match("Spark", testResume())

	assert.Equal(t, types.MatchSynonym, result.Kind)
	assert.Equal(t, "Python (PySpark)", result.MatchedSkill)
}

func TestMatch_FallbackTierFromBullets(t *testing.T) {
	m := NewSkillMatcher(nil)

	// 只出现在经历要点里的技能按兜底层命中
	result := m.Match("Airflow", testResume())

	assert.Equal(t, types.MatchFallback, result.Kind)
	assert.NotEmpty(t, result.BestEvidence)
}

func TestMatch_AbsentEverywhere(t *testing.T) {
	m := NewSkillMatcher(nil)

	result := m.Match("Tableau", testResume())

	assert.Equal(t, types.MatchNone, result.Kind)
	assert.Empty(t, result.MatchedSkill)
	assert.Zero(t, result.Confidence)
}

func TestMatch_TierOrderIsLoadBearing(t *testing.T) {
	m := NewSkillMatcher(nil)

	// SQL 同时出现在技能列表和要点文本里时，必须报精确层而非兜底层：
	// 兜底的子串命中不得掩盖技能列表里的真实命中
	resume := testResume()
	resume.Experience[0].Bullets = append(resume.Experience[0].Bullets, "Wrote complex SQL for reporting.")

	result := m.Match("SQL", resume)

	assert.Equal(t, types.MatchExact, result.Kind)
}

func TestMatch_WordBoundaryInFallback(t *testing.T) {
	m := NewSkillMatcher(nil)

	resume := &types.StructuredResume{
		Experience: []types.ExperienceEntry{
			{Company: "X", Title: "Y", Bullets: []string{"Improved the goal tracking dashboard."}},
		},
	}

	// "goal" 里包含 "go"，但词边界检索不应命中
	result := m.Match("Go", resume)

	assert.Equal(t, types.MatchNone, result.Kind)
}

func TestMatchRequired_EndToEndScenario(t *testing.T) {
	m := NewSkillMatcher(nil)

	// 简历技能 {Python (PySpark), Azure Data Factory (ADF), SQL}
	// 对 JD 必备 {Python, ADF, Spark, Tableau}：命中3/4，Tableau缺失
	required := []string{"Python", "ADF", "Spark", "Tableau"}
	matches, missing := m.MatchRequired(required, testResume())

	require.Len(t, matches, 4)
	assert.Equal(t, []string{"Tableau"}, missing)

	kinds := map[string]types.MatchKind{}
	for _, match := range matches {
		kinds[match.Requirement] = match.Kind
	}
	assert.Equal(t, types.MatchSynonym, kinds["Python"])
	assert.Equal(t, types.MatchAbbreviation, kinds["ADF"])
	assert.Equal(t, types.MatchSynonym, kinds["Spark"])
	assert.Equal(t, types.MatchNone, kinds["Tableau"])
}

func TestSuggestions_CloseMatches(t *testing.T) {
	m := NewSkillMatcher(nil)

	suggestions := m.Suggestions([]string{"Apache Spark"}, []string{"Python (PySpark)", "SQL"})

	assert.Equal(t, "Python (PySpark)", suggestions["Apache Spark"], "缺失技能应给出简历中的近似技能")
}

func TestEquivalenceTable_Variations(t *testing.T) {
	table := NewEquivalenceTable()

	variations := table.Variations("spark")

	assert.Contains(t, variations, "apache spark")
	assert.Contains(t, variations, "pyspark")

	// 反向：同义词成员也能找回组内全员
	variations = table.Variations("pyspark")
	assert.Contains(t, variations, "spark")
}

func TestEquivalenceTable_AbbreviationBothWays(t *testing.T) {
	table := NewEquivalenceTable()

	assert.Equal(t, []string{"azure data factory", "azure datafactory"}, table.ExpandAbbreviation("ADF"))
	assert.Equal(t, "adf", table.AbbreviationOf("Azure Data Factory"))
}

func TestNormalizeSkill(t *testing.T) {
	assert.Equal(t, "azure data factory adf", NormalizeSkill("  Azure Data Factory (ADF) "))
	assert.Equal(t, "ci/cd", NormalizeSkill("CI/CD"))
	assert.Equal(t, "c++", NormalizeSkill("C++"))
}
