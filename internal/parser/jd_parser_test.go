package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJD = `Senior Data Engineer
Company: Initech
Location: Austin, TX
Full-time

Responsibilities
• Design and maintain data pipelines on Azure.
• Collaborate with analysts on reporting datasets.

Requirements
• Experience with Python, ADF, and Spark
• Tableau
• Over 4+ years of experience in data engineering

Nice to have
• Familiarity with Databricks`

func TestJDParse_Basics(t *testing.T) {
	p := NewJDParser()

	jd := p.Parse(sampleJD)

	assert.Equal(t, "Senior Data Engineer", jd.Title)
	assert.Equal(t, "Initech", jd.Company)
	assert.Equal(t, "Austin, TX", jd.Location)
	assert.Equal(t, "Full-time", jd.JobType)
	assert.Len(t, jd.Responsibilities, 2)
}

func TestJDParse_RequiredVersusPreferred(t *testing.T) {
	p := NewJDParser()

	jd := p.Parse(sampleJD)

	assert.Contains(t, jd.RequiredSkills, "Python")
	assert.Contains(t, jd.RequiredSkills, "ADF")
	assert.Contains(t, jd.RequiredSkills, "Spark")
	assert.Contains(t, jd.RequiredSkills, "Tableau")
	assert.Contains(t, jd.PreferredSkills, "Databricks")
	assert.NotContains(t, jd.RequiredSkills, "Databricks", "优先技能不得混入必备技能")
}

func TestExtractYearsOfExperience_SpecificPatternWins(t *testing.T) {
	p := NewJDParser()

	// 模式按特异性排序："4+" 不能被宽松模式截断成 "4"
	assert.Equal(t, "4+", p.ExtractYearsOfExperience("over 4+ years of experience"))
	assert.Equal(t, "3-5", p.ExtractYearsOfExperience("we need 3-5 years of Spark"))
	assert.Equal(t, "3-5", p.ExtractYearsOfExperience("3–5 yrs required"))
	assert.Equal(t, "2", p.ExtractYearsOfExperience("at least 2 years in the field"))
	assert.Equal(t, "7", p.ExtractYearsOfExperience("7 years building platforms"))
	assert.Empty(t, p.ExtractYearsOfExperience("no numbers here"))
}

func TestJDParse_NeverFails(t *testing.T) {
	p := NewJDParser()

	for _, input := range []string{"", "plain sentence with nothing useful."} {
		jd := p.Parse(input)
		require.NotNil(t, jd)
		assert.NotNil(t, jd.RequiredSkills)
		assert.NotNil(t, jd.PreferredSkills)
		assert.NotNil(t, jd.Responsibilities)
	}
}
