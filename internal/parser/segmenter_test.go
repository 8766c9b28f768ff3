package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-match-go/internal/types"
)

const sampleResume = `John Doe
john.doe@example.com | 555-123-4567

PROFESSIONAL SUMMARY
Data engineer with cloud experience.

EXPERIENCE
Data Engineer – Acme Corp, Austin, TX | Jan 2021 – Present
• Built streaming pipelines on Azure.
• Led a team that delivered three projects.

EDUCATION
Master of Science: Computer Science, The University of Texas - Arlington, TX

SKILLS
Python (PySpark), SQL, Azure Data Factory (ADF)`

func TestSegmentText_BasicZones(t *testing.T) {
	zones := SegmentText(NormalizeText(sampleResume))

	var kinds []types.SectionType
	for _, z := range zones {
		kinds = append(kinds, z.Type)
	}
	assert.Equal(t, []types.SectionType{
		types.SectionContact,
		types.SectionSummary,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
	}, kinds, "分区顺序应与文档一致")
}

func TestSegmentText_PeriodLineDoesNotOpenZone(t *testing.T) {
	// 要点行以句号结尾且含 "projects" 关键词，
	// 必须留在EXPERIENCE内，不得衍生出PROJECTS分区
	zones := SegmentText(NormalizeText(sampleResume))

	var experience *types.DocumentZone
	for i := range zones {
		if zones[i].Type == types.SectionProjects {
			t.Fatalf("不应出现PROJECTS分区: %+v", zones[i])
		}
		if zones[i].Type == types.SectionExperience {
			experience = &zones[i]
		}
	}
	require.NotNil(t, experience)
	assert.Contains(t, experience.Content, "delivered three projects.", "句号结尾的要点行应留在EXPERIENCE内")
}

func TestSegmentText_Idempotent(t *testing.T) {
	normalized := NormalizeText(sampleResume)

	first := SegmentText(normalized)
	second := SegmentText(normalized)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i], second[i], "重复切分的分区边界应一致")
	}
}

func TestSegmentText_LeadingTextIsContactByPosition(t *testing.T) {
	zones := SegmentText(NormalizeText(sampleResume))

	require.NotEmpty(t, zones)
	assert.Equal(t, types.SectionContact, zones[0].Type)
	assert.Empty(t, zones[0].Title, "按位置推断的首段没有标题行")
	assert.Contains(t, zones[0].Content, "john.doe@example.com")
}

func TestSegmentText_RealProjectsHeader(t *testing.T) {
	text := NormalizeText("EXPERIENCE\n• Did things at work.\n\nPROJECTS\nSide Project – CLI tool\n• Wrote it in a weekend.")

	zones := SegmentText(text)

	require.Len(t, zones, 2)
	assert.Equal(t, types.SectionExperience, zones[0].Type)
	assert.Equal(t, types.SectionProjects, zones[1].Type, "真正的标题行（无句号）应开启PROJECTS分区")
}

func TestSegmentText_AISkillsSeparateLane(t *testing.T) {
	text := NormalizeText("TECHNICAL SKILLS\nPython, SQL\n\nAI/ML SKILLS\nLangChain, RAG")

	zones := SegmentText(text)

	require.Len(t, zones, 2)
	assert.Equal(t, types.SectionSkills, zones[0].Type)
	assert.Equal(t, types.SectionAISkills, zones[1].Type, "AI/ML技能是独立于通用技能的分区")
}

func TestSegmentText_Empty(t *testing.T) {
	assert.Nil(t, SegmentText(""))
	assert.Nil(t, SegmentText("   \n  "))
}
