package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullResume(t *testing.T) {
	p := NewResumeParser()

	resume := p.Parse(sampleResume)

	assert.Equal(t, "John Doe", resume.Contact.FullName)
	assert.Equal(t, "john.doe@example.com", resume.Contact.Email)
	assert.Equal(t, "Data engineer with cloud experience.", resume.Summary)

	require.Len(t, resume.Experience, 1)
	exp := resume.Experience[0]
	assert.Equal(t, "Data Engineer", exp.Title)
	assert.Equal(t, "Acme Corp", exp.Company)
	assert.Equal(t, "Jan 2021", exp.StartDate)
	assert.True(t, exp.IsCurrent)
	assert.Len(t, exp.Bullets, 2)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "Master of Science", resume.Education[0].Degree)
	assert.Equal(t, "Computer Science", resume.Education[0].FieldOfStudy)

	assert.Equal(t, []string{"Python (PySpark)", "SQL", "Azure Data Factory (ADF)"}, resume.Skills)
}

func TestParse_NeverFailsOnGarbage(t *testing.T) {
	p := NewResumeParser()

	// 结构化从不报错，坏输入退化为空结构
	for _, input := range []string{"", "\x00\x01\x02", "just one line", "•••\n•••"} {
		resume := p.Parse(input)
		require.NotNil(t, resume)
		assert.NotNil(t, resume.Skills)
		assert.NotNil(t, resume.Experience)
	}
}

func TestParseCertifications_WhitespaceHyphenSplit(t *testing.T) {
	p := NewResumeParser()

	// 逗号分隔条目；"AZ-900"的内部连字符绝不拆分
	certs := p.parseCertifications("AZ-900 - Microsoft Azure Fundamentals, AWS Certified")

	require.Len(t, certs, 2)
	assert.Equal(t, "AZ-900 - Microsoft Azure Fundamentals", certs[0])
	assert.Equal(t, "AWS Certified", certs[1])
	assert.Contains(t, certs[0], "AZ-900", "证书代码必须保持完整")

	name, issuer := p.CertificationParts(certs[0])
	assert.Equal(t, "AZ-900", name, "两侧带空白的连字符才是名称/颁发方分隔符")
	assert.Equal(t, "Microsoft Azure Fundamentals", issuer)

	name, issuer = p.CertificationParts(certs[1])
	assert.Equal(t, "AWS Certified", name)
	assert.Empty(t, issuer)
}

func TestParseSkills_EmbeddedCategoryHeaders(t *testing.T) {
	p := NewResumeParser()

	// 同一块里的多个类别标签必须切开，不能连成一串
	skills := p.parseSkills("Tools: Airflow, Databricks Languages: Python, Scala")

	assert.Equal(t, []string{"Airflow", "Databricks", "Python", "Scala"}, skills)
}

func TestParseSkills_ParentheticalStaysIntact(t *testing.T) {
	p := NewResumeParser()

	skills := p.parseSkills("Azure Data Factory (ADF), Python (PySpark), SQL")

	assert.Contains(t, skills, "Azure Data Factory (ADF)", "括号组保持为单个技能")
	assert.Contains(t, skills, "Python (PySpark)")
	assert.Contains(t, skills, "SQL")
}

func TestParseSkills_StoplistAndBounds(t *testing.T) {
	p := NewResumeParser()

	skills := p.parseSkills("Proficiency, Beginner, Python, " +
		"this is a malformed phrase that runs far too long to ever be a skill name at all")

	assert.Equal(t, []string{"Python"}, skills, "表格噪声词与超长短语都应被拒收")
}

func TestParseSkills_CaseInsensitiveDedupe(t *testing.T) {
	p := NewResumeParser()

	skills := p.parseSkills("Python, python, PYTHON, SQL")

	assert.Equal(t, []string{"Python", "SQL"}, skills, "忽略大小写去重并保留首次出现的写法")
}

func TestParseExperience_MultilineBulletContinuation(t *testing.T) {
	p := NewResumeParser()

	text := "Data Engineer – Acme Corp | Jan 2021 – Dec 2022\n" +
		"• Built a streaming platform handling\n" +
		"  billions of events per day.\n" +
		"• Second bullet."

	entries := p.parseExperience(text)

	require.Len(t, entries, 1)
	require.Len(t, entries[0].Bullets, 2)
	assert.Equal(t, "Built a streaming platform handling billions of events per day.", entries[0].Bullets[0], "折行要点应向上拼接")
}

func TestParseExperience_DateOnLineBelow(t *testing.T) {
	p := NewResumeParser()

	text := "Acme Corp, Austin\nSenior Data Engineer\nMar 2019 – Feb 2021\n• Did the work."

	entries := p.parseExperience(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "Senior Data Engineer", entries[0].Title)
	assert.Equal(t, "Acme Corp", entries[0].Company)
	assert.Equal(t, "Mar 2019", entries[0].StartDate)
	assert.False(t, entries[0].IsCurrent)
}

func TestParseEducation_SingleLineLayout(t *testing.T) {
	p := NewResumeParser()

	entries := p.parseEducation("05/2024 Master of Science: Computer Science, The University of Texas at Arlington - Arlington, TX")

	require.Len(t, entries, 1)
	assert.Equal(t, "Master of Science", entries[0].Degree)
	assert.Equal(t, "Computer Science", entries[0].FieldOfStudy)
	assert.Equal(t, "05/2024", entries[0].GraduationDate)
	assert.Contains(t, entries[0].Institution, "University of Texas")
}

func TestParseEducation_LooseLayoutWithGPA(t *testing.T) {
	p := NewResumeParser()

	entries := p.parseEducation("Bachelor of Science in Computer Engineering, State University 2019, GPA: 3.8")

	require.Len(t, entries, 1)
	assert.Equal(t, "3.8", entries[0].GPA)
	assert.Equal(t, "2019", entries[0].GraduationDate)
	assert.NotEmpty(t, entries[0].Institution)
}

func TestParseProjects_TitleShapes(t *testing.T) {
	p := NewResumeParser()

	text := "Fraud Detection Platform – Real-time scoring\n" +
		"• Streamed transactions through Kafka.\n" +
		"Recommendation Engine\n" +
		"• Collaborative filtering on Spark.\n" +
		"• Technologies: Spark, Python"

	projects := p.parseProjects(text)

	require.Len(t, projects, 2)
	assert.Equal(t, "Fraud Detection Platform – Real-time scoring", projects[0].Name)
	assert.Equal(t, "Recommendation Engine", projects[1].Name, "无破折号但紧跟要点的行也是项目标题")
	assert.Equal(t, []string{"Spark", "Python"}, projects[1].Technologies)
}

func TestParseContact_Recognizers(t *testing.T) {
	p := NewResumeParser()

	contact := p.parseContact("Jane Smith\nLocation: Austin, TX\njane@corp.io | 512-555-0100\nlinkedin.com/in/janesmith\ngithub.com/janesmith")

	assert.Equal(t, "Jane Smith", contact.FullName)
	assert.Equal(t, "jane@corp.io", contact.Email)
	assert.Equal(t, "512-555-0100", contact.Phone)
	assert.Equal(t, "Austin, TX", contact.Location)
	assert.Equal(t, "linkedin.com/in/janesmith", contact.LinkedIn)
	assert.Equal(t, "github.com/janesmith", contact.GitHub)
}
