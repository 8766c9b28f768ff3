package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_Idempotent(t *testing.T) {
	raw := "John Doe\r\n\r\n\r\n●  Built   data pipelines at scale\r\n\tDetails here"

	once := NormalizeText(raw)
	twice := NormalizeText(once)

	assert.Equal(t, once, twice, "归一化应当幂等")
}

func TestNormalizeText_UnifiesBulletGlyphs(t *testing.T) {
	raw := "● first\n▪ second\n◦ third\n* fourth"

	got := NormalizeText(raw)

	assert.Equal(t, "• first\n• second\n• third\n• fourth", got)
}

func TestNormalizeText_RemovesArtifacts(t *testing.T) {
	// 零宽字符与控制字符都是PDF提取的常见产物
	raw := "Data​Engineer resume\x07text"

	got := NormalizeText(raw)

	assert.Equal(t, "DataEngineer resumetext", got)
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	raw := "line   with    runs\n\n\n\nnext"

	got := NormalizeText(raw)

	assert.Equal(t, "line with runs\n\nnext", got, "行内空白压缩为单个，连续空行压缩为一个")
}

func TestNormalizeText_PreservesIndentation(t *testing.T) {
	raw := "  indented bullet body"

	got := NormalizeText(raw)

	assert.Equal(t, "  indented bullet body", got, "行首缩进保留，供后续按形状识别要点")
}

func TestNormalizeText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", NormalizeText(""))
	assert.Equal(t, "", NormalizeText("\n\n\n"))
}
