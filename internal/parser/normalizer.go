package parser

import (
	"strings"
	"unicode"
)

// bulletGlyphs 各类文档提取产物中的项目符号变体，统一为标准符号"•"
var bulletGlyphs = map[rune]bool{
	'●': true, // ●
	'○': true, // ○
	'▪': true, // ▪
	'▫': true, // ▫
	'◦': true, // ◦
	'‣': true, // ‣
	'∙': true, // ∙
	'·': true, // ·
	'♦': true, // ♦
	'➤': true, // ➤
	'►': true, // ►
	'▶': true, // ▶
}

// zeroWidthRunes 零宽字符、BOM与软连字符，直接删除
var zeroWidthRunes = map[rune]bool{
	'\u200b': true, // zero width space
	'\u200c': true, // zero width non-joiner
	'\u200d': true, // zero width joiner
	'\ufeff': true, // BOM
	'\u00ad': true, // soft hyphen
}

// NormalizeText 清理文档提取产物：统一换行、删除控制字符与零宽字符、
// NBSP转空格、项目符号变体统一、压缩行内空白、压缩连续空行。
// 行首缩进保留，后续按行形状识别项目符号依赖它。
// 总函数：任何输入都返回字符串，可能为空。对自身输出幂等。
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blankRun := 0

	for _, line := range lines {
		normalized := normalizeLine(line)
		if strings.TrimSpace(normalized) == "" {
			blankRun++
			// 连续空行压缩为一个，且不以空行开头
			if blankRun == 1 && len(out) > 0 {
				out = append(out, "")
			}
			continue
		}
		blankRun = 0
		out = append(out, normalized)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

// normalizeLine 单行清理：行首缩进保留（制表符换算为两个空格），
// 行首"*"视作项目符号，行内空白压缩为单个空格，尾部空白去除
func normalizeLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	rest := line
	for len(rest) > 0 {
		switch rest[0] {
		case ' ':
			b.WriteByte(' ')
			rest = rest[1:]
			continue
		case '\t':
			b.WriteString("  ")
			rest = rest[1:]
			continue
		}
		break
	}

	inSpace := false
	atStart := true
	for _, r := range rest {
		switch {
		case zeroWidthRunes[r]:
			continue
		case r == '\u00a0' || r == '\t': // NBSP
			r = ' '
		case bulletGlyphs[r]:
			r = '•'
		case r == '*' && atStart:
			r = '•'
		case unicode.IsControl(r):
			continue
		}

		if r == ' ' {
			if inSpace || atStart {
				continue
			}
			inSpace = true
		} else {
			inSpace = false
			atStart = false
		}
		b.WriteRune(r)
	}

	return strings.TrimRight(b.String(), " ")
}
