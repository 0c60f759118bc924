package tokenize

import (
	"regexp"
	"strings"
)

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func rule(pattern, replacement string) rewrite {
	return rewrite{
		pattern:     regexp.MustCompile(pattern),
		replacement: replacement,
	}
}

// 与 Penn Treebank 切词规则相反的一组改写，按顺序执行
var treebankRules = []rewrite{
	// 缩写
	rule(`(?i)\b(can)\s(not)\b`, "${1}${2}"),
	rule(`(?i)\b(gon|got|wan)\s(na|ta)\b`, "${1}${2}"),
	rule(`([^' ])\s('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1}${2} "),
	rule(`([^' ])\s('[sS]|'[mM]|'[dD]|') `, "${1}${2} "),

	// 结束引号
	rule(`(\S)\s('')`, "${1}${2}"),
	rule(`('')\s([.,:)\]>};%])`, "${1}${2}"),
	rule(`''`, `"`),

	// 括号
	rule(`([\[({<])\s`, "${1}"),
	rule(`\s([\])}>])`, "${1}"),
	rule(`([\])}>])\s([:;,.])`, "${1}${2}"),

	// 标点
	rule(`([^'])\s'\s`, "${1}' "),
	rule(`\s([?!])`, "${1}"),
	rule(`([^.])\s(\.)([\])}>"']*)\s*$`, "${1}${2}${3}"),
	rule(`([#$])\s`, "${1}"),
	rule(`\s([;%])`, "${1}"),
	rule(`\s\.\.\.\s`, "..."),
	rule(`\s([:,])`, "${1}"),

	// 开始引号
	rule(`([ (\[{<])\s`+"``", "${1}``"),
	rule("(``)\\s", "${1}"),
	rule("``", `"`),
}

/*
TreebankDetokenizer 把 Treebank 风格的词序列还原为可读文本。
*/
type TreebankDetokenizer struct{}

func (TreebankDetokenizer) Detokenize(tokens []string) string {
	text := " " + strings.Join(tokens, " ") + " "

	for _, r := range treebankRules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}

	return strings.TrimSpace(text)
}
