package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var treebankStartingQuotes = []rewrite{
	rule("([«“‘„]|[`]+)", " ${1} "),
	rule(`^"`, "``"),
	rule("(``)", " ${1} "),
	rule(`([ (\[{<])("|'')`, "${1} `` "),
}

var treebankPunctuation = []rewrite{
	rule(`([^.])(\.)([\])}>"'»”’ ]*)\s*$`, "${1} ${2} ${3} "),
	rule(`([:,])([^\d])`, " ${1} ${2}"),
	rule(`([:,])$`, " ${1} "),
	rule(`\.{2,}`, " ${0} "),
	rule(`[;@#$%&]`, " ${0} "),
	rule(`([^.])(\.)([\])}>"']*)\s*$`, "${1} ${2}${3} "),
	rule(`[?!]`, " ${0} "),
	rule(`([^'])' `, "${1} ' "),
	rule(`[*]`, " ${0} "),
	rule(`[\]\[(){}<>]`, " ${0} "),
	rule(`--`, " -- "),
}

var treebankEndingQuotes = []rewrite{
	rule("([»”’])", " ${1} "),
	rule(`''`, " '' "),
	rule(`"`, " '' "),
	rule(`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} "),
	rule(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} "),
}

var treebankContractions = []rewrite{
	rule(`(?i)\b(can)(not)\b`, " ${1} ${2} "),
	rule(`(?i)\b(d)('ye)\b`, " ${1} ${2} "),
	rule(`(?i)\b(gim)(me)\b`, " ${1} ${2} "),
	rule(`(?i)\b(gon)(na)\b`, " ${1} ${2} "),
	rule(`(?i)\b(got)(ta)\b`, " ${1} ${2} "),
	rule(`(?i)\b(lem)(me)\b`, " ${1} ${2} "),
	rule(`(?i)\b(more)('n)\b`, " ${1} ${2} "),
	rule(`(?i)\b(wan)(na)\s`, " ${1} ${2} "),
	rule(`(?i) ('t)(is)\b`, " ${1} ${2} "),
	rule(`(?i) ('t)(was)\b`, " ${1} ${2} "),
}

var (
	quotedLetterPattern   = regexp.MustCompile(`'[\p{L}\p{N}_]`)
	originalQuotesPattern = regexp.MustCompile("``|''|\"")
)

func applyRules(text string, rules []rewrite) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

/*
splitQuotedLetter 把 'x 形式的单字母词拆成 ' 和 x，'m 't 's 'd 'n 这些缩写除外。
*/
func splitQuotedLetter(text string) string {
	locs := quotedLetterPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	b := strings.Builder{}
	last := 0
	for _, loc := range locs {
		letter, _ := utf8.DecodeRuneInString(text[loc[0]+1:])
		next, _ := utf8.DecodeRuneInString(text[loc[1]:])
		if loc[1] < len(text) && isWordRune(next) {
			continue
		}
		if strings.ContainsRune("mtsdnMTSDN", letter) {
			continue
		}

		b.WriteString(text[last:loc[0]])
		b.WriteString("' ")
		b.WriteString(text[loc[0]+1 : loc[1]])
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

/*
TreebankTokenizer 按 NLTK 的 Treebank 规则切词，与上游标注实体 pos 时使用的切词方式一致：
连字符词、带重音的词保持完整，"isn't" 切为 "is"、"n't"。
*/
type TreebankTokenizer struct{}

func (TreebankTokenizer) Tokenize(text string) []string {
	text = applyRules(text, treebankStartingQuotes)
	text = splitQuotedLetter(text)
	text = applyRules(text, treebankPunctuation)

	text = " " + text + " "
	text = applyRules(text, treebankEndingQuotes)
	text = applyRules(text, treebankContractions)

	return strings.Fields(text)
}

func (t TreebankTokenizer) SpanTokenize(text string) []Span {
	tokens := t.Tokenize(text)

	// 引号在切词时被改写成 `` 或 ''，按出现顺序换回原文中的写法
	if strings.Contains(text, `"`) || strings.Contains(text, "''") {
		quotes := originalQuotesPattern.FindAllString(text, -1)
		for i, token := range tokens {
			if len(quotes) == 0 {
				break
			}
			if token == `"` || token == "``" || token == "''" {
				tokens[i] = quotes[0]
				quotes = quotes[1:]
			}
		}
	}

	ret := make([]Span, 0, len(tokens))
	offset := 0
	for _, token := range tokens {
		begin := strings.Index(text[offset:], token)
		if begin < 0 {
			continue
		}

		begin += offset
		ret = append(ret, Span{
			Begin: begin,
			End:   begin + len(token),
		})
		offset = begin + len(token)
	}
	return ret
}
