package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
Pass 是一次句法分析前的文本改写。同一个 Pass 对自己的输出再执行一次不会产生变化，
并且不会改动实体占位符。
*/
type Pass interface {
	Name() string
	Apply(text string) string
}

type Pipeline []Pass

func (p Pipeline) Apply(text string) string {
	for _, pass := range p {
		text = pass.Apply(text)
	}
	return text
}

func (p Pipeline) Names() []string {
	ret := make([]string, len(p))
	for i, pass := range p {
		ret[i] = pass.Name()
	}
	return ret
}

/*
replaceSubmatchFunc 与 regexp.ReplaceAllStringFunc 相同，但回调可以拿到分组。
*/
func replaceSubmatchFunc(re *regexp.Regexp, text string, fn func(text string, loc []int) string) string {
	locs := re.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	b := strings.Builder{}
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		b.WriteString(fn(text, loc))
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

/*
touchesDigit 判断 text[begin:end] 两侧是否紧挨着数字。占位符由字母和数字组成，
紧挨数字的字母串一定是占位符的一部分。
*/
func touchesDigit(text string, begin, end int) bool {
	if begin > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:begin])
		if unicode.IsDigit(r) {
			return true
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

/*
untilStable 重复执行 step 直到文本不再变化。合并只会删除字符，因此一定会结束。
*/
func untilStable(text string, step func(string) string) string {
	for {
		next := step(text)
		if next == text {
			return text
		}
		text = next
	}
}

func groups(text string, loc []int) []string {
	var ret []string
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] < 0 {
			continue
		}
		ret = append(ret, text[loc[i]:loc[i+1]])
	}
	return ret
}

////////////// 拆分词合并 //////////////

const minMergedWordLength = 5

// 依次尝试，第一个改变了句子的模式生效，然后从头再试，直到句子不再变化
var splitWordPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\p{L}+)-(\p{L}+)`),             // in-fluence
	regexp.MustCompile(`(\p{L}+)\s-\s(\p{L}+)`),         // in - fluence
	regexp.MustCompile(`(\p{L}+)\s(\p{L}+)`),            // in fluence
	regexp.MustCompile(`(\p{L}+)\s(\p{L}+)\s(\p{L}+)`), // in flu ence
}

type splitWordMerge struct {
	vocabulary Vocabulary
}

/*
SplitWordMerge 合并被连字符或空格错误拆开的词：合并结果至少 5 个字符且在词表中，
并且各部分不全是词表中的词。
*/
func SplitWordMerge(vocabulary Vocabulary) Pass {
	return &splitWordMerge{vocabulary: vocabulary}
}

func (p *splitWordMerge) Name() string {
	return "split-word-merge"
}

func (p *splitWordMerge) merge(text string, loc []int) string {
	raw := text[loc[0]:loc[1]]
	if touchesDigit(text, loc[0], loc[1]) {
		return raw
	}

	terms := groups(text, loc)

	allWords := true
	for _, term := range terms {
		if !p.vocabulary.Contains(term) {
			allWords = false
			break
		}
	}
	if allWords {
		return raw
	}

	word := strings.Join(terms, "")
	if utf8.RuneCountInString(word) >= minMergedWordLength && p.vocabulary.Contains(word) {
		return word
	}
	return raw
}

func (p *splitWordMerge) step(text string) string {
	for _, pattern := range splitWordPatterns {
		merged := replaceSubmatchFunc(pattern, text, p.merge)
		if merged != text {
			return merged
		}
	}
	return text
}

func (p *splitWordMerge) Apply(text string) string {
	return untilStable(text, p.step)
}

////////////// 连字符动词合并 //////////////

var hyphenatedVerbPattern = regexp.MustCompile(`(\S+)\s*-\s*(\S+)`)

type hyphenatedVerbMerge struct {
	verbs       Vocabulary
	placeholder *regexp.Regexp
}

/*
HyphenatedVerbMerge 把 "up - regulates"、"up-regulates" 合并为动词表中的 "upregulates"。
placeholder 匹配实体占位符，包含占位符的部分不参与合并。
*/
func HyphenatedVerbMerge(verbs Vocabulary, placeholder *regexp.Regexp) Pass {
	return &hyphenatedVerbMerge{
		verbs:       verbs,
		placeholder: placeholder,
	}
}

func (p *hyphenatedVerbMerge) Name() string {
	return "hyphenated-verb-merge"
}

func (p *hyphenatedVerbMerge) merge(text string, loc []int) string {
	raw := text[loc[0]:loc[1]]
	if p.placeholder != nil && p.placeholder.MatchString(raw) {
		return raw
	}

	term := text[loc[2]:loc[3]] + text[loc[4]:loc[5]]
	if p.verbs.Contains(term) {
		return term
	}
	return raw
}

func (p *hyphenatedVerbMerge) step(text string) string {
	return replaceSubmatchFunc(hyphenatedVerbPattern, text, p.merge)
}

func (p *hyphenatedVerbMerge) Apply(text string) string {
	return untilStable(text, p.step)
}

////////////// 缩写规范化 //////////////

var abbreviationPattern = regexp.MustCompile(`i\s*[.]\s*e\s*[.]\s*,`)

const canonicalAbbreviation = "i.e."

type abbreviationCanonicalize struct{}

/*
AbbreviationCanonicalize 把 "i. e.,"、"i.e.," 等写法统一为 "i.e."，便于切词时成为一个词。
*/
func AbbreviationCanonicalize() Pass {
	return abbreviationCanonicalize{}
}

func (abbreviationCanonicalize) Name() string {
	return "abbreviation-canonicalize"
}

func (abbreviationCanonicalize) Apply(text string) string {
	return abbreviationPattern.ReplaceAllString(text, canonicalAbbreviation)
}
