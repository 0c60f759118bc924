package openre

import (
	"autograph-openre/domain/depparse"
	"regexp"
	"strconv"
	"strings"
)

const (
	placeholderPrefix = "ENT"
	placeholderSuffix = "ITY"
)

/*
PlaceholderPattern 匹配占位符字面量，同时作为句法分析服务的专有名词标注规则。
*/
var PlaceholderPattern = regexp.MustCompile(placeholderPrefix + `\d+` + placeholderSuffix)

/*
Placeholder 是替换一个实体提及的保留词，携带该提及在 mention_list 中的序号。
String 与 ParsePlaceholder 互为逆运算。
*/
type Placeholder int

func (p Placeholder) String() string {
	return placeholderPrefix + strconv.Itoa(int(p)) + placeholderSuffix
}

/*
ParsePlaceholder 解析一个完整的占位符字面量，只接受 String 能产生的形式（没有前导零）。
*/
func ParsePlaceholder(literal string) (Placeholder, bool) {
	if !strings.HasPrefix(literal, placeholderPrefix) || !strings.HasSuffix(literal, placeholderSuffix) {
		return 0, false
	}

	digits := literal[len(placeholderPrefix) : len(literal)-len(placeholderSuffix)]
	if len(digits) == 0 || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}
	for _, ch := range digits {
		if ch < '0' || ch > '9' {
			return 0, false
		}
	}

	ordinal, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}

	return Placeholder(ordinal), true
}

/*
PlaceholderMatch 是文本中出现的一个占位符，Begin、End 为字节下标。
像 ENT01ITY 这样能被 PlaceholderPattern 匹配、但不是 String 产生的字面量 Valid 为 false。
*/
type PlaceholderMatch struct {
	Placeholder Placeholder
	Begin       int
	End         int
	Valid       bool
}

/*
FindPlaceholders 返回 PlaceholderPattern 的全部匹配，不合法的字面量同样计入。
*/
func FindPlaceholders(text string) []PlaceholderMatch {
	locs := PlaceholderPattern.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	ret := make([]PlaceholderMatch, len(locs))
	for i, loc := range locs {
		p, ok := ParsePlaceholder(text[loc[0]:loc[1]])
		ret[i] = PlaceholderMatch{
			Placeholder: p,
			Begin:       loc[0],
			End:         loc[1],
			Valid:       ok,
		}
	}
	return ret
}

func ContainsPlaceholder(text string) bool {
	return len(FindPlaceholders(text)) != 0
}

/*
PlaceholderTagRule 让句法分析服务把占位符标注为专有名词。
*/
func PlaceholderTagRule() depparse.TagRule {
	return depparse.TagRule{
		Pattern: PlaceholderPattern.String(),
		Tag:     depparse.TagProperNoun,
		POS:     depparse.POSProperNoun,
	}
}
