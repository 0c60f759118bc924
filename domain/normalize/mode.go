package normalize

import (
	"autograph-openre/utils"
	"errors"
	"regexp"
	"sort"
)

type Mode string

const (
	ModeGeneric                  Mode = "generic"
	ModeBaseline                 Mode = "baseline"
	ModeMergeSplitWords          Mode = "merge-split-words"
	ModeCanonicalizeAbbreviation Mode = "canonicalize-abbreviation"
	ModeChunkOfChunkMerge        Mode = "chunk-of-chunk-merge"
	ModeAllCombined              Mode = "all-combined"
)

var (
	ErrUnknownMode       = errors.New("unknown extraction mode")
	ErrMissingVocabulary = errors.New("vocabulary required by split-word merge is missing")
	ErrMissingVerbList   = errors.New("verb list required by hyphenated-verb merge is missing")
)

/*
Profile 描述一个模式启用的步骤。SplitWordMerge 与 HyphenatedVerbMerge 互斥。
*/
type Profile struct {
	SplitWordMerge           bool
	HyphenatedVerbMerge      bool
	AbbreviationCanonicalize bool
	ChunkMerge               bool
}

var profiles = map[Mode]Profile{
	ModeGeneric:                  {},
	ModeBaseline:                 {HyphenatedVerbMerge: true},
	ModeMergeSplitWords:          {SplitWordMerge: true},
	ModeCanonicalizeAbbreviation: {HyphenatedVerbMerge: true, AbbreviationCanonicalize: true},
	ModeChunkOfChunkMerge:        {HyphenatedVerbMerge: true, ChunkMerge: true},
	ModeAllCombined:              {SplitWordMerge: true, AbbreviationCanonicalize: true, ChunkMerge: true},
}

func Modes() []Mode {
	ret := make([]Mode, 0, len(profiles))
	for mode := range profiles {
		ret = append(ret, mode)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

func ParseMode(name string) (Mode, error) {
	mode := Mode(name)
	if _, ok := profiles[mode]; !ok {
		return "", utils.WrapErrorf(ErrUnknownMode, "%#v", name)
	}
	return mode, nil
}

func (m Mode) Profile() Profile {
	return profiles[m]
}

/*
Resources 是规范化步骤需要的外部数据。Placeholder 匹配实体占位符。
*/
type Resources struct {
	Vocabulary  Vocabulary
	Verbs       Vocabulary
	Placeholder *regexp.Regexp
}

/*
NewPipeline 按固定顺序组装 profile 启用的步骤：拆分词合并或连字符动词合并，然后是缩写规范化。
*/
func NewPipeline(profile Profile, res *Resources) (Pipeline, error) {
	var ret Pipeline

	switch {
	case profile.SplitWordMerge:
		if len(res.Vocabulary) == 0 {
			return nil, ErrMissingVocabulary
		}
		ret = append(ret, SplitWordMerge(res.Vocabulary))
	case profile.HyphenatedVerbMerge:
		if len(res.Verbs) == 0 {
			return nil, ErrMissingVerbList
		}
		ret = append(ret, HyphenatedVerbMerge(res.Verbs, res.Placeholder))
	}

	if profile.AbbreviationCanonicalize {
		ret = append(ret, AbbreviationCanonicalize())
	}

	return ret, nil
}
