package extraction

import (
	"autograph-openre/domain/normalize"
	"autograph-openre/domain/openre"
	"autograph-openre/repository/corpus"
	"autograph-openre/utils"
)

/*
ResourcePaths 是规范化步骤需要的词表文件。

	VocabCSV、VocabLines 拆分词合并使用的词表，两者合并；
	VerbCSV 连字符动词合并使用的动词表。
*/
type ResourcePaths struct {
	VocabCSV   string
	VocabLines string
	VerbCSV    string
}

/*
LoadResources 只读取 profile 启用的步骤需要的文件。
*/
func LoadResources(profile normalize.Profile, paths *ResourcePaths) (*normalize.Resources, error) {
	ret := normalize.Resources{
		Placeholder: openre.PlaceholderPattern,
	}

	if profile.SplitWordMerge {
		csvWords, err := corpus.ReadWordCSV(paths.VocabCSV, false)
		if err != nil {
			return nil, utils.WrapErrorf(err, "load vocabulary [%s] fail", paths.VocabCSV)
		}

		lineWords, err := corpus.ReadLines(paths.VocabLines)
		if err != nil {
			return nil, utils.WrapErrorf(err, "load vocabulary [%s] fail", paths.VocabLines)
		}

		ret.Vocabulary = normalize.NewVocabulary(csvWords, lineWords)
	}

	if profile.HyphenatedVerbMerge {
		// 动词表第一行是表头
		verbs, err := corpus.ReadWordCSV(paths.VerbCSV, true)
		if err != nil {
			return nil, utils.WrapErrorf(err, "load verb list [%s] fail", paths.VerbCSV)
		}

		ret.Verbs = normalize.NewVocabulary(verbs)
	}

	return &ret, nil
}
