package normalize

/*
Vocabulary 是一个词集合，大小写敏感。
*/
type Vocabulary map[string]struct{}

func NewVocabulary(words ...[]string) Vocabulary {
	ret := make(Vocabulary)
	for _, list := range words {
		for _, word := range list {
			ret[word] = struct{}{}
		}
	}
	return ret
}

func (v Vocabulary) Contains(word string) bool {
	_, ok := v[word]
	return ok
}
