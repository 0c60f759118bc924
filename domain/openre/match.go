package openre

import (
	"autograph-openre/domain/depparse"
	"strings"
)

// 名词块首尾需要去掉的词
var junkTokens = map[string]struct{}{
	",": {}, ".": {}, ":": {}, "?": {}, "!": {}, ";": {},
	"'": {}, "\"": {}, "‘": {}, "’": {}, "“": {}, "”": {},
	"(": {}, ")": {}, "[": {}, "]": {}, "{": {}, "}": {},
	"i.e.": {},
}

func isJunk(text string) bool {
	_, ok := junkTokens[text]
	return ok
}

/*
chunkText 去掉区间首尾的标点等无意义词后返回文本，全部是无意义词时返回空串。
*/
func chunkText(tree *depparse.Tree, span Span) string {
	start, end := span.Start, span.End
	for start < end && isJunk(tree.Tokens[start].Text) {
		start++
	}
	for end > start && isJunk(tree.Tokens[end-1].Text) {
		end--
	}
	return tree.Text(start, end)
}

/*
negation 收集 Tokens[i] 左侧的否定词，n't 还原为 not。
*/
func negation(tree *depparse.Tree, i int) string {
	var words []string
	for _, j := range tree.Lefts(i) {
		if tree.Tokens[j].Dep != depparse.DepNeg {
			continue
		}

		word := tree.Tokens[j].Text
		if word == "n't" {
			word = "not"
		}
		words = append(words, word)
	}
	return strings.Join(words, " ")
}

func withNegation(tree *depparse.Tree, verb int, relation string) string {
	if neg := negation(tree, verb); len(neg) != 0 {
		return neg + " " + relation
	}
	return relation
}

/*
validate 检查候选三元组：head 与 tail 各恰好包含一个占位符且指向不同的提及，relation 不含占位符。
通过时把占位符还原为实体名。
*/
func validate(head, relation, tail string, mentions []Mention) (Triplet, bool) {
	headMatches := FindPlaceholders(head)
	relationMatches := FindPlaceholders(relation)
	tailMatches := FindPlaceholders(tail)

	if len(headMatches) != 1 || len(relationMatches) != 0 || len(tailMatches) != 1 {
		return Triplet{}, false
	}

	h := headMatches[0]
	t := tailMatches[0]
	if !h.Valid || !t.Valid || h.Placeholder == t.Placeholder {
		return Triplet{}, false
	}

	hi, ti := int(h.Placeholder), int(t.Placeholder)
	if hi >= len(mentions) || ti >= len(mentions) {
		return Triplet{}, false
	}

	perfect := head == h.Placeholder.String() && tail == t.Placeholder.String()

	return Triplet{
		HeadMention: hi,
		TailMention: ti,
		Triplet: [3]string{
			head[:h.Begin] + mentions[hi].Name + head[h.End:],
			relation,
			tail[:t.Begin] + mentions[ti].Name + tail[t.End:],
		},
		PerfectMatch: perfect,
	}, true
}

/*
Match 在分组结果上应用主动句和带介词的被动句两种模式。
*/
func Match(parsed *depparse.Parsed, buckets *Buckets, mentions []Mention) []Triplet {
	tree := parsed.Tree
	var ret []Triplet

	emit := func(subject, object Span, relation string) {
		head := chunkText(tree, subject)
		tail := chunkText(tree, object)

		triplet, ok := validate(head, relation, tail, mentions)
		if ok {
			ret = append(ret, triplet)
		}
	}

	for _, h := range buckets.Heads() {
		// 主动句：subject --verb--> object
		subjects := buckets.Spans(h, depparse.DepNsubj)
		objects := buckets.Spans(h, depparse.DepDobj)
		if len(subjects) != 0 && len(objects) != 0 {
			relation := withNegation(tree, h, tree.Tokens[h].Text)
			for _, subject := range subjects {
				for _, object := range objects {
					emit(subject, object, relation)
				}
			}
		}

		// 被动句：subject is verb-ed prep object
		pobjs := buckets.Spans(h, depparse.DepPobj)
		if len(pobjs) == 0 || tree.Tokens[h].Dep != depparse.DepPrep {
			continue
		}

		v := tree.Tokens[h].Head
		if v == h || !buckets.Has(v) {
			continue
		}

		passiveSubjects := buckets.Spans(v, depparse.DepNsubjPass)
		if len(passiveSubjects) == 0 {
			continue
		}

		relation := withNegation(tree, v, tree.Tokens[v].Text+" "+tree.Tokens[h].Text)
		for _, subject := range passiveSubjects {
			for _, object := range pobjs {
				emit(subject, object, relation)
			}
		}
	}

	return ret
}
