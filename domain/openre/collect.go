package openre

import (
	"autograph-openre/domain/depparse"
)

/*
Span 是候选名词块覆盖的词区间 [Start, End)。
*/
type Span struct {
	Start int
	End   int
}

type labelGroup struct {
	labels []string
	spans  map[string][]Span
}

/*
Buckets 按 (中心词, 依存关系) 对候选名词块分组，所有层级都保持插入顺序。
*/
type Buckets struct {
	heads  []int
	groups map[int]*labelGroup
}

func newBuckets() *Buckets {
	return &Buckets{
		groups: make(map[int]*labelGroup),
	}
}

func (b *Buckets) add(head int, label string, span Span) {
	group, ok := b.groups[head]
	if !ok {
		group = &labelGroup{spans: make(map[string][]Span)}
		b.groups[head] = group
		b.heads = append(b.heads, head)
	}

	if _, ok := group.spans[label]; !ok {
		group.labels = append(group.labels, label)
	}
	group.spans[label] = append(group.spans[label], span)
}

func (b *Buckets) Heads() []int {
	return b.heads
}

func (b *Buckets) Has(head int) bool {
	_, ok := b.groups[head]
	return ok
}

func (b *Buckets) Labels(head int) []string {
	group, ok := b.groups[head]
	if !ok {
		return nil
	}
	return group.labels
}

func (b *Buckets) Spans(head int, label string) []Span {
	group, ok := b.groups[head]
	if !ok {
		return nil
	}
	return group.spans[label]
}

/*
Collector 找出包含占位符的名词块，并按照它们在句法树中的位置分组。
*/
type Collector struct {
	ChunkMerge bool
}

/*
effectiveRoot 沿着 conj、appos 关系向上找到名词块真正占据的句法位置。
*/
func effectiveRoot(tree *depparse.Tree, token int) int {
	for steps := 0; steps < len(tree.Tokens); steps++ {
		dep := tree.Tokens[token].Dep
		if dep != depparse.DepConj && dep != depparse.DepAppos {
			break
		}
		token = tree.Tokens[token].Head
	}
	return token
}

/*
insert 把 span 放入其有效中心词对应的分组，有效中心词为句子的根时丢弃并返回 false。
*/
func (c *Collector) insert(buckets *Buckets, tree *depparse.Tree, root int, span Span) bool {
	root = effectiveRoot(tree, root)
	if tree.IsRoot(root) {
		return false
	}

	token := tree.Tokens[root]
	buckets.add(token.Head, token.Dep, span)
	return true
}

/*
mergeOf 处理 "A of B"：B 的中心词通过介词 of 挂在名词块 A 的中心词上时，返回 A 以及合并后的区间。
*/
func (c *Collector) mergeOf(parsed *depparse.Parsed, chunk depparse.Chunk) (depparse.Chunk, Span, bool) {
	tokens := parsed.Tokens

	if tokens[chunk.Root].Dep != depparse.DepPobj {
		return depparse.Chunk{}, Span{}, false
	}

	of := tokens[chunk.Root].Head
	if tokens[of].Text != "of" || tokens[of].POS != depparse.POSAdposition || tokens[of].Dep != depparse.DepPrep {
		return depparse.Chunk{}, Span{}, false
	}

	headChunk, ok := parsed.ChunkOfRoot(tokens[of].Head)
	if !ok {
		return depparse.Chunk{}, Span{}, false
	}

	return headChunk, Span{Start: headChunk.Start, End: chunk.End}, true
}

func (c *Collector) Collect(parsed *depparse.Parsed) *Buckets {
	buckets := newBuckets()

	for _, chunk := range parsed.Chunks {
		if !ContainsPlaceholder(parsed.Text(chunk.Start, chunk.End)) {
			continue
		}

		if !c.insert(buckets, parsed.Tree, chunk.Root, Span{Start: chunk.Start, End: chunk.End}) {
			continue
		}

		if !c.ChunkMerge {
			continue
		}

		headChunk, merged, ok := c.mergeOf(parsed, chunk)
		if !ok {
			continue
		}
		c.insert(buckets, parsed.Tree, headChunk.Root, merged)
	}

	return buckets
}
