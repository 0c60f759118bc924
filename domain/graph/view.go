package graph

import (
	"errors"
	"strings"
)

var ErrEntityNotFound = errors.New("entity not found")

const defaultColor = "#dddddd"

// 各实体类型在图中的颜色
var typeColors = map[string]string{
	"GeneID":     "#d5abff",
	"Gene":       "#d5abff",
	"CommonName": "#abffff",
	"Chemical":   "#d5ffab",
	"Compound":   "#d5ffab",
	"Species":    "#ffffab",
	"Location":   "#ffd5ab",
	"Process":    "#ffabab",
	"Disease":    "#ffabab",
}

func ColorOf(typ string) string {
	if color, ok := typeColors[typ]; ok {
		return color
	}
	return defaultColor
}

type Node struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type Edge struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Width int    `json:"width,omitempty"`
	Label string `json:"label"`
}

/*
View 是以某个实体为中心的子图。

	NodeList 中 id 为负数的节点是图例，每个出现过的实体类型一个；
	EdgeList 中每对节点只有一条边，Width 为三元组数量，Label 为完全匹配的三元组的关系文本。
*/
type View struct {
	NodeList []Node `json:"node_list"`
	EdgeList []Edge `json:"edge_list"`
}

type nodePair struct {
	from int
	to   int
}

type viewBuilder struct {
	focusType string

	nodes     []Node
	nodeIDs   map[string]int
	pairs     []nodePair
	pairWidth map[nodePair]int
	pairLabel map[nodePair][]string
	legend    map[string]struct{}
}

func (b *viewBuilder) node(name, typ string) int {
	if id, ok := b.nodeIDs[name]; ok {
		return id
	}

	id := len(b.nodes)
	b.nodeIDs[name] = id
	b.nodes = append(b.nodes, Node{ID: id, Label: name, Color: ColorOf(typ)})
	b.legend[typ] = struct{}{}
	return id
}

func (b *viewBuilder) edge(from, to int, label string) {
	pair := nodePair{from: from, to: to}
	if _, ok := b.pairWidth[pair]; !ok {
		b.pairs = append(b.pairs, pair)
	}

	b.pairWidth[pair]++
	if len(label) != 0 {
		b.pairLabel[pair] = append(b.pairLabel[pair], label)
	}
}

/*
direction 决定边的方向：从中心类型的实体指向其它实体；两端类型相同时从编号小的指向编号大的。
*/
func (b *viewBuilder) direction(relation *Relation, head, tail int) (int, int) {
	headFocus := relation.HeadType == b.focusType
	tailFocus := relation.TailType == b.focusType

	switch {
	case headFocus && tailFocus:
		if head > tail {
			return tail, head
		}
		return head, tail
	case headFocus:
		return head, tail
	default:
		return tail, head
	}
}

func (b *viewBuilder) add(relation *Relation) {
	head := b.node(relation.HeadEntity, relation.HeadType)
	tail := b.node(relation.TailEntity, relation.TailType)
	from, to := b.direction(relation, head, tail)

	label := ""
	if relation.Simple {
		label = relation.Relation
	}
	b.edge(from, to, label)
}

func (b *viewBuilder) view() *View {
	ret := &View{
		NodeList: make([]Node, 0, len(b.legend)+len(b.nodes)),
		EdgeList: make([]Edge, 0, len(b.pairs)),
	}

	legendID := -1
	for _, typ := range sortedKeys(b.legend) {
		ret.NodeList = append(ret.NodeList, Node{ID: legendID, Label: typ, Color: ColorOf(typ)})
		legendID--
	}
	ret.NodeList = append(ret.NodeList, b.nodes...)

	for _, pair := range b.pairs {
		ret.EdgeList = append(ret.EdgeList, Edge{
			From:  pair.from,
			To:    pair.to,
			Width: b.pairWidth[pair],
			Label: strings.Join(b.pairLabel[pair], "\n"),
		})
	}
	return ret
}

/*
BuildView 以 entity 为中心生成子图，entity 的编号为 0。
*/
func BuildView(idx *Index, entity string) (*View, error) {
	typ, ok := idx.TypeOf(entity)
	if !ok {
		return nil, ErrEntityNotFound
	}

	b := viewBuilder{
		focusType: typ,
		nodeIDs:   make(map[string]int),
		pairWidth: make(map[nodePair]int),
		pairLabel: make(map[nodePair][]string),
		legend:    make(map[string]struct{}),
	}
	b.node(entity, typ)

	relations := idx.Relations(entity, typ)
	for i := range relations {
		b.add(&relations[i])
	}

	return b.view(), nil
}
