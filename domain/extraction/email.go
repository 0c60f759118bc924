package extraction

import (
	"autograph-openre/domain/openre"
	"autograph-openre/utils"
	emailutils "autograph-openre/utils/email"
	"fmt"
	"html"
	"sort"
	"strings"
)

const runResultEmailHTMLTemplate = `
<h1>关系抽取完成</h1>
<p>运行名：%s</p>
<p>运行编号：%s</p>
<p>句子数量：%d，成功分析：%d，失败：%d</p>
<p>含有三元组的句子数量：%d</p>
<p>三元组数量：%d，其中完全匹配：%d</p>
<p>不重复实体数量：%d</p>
<p>不重复SPO三元组数量：%d</p>

<h2>实体列表</h2>
<p>%s</p>

<h2>SPO列表</h2>
<p>%s</p>

<p></p>
<p>更多信息请前往系统查看</p>
`

type spoCollection map[string]map[string]map[string]struct{}

func (s spoCollection) Add(head, tail, relation string) {
	tailRelEntry, exist := s[head]
	if !exist {
		tailRelEntry = make(map[string]map[string]struct{})
		s[head] = tailRelEntry
	}

	relSet, exist := tailRelEntry[tail]
	if !exist {
		relSet = make(map[string]struct{})
		tailRelEntry[tail] = relSet
	}

	relSet[relation] = struct{}{}
}

/*
Plain 按 head、tail、relation 的字典序列出全部三元组。
*/
func (s spoCollection) Plain() []string {
	ret := make([]string, 0)
	for _, head := range sortedKeys(s) {
		tailRelEntry := s[head]
		for _, tail := range sortedKeys(tailRelEntry) {
			for _, relation := range sortedKeys(tailRelEntry[tail]) {
				ret = append(ret, fmt.Sprintf("(%s)-[%s]->(%s)", head, relation, tail))
			}
		}
	}
	return ret
}

func sortedKeys[V any](m map[string]V) []string {
	ret := make([]string, 0, len(m))
	for key := range m {
		ret = append(ret, key)
	}
	sort.Strings(ret)
	return ret
}

/*
collectResult 统计实体名和完全匹配的三元组，实体按首次出现的顺序排列。
*/
func collectResult(records []*openre.Record) ([]string, spoCollection) {
	entitySet := make(map[string]struct{})
	entityList := make([]string, 0)
	spo := spoCollection{}

	for _, record := range records {
		for _, triplet := range record.TripletList {
			if !triplet.PerfectMatch {
				continue
			}

			for _, mention := range []int{triplet.HeadMention, triplet.TailMention} {
				name := record.MentionList[mention].Name
				if _, exist := entitySet[name]; !exist {
					entitySet[name] = struct{}{}
					entityList = append(entityList, name)
				}
			}
			spo.Add(triplet.Head(), triplet.Tail(), triplet.Relation())
		}
	}
	return entityList, spo
}

func escapeAll(list []string) []string {
	ret := make([]string, len(list))
	for i, item := range list {
		ret[i] = html.EscapeString(item)
	}
	return ret
}

func renderRunResultPage(name string, result *Result) string {
	entityList, spo := collectResult(result.Records)
	spoList := spo.Plain()
	stats := &result.Stats

	return fmt.Sprintf(runResultEmailHTMLTemplate,
		html.EscapeString(name), result.RunUUID,
		stats.Sentences, stats.Parsed, stats.Failed,
		stats.SentencesWithTriplets,
		stats.Triplets, stats.PerfectTriplets,
		len(entityList), len(spoList),
		strings.Join(escapeAll(entityList), "<br/>"),
		strings.Join(escapeAll(spoList), "<br/>"))
}

func sendRunResultEmail(email, name string, result *Result) error {
	err := emailutils.SendHtml(email, "【知识图谱管理系统】关系抽取完成", renderRunResultPage(name, result))
	if err != nil {
		return utils.WrapErrorf(err, "send email to [%s] fail", email)
	}

	return nil
}
