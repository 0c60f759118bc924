package graph

import (
	"autograph-openre/utils"
	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
)

const neo4jBatchSize = 1000

// 实体按 (name, type) 合并，每个三元组一条边
const loadRelationCypher = `
	unwind $rows as row
	merge (h:Entity{name: row.head_entity, type: row.head_type})
	merge (t:Entity{name: row.tail_entity, type: row.tail_type})
	create (h)-[r:Relation{
		run: $run,
		name: row.relation,
		head: row.head,
		tail: row.tail,
		simple: row.simple,
		pmid: row.pmid,
		sentence: row.sentence
	}]->(t)
`

const deleteRunCypher = `
	match ()-[r:Relation{run: $run}]->()
	delete r
`

/*
Executor 执行一条 cypher，neograph.Execute 即为一个实现。
*/
type Executor func(cypher string, params map[string]interface{}) ([]*neo4j.Record, error)

func neo4jRows(relations []Relation) []interface{} {
	rows := make([]interface{}, len(relations))
	for i := range relations {
		r := &relations[i]
		rows[i] = map[string]interface{}{
			"head":        r.Head,
			"relation":    r.Relation,
			"tail":        r.Tail,
			"head_entity": r.HeadEntity,
			"head_type":   r.HeadType,
			"tail_entity": r.TailEntity,
			"tail_type":   r.TailType,
			"simple":      r.Simple,
			"pmid":        r.DocID,
			"sentence":    r.Sentence,
		}
	}
	return rows
}

/*
LoadToNeo4j 把一次运行的三元组写入 neo4j，先删除该运行已有的边，因此可以重复执行。
*/
func LoadToNeo4j(execute Executor, run string, relations []Relation) error {
	if _, err := execute(deleteRunCypher, map[string]interface{}{"run": run}); err != nil {
		return utils.WrapErrorf(err, "delete relations of run [%s] fail", run)
	}

	for start := 0; start < len(relations); start += neo4jBatchSize {
		end := start + neo4jBatchSize
		if end > len(relations) {
			end = len(relations)
		}

		_, err := execute(loadRelationCypher, map[string]interface{}{
			"run":  run,
			"rows": neo4jRows(relations[start:end]),
		})
		if err != nil {
			return utils.WrapErrorf(err, "load relations [%d, %d) of run [%s] fail", start, end, run)
		}
	}

	return nil
}
