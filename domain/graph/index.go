package graph

import (
	"sort"
	"sync"
)

type typedEntity struct {
	name string
	typ  string
}

/*
Index 按实体索引三元组，供可视化接口查询。可以并发读写。
*/
type Index struct {
	lock sync.RWMutex

	relations    []Relation
	byEntity     map[typedEntity][]int
	typeOfEntity map[string]string
	entityByType map[string]map[string]struct{}
}

func NewIndex(relations []Relation) *Index {
	ret := &Index{
		byEntity:     make(map[typedEntity][]int),
		typeOfEntity: make(map[string]string),
		entityByType: make(map[string]map[string]struct{}),
	}
	ret.Add(relations)
	return ret
}

func (idx *Index) addEntity(name, typ string, relation int) {
	key := typedEntity{name: name, typ: typ}
	idx.byEntity[key] = append(idx.byEntity[key], relation)

	if _, ok := idx.typeOfEntity[name]; !ok {
		idx.typeOfEntity[name] = typ
	}

	names, ok := idx.entityByType[typ]
	if !ok {
		names = make(map[string]struct{})
		idx.entityByType[typ] = names
	}
	names[name] = struct{}{}
}

func (idx *Index) Add(relations []Relation) {
	idx.lock.Lock()
	defer idx.lock.Unlock()

	for _, relation := range relations {
		i := len(idx.relations)
		idx.relations = append(idx.relations, relation)

		idx.addEntity(relation.HeadEntity, relation.HeadType, i)
		if relation.TailEntity != relation.HeadEntity || relation.TailType != relation.HeadType {
			idx.addEntity(relation.TailEntity, relation.TailType, i)
		}
	}
}

func (idx *Index) Len() int {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	return len(idx.relations)
}

/*
Types 返回出现过的实体类型，按字典序排列。
*/
func (idx *Index) Types() []string {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	ret := make([]string, 0, len(idx.entityByType))
	for typ := range idx.entityByType {
		ret = append(ret, typ)
	}
	sort.Strings(ret)
	return ret
}

/*
Entities 返回某个类型的全部实体名，按字典序排列。
*/
func (idx *Index) Entities(typ string) []string {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	names := idx.entityByType[typ]
	ret := make([]string, 0, len(names))
	for name := range names {
		ret = append(ret, name)
	}
	sort.Strings(ret)
	return ret
}

/*
TypeOf 返回实体第一次出现时的类型。
*/
func (idx *Index) TypeOf(name string) (string, bool) {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	typ, ok := idx.typeOfEntity[name]
	return typ, ok
}

/*
Relations 返回以 (name, typ) 为头或尾的三元组，保持加入的顺序。
*/
func (idx *Index) Relations(name, typ string) []Relation {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	ids := idx.byEntity[typedEntity{name: name, typ: typ}]
	ret := make([]Relation, len(ids))
	for i, id := range ids {
		ret[i] = idx.relations[id]
	}
	return ret
}

func (idx *Index) All() []Relation {
	idx.lock.RLock()
	defer idx.lock.RUnlock()

	ret := make([]Relation, len(idx.relations))
	copy(ret, idx.relations)
	return ret
}
