package graph

import (
	"errors"
	"sort"
)

func sortedKeys(set map[string]struct{}) []string {
	ret := make([]string, 0, len(set))
	for key := range set {
		ret = append(ret, key)
	}
	sort.Strings(ret)
	return ret
}

var (
	ErrNoDatabase = errors.New("metadata database is not configured")
	ErrNoNeo4j    = errors.New("neo4j is not configured")
)
