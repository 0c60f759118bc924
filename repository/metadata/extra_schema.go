package metadata

import (
	"database/sql"
	"encoding/json"
)

func toJSON(schema interface{}) string {
	bytes, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	return string(bytes)
}

const ExtraTypeRunSetting = "run_setting"

/*
SchemaRunSetting 保存运行时使用的参数，放在 Run.Extra 中。
*/
type SchemaRunSetting struct {
	BatchSize      int      `json:"batch_size"`
	Workers        int      `json:"workers"`
	UseAccelerator bool     `json:"use_accelerator"`
	ChunkMerge     bool     `json:"chunk_merge"`
	Passes         []string `json:"passes"`
}

func (s *SchemaRunSetting) ToJSON() string {
	return toJSON(s)
}

func (s *SchemaRunSetting) ToExtra() Extra {
	return Extra{
		ExtraType: sql.NullString{String: ExtraTypeRunSetting, Valid: true},
		ExtraJSON: sql.NullString{String: s.ToJSON(), Valid: true},
	}
}

/*
RunSetting 解析 Run.Extra 中的运行参数，类型不匹配时返回 false。
*/
func (r *Run) RunSetting() (*SchemaRunSetting, bool) {
	if !r.ExtraType.Valid || r.ExtraType.String != ExtraTypeRunSetting || !r.ExtraJSON.Valid {
		return nil, false
	}

	var ret SchemaRunSetting
	if err := json.Unmarshal([]byte(r.ExtraJSON.String), &ret); err != nil {
		return nil, false
	}
	return &ret, true
}
