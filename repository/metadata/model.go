package metadata

import (
	"database/sql"
	"gorm.io/gorm"
)

/*
Extra 用于扩展信息，或者保存多态的信息，通过JSON格式。不直接单独作为一个数据库对象，类似gorm.Model。

	ExtraType 标记JSON的schema；
	ExtraJSON 额外信息的JSON主体；
*/
type Extra struct {
	ExtraType sql.NullString `gorm:"type:varchar(16)"`
	ExtraJSON sql.NullString `gorm:"type:text"`
}

//////////////////////////////// 抽取运行信息 ////////////////////////////////////

/*
Run 描述了一次关系抽取运行。

	UUID 对外暴露的运行编号；
	Name 运行名，一般为输入文件名；
	Mode 抽取模式；
	Input、Output 输入输出文件路径，通过 HTTP 提交的运行为空；
	Email 运行结束后通知的邮箱；
	Status 运行状态；
	其余字段为运行结束时的统计。
*/
type Run struct {
	gorm.Model
	Extra

	UUID   string `gorm:"type:varchar(36) not null;uniqueIndex:idx_runs_uuid"`
	Name   string `gorm:"type:varchar(128)"`
	Mode   string `gorm:"type:varchar(32)"`
	Input  string `gorm:"type:varchar(255)"`
	Output string `gorm:"type:varchar(255)"`
	Email  string `gorm:"type:varchar(64)"`
	Status uint   `gorm:"comment:DOING=1,DONE=2,FAIL=3"`

	Sentences             int
	Masked                int
	Parsed                int
	Failed                int
	SentencesWithTriplets int
	Triplets              int
	PerfectTriplets       int

	TripletRecords []TripletRecord `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

/*
TripletRecord 记录了一次运行中抽取出的一个三元组，反范式设计，因为只需要一次写入。

	DocID、SentID、Sentence 三元组来源的句子；
	HeadMention、TailMention 提及在句子 mention_list 中的序号；
	Head、Relation、Tail 三元组文本；
	HeadEntity、HeadType、TailEntity、TailType 对应提及的实体名与类型；
	PerfectMatch 是否完全匹配。
*/
type TripletRecord struct {
	gorm.Model

	RunID    uint   `gorm:"index:idx_triplet_run"`
	DocID    string `gorm:"type:varchar(32);index:idx_triplet_doc"`
	SentID   int
	Sentence string `gorm:"type:text"`

	HeadMention int
	TailMention int
	Head        string `gorm:"type:varchar(255)"`
	Relation    string `gorm:"type:varchar(255)"`
	Tail        string `gorm:"type:varchar(255)"`

	HeadEntity string `gorm:"type:varchar(128);index:idx_triplet_head"`
	HeadType   string `gorm:"type:varchar(32)"`
	TailEntity string `gorm:"type:varchar(128);index:idx_triplet_tail"`
	TailType   string `gorm:"type:varchar(32)"`

	PerfectMatch bool
}
