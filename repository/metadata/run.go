package metadata

import (
	"autograph-openre/utils"
	"errors"
	"gorm.io/gorm"
)

const tripletBatchSize = 500

var ErrRunNotFound = errors.New("run not found")

/*
RunCounters 是运行结束时写入 Run 的统计。
*/
type RunCounters struct {
	Sentences             int
	Masked                int
	Parsed                int
	Failed                int
	SentencesWithTriplets int
	Triplets              int
	PerfectTriplets       int
}

func CreateRun(db *gorm.DB, run *Run) error {
	run.Status = RunStatusDoing
	if err := db.Create(run).Error; err != nil {
		return utils.WrapErrorf(err, "create run [%s] fail", run.UUID)
	}
	return nil
}

/*
FinishRun 在一个事务中保存三元组并更新运行的状态和统计。
*/
func FinishRun(db *gorm.DB, run *Run, counters RunCounters, triplets []TripletRecord) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i := range triplets {
			triplets[i].RunID = run.ID
		}

		if len(triplets) != 0 {
			if err := tx.CreateInBatches(triplets, tripletBatchSize).Error; err != nil {
				return utils.WrapErrorf(err, "save %d triplets of run [%s] fail", len(triplets), run.UUID)
			}
		}

		run.Status = RunStatusDone
		run.Sentences = counters.Sentences
		run.Masked = counters.Masked
		run.Parsed = counters.Parsed
		run.Failed = counters.Failed
		run.SentencesWithTriplets = counters.SentencesWithTriplets
		run.Triplets = counters.Triplets
		run.PerfectTriplets = counters.PerfectTriplets

		if err := tx.Save(run).Error; err != nil {
			return utils.WrapErrorf(err, "update run [%s] fail", run.UUID)
		}
		return nil
	})
}

func FailRun(db *gorm.DB, run *Run) error {
	err := db.Model(run).Update("status", RunStatusFail).Error
	return utils.WrapErrorf(err, "mark run [%s] as failed fail", run.UUID)
}

/*
ListRuns 按创建时间倒序列出最近的 limit 次运行。
*/
func ListRuns(db *gorm.DB, limit int) ([]Run, error) {
	var runs []Run
	err := db.Order("id desc").Limit(limit).Find(&runs).Error
	if err != nil {
		return nil, utils.WrapError(err, "list runs fail")
	}
	return runs, nil
}

func GetRun(db *gorm.DB, uuid string) (*Run, error) {
	var run Run
	err := db.Where(&Run{UUID: uuid}).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, utils.WrapErrorf(err, "get run [%s] fail", uuid)
	}
	return &run, nil
}

/*
ListTriplets 列出一次运行的三元组，onlyPerfect 为 true 时只返回完全匹配的三元组。
*/
func ListTriplets(db *gorm.DB, runID uint, onlyPerfect bool) ([]TripletRecord, error) {
	query := db.Where("run_id = ?", runID)
	if onlyPerfect {
		query = query.Where("perfect_match = ?", true)
	}

	var triplets []TripletRecord
	if err := query.Order("id").Find(&triplets).Error; err != nil {
		return nil, utils.WrapErrorf(err, "list triplets of run [%d] fail", runID)
	}
	return triplets, nil
}
