package extraction

import (
	"autograph-openre/domain/graph"
	"autograph-openre/domain/openre"
	"autograph-openre/repository/corpus"
	"autograph-openre/repository/metadata"
	"autograph-openre/utils"
	emailutils "autograph-openre/utils/email"
	"context"
	"github.com/google/uuid"
	"path/filepath"
)

const notifyRetry = 3

/*
Task 描述一次运行。

	RunUUID 运行编号，为空时自动生成；
	Name 运行名，为空时使用输入文件名；
	Input、Output 输入输出文件，通过 Process 直接提交记录时为空；
	Email 运行结束后通知的邮箱，为空时不通知；
	Indent 输出 JSON 的缩进，负数表示不缩进。
*/
type Task struct {
	RunUUID string
	Name    string
	Input   string
	Output  string
	Email   string
	Indent  int
}

type Result struct {
	RunUUID string           `json:"run_uuid"`
	Stats   openre.Stats     `json:"stats"`
	Records []*openre.Record `json:"-"`
}

func (e *Extractor) createRun(task *Task, runUUID string) *metadata.Run {
	db := e.database()
	if db == nil {
		return nil
	}

	run := metadata.Run{
		Extra:  e.runSetting().ToExtra(),
		UUID:   runUUID,
		Name:   task.Name,
		Mode:   string(e.setting.Mode),
		Input:  task.Input,
		Output: task.Output,
		Email:  task.Email,
	}
	if err := metadata.CreateRun(db, &run); err != nil {
		e.setting.Logger.WithError(err).Errorf("create run [%s] fail, run will not be saved", runUUID)
		return nil
	}
	return &run
}

func (e *Extractor) finishRun(run *metadata.Run, stats openre.Stats, records []*openre.Record) {
	if run == nil {
		return
	}

	counters := metadata.RunCounters{
		Sentences:             stats.Sentences,
		Masked:                stats.Masked,
		Parsed:                stats.Parsed,
		Failed:                stats.Failed,
		SentencesWithTriplets: stats.SentencesWithTriplets,
		Triplets:              stats.Triplets,
		PerfectTriplets:       stats.PerfectTriplets,
	}
	if err := metadata.FinishRun(e.database(), run, counters, graph.TripletRecords(records)); err != nil {
		e.setting.Logger.WithError(err).Errorf("save run [%s] fail", run.UUID)
	}
}

func (e *Extractor) failRun(run *metadata.Run) {
	if run == nil {
		return
	}

	if err := metadata.FailRun(e.database(), run); err != nil {
		e.setting.Logger.WithError(err).Errorf("mark run [%s] fail", run.UUID)
	}
}

func (e *Extractor) notify(task *Task, result *Result) {
	if len(task.Email) == 0 {
		return
	}
	if !emailutils.Enabled() {
		e.setting.Logger.Warnf("smtp is not configured, result of run [%s] is not sent to [%s]", result.RunUUID, task.Email)
		return
	}

	for i := 0; i < notifyRetry; i++ {
		err := sendRunResultEmail(task.Email, task.Name, result)
		if err == nil {
			return
		}

		e.setting.Logger.WithError(err).Errorf("send result of run [%s] to [%s] fail", result.RunUUID, task.Email)
	}
}

/*
Process 对 records 运行抽取，并完成保存、回调和通知。
保存和通知失败只记录日志；records 不合法或 ctx 被取消时返回错误，此时运行被标记为失败。
*/
func (e *Extractor) Process(ctx context.Context, task *Task, records []*openre.Record) (*Result, error) {
	if err := openre.ValidateRecords(records); err != nil {
		return nil, err
	}

	if len(task.RunUUID) == 0 {
		task.RunUUID = uuid.NewString()
	}

	result := Result{
		RunUUID: task.RunUUID,
		Records: records,
	}
	logger := e.setting.Logger.WithField("run", result.RunUUID)
	logger.Infof("run [%s] start: %d records, mode [%s]", task.Name, len(records), e.setting.Mode)

	run := e.createRun(task, result.RunUUID)

	stats, err := e.engine.Run(ctx, records)
	result.Stats = stats
	if err != nil {
		e.failRun(run)
		return &result, utils.WrapErrorf(err, "run [%s] interrupted", result.RunUUID)
	}

	e.finishRun(run, stats, records)
	if e.setting.OnRecords != nil {
		e.setting.OnRecords(records)
	}
	e.notify(task, &result)

	logger.WithFields(stats.Fields()).Infof("run [%s] done", task.Name)
	return &result, nil
}

/*
RunFile 读取 task.Input，抽取后写入 task.Output。
*/
func (e *Extractor) RunFile(ctx context.Context, task *Task) (*Result, error) {
	records, err := corpus.ReadRecords(task.Input)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read records from [%s] fail", task.Input)
	}

	if len(task.Name) == 0 {
		task.Name = filepath.Base(task.Input)
	}

	result, err := e.Process(ctx, task, records)
	if err != nil {
		return result, err
	}

	if err := corpus.WriteRecords(task.Output, records, task.Indent); err != nil {
		return result, utils.WrapErrorf(err, "write records to [%s] fail", task.Output)
	}

	e.setting.Logger.Infof("write %d records to [%s]", len(records), task.Output)
	return result, nil
}
