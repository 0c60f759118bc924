package openre

import (
	"autograph-openre/domain/depparse"
	"autograph-openre/domain/normalize"
	"autograph-openre/logging"
	"context"
	"errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"runtime"
	"time"
)

const DefaultBatchSize = 50000

var ErrNoConsumer = errors.New("engine requires a parse consumer")

/*
Observer 接收每个批次的统计结果，用于对接监控指标。
*/
type Observer interface {
	ObserveBatch(stats Stats, elapsed time.Duration)
}

/*
Setting 是抽取引擎的配置。

	BatchSize 每次调用句法分析的句子数量；
	Workers 匹配阶段的并发数；
	ChunkMerge 是否启用 "A of B" 名词块合并；
	Masker 遮盖器，为 nil 时使用默认限制；
	Normalizer 遮盖之后、句法分析之前的文本改写；
	Consumer 句法分析；
	Observer 可以为 nil；
	Logger 为 nil 时使用 logging.Default()。
*/
type Setting struct {
	BatchSize  int
	Workers    int
	ChunkMerge bool
	Masker     *Masker
	Normalizer normalize.Pipeline
	Consumer   *depparse.Consumer
	Observer   Observer
	Logger     *logrus.Logger
}

/*
NewParseConsumer 创建一个带有占位符词性规则的 depparse.Consumer。
*/
func NewParseConsumer(provider depparse.Provider, useAccelerator bool, logger *logrus.Logger) *depparse.Consumer {
	return depparse.NewConsumer(&depparse.ConsumerSetting{
		Provider:       provider,
		Rules:          []depparse.TagRule{PlaceholderTagRule()},
		UseAccelerator: useAccelerator,
		Logger:         logger,
	})
}

type matchFunc func(parsed *depparse.Parsed, buckets *Buckets, mentions []Mention) []Triplet

type Engine struct {
	setting   Setting
	collector Collector
	match     matchFunc
}

func NewEngine(setting *Setting) (*Engine, error) {
	if setting.Consumer == nil {
		return nil, ErrNoConsumer
	}

	ret := Engine{
		setting:   *setting,
		collector: Collector{ChunkMerge: setting.ChunkMerge},
		match:     Match,
	}
	if ret.setting.BatchSize <= 0 {
		ret.setting.BatchSize = DefaultBatchSize
	}
	if ret.setting.Workers <= 0 {
		ret.setting.Workers = runtime.GOMAXPROCS(0)
	}
	if ret.setting.Masker == nil {
		ret.setting.Masker = NewMasker(&MaskSetting{Limits: DefaultLimits()})
	}
	if ret.setting.Logger == nil {
		ret.setting.Logger = logging.Default()
	}
	return &ret, nil
}

/*
Run 为每条记录写入 TripletList，返回整体统计。
单个句子的失败只会让该句子得到空列表；只有 ctx 被取消时返回错误，已经写入的记录保持有效。
*/
func (e *Engine) Run(ctx context.Context, records []*Record) (Stats, error) {
	total := Stats{}
	logger := e.setting.Logger

	for start := 0; start < len(records); start += e.setting.BatchSize {
		end := start + e.setting.BatchSize
		if end > len(records) {
			end = len(records)
		}

		begin := time.Now()
		stats, err := e.runBatch(ctx, records, start, end)
		total.Add(stats)
		if err != nil {
			return total, err
		}

		if e.setting.Observer != nil {
			e.setting.Observer.ObserveBatch(stats, time.Since(begin))
		}
		logger.WithFields(stats.Fields()).Infof("batch [%d, %d) done in %s", start, end, time.Since(begin))
	}

	logger.WithFields(total.Fields()).Info("extraction done")
	return total, nil
}

func (e *Engine) runBatch(ctx context.Context, records []*Record, start, end int) (Stats, error) {
	logger := e.setting.Logger
	stats := Stats{Sentences: end - start}

	for i := start; i < end; i++ {
		records[i].TripletList = []Triplet{}
	}

	masked := e.setting.Masker.MaskBatch(records, start, end)
	stats.Masked = len(masked)
	if len(masked) == 0 {
		return stats, nil
	}

	sentences := make([]string, len(masked))
	for i := range masked {
		sentences[i] = e.setting.Normalizer.Apply(masked[i].Text)
	}

	parsed, err := e.setting.Consumer.Parse(ctx, sentences)
	if err != nil {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		logger.WithError(err).Errorf("parse batch [%d, %d) fail, %d sentences get no triplet", start, end, len(masked))
		stats.Failed = len(masked)
		return stats, nil
	}

	perSentence := make([]Stats, len(masked))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(e.setting.Workers)

	for i := range masked {
		if groupCtx.Err() != nil {
			break
		}

		i := i
		group.Go(func() error {
			if groupCtx.Err() != nil {
				return groupCtx.Err()
			}

			record := records[masked[i].RecordIndex]
			triplets, ok := e.extract(parsed[i], record)
			parsed[i] = nil

			if !ok {
				perSentence[i].Failed++
				return nil
			}

			record.TripletList = triplets
			perSentence[i].Parsed++
			perSentence[i].addTriplets(triplets)
			return nil
		})
	}

	err = group.Wait()
	if err == nil {
		err = ctx.Err()
	}
	for i := range perSentence {
		stats.Add(perSentence[i])
	}
	return stats, err
}

/*
extract 处理单个句子。没有句法树时返回 (nil, false)，处理中 panic 同样记为失败。
*/
func (e *Engine) extract(parsed *depparse.Parsed, record *Record) (ret []Triplet, ok bool) {
	if parsed == nil {
		return nil, false
	}

	defer func() {
		if r := recover(); r != nil {
			e.setting.Logger.WithFields(logrus.Fields{
				"pmid":    record.DocID,
				"sent_id": record.SentID,
			}).Errorf("extract triplets panic: %v", r)
			ret, ok = nil, false
		}
	}()

	buckets := e.collector.Collect(parsed)
	ret = e.match(parsed, buckets, record.MentionList)
	if ret == nil {
		ret = []Triplet{}
	}
	return ret, true
}
