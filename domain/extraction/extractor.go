package extraction

import (
	"autograph-openre/domain/depparse"
	"autograph-openre/domain/normalize"
	"autograph-openre/domain/openre"
	"autograph-openre/domain/tokenize"
	"autograph-openre/logging"
	"autograph-openre/repository/metadata"
	"autograph-openre/utils"
	"context"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

/*
Setting 是一个 Extractor 的全部依赖。

	Mode 抽取模式，决定规范化步骤和名词块合并；
	Resources 规范化步骤使用的词表，可以为 nil（模式不需要词表时）；
	Provider 句法分析服务；
	Tokenizer 用于既没有 real_pos 也没有 token_list 的记录，可以为 nil；
	GetMetadataDatabase 返回 nil 时不保存运行记录；
	OnRecords 运行成功后收到带有三元组的记录，例如加入可视化索引。
*/
type Setting struct {
	BatchSize      int
	Workers        int
	UseAccelerator bool
	Mode           normalize.Mode
	Limits         openre.Limits
	Resources      *normalize.Resources

	Provider  depparse.Provider
	Tokenizer tokenize.Tokenizer
	Observer  openre.Observer

	GetMetadataDatabase func() *gorm.DB
	OnRecords           func(records []*openre.Record)
	Logger              *logrus.Logger
}

type Extractor struct {
	setting  Setting
	engine   *openre.Engine
	pipeline normalize.Pipeline
	profile  normalize.Profile
}

func NewExtractor(setting *Setting) (*Extractor, error) {
	mode, err := normalize.ParseMode(string(setting.Mode))
	if err != nil {
		return nil, err
	}

	ret := Extractor{
		setting: *setting,
		profile: mode.Profile(),
	}
	if ret.setting.Logger == nil {
		ret.setting.Logger = logging.Default()
	}

	resources := setting.Resources
	if resources == nil {
		resources = &normalize.Resources{Placeholder: openre.PlaceholderPattern}
	}
	ret.pipeline, err = normalize.NewPipeline(ret.profile, resources)
	if err != nil {
		return nil, utils.WrapErrorf(err, "build normalization of mode [%s] fail", mode)
	}

	ret.engine, err = openre.NewEngine(&openre.Setting{
		BatchSize:  setting.BatchSize,
		Workers:    setting.Workers,
		ChunkMerge: ret.profile.ChunkMerge,
		Masker: openre.NewMasker(&openre.MaskSetting{
			Limits:    setting.Limits,
			Tokenizer: setting.Tokenizer,
		}),
		Normalizer: ret.pipeline,
		Consumer:   openre.NewParseConsumer(setting.Provider, setting.UseAccelerator, ret.setting.Logger),
		Observer:   setting.Observer,
		Logger:     ret.setting.Logger,
	})
	if err != nil {
		return nil, utils.WrapError(err, "create engine fail")
	}

	return &ret, nil
}

func (e *Extractor) Mode() normalize.Mode {
	return e.setting.Mode
}

/*
runSetting 是保存在运行记录中的参数。
*/
func (e *Extractor) runSetting() *metadata.SchemaRunSetting {
	return &metadata.SchemaRunSetting{
		BatchSize:      e.setting.BatchSize,
		Workers:        e.setting.Workers,
		UseAccelerator: e.setting.UseAccelerator,
		ChunkMerge:     e.profile.ChunkMerge,
		Passes:         e.pipeline.Names(),
	}
}

func (e *Extractor) database() *gorm.DB {
	if e.setting.GetMetadataDatabase == nil {
		return nil
	}
	return e.setting.GetMetadataDatabase()
}

/*
Extract 检查全部记录后运行引擎，不保存也不通知。记录不合法时不会调用句法分析服务。
*/
func (e *Extractor) Extract(ctx context.Context, records []*openre.Record) (openre.Stats, error) {
	if err := openre.ValidateRecords(records); err != nil {
		return openre.Stats{}, err
	}

	return e.engine.Run(ctx, records)
}
