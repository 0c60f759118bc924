package main

import (
	"autograph-openre/config"
	"autograph-openre/domain/extraction"
	"autograph-openre/domain/graph"
	"autograph-openre/domain/normalize"
	"autograph-openre/domain/openre"
	"autograph-openre/domain/parsecall"
	"autograph-openre/logging"
	"autograph-openre/repository/metadata"
	"autograph-openre/repository/neograph"
	"autograph-openre/utils"
	"autograph-openre/utils/email"
	"github.com/sirupsen/logrus"
	"time"
)

func loggingConf(cfg *config.Config) (*logging.Config, error) {
	fileLevel, err := logrus.ParseLevel(cfg.Log.FileLevel)
	if err != nil {
		return nil, utils.WrapErrorf(err, "parse log.file_level [%s] fail", cfg.Log.FileLevel)
	}

	consoleLevel, err := logrus.ParseLevel(cfg.Log.ConsoleLevel)
	if err != nil {
		return nil, utils.WrapErrorf(err, "parse log.console_level [%s] fail", cfg.Log.ConsoleLevel)
	}

	return &logging.Config{
		FileLevel:      fileLevel,
		ConsoleLevel:   consoleLevel,
		FileDir:        cfg.Log.Dir,
		MaxSizeMB:      100,
		MaxBackups:     10,
		MaxAgeDays:     30,
		DisableConsole: cfg.Log.DisableConsole,
	}, nil
}

func emailConf(cfg *config.Config) *email.Config {
	return &email.Config{SMTP: email.SMTPConfig{
		Identity: cfg.SMTP.Identity,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		UserName: cfg.SMTP.UserName,
		Password: cfg.SMTP.Password,
	}}
}

func metadataConf(cfg *config.Config) *metadata.Config {
	return &metadata.Config{
		MySQL: metadata.MySQLConfig{
			User:     cfg.MySQL.User,
			Password: cfg.MySQL.Password,
			Host:     cfg.MySQL.Host,
			Database: cfg.MySQL.Database,
		},
		CheckMigration: cfg.MySQL.Migrate,
	}
}

func neographConf(cfg *config.Config) *neograph.Config {
	return &neograph.Config{Neo4j: neograph.Neo4jConfig{
		Host: cfg.Neo4j.Host,
		Port: cfg.Neo4j.Port,
		User: cfg.Neo4j.User,
		Pwd:  cfg.Neo4j.Pwd,
	}}
}

func parsecallConf(cfg *config.Config) (*parsecall.Config, error) {
	timeout, err := time.ParseDuration(cfg.Parser.Timeout)
	if err != nil {
		return nil, utils.WrapErrorf(err, "parse parser.timeout [%s] fail", cfg.Parser.Timeout)
	}

	return &parsecall.Config{
		RabbitMQConfig: parsecall.MQConnectionConfig{
			User: cfg.Parser.User,
			Pwd:  cfg.Parser.Pwd,
			Host: cfg.Parser.Host,
			Port: cfg.Parser.Port,
		},
		Timeout: timeout,
		Logger:  logging.NewLogger(),
	}, nil
}

func graphConf() *graph.KGSetting {
	setting := &graph.KGSetting{
		GetMetadataDatabase: metadata.DatabaseRaw,
		Logger:              logging.NewLogger(),
	}
	if neograph.Initialized() {
		setting.Execute = neograph.Execute
	}
	return setting
}

func resourcePaths(cfg *config.Config) *extraction.ResourcePaths {
	return &extraction.ResourcePaths{
		VocabCSV:   cfg.Extract.VocabCSV,
		VocabLines: cfg.Extract.VocabLines,
		VerbCSV:    cfg.Extract.VerbCSV,
	}
}

func limitsConf(cfg *config.Config) openre.Limits {
	return openre.Limits{
		MaxSentenceLength: cfg.Extract.MaxSentenceLength,
		MaxTokens:         cfg.Extract.MaxTokens,
		MaxTokenLength:    cfg.Extract.MaxTokenLength,
	}
}

/*
extractionConf 读取模式需要的词表，组装除 Provider 以外的抽取参数。
*/
func extractionConf(cfg *config.Config) (*extraction.Setting, error) {
	mode, err := normalize.ParseMode(cfg.Extract.Mode)
	if err != nil {
		return nil, err
	}

	resources, err := extraction.LoadResources(mode.Profile(), resourcePaths(cfg))
	if err != nil {
		return nil, utils.WrapErrorf(err, "load resources of mode [%s] fail", mode)
	}

	setting := &extraction.Setting{
		BatchSize:      cfg.Extract.BatchSize,
		Workers:        cfg.Extract.Workers,
		UseAccelerator: cfg.Extract.UseAccelerator,
		Mode:           mode,
		Limits:         limitsConf(cfg),
		Resources:      resources,
		Logger:         logging.NewLogger(),
	}
	if cfg.Extract.SaveToDB {
		setting.GetMetadataDatabase = metadata.DatabaseRaw
	}
	return setting, nil
}
