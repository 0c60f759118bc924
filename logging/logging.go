package logging

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

/*
Config 描述日志的输出方式。

	FileLevel 写入文件的最低级别；
	ConsoleLevel 输出到控制台的最低级别；
	FileDir 日志文件目录，为空时不写文件；
	FileName 日志文件名，默认为 openre.log；
	MaxSizeMB、MaxBackups、MaxAgeDays 日志滚动策略；
	DisableConsole 关闭控制台输出。
*/
type Config struct {
	FileLevel      logrus.Level
	ConsoleLevel   logrus.Level
	FileDir        string
	FileName       string
	MaxSizeMB      int
	MaxBackups     int
	MaxAgeDays     int
	DisableConsole bool
}

const defaultFileName = "openre.log"

func GenerateTestConfig(t testing.TB) *Config {
	return &Config{
		FileLevel:      logrus.DebugLevel,
		ConsoleLevel:   logrus.DebugLevel,
		FileDir:        t.TempDir(),
		DisableConsole: false,
	}
}

var (
	defaultConfigLock sync.RWMutex
	defaultConfig     = Config{
		FileLevel:    logrus.DebugLevel,
		ConsoleLevel: logrus.InfoLevel,
	}

	// 同一个文件只打开一个 lumberjack.Logger
	fileWriterLock sync.Mutex
	fileWriters    = make(map[string]*lumberjack.Logger)

	defaultLoggerOnce sync.Once
	defaultLogger     *logrus.Logger
)

func SetDefaultConfig(config *Config) {
	defaultConfigLock.Lock()
	defer defaultConfigLock.Unlock()

	defaultConfig = *config
	defaultLogger = newLogger(&defaultConfig)
	defaultLoggerOnce.Do(func() {})
}

func getDefaultConfig() Config {
	defaultConfigLock.RLock()
	defer defaultConfigLock.RUnlock()

	return defaultConfig
}

/*
Default 返回共享的 logger，未调用 SetDefaultConfig 时使用默认配置。
*/
func Default() *logrus.Logger {
	defaultLoggerOnce.Do(func() {
		cfg := getDefaultConfig()
		defaultLogger = newLogger(&cfg)
	})

	defaultConfigLock.RLock()
	defer defaultConfigLock.RUnlock()
	return defaultLogger
}

/*
NewLogger 按照默认配置创建一个新的 logger。
*/
func NewLogger() *logrus.Logger {
	cfg := getDefaultConfig()
	return newLogger(&cfg)
}

/*
New 按照指定配置创建 logger，不影响默认配置。
*/
func New(config *Config) *logrus.Logger {
	return newLogger(config)
}

func newLogger(config *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(maxLevel(config))

	if !config.DisableConsole {
		logger.AddHook(&writerHook{
			writer:    os.Stdout,
			level:     config.ConsoleLevel,
			formatter: &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006/01/02 15:04:05"},
		})
	}

	if len(config.FileDir) != 0 {
		logger.AddHook(&writerHook{
			writer:    fileWriter(config),
			level:     config.FileLevel,
			formatter: &logrus.JSONFormatter{},
		})
	}

	return logger
}

func maxLevel(config *Config) logrus.Level {
	level := logrus.PanicLevel
	if !config.DisableConsole && config.ConsoleLevel > level {
		level = config.ConsoleLevel
	}
	if len(config.FileDir) != 0 && config.FileLevel > level {
		level = config.FileLevel
	}
	return level
}

func fileWriter(config *Config) io.Writer {
	name := config.FileName
	if len(name) == 0 {
		name = defaultFileName
	}
	path := filepath.Join(config.FileDir, name)

	fileWriterLock.Lock()
	defer fileWriterLock.Unlock()

	writer, ok := fileWriters[path]
	if !ok {
		writer = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
		}
		fileWriters[path] = writer
	}
	return writer
}

type writerHook struct {
	lock      sync.Mutex
	writer    io.Writer
	level     logrus.Level
	formatter logrus.Formatter
}

func (h *writerHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, level := range logrus.AllLevels {
		if level <= h.level {
			levels = append(levels, level)
		}
	}
	return levels
}

func (h *writerHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.lock.Lock()
	defer h.lock.Unlock()

	_, err = h.writer.Write(line)
	return err
}
