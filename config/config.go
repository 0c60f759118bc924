package config

import (
	"autograph-openre/utils"
	"github.com/spf13/viper"
	"os"
	"runtime"
	"strings"
)

const (
	EnvPrefix         = "OPENRE"
	DefaultConfigName = "openre"
)

/*
Extract 批量抽取的参数。

	BatchSize 每次调用句法分析服务的句子数量；
	UseAccelerator 句法分析服务是否使用 GPU；
	Mode 选择规范化步骤以及是否合并 "A of B" 名词块；
	Workers 并行处理句子的 goroutine 数量；
	Tokenizer 没有 token_list 的记录使用的切词器，treebank 或 jieba；
	VocabCSV、VocabLines 拆分词合并所需的词表；
	VerbCSV 连字符动词合并所需的动词表；
	Indent 输出 JSON 的缩进，负数表示不缩进。
*/
type Extract struct {
	BatchSize         int    `mapstructure:"batch_size"`
	UseAccelerator    bool   `mapstructure:"use_accelerator"`
	Mode              string `mapstructure:"mode"`
	Workers           int    `mapstructure:"workers"`
	Tokenizer         string `mapstructure:"tokenizer"`
	VocabCSV          string `mapstructure:"vocab_csv"`
	VocabLines        string `mapstructure:"vocab_lines"`
	VerbCSV           string `mapstructure:"verb_csv"`
	Indent            int    `mapstructure:"indent"`
	MaxSentenceLength int    `mapstructure:"max_sentence_length"`
	MaxTokens         int    `mapstructure:"max_tokens"`
	MaxTokenLength    int    `mapstructure:"max_token_length"`
	NotifyEmail       string `mapstructure:"notify_email"`
	SaveToDB          bool   `mapstructure:"save_to_db"`
}

type Parser struct {
	User    string `mapstructure:"user"`
	Pwd     string `mapstructure:"pwd"`
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	Timeout string `mapstructure:"timeout"`
}

type MySQL struct {
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	Database string `mapstructure:"database"`
	Migrate  bool   `mapstructure:"migrate"`
}

type Neo4j struct {
	Enable bool   `mapstructure:"enable"`
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	User   string `mapstructure:"user"`
	Pwd    string `mapstructure:"pwd"`
}

type SMTP struct {
	Identity string `mapstructure:"identity"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	UserName string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type Server struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	DebugMode bool   `mapstructure:"debug"`
}

type Log struct {
	Dir            string `mapstructure:"dir"`
	FileLevel      string `mapstructure:"file_level"`
	ConsoleLevel   string `mapstructure:"console_level"`
	DisableConsole bool   `mapstructure:"disable_console"`
}

type Config struct {
	Extract Extract `mapstructure:"extract"`
	Parser  Parser  `mapstructure:"parser"`
	MySQL   MySQL   `mapstructure:"mysql"`
	Neo4j   Neo4j   `mapstructure:"neo4j"`
	SMTP    SMTP    `mapstructure:"smtp"`
	Server  Server  `mapstructure:"server"`
	Log     Log     `mapstructure:"log"`
}

/*
New 创建带默认值的 viper 实例。环境变量 OPENRE_EXTRACT_BATCH_SIZE 对应 extract.batch_size。
*/
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("extract.batch_size", 50000)
	v.SetDefault("extract.use_accelerator", false)
	v.SetDefault("extract.mode", "all-combined")
	v.SetDefault("extract.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("extract.tokenizer", "treebank")
	v.SetDefault("extract.vocab_csv", "vocab_46k.csv")
	v.SetDefault("extract.vocab_lines", "vocab_367k_4plus.txt")
	v.SetDefault("extract.verb_csv", "verb_list.csv")
	v.SetDefault("extract.indent", 2)
	v.SetDefault("extract.max_sentence_length", 3000)
	v.SetDefault("extract.max_tokens", 128)
	v.SetDefault("extract.max_token_length", 500)
	v.SetDefault("extract.notify_email", "")
	v.SetDefault("extract.save_to_db", false)

	v.SetDefault("parser.user", "guest")
	v.SetDefault("parser.pwd", "guest")
	v.SetDefault("parser.host", "localhost")
	v.SetDefault("parser.port", "5672")
	v.SetDefault("parser.timeout", "10m")

	v.SetDefault("mysql.user", "openre")
	v.SetDefault("mysql.host", "localhost:3306")
	v.SetDefault("mysql.database", "openre")
	v.SetDefault("mysql.migrate", true)

	v.SetDefault("neo4j.enable", false)
	v.SetDefault("neo4j.host", "localhost")
	v.SetDefault("neo4j.port", 7687)
	v.SetDefault("neo4j.user", "neo4j")

	v.SetDefault("smtp.port", 25)

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 12345)
	v.SetDefault("server.debug", false)

	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.file_level", "debug")
	v.SetDefault("log.console_level", "info")
	v.SetDefault("log.disable_console", false)

	return v
}

/*
Load 读取配置文件（path 为空时在当前目录查找 openre.yaml，找不到则只用默认值和环境变量），
再用环境变量覆盖敏感字段。
*/
func Load(v *viper.Viper, path string) (*Config, error) {
	if len(path) != 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound || len(path) != 0 {
			return nil, utils.WrapErrorf(err, "read config [%s] fail", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, utils.WrapError(err, "unmarshal config fail")
	}

	applySecretEnv(&cfg)
	return &cfg, nil
}

func applySecretEnv(cfg *Config) {
	overrideString(&cfg.MySQL.Password, EnvKeyMySQLPassword)
	overrideString(&cfg.Neo4j.Pwd, EnvKeyNeo4jPassword)
	overrideString(&cfg.Parser.Pwd, EnvKeyRabbitMQPassword)
	overrideString(&cfg.SMTP.Identity, EnvKeyEmailSMTPIdentity)
	overrideString(&cfg.SMTP.Host, EnvKeyEmailSMTPHost)
	overrideString(&cfg.SMTP.UserName, EnvKeyEmailSMTPUserName)
	overrideString(&cfg.SMTP.Password, EnvKeyEmailSMTPPassword)

	if port, ok := os.LookupEnv(EnvKeyEmailSMTPPort); ok {
		cfg.SMTP.Port = utils.MustAtoi(port)
	}
}

func overrideString(field *string, key string) {
	if val, ok := os.LookupEnv(key); ok {
		*field = val
	}
}
