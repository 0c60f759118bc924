package email

import (
	"os"
	"strconv"
	"sync"
)

type SMTPConfig struct {
	Identity string
	Host     string
	Port     int
	UserName string
	Password string
}

type Config struct {
	SMTP SMTPConfig
}

var (
	globalConfigLock sync.RWMutex
	globalConfig     = Config{}
)

func Init(config *Config) {
	globalConfigLock.Lock()
	defer globalConfigLock.Unlock()

	globalConfig = *config
}

func getConfig() Config {
	globalConfigLock.RLock()
	defer globalConfigLock.RUnlock()

	return globalConfig
}

/*
Enabled 判断是否配置了 SMTP 服务器，未配置时不发送邮件。
*/
func Enabled() bool {
	cfg := getConfig()
	return len(cfg.SMTP.Host) != 0 && len(cfg.SMTP.UserName) != 0
}

/*
GenerateTestConfig 从 OPENRE_TEST_SMTP_* 环境变量读取测试用的发件账号，没有设置时返回 nil。
*/
func GenerateTestConfig() *Config {
	host := os.Getenv("OPENRE_TEST_SMTP_HOST")
	if len(host) == 0 {
		return nil
	}

	port, err := strconv.Atoi(os.Getenv("OPENRE_TEST_SMTP_PORT"))
	if err != nil {
		port = 25
	}

	return &Config{SMTP: SMTPConfig{
		Identity: os.Getenv("OPENRE_TEST_SMTP_USERNAME"),
		Host:     host,
		Port:     port,
		UserName: os.Getenv("OPENRE_TEST_SMTP_USERNAME"),
		Password: os.Getenv("OPENRE_TEST_SMTP_PASSWORD"),
	}}
}
