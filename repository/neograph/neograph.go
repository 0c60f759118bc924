package neograph

import (
	"autograph-openre/utils"
	"errors"
	"fmt"
	"github.com/neo4j/neo4j-go-driver/v4/neo4j"
	"sync"
)

var ErrNotInitialized = errors.New("neo4j driver is not initialized")

type Neo4jConfig struct {
	Host string
	Port int
	User string
	Pwd  string
}

func (c *Neo4jConfig) uri() string {
	return fmt.Sprintf("neo4j://%s:%d", c.Host, c.Port)
}

type Config struct {
	Neo4j Neo4jConfig
}

func GenerateTestConfig() *Config {
	return &Config{Neo4j: Neo4jConfig{
		Host: "localhost",
		Port: 7687,
		User: "neo4j",
		Pwd:  "neo4j_test",
	}}
}

var (
	driverLock sync.RWMutex
	driver     neo4j.Driver
)

/*
CreateDriver 创建 neo4j 连接并检查连通性。
*/
func CreateDriver(config *Config) (neo4j.Driver, error) {
	d, err := neo4j.NewDriver(config.Neo4j.uri(), neo4j.BasicAuth(config.Neo4j.User, config.Neo4j.Pwd, ""))
	if err != nil {
		return nil, utils.WrapErrorf(err, "create driver for [%s] fail", config.Neo4j.uri())
	}

	if err := d.VerifyConnectivity(); err != nil {
		d.Close()
		return nil, utils.WrapErrorf(err, "connect to [%s] fail", config.Neo4j.uri())
	}

	return d, nil
}

func Init(config *Config) {
	d, err := CreateDriver(config)
	if err != nil {
		panic(err)
	}

	driverLock.Lock()
	defer driverLock.Unlock()
	driver = d
}

func Close() {
	driverLock.Lock()
	defer driverLock.Unlock()

	if driver != nil {
		_ = driver.Close()
		driver = nil
	}
}

func Initialized() bool {
	driverLock.RLock()
	defer driverLock.RUnlock()

	return driver != nil
}

/*
Execute 在一个写事务中执行 cypher，返回全部结果。
*/
func Execute(cypher string, params map[string]interface{}) ([]*neo4j.Record, error) {
	driverLock.RLock()
	d := driver
	driverLock.RUnlock()

	if d == nil {
		return nil, ErrNotInitialized
	}
	return ExecuteWith(d, cypher, params)
}

func ExecuteWith(d neo4j.Driver, cypher string, params map[string]interface{}) ([]*neo4j.Record, error) {
	session := d.NewSession(neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close()

	ret, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		result, err := tx.Run(cypher, params)
		if err != nil {
			return nil, err
		}
		return result.Collect()
	})
	if err != nil {
		return nil, utils.WrapError(err, "execute cypher fail")
	}

	return ret.([]*neo4j.Record), nil
}
