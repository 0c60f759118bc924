package graph

import (
	"autograph-openre/logging"
	"autograph-openre/repository/metadata"
	"autograph-openre/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"io"
	"os"
	"sync"
)

/*
KGSetting 是图相关操作依赖的外部资源，GetMetadataDatabase 可以返回 nil（未配置数据库）。
*/
type KGSetting struct {
	GetMetadataDatabase func() *gorm.DB
	Execute             Executor
	Logger              *logrus.Logger
}

var (
	globalSetting KGSetting

	indexLock   sync.RWMutex
	globalIndex = NewIndex(nil)
)

func Init(setting *KGSetting) {
	globalSetting = *setting
}

func logger() *logrus.Logger {
	if globalSetting.Logger == nil {
		return logging.Default()
	}
	return globalSetting.Logger
}

/*
CurrentIndex 返回可视化接口使用的索引。
*/
func CurrentIndex() *Index {
	indexLock.RLock()
	defer indexLock.RUnlock()

	return globalIndex
}

func SetIndex(idx *Index) {
	indexLock.Lock()
	defer indexLock.Unlock()

	globalIndex = idx
}

func LoadIndexFromCSV(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open [%s] fail", path)
	}
	defer file.Close()

	relations, err := ReadCSV(file)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read [%s] fail", path)
	}

	logger().Infof("load %d relations from [%s]", len(relations), path)
	return NewIndex(relations), nil
}

func database() (*gorm.DB, error) {
	if globalSetting.GetMetadataDatabase == nil {
		return nil, ErrNoDatabase
	}
	db := globalSetting.GetMetadataDatabase()
	if db == nil {
		return nil, ErrNoDatabase
	}
	return db, nil
}

/*
RunRelations 从数据库读取一次运行的全部三元组。
*/
func RunRelations(runUUID string) ([]Relation, error) {
	db, err := database()
	if err != nil {
		return nil, err
	}

	run, err := metadata.GetRun(db, runUUID)
	if err != nil {
		return nil, utils.WrapErrorf(err, "get run [%s] fail", runUUID)
	}

	triplets, err := metadata.ListTriplets(db, run.ID, false)
	if err != nil {
		return nil, utils.WrapErrorf(err, "list triplets of run [%s] fail", runUUID)
	}

	return RelationsFromMetadata(triplets), nil
}

func LoadIndexFromRun(runUUID string) (*Index, error) {
	relations, err := RunRelations(runUUID)
	if err != nil {
		return nil, err
	}

	logger().Infof("load %d relations of run [%s]", len(relations), runUUID)
	return NewIndex(relations), nil
}

func ExportRunCSV(runUUID string, w io.Writer) error {
	relations, err := RunRelations(runUUID)
	if err != nil {
		return err
	}
	return WriteCSV(w, relations)
}

func LoadRunToNeo4j(runUUID string) error {
	if globalSetting.Execute == nil {
		return ErrNoNeo4j
	}

	relations, err := RunRelations(runUUID)
	if err != nil {
		return err
	}

	if err := LoadToNeo4j(globalSetting.Execute, runUUID, relations); err != nil {
		return utils.WrapErrorf(err, "load run [%s] to neo4j fail", runUUID)
	}

	logger().Infof("load %d relations of run [%s] to neo4j", len(relations), runUUID)
	return nil
}
