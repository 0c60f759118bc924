package metadata

import (
	"github.com/sirupsen/logrus"
)

/*
sqlLogger 把 gorm 的 SQL 日志以 debug 级别写入 logrus。
*/
type sqlLogger struct {
	logger *logrus.Logger
}

func (l *sqlLogger) Printf(fmt string, args ...interface{}) {
	l.logger.Debugf(fmt, args...)
}
