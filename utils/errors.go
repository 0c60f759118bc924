package utils

import "github.com/pkg/errors"

/*
WrapError 为 err 附加描述信息，err 为 nil 时返回 nil。
*/
func WrapError(err error, msg string) error {
	return errors.Wrap(err, msg)
}

/*
WrapErrorf 与 WrapError 相同，描述信息通过 format 构造。
*/
func WrapErrorf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

/*
Cause 返回被层层包装的最内层 error。
*/
func Cause(err error) error {
	return errors.Cause(err)
}
