package corpus

import (
	"autograph-openre/domain/openre"
	"autograph-openre/utils"
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
)

/*
DecodeRecords 读取一个 JSON 数组形式的语料。
*/
func DecodeRecords(r io.Reader) ([]*openre.Record, error) {
	var records []*openre.Record
	if err := json.NewDecoder(bufio.NewReader(r)).Decode(&records); err != nil {
		return nil, utils.WrapError(err, "decode records fail")
	}
	return records, nil
}

/*
EncodeRecords 以 JSON 数组写出语料，indent 为负数时不缩进。
*/
func EncodeRecords(w io.Writer, records []*openre.Record, indent int) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if indent >= 0 {
		encoder.SetIndent("", strings.Repeat(" ", indent))
	}

	if records == nil {
		records = []*openre.Record{}
	}
	return utils.WrapError(encoder.Encode(records), "encode records fail")
}

func ReadRecords(path string) ([]*openre.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open [%s] fail", path)
	}
	defer file.Close()

	records, err := DecodeRecords(file)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read [%s] fail", path)
	}
	return records, nil
}

/*
WriteRecords 先写入同目录下的临时文件再重命名，避免中途失败留下不完整的输出。
*/
func WriteRecords(path string, records []*openre.Record, indent int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return utils.WrapErrorf(err, "create directory [%s] fail", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return utils.WrapErrorf(err, "create temp file in [%s] fail", dir)
	}
	defer os.Remove(tmp.Name())

	writer := bufio.NewWriter(tmp)
	if err := EncodeRecords(writer, records, indent); err != nil {
		tmp.Close()
		return utils.WrapErrorf(err, "write [%s] fail", path)
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		return utils.WrapErrorf(err, "flush [%s] fail", path)
	}
	if err := tmp.Close(); err != nil {
		return utils.WrapErrorf(err, "close [%s] fail", tmp.Name())
	}

	return utils.WrapErrorf(os.Rename(tmp.Name(), path), "rename to [%s] fail", path)
}
