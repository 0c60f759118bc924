package corpus

import (
	"autograph-openre/utils"
	"bufio"
	"encoding/csv"
	"io"
	"os"
	"strings"
)

/*
ReadLines 读取每行一个词的文件，忽略空行和首尾空白。
*/
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open [%s] fail", path)
	}
	defer file.Close()

	var ret []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		ret = append(ret, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, utils.WrapErrorf(err, "scan [%s] fail", path)
	}
	return ret, nil
}

/*
DecodeWordCSV 读取 word,count 形式的 CSV，只保留第一列。hasHeader 为 true 时跳过第一行。
*/
func DecodeWordCSV(r io.Reader, hasHeader bool) ([]string, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = -1

	var ret []string
	for line := 0; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, utils.WrapErrorf(err, "read csv line %d fail", line+1)
		}

		if line == 0 && hasHeader {
			continue
		}
		if len(row) == 0 || len(row[0]) == 0 {
			continue
		}
		ret = append(ret, row[0])
	}
	return ret, nil
}

func ReadWordCSV(path string, hasHeader bool) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, utils.WrapErrorf(err, "open [%s] fail", path)
	}
	defer file.Close()

	words, err := DecodeWordCSV(file, hasHeader)
	if err != nil {
		return nil, utils.WrapErrorf(err, "read [%s] fail", path)
	}
	return words, nil
}
