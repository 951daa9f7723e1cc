package impute

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/goimpute/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// missingTokens は欠損マーカーとして扱う文字列表現
var missingTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
}

// FromRecords は文字列レコード（CSVフィールドなど）をNaN欠損マーカー付きの
// 行列に変換する。
//
// 空文字列および "NA", "N/A", "NaN", "null"（大文字小文字を区別しない）は
// 欠損セルとしてNaNに変換される。それ以外の数値に変換できないセルは入力
// エラーとしてValueErrorを返す。行の長さが揃っていない場合はDimensionError
// を返す。欠損マーカーを注入した場合はDataConversionWarningを発行する。
//
// パラメータ:
//   - records: 行ごとの文字列フィールド
//
// 戻り値:
//   - *mat.Dense: 変換された行列
//   - error: エラーが発生した場合
func FromRecords(records [][]string) (*mat.Dense, error) {
	if len(records) == 0 || len(records[0]) == 0 {
		return nil, errors.NewModelError("FromRecords", "empty data", errors.ErrEmptyData)
	}

	rows := len(records)
	cols := len(records[0])
	data := make([]float64, 0, rows*cols)
	converted := 0

	for i, record := range records {
		if len(record) != cols {
			return nil, errors.NewDimensionError("FromRecords", cols, len(record), 1)
		}
		for j, field := range record {
			if _, ok := missingTokens[strings.ToLower(strings.TrimSpace(field))]; ok {
				data = append(data, math.NaN())
				converted++
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, errors.NewValueError("FromRecords",
					fmt.Sprintf("cell (%d, %d) is not numeric: %q", i, j, field))
			}
			data = append(data, v)
		}
	}

	if converted > 0 {
		errors.Warn(errors.NewDataConversionWarning("string", "float64",
			fmt.Sprintf("%d missing cell(s) converted to NaN", converted)))
	}

	return mat.NewDense(rows, cols, data), nil
}
