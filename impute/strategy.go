package impute

import (
	"github.com/YuminosukeSato/goimpute/pkg/errors"
)

// Strategy は欠損値の補完に使用する統計量の種類を表す
type Strategy string

const (
	// Mean は非欠損値の算術平均で補完する戦略
	Mean Strategy = "mean"
	// Median は非欠損値の中央値で補完する戦略
	Median Strategy = "median"
	// Mode は非欠損値の最頻値で補完する戦略
	Mode Strategy = "mode"
)

// ValidStrategies は利用可能な戦略名の一覧
var ValidStrategies = []string{string(Mean), string(Median), string(Mode)}

// statFunc は非欠損値のスライス（空でないことが保証される）から統計量を計算する
type statFunc func(observed []float64) float64

// statFuncs は戦略から統計量計算関数への対応表
var statFuncs = map[Strategy]statFunc{
	Mean:   meanOf,
	Median: medianOf,
	Mode:   modeOf,
}

// ParseStrategy は戦略名を検証してStrategyに変換する。
// 未定義の名前に対してはUnknownStrategyErrorを返す。
func ParseStrategy(name string) (Strategy, error) {
	s := Strategy(name)
	if _, ok := statFuncs[s]; !ok {
		return "", errors.NewUnknownStrategyError(name, ValidStrategies)
	}
	return s, nil
}
