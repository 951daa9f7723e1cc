package impute

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/YuminosukeSato/goimpute/core/model"
	"github.com/YuminosukeSato/goimpute/core/parallel"
	"github.com/YuminosukeSato/goimpute/pkg/errors"
	"github.com/YuminosukeSato/goimpute/pkg/log"
	"gonum.org/v1/gonum/mat"
)

var _ model.Transformer = (*SimpleImputer)(nil)

// SimpleImputer はscikit-learn互換の欠損値補完器
// 列ごとに統計量（平均・中央値・最頻値）を計算し、欠損セル(NaN)をその値で埋める
type SimpleImputer struct {
	model.BaseEstimator

	// Strategy は補完に使用する統計量の種類
	Strategy Strategy

	// Axis は操作方向。列方向(0)のみサポート
	Axis int

	// NFeatures は学習時の特徴量の数
	NFeatures int

	// statistics は列ごとの学習済み統計量
	statistics []float64

	// parallelThreshold はこの列数を超えた場合に並列でFitする閾値
	parallelThreshold int
}

// NewSimpleImputer は新しいSimpleImputerを作成する
//
// パラメータ:
//   - strategy: 補完戦略名 ("mean" | "median" | "mode")
//   - opts: オプション (WithAxis, WithParallelThreshold)
//
// 戻り値:
//   - *SimpleImputer: 新しいSimpleImputerインスタンス
//   - error: 戦略名が未定義、または軸がサポート外の場合
//
// 使用例:
//
//	imputer, err := impute.NewSimpleImputer("mean")
//	if err != nil {
//	    return err
//	}
//	filled, err := imputer.FitTransform(X)
func NewSimpleImputer(strategy string, opts ...Option) (*SimpleImputer, error) {
	s, err := ParseStrategy(strategy)
	if err != nil {
		return nil, err
	}

	imp := &SimpleImputer{
		Strategy:          s,
		Axis:              0,
		parallelThreshold: defaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(imp)
	}

	if imp.Axis != 0 {
		return nil, errors.NewUnsupportedAxisError("NewSimpleImputer", imp.Axis)
	}
	return imp, nil
}

// Fit は各列の非欠損値から統計量を学習する
//
// 全セルが欠損している列が存在する場合はEmptyColumnErrorを返す。
// 入力行列は変更されない。
//
// パラメータ:
//   - X: 学習データ (n_samples × n_features の行列、欠損セルはNaN)
//
// 戻り値:
//   - error: エラーが発生した場合
func (s *SimpleImputer) Fit(X mat.Matrix) (err error) {
	defer errors.Recover(&err, "SimpleImputer.Fit")

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("SimpleImputer.Fit", "empty data", errors.ErrEmptyData)
	}

	fn := statFuncs[s.Strategy]
	statistics := make([]float64, c)
	missingPerCol := make([]int, c)

	// 列ごとの統計量計算は独立なので、列数が多い場合は並列化する
	err = parallel.ParallelizeWithErrors(c, s.parallelThreshold, func(j int) error {
		observed, missing := observedColumn(X, j)
		missingPerCol[j] = missing
		if len(observed) == 0 {
			return errors.NewEmptyColumnError("SimpleImputer.Fit", j, string(s.Strategy))
		}
		statistics[j] = fn(observed)
		return nil
	})
	if err != nil {
		return err
	}

	totalMissing := 0
	for _, m := range missingPerCol {
		totalMissing += m
	}
	slog.Debug("fitted imputation statistics",
		slog.String(log.ModelNameKey, "SimpleImputer"),
		slog.String(log.OperationKey, "fit"),
		slog.String(log.StrategyKey, string(s.Strategy)),
		slog.Int(log.AxisKey, s.Axis),
		slog.Int(log.RowsKey, r),
		slog.Int(log.ColsKey, c),
		slog.Int(log.MissingKey, totalMissing),
	)

	s.NFeatures = c
	s.statistics = statistics
	s.SetFitted()
	return nil
}

// Transform は学習済みの統計量で欠損セルを補完した新しい行列を返す
//
// 入力行列は変更されない。列jの欠損セルはStatistics()[j]で置き換えられ、
// 非欠損セルはそのままコピーされる。
//
// パラメータ:
//   - X: 変換するデータ（列数はFitしたデータと一致すること）
//
// 戻り値:
//   - mat.Matrix: 補完されたデータ
//   - error: 未学習の場合、または列数が一致しない場合
func (s *SimpleImputer) Transform(X mat.Matrix) (result mat.Matrix, err error) {
	defer errors.Recover(&err, "SimpleImputer.Transform")

	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("SimpleImputer", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("SimpleImputer.Transform", s.NFeatures, c, 1)
	}

	return fillMissing(X, r, c, s.statistics), nil
}

// FitTransform は学習と変換を同時に実行する
//
// パラメータ:
//   - X: 学習・変換するデータ
//
// 戻り値:
//   - mat.Matrix: 補完されたデータ
//   - error: エラーが発生した場合
func (s *SimpleImputer) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Statistics は学習済みの列ごとの統計量のコピーを返す。
// 未学習の場合はnilを返す。
func (s *SimpleImputer) Statistics() []float64 {
	if !s.IsFitted() {
		return nil
	}
	out := make([]float64, len(s.statistics))
	copy(out, s.statistics)
	return out
}

// GetParams は補完器のパラメータを取得する
func (s *SimpleImputer) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"strategy": string(s.Strategy),
		"axis":     s.Axis,
	}
}

// String は補完器の文字列表現を返す
func (s *SimpleImputer) String() string {
	if !s.IsFitted() {
		return fmt.Sprintf("SimpleImputer(strategy=%s, axis=%d)", s.Strategy, s.Axis)
	}
	return fmt.Sprintf("SimpleImputer(strategy=%s, axis=%d, n_features=%d)",
		s.Strategy, s.Axis, s.NFeatures)
}

// ImputeWith は純粋関数形式の変換。statisticsの長さはXの列数と一致すること。
// 列jの欠損セルをstatistics[j]で置き換えた新しい行列を返す。
func ImputeWith(X mat.Matrix, statistics []float64) (mat.Matrix, error) {
	r, c := X.Dims()
	if c != len(statistics) {
		return nil, errors.NewDimensionError("ImputeWith", len(statistics), c, 1)
	}
	return fillMissing(X, r, c, statistics), nil
}

// fillMissing は欠損セルを列ごとの統計量で埋めた新しい行列を作る
func fillMissing(X mat.Matrix, r, c int, statistics []float64) *mat.Dense {
	result := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if math.IsNaN(v) {
				v = statistics[j]
			}
			result.Set(i, j, v)
		}
	}
	return result
}
