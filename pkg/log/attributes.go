// Package log defines standard attribute keys for imputation operations.
//
// Using these keys consistently enables filtering and analysis of structured
// logs across the library. The keys follow a hierarchical naming convention
// (e.g., "model.name", "data.rows").

package log

// Model and Operation Context
const (
	// ModelNameKey identifies the type of transformer.
	// Example: "SimpleImputer"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform"
	OperationKey = "ml.operation"

	// StrategyKey names the imputation strategy in use.
	// Standard values: "mean", "median", "mode"
	StrategyKey = "impute.strategy"

	// AxisKey records the axis the transformer operates along.
	AxisKey = "impute.axis"
)

// Data Shape and Characteristics
const (
	// RowsKey indicates the number of rows (samples) in the dataset.
	RowsKey = "data.rows"

	// ColsKey indicates the number of columns (features) in the dataset.
	ColsKey = "data.cols"

	// MissingKey indicates the number of missing cells observed.
	MissingKey = "data.missing"
)
