package impute

// defaultParallelThreshold is the column count above which Fit computes
// column statistics in parallel.
const defaultParallelThreshold = 64

// Option is a function that configures SimpleImputer
type Option func(*SimpleImputer)

// WithAxis sets the axis to operate along. Only column-wise operation
// (axis=0) is supported; any other value makes construction fail.
func WithAxis(axis int) Option {
	return func(s *SimpleImputer) {
		s.Axis = axis
	}
}

// WithParallelThreshold sets the column count above which Fit runs in parallel
func WithParallelThreshold(n int) Option {
	return func(s *SimpleImputer) {
		s.parallelThreshold = n
	}
}
