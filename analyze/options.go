package analyze

// WithMethod sets the outlier detection method.
func WithMethod(method Method) func(*Options) {
	return func(opts *Options) {
		opts.Method = method
	}
}

// WithThreshold sets the outlier decision threshold.
func WithThreshold(threshold float64) func(*Options) {
	return func(opts *Options) {
		opts.Threshold = threshold
	}
}
