package tgmd

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	// Reconstruct enables turning entities back into inline markers.
	Reconstruct bool
	// UTF16Limit measures the split limit in UTF-16 code units instead of code points.
	UTF16Limit bool
	Config     *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithReconstruction sets whether entities are turned into markdown markers.
func WithReconstruction(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Reconstruct = enable
	}
}

// WithUTF16Limit sets whether the split limit counts UTF-16 code units.
func WithUTF16Limit(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.UTF16Limit = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Reconstruct: true,
		Config:      DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
