package shell

// Option that can be used to tweak shell parameters.
type Option func(*options)

// WithFormat specifies the output format of the show command, either
// "tabular" (the default) or "yaml".
func WithFormat(format string) Option {
	return func(options *options) {
		options.Format = format
	}
}

type options struct {
	Format string
}

// Create a shell options object with sane defaults.
func defaultOptions() *options {
	return &options{
		Format: formatTabular,
	}
}

const (
	formatTabular = "tabular"
	formatYAML    = "yaml"
)
