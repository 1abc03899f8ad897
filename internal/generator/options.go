package generator

import (
	"github.com/canonical/go-wlscan/logging"
)

// DefaultRuntimeImport is the import path of the runtime package generated
// code depends on.
const DefaultRuntimeImport = "github.com/canonical/go-wlscan/client"

// DefaultRootInterface is the name of the interface whose proxy represents
// the connection itself.
const DefaultRootInterface = "wl_display"

// Option can be used to tweak generation parameters.
type Option func(*options)

// WithPackage sets the package name of the generated file. The default is
// the protocol name, lower-cased with underscores removed.
func WithPackage(name string) Option {
	return func(options *options) {
		options.Package = name
	}
}

// WithRuntimeImport sets the import path of the runtime package.
func WithRuntimeImport(path string) Option {
	return func(options *options) {
		options.RuntimeImport = path
	}
}

// WithRootInterface sets the name of the root interface.
//
// The root interface's events are delivered by the native layer through an
// always-on path: its proxies register no dispatcher, do not publish their
// event queue as user data and never destroy their native handle.
func WithRootInterface(name string) Option {
	return func(options *options) {
		options.RootInterface = name
	}
}

// WithLogFunc sets a custom logging function.
func WithLogFunc(log logging.Func) Option {
	return func(options *options) {
		options.Log = log
	}
}

// WithFormat controls whether the output is run through gofmt. The default
// is true.
func WithFormat(format bool) Option {
	return func(options *options) {
		options.Format = format
	}
}

type options struct {
	Package       string
	RuntimeImport string
	RootInterface string
	Log           logging.Func
	Format        bool
}

// Create a generator options object with sane defaults.
func defaultOptions() *options {
	return &options{
		RuntimeImport: DefaultRuntimeImport,
		RootInterface: DefaultRootInterface,
		Log:           logging.Discard(),
		Format:        true,
	}
}
