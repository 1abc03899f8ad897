package benchmark

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Workload selects what each iteration of a worker does.
type Workload int32

const (
	// Generate runs the whole pipeline, formatting included.
	Generate Workload = iota
	// Emit skips formatting of the output.
	Emit Workload = iota
)

func (w Workload) String() string {
	switch w {
	case Generate:
		return "generate"
	case Emit:
		return "emit"
	default:
		return "unknown"
	}
}

// ParseWorkload returns the workload with the given name, case-insensitive.
func ParseWorkload(workload string) (Workload, error) {
	switch strings.ToLower(workload) {
	case "generate":
		return Generate, nil
	case "emit":
		return Emit, nil
	default:
		return Generate, errors.Errorf("unknown workload %q", workload)
	}
}

type Option func(*options)
type options struct {
	workload Workload
	duration time.Duration
	nWorkers int
}

// WithWorkload sets the workload of the benchmark.
func WithWorkload(workload Workload) Option {
	return func(options *options) {
		options.workload = workload
	}
}

// WithDuration sets the duration of the benchmark.
func WithDuration(d time.Duration) Option {
	return func(options *options) {
		options.duration = d
	}
}

// WithWorkers sets the number of workers of the benchmark.
func WithWorkers(n int) Option {
	return func(options *options) {
		options.nWorkers = n
	}
}

func defaultOptions() *options {
	return &options{
		duration: time.Minute,
		nWorkers: 1,
		workload: Generate,
	}
}
