package benchmark

import (
	"context"
	"time"

	"github.com/canonical/go-wlscan/internal/generator"
	"github.com/canonical/go-wlscan/internal/protocol"
	"github.com/canonical/go-wlscan/tracing"
)

// Work name of a whole iteration.
const total = "total"

// A worker generates the bindings of a protocol in a loop, tracking the
// duration of every iteration and of each of its stages.
type worker struct {
	workload Workload
	protocol *protocol.Protocol
	tracker  *tracker
}

// Run one generation and record it.
func (w *worker) doWork(ctx context.Context) {
	var err error
	ctx = tracing.WithTracer(ctx, w.tracker)

	options := []generator.Option{}
	if w.workload == Emit {
		options = append(options, generator.WithFormat(false))
	}

	defer w.tracker.measure(time.Now(), total, &err)
	_, err = generator.Generate(ctx, w.protocol, options...)
}

func (w *worker) run(ctx context.Context, done func()) {
	defer done()
	for {
		if ctx.Err() != nil {
			return
		}

		w.doWork(ctx)
	}
}

func (w *worker) report() map[string]Report {
	return w.tracker.report()
}

func newWorker(p *protocol.Protocol, o *options) *worker {
	return &worker{
		workload: o.workload,
		protocol: p,
		tracker:  newTracker(),
	}
}
