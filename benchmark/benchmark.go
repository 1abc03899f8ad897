// Package benchmark measures the throughput of binding generation by running
// the generator in a loop from concurrent workers.
package benchmark

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/renameio"
	"github.com/pkg/errors"

	"github.com/canonical/go-wlscan/internal/protocol"
)

type Benchmark struct {
	protocol *protocol.Protocol
	dir      string
	options  *options
	workers  []*worker
}

func createWorkers(p *protocol.Protocol, o *options) []*worker {
	workers := make([]*worker, o.nWorkers)
	for i := 0; i < o.nWorkers; i++ {
		workers[i] = newWorker(p, o)
	}
	return workers
}

// New creates a benchmark generating the bindings of p, writing its results
// under dir. The protocol is shared by all workers and must not be modified
// while the benchmark runs.
func New(p *protocol.Protocol, dir string, options ...Option) (*Benchmark, error) {
	o := defaultOptions()
	for _, option := range options {
		option(o)
	}
	if o.nWorkers < 1 {
		return nil, errors.Errorf("need at least one worker, got %d", o.nWorkers)
	}
	if o.duration <= 0 {
		return nil, errors.Errorf("invalid duration %s", o.duration)
	}
	if err := p.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid protocol %s", p.Name)
	}

	bm := &Benchmark{
		protocol: p,
		dir:      dir,
		options:  o,
		workers:  createWorkers(p, o),
	}

	return bm, nil
}

func (bm *Benchmark) runWorkload(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(len(bm.workers))
	for _, worker := range bm.workers {
		go worker.run(ctx, wg.Done)
	}
	wg.Wait()
}

func reportName(id int, work string, now time.Time) string {
	return fmt.Sprintf("%d-%s-%d", id, work, now.Unix())
}

// Returns a map of filename to filecontent
func (bm *Benchmark) reportFiles() map[string]string {
	now := time.Now()
	allReports := make(map[string]string)
	for i, worker := range bm.workers {
		reports := worker.report()
		for w, report := range reports {
			file := reportName(i, w, now)
			allReports[file] = report.String()
		}
	}
	return allReports
}

// ResultsDir returns the directory the per-worker reports are written to.
func (bm *Benchmark) ResultsDir() string {
	return filepath.Join(bm.dir, "results")
}

func (bm *Benchmark) reportResults() error {
	dir := bm.ResultsDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	reports := bm.reportFiles()
	for filename, content := range reports {
		if err := renameio.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
			return errors.Wrapf(err, "write %s in %s", filename, dir)
		}
	}

	return nil
}

// Run generates bindings from every worker until the configured duration
// elapses or ctx is done, then writes one report file per worker and kind of
// work.
func (bm *Benchmark) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, bm.options.duration)
	defer cancel()

	bm.runWorkload(ctx)

	return bm.reportResults()
}

// Summary merges the measurements of all workers, by kind of work. Kinds are
// "total" for whole iterations and the name of each generation stage.
func (bm *Benchmark) Summary() map[string]Report {
	merged := newTracker()
	for _, worker := range bm.workers {
		worker.tracker.lock.RLock()
		for w, ms := range worker.tracker.measurements {
			merged.measurements[w] = append(merged.measurements[w], ms...)
		}
		for w, es := range worker.tracker.errors {
			merged.errors[w] = append(merged.errors[w], es...)
		}
		worker.tracker.lock.RUnlock()
	}
	return merged.report()
}

// Works returns the kinds of work of a summary, sorted.
func Works(summary map[string]Report) []string {
	works := make([]string, 0, len(summary))
	for w := range summary {
		works = append(works, w)
	}
	sort.Strings(works)
	return works
}
