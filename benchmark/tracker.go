package benchmark

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/canonical/go-wlscan/tracing"
)

func durToMs(d time.Duration) string {
	ms := int64(d / time.Millisecond)
	rest := int64(d % time.Millisecond)
	return fmt.Sprintf("%d.%06d", ms, rest)
}

type measurement struct {
	start    time.Time
	duration time.Duration
}

func (m measurement) String() string {
	return fmt.Sprintf("%v %v", m.start.UnixNano(), durToMs(m.duration))
}

type measurementErr struct {
	start time.Time
	err   error
}

func (m measurementErr) String() string {
	return fmt.Sprintf("%v %v", m.start.UnixNano(), m.err)
}

// Measurements are keyed by work, either "total" for a whole iteration or
// the name of a generation stage.
type tracker struct {
	lock         sync.RWMutex
	measurements map[string][]measurement
	errors       map[string][]measurementErr
}

// Report summarizes the measurements of one kind of work.
type Report struct {
	N   int
	Err int
	Avg time.Duration
	Max time.Duration
	Min time.Duration

	total        time.Duration
	measurements []measurement
	errors       []measurementErr
}

func (r Report) String() string {
	var msb strings.Builder
	for _, m := range r.measurements {
		fmt.Fprintf(&msb, "%s\n", m)
	}

	var esb strings.Builder
	for _, e := range r.errors {
		fmt.Fprintf(&esb, "%s\n", e)
	}

	return fmt.Sprintf("n %d\n"+
		"n_err %d\n"+
		"avg [ms] %s\n"+
		"max [ms] %s\n"+
		"min [ms] %s\n"+
		"measurements [timestamp in ns] [ms]\n%s\n"+
		"errors\n%s\n",
		r.N, r.Err, durToMs(r.Avg),
		durToMs(r.Max), durToMs(r.Min),
		msb.String(), esb.String())
}

func (t *tracker) measure(start time.Time, work string, err *error) {
	t.lock.Lock()
	defer t.lock.Unlock()
	duration := time.Since(start)
	if *err == nil {
		m := measurement{start, duration}
		t.measurements[work] = append(t.measurements[work], m)
	} else {
		e := measurementErr{start, *err}
		t.errors[work] = append(t.errors[work], e)
	}
}

func (t *tracker) report() map[string]Report {
	t.lock.RLock()
	defer t.lock.RUnlock()
	reports := make(map[string]Report)
	works := make(map[string]bool)
	for w := range t.measurements {
		works[w] = true
	}
	for w := range t.errors {
		works[w] = true
	}
	for w := range works {
		report := Report{
			N:            len(t.measurements[w]),
			Err:          len(t.errors[w]),
			Min:          time.Duration(math.MaxInt64),
			measurements: t.measurements[w],
			errors:       t.errors[w],
		}

		for _, m := range t.measurements[w] {
			report.total += m.duration
			if m.duration < report.Min {
				report.Min = m.duration
			}
			if m.duration > report.Max {
				report.Max = m.duration
			}
		}

		if report.N > 0 {
			report.Avg = report.total / time.Duration(report.N)
		} else {
			report.Min = 0
		}
		reports[w] = report
	}

	return reports
}

// Start implements tracing.Tracer, recording every generation stage as its
// own kind of work.
func (t *tracker) Start(ctx context.Context, name, detail string) (context.Context, tracing.Span) {
	return ctx, &stageSpan{tracker: t, name: name, start: time.Now()}
}

type stageSpan struct {
	tracker *tracker
	name    string
	start   time.Time
}

func (s *stageSpan) End() {
	var err error
	s.tracker.measure(s.start, s.name, &err)
}

func newTracker() *tracker {
	return &tracker{
		lock:         sync.RWMutex{},
		measurements: make(map[string][]measurement),
		errors:       make(map[string][]measurementErr),
	}
}
