package verify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/xlog"
)

const (
	DefaultRounds = 100
)

type PropertyResult struct {
	Name   string `json:"name"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
}

// Report is ordered by property name.
type Report struct {
	Seed    uint64           `json:"seed"`
	Rounds  int              `json:"rounds"`
	Results []PropertyResult `json:"results"`
}

func (r Report) Passed() int {
	return lo.SumBy(r.Results, func(res PropertyResult) int {
		return res.Passed
	})
}

func (r Report) Failed() int {
	return lo.SumBy(r.Results, func(res PropertyResult) int {
		return res.Failed
	})
}

func (r Report) FailedProperties() []string {
	return lo.FilterMap(r.Results, func(res PropertyResult, _ int) (string, bool) {
		return res.Name, res.Failed > 0
	})
}

func (r Report) String() string {
	builder := &strings.Builder{}
	_, _ = fmt.Fprintf(builder, "seed=%d rounds=%d passed=%d failed=%d\n", r.Seed, r.Rounds, r.Passed(), r.Failed())
	for _, res := range r.Results {
		_, _ = fmt.Fprintf(builder, "%-28s passed=%d failed=%d\n", res.Name, res.Passed, res.Failed)
	}
	return builder.String()
}

type Runner struct {
	pool     *ants.Pool
	poolSize int
	rounds   int
	seed     uint64
	logger   xlog.XLogger
	meter    metric.Meter
	stats    *runnerStats
}

type RunnerOption func(r *Runner) error

func WithRunnerPoolSize(size int) RunnerOption {
	return func(r *Runner) error {
		if size <= 0 {
			return infra.NewErrorStack("[verify] runner pool size must be positive")
		}
		r.poolSize = size
		return nil
	}
}

func WithRunnerRounds(rounds int) RunnerOption {
	return func(r *Runner) error {
		if rounds <= 0 {
			return infra.NewErrorStack("[verify] runner rounds must be positive")
		}
		r.rounds = rounds
		return nil
	}
}

func WithRunnerSeed(seed uint64) RunnerOption {
	return func(r *Runner) error {
		r.seed = seed
		return nil
	}
}

func WithRunnerLogger(logger xlog.XLogger) RunnerOption {
	return func(r *Runner) error {
		if logger == nil {
			return infra.NewErrorStack("[verify] nil runner logger")
		}
		r.logger = logger
		return nil
	}
}

func WithRunnerMeter(meter metric.Meter) RunnerOption {
	return func(r *Runner) error {
		if meter == nil {
			return infra.NewErrorStack("[verify] nil runner meter")
		}
		r.meter = meter
		return nil
	}
}

func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{
		poolSize: runtime.NumCPU(),
		rounds:   DefaultRounds,
		seed:     uint64(time.Now().UnixNano()),
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(r); err != nil {
			return nil, err
		}
	}
	if r.logger == nil {
		r.logger = xlog.NewXLogger(
			xlog.WithXLoggerStdErrWriter(),
			xlog.WithXLoggerLevel(xlog.LogLevelInfo),
		)
	}
	if r.meter == nil {
		r.meter = otel.Meter(RunnerStatsName)
	}
	r.stats = newRunnerStats(r.meter)
	p, err := ants.NewPool(
		r.poolSize,
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsXLogger(r.logger)),
	)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[verify] unable to create runner pool")
	}
	r.pool = p
	return r, nil
}

func (r *Runner) Seed() uint64 {
	return r.seed
}

func (r *Runner) Rounds() int {
	return r.rounds
}

// Release frees the worker pool. The runner is unusable afterwards.
func (r *Runner) Release() {
	if r == nil || r.pool == nil {
		return
	}
	r.pool.Release()
}

type checkOutcome struct {
	property string
	round    int
	err      error
}

// Run executes rounds of every property on the pool. Each (property, round)
// pair draws its fixtures from a PCG stream derived from the runner seed,
// so a seed reproduces the whole run. Violations are combined into the
// returned error; ctx cancellation stops further submissions.
func (r *Runner) Run(ctx context.Context, props ...Property) (Report, error) {
	report := Report{
		Seed:    r.seed,
		Rounds:  r.rounds,
		Results: []PropertyResult{},
	}
	if len(props) == 0 {
		return report, nil
	}

	var (
		lock    sync.Mutex
		wg      sync.WaitGroup
		merr    error
		results = make(map[string]*PropertyResult, len(props))
	)
	for _, p := range props {
		if _, ok := results[p.Name]; !ok {
			results[p.Name] = &PropertyResult{Name: p.Name}
		}
	}
	collect := func(out checkOutcome) {
		lock.Lock()
		defer lock.Unlock()
		res := results[out.property]
		if out.err == nil {
			res.Passed++
			return
		}
		res.Failed++
		merr = multierr.Append(merr, out.err)
	}

submit:
	for idx, p := range props {
		if p.Check == nil {
			lock.Lock()
			merr = multierr.Append(merr, infra.NewErrorStack("[verify] property "+p.Name+" has no check"))
			lock.Unlock()
			continue
		}
		for round := 0; round < r.rounds; round++ {
			if ctx.Err() != nil {
				break submit
			}
			prop, pIdx, rIdx := p, idx, round
			wg.Add(1)
			err := r.pool.Submit(func() {
				defer wg.Done()
				out := r.check(ctx, prop, pIdx, rIdx)
				if out.err != nil && ctx.Err() != nil {
					// Cancelled mid check, not a violation.
					return
				}
				collect(out)
			})
			if err != nil {
				wg.Done()
				lock.Lock()
				merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, "[verify] submit check failed"))
				lock.Unlock()
				break submit
			}
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, "[verify] run interrupted"))
	}
	report.Results = lo.MapToSlice(results, func(_ string, res *PropertyResult) PropertyResult {
		return *res
	})
	slices.SortFunc(report.Results, func(a, b PropertyResult) int {
		return strings.Compare(a.Name, b.Name)
	})
	r.logger.InfoContext(ctx, "verify run finished",
		zap.Uint64("seed", report.Seed),
		zap.Int("rounds", report.Rounds),
		zap.Int("passed", report.Passed()),
		zap.Int("failed", report.Failed()),
	)
	return report, merr
}

func (r *Runner) check(ctx context.Context, prop Property, pIdx, round int) (out checkOutcome) {
	out = checkOutcome{property: prop.Name, round: round}
	rng := rand.New(rand.NewPCG(r.seed, uint64(pIdx)<<32|uint64(round)))
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			out.err = infra.NewErrorStack(fmt.Sprintf("[verify] %s panicked: %v", prop.Name, rec))
		}
		r.stats.RecordCheck(ctx, prop.Name, out.err == nil, float64(time.Since(start).Microseconds())/1e3)
		if out.err != nil && ctx.Err() == nil {
			r.logger.ErrorStack(out.err, "property check failed",
				zap.String("property", prop.Name),
				zap.Int("round", round),
				zap.Uint64("seed", r.seed),
			)
		}
	}()
	out.err = prop.Check(ctx, rng)
	return out
}
