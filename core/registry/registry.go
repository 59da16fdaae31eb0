package registry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"pokemasdb/core/aggregate"
	"pokemasdb/core/source"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotInitialized is returned when no caches are published.
	ErrNotInitialized = errors.New("caches are not initialized")
	// ErrInvalidated is returned by a build whose result was discarded
	// because Invalidate ran while it was in flight.
	ErrInvalidated = errors.New("cache build was invalidated")
)

const meterName = "pokemasdb/core/registry"

// Option configures a Registry.
type Option func(*Registry)

// WithConcurrency bounds the number of trainer records fetched at once.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithMeter records build metrics on meter instead of the global provider.
func WithMeter(meter metric.Meter) Option {
	return func(r *Registry) {
		r.meter = meter
	}
}

// Registry owns the published caches and their lifecycle.
type Registry struct {
	src         source.Source
	logger      *zap.Logger
	concurrency int
	meter       metric.Meter
	metrics     *metrics

	// runMu serializes builds.
	runMu  sync.Mutex
	ctl    atomic.Uint64
	caches atomic.Pointer[aggregate.Caches]
	last   atomic.Pointer[report]

	group singleflight.Group
}

type report struct {
	finishedAt time.Time
	took       time.Duration
	bytes      int64
	trainers   int
	err        error
}

// New creates an uninitialized registry reading from src.
func New(src source.Source, logger *zap.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Registry{src: src, logger: logger, concurrency: 8}
	for _, opt := range opts {
		opt(r)
	}
	if r.meter == nil {
		r.meter = otel.Meter(meterName)
	}
	m, err := newMetrics(r.meter)
	if err != nil {
		logger.Warn("Failed to create cache metrics", zap.Error(err))
	}
	r.metrics = m
	return r
}

func (r *Registry) control() control {
	return control(r.ctl.Load())
}

// State reports the current lifecycle state.
func (r *Registry) State() State {
	return r.control().state()
}

// Generation is bumped by every Invalidate.
func (r *Registry) Generation() uint64 {
	return r.control().generation()
}

// Instance returns the published caches. It never blocks.
func (r *Registry) Instance() (*aggregate.Caches, bool) {
	c := r.caches.Load()
	return c, c != nil
}

// Caches returns the published caches or ErrNotInitialized.
func (r *Registry) Caches() (*aggregate.Caches, error) {
	c, ok := r.Instance()
	if !ok {
		return nil, ErrNotInitialized
	}
	return c, nil
}

// Initialize builds and publishes the caches. It returns immediately when the
// registry is already Ready or another build has claimed it. On failure the
// registry returns to Uninitialized and may be retried.
func (r *Registry) Initialize(ctx context.Context) error {
	var gen uint64
	for {
		cur := r.control()
		if cur.state() != Uninitialized {
			return nil
		}
		if r.ctl.CompareAndSwap(uint64(cur), uint64(pack(cur.generation(), Initializing))) {
			gen = cur.generation()
			break
		}
	}

	r.runMu.Lock()
	defer r.runMu.Unlock()

	claimed := pack(gen, Initializing)
	if r.control() != claimed {
		// Invalidated while waiting for the previous build.
		return ErrInvalidated
	}

	caches, err := r.build(ctx)
	if err != nil {
		r.ctl.CompareAndSwap(uint64(claimed), uint64(pack(gen, Uninitialized)))
		return err
	}

	r.caches.Store(caches)
	if !r.ctl.CompareAndSwap(uint64(claimed), uint64(pack(gen, Ready))) {
		r.caches.CompareAndSwap(caches, nil)
		r.logger.Info("Discarded cache build after invalidation", zap.Uint64("generation", gen))
		return ErrInvalidated
	}
	return nil
}

func (r *Registry) build(ctx context.Context) (*aggregate.Caches, error) {
	start := time.Now()
	rep := &report{}
	defer func() {
		rep.finishedAt = time.Now()
		rep.took = rep.finishedAt.Sub(start)
		r.last.Store(rep)
		r.metrics.record(context.WithoutCancel(ctx), r.src.Name(), rep.bytes, rep.took, rep.err)
	}()

	res, err := source.FetchAll(ctx, r.src, r.concurrency, r.logger)
	if err != nil {
		rep.err = fmt.Errorf("failed to fetch trainers: %w", err)
		r.logger.Error("Cache build failed", zap.String("source", r.src.Name()), zap.Error(rep.err))
		return nil, rep.err
	}
	rep.bytes = res.Bytes
	rep.trainers = len(res.Trainers)

	caches, err := aggregate.Build(res.Trainers, aggregate.WithLogger(r.logger))
	if err != nil {
		rep.err = fmt.Errorf("failed to aggregate trainers: %w", err)
		r.logger.Error("Cache build failed", zap.String("source", r.src.Name()), zap.Error(rep.err))
		return nil, rep.err
	}

	sizes := caches.Sizes()
	r.logger.Info("Caches built",
		zap.Int("trainers", sizes[aggregate.KindTrainer]),
		zap.Int("pokemon", sizes[aggregate.KindPokemon]),
		zap.Int("moves", sizes[aggregate.KindMove]),
		zap.Int("skills", sizes[aggregate.KindSkill]),
		zap.String("downloaded", humanize.Bytes(uint64(res.Bytes))),
		zap.Duration("took", time.Since(start)),
	)
	return caches, nil
}

// Invalidate drops the published caches. A build in flight when Invalidate
// runs does not publish its result.
func (r *Registry) Invalidate() {
	for {
		cur := r.control()
		if r.ctl.CompareAndSwap(uint64(cur), uint64(pack(cur.generation()+1, Uninitialized))) {
			break
		}
	}
	r.caches.Store(nil)
}

// Reinitialize invalidates and then builds again.
func (r *Registry) Reinitialize(ctx context.Context) error {
	r.Invalidate()
	return r.Initialize(ctx)
}

// Submit starts a background reinitialize and returns a handle to it.
// Submissions made while one is running share that run. The build does not
// stop when ctx is cancelled.
func (r *Registry) Submit(ctx context.Context) *Task {
	ctx = context.WithoutCancel(ctx)
	t := &Task{done: make(chan struct{})}
	ch := r.group.DoChan("reinitialize", func() (any, error) {
		return nil, r.Reinitialize(ctx)
	})
	go func() {
		res := <-ch
		t.err = res.Err
		t.shared = res.Shared
		close(t.done)
	}()
	return t
}
