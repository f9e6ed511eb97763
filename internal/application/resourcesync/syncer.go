// Package resourcesync mantiene fresco un recurso JSON remoto: lo trae con timeout, lo normaliza,
// sustituye un valor vacío si falla y lo refresca en intervalo hasta que la vista se desmonta.
package resourcesync

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

// Status estado de un Snapshot.
type Status string

const (
	StatusLoading        Status = "loading"
	StatusReady          Status = "ready"
	StatusReadyWithError Status = "ready-with-error"
)

// DefaultTimeout timeout de lectura cuando el recurso no define uno.
const DefaultTimeout = 10 * time.Second

// Resource describe un recurso remoto: de dónde se lee, cómo se normaliza y qué mostrar si falla.
type Resource[T any] struct {
	Name      string
	Endpoint  string
	Timeout   time.Duration
	Interval  time.Duration // 0 = sin auto-refresh
	Normalize func(body []byte) (T, error)
	Fallback  func() T
}

// Snapshot estado observable del recurso. Payload es nil solo mientras la primera carga no terminó.
type Snapshot[T any] struct {
	Payload      *T                 `json:"payload"`
	Status       Status             `json:"status"`
	ErrorKind    domain.FailureKind `json:"error_kind,omitempty"`
	ErrorMessage string             `json:"error_message,omitempty"`
	RetryCount   int                `json:"retry_count"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// Syncer instancia de Resource Sync para un recurso y unos parámetros.
// Solo se aplica el resultado de la carga iniciada más recientemente (last-started-wins);
// después de Stop no se aplica ningún resultado.
type Syncer[T any] struct {
	res     Resource[T]
	params  url.Values
	fetcher ports.Fetcher
	sched   ports.Scheduler
	log     *logger.Logger
	now     func() time.Time

	mu      sync.Mutex
	snap    Snapshot[T]
	started uint64
	applied uint64
	stopped bool
	stopJob func()
}

// Option configura un Syncer.
type Option func(*options)

type options struct {
	log *logger.Logger
	now func() time.Time
}

// WithLogger usa log para los eventos del syncer.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithClock reemplaza time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New construye un Syncer. params puede ser nil. sched solo se usa en StartAutoRefresh.
func New[T any](res Resource[T], params url.Values, fetcher ports.Fetcher, sched ports.Scheduler, opts ...Option) *Syncer[T] {
	o := options{log: logger.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if res.Timeout <= 0 {
		res.Timeout = DefaultTimeout
	}
	return &Syncer[T]{
		res:     res,
		params:  params,
		fetcher: fetcher,
		sched:   sched,
		log:     o.log.Named("resourcesync"),
		now:     o.now,
		snap:    Snapshot[T]{Status: StatusLoading},
	}
}

// Name nombre del recurso.
func (s *Syncer[T]) Name() string { return s.res.Name }

// Snapshot devuelve el estado actual.
func (s *Syncer[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Load hace un GET acotado por el timeout del recurso y aplica el resultado.
// Nunca devuelve error: los fallos se reflejan en el Snapshot con el valor de respaldo.
func (s *Syncer[T]) Load(ctx context.Context) Snapshot[T] {
	s.mu.Lock()
	if s.stopped {
		snap := s.snap
		s.mu.Unlock()
		return snap
	}
	s.started++
	seq := s.started
	s.mu.Unlock()

	payload, err := s.fetch(ctx)
	s.apply(seq, payload, err)
	return s.Snapshot()
}

// Retry incrementa RetryCount y vuelve a cargar con los mismos parámetros.
func (s *Syncer[T]) Retry(ctx context.Context) Snapshot[T] {
	s.mu.Lock()
	if !s.stopped {
		s.snap.RetryCount++
	}
	s.mu.Unlock()
	return s.Load(ctx)
}

// StartAutoRefresh programa Load cada interval (si interval <= 0 se usa el del recurso).
// Un recurso sin intervalo no se programa.
func (s *Syncer[T]) StartAutoRefresh(interval time.Duration) error {
	if interval <= 0 {
		interval = s.res.Interval
	}
	if interval <= 0 {
		return nil
	}
	if s.sched == nil {
		return fmt.Errorf("resourcesync: %s: sin scheduler", s.res.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || s.stopJob != nil {
		return nil
	}
	stop, err := s.sched.Every(interval, func() { s.Load(context.Background()) })
	if err != nil {
		return fmt.Errorf("resourcesync: %s: programar refresco: %w", s.res.Name, err)
	}
	s.stopJob = stop
	return nil
}

// Stop cancela el refresco programado. Las cargas en vuelo terminan pero su resultado se descarta.
func (s *Syncer[T]) Stop() {
	s.mu.Lock()
	s.stopped = true
	stop := s.stopJob
	s.stopJob = nil
	s.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Stopped indica si se llamó Stop.
func (s *Syncer[T]) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}

type fetchResult struct {
	body []byte
	err  error
}

func (s *Syncer[T]) fetch(ctx context.Context) (T, error) {
	var zero T
	ctx, cancel := context.WithTimeout(ctx, s.res.Timeout)
	defer cancel()

	// La espera queda acotada por el timeout aunque el Fetcher ignore el contexto.
	ch := make(chan fetchResult, 1)
	go func() {
		body, err := s.fetcher.Get(ctx, s.res.Endpoint, s.params)
		ch <- fetchResult{body: body, err: err}
	}()

	var r fetchResult
	select {
	case r = <-ch:
	case <-ctx.Done():
		r.err = ctx.Err()
	}
	if r.err != nil {
		return zero, classify(r.err)
	}

	payload, err := s.res.Normalize(r.body)
	if err != nil {
		return zero, domain.NewFetchError(domain.FailureMalformed, 0, err)
	}
	return payload, nil
}

func classify(err error) error {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewFetchError(domain.FailureTimeout, 0, err)
	}
	return domain.NewFetchError(domain.FailureServer, 0, err)
}

func (s *Syncer[T]) apply(seq uint64, payload T, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped || seq <= s.applied {
		s.log.Debug().Str("resource", s.res.Name).Uint64("seq", seq).Msg("resultado descartado")
		return
	}
	s.applied = seq
	s.snap.UpdatedAt = s.now()

	if err != nil {
		kind := domain.KindOf(err)
		fallback := s.fallback()
		s.snap.Payload = &fallback
		s.snap.Status = StatusReadyWithError
		s.snap.ErrorKind = kind
		s.snap.ErrorMessage = kind.UserMessage()
		s.log.Warn().Err(err).Str("resource", s.res.Name).Str("kind", string(kind)).Msg("carga fallida, usando valor vacío")
		return
	}
	s.snap.Payload = &payload
	s.snap.Status = StatusReady
	s.snap.ErrorKind = ""
	s.snap.ErrorMessage = ""
}

func (s *Syncer[T]) fallback() T {
	if s.res.Fallback != nil {
		return s.res.Fallback()
	}
	var zero T
	return zero
}
