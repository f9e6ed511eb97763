package resourcesync_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/application/resourcesync"
	"github.com/jhoicas/smart-distribution/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type counter struct {
	Value int `json:"value"`
}

// fakeFetcher responde con la función get; Post no se usa.
type fakeFetcher struct {
	get func(ctx context.Context, endpoint string, params url.Values) ([]byte, error)
}

func (f *fakeFetcher) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	return f.get(ctx, endpoint, params)
}

func (f *fakeFetcher) Post(context.Context, string, any) error { return nil }

func static(body string) *fakeFetcher {
	return &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) { return []byte(body), nil }}
}

func failing(err error) *fakeFetcher {
	return &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) { return nil, err }}
}

// fakeScheduler guarda el trabajo para dispararlo a mano.
type fakeScheduler struct {
	mu       sync.Mutex
	job      func()
	interval time.Duration
	stopped  bool
}

func (s *fakeScheduler) Every(interval time.Duration, job func()) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.job, s.interval = job, interval
	return func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()
	}, nil
}

func (s *fakeScheduler) tick() {
	s.mu.Lock()
	job, stopped := s.job, s.stopped
	s.mu.Unlock()
	if job != nil && !stopped {
		job()
	}
}

func counterResource(timeout time.Duration) resourcesync.Resource[counter] {
	return resourcesync.Resource[counter]{
		Name:     "counter",
		Endpoint: "/webhook/counter",
		Timeout:  timeout,
		Interval: 30 * time.Second,
		Normalize: func(b []byte) (counter, error) {
			var c counter
			err := json.Unmarshal(b, &c)
			return c, err
		},
		Fallback: func() counter { return counter{} },
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Load
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_EstadoInicialLoading(t *testing.T) {
	s := resourcesync.New(counterResource(time.Second), nil, static(`{"value":1}`), nil)
	snap := s.Snapshot()
	assert.Equal(t, resourcesync.StatusLoading, snap.Status)
	assert.Nil(t, snap.Payload)
}

func TestLoad_Exito(t *testing.T) {
	var gotEndpoint string
	var gotParams url.Values
	f := &fakeFetcher{get: func(_ context.Context, endpoint string, params url.Values) ([]byte, error) {
		gotEndpoint, gotParams = endpoint, params
		return []byte(`{"value":7}`), nil
	}}
	s := resourcesync.New(counterResource(time.Second), url.Values{"riderId": {"rider1"}}, f, nil)

	snap := s.Load(context.Background())
	require.NotNil(t, snap.Payload)
	assert.Equal(t, 7, snap.Payload.Value)
	assert.Equal(t, resourcesync.StatusReady, snap.Status)
	assert.Empty(t, snap.ErrorMessage)
	assert.Equal(t, "/webhook/counter", gotEndpoint)
	assert.Equal(t, "rider1", gotParams.Get("riderId"))
}

func TestLoad_FallosUsanRespaldoYMensaje(t *testing.T) {
	cases := []struct {
		name    string
		fetcher *fakeFetcher
		kind    domain.FailureKind
		message string
	}{
		{"servidor", failing(domain.NewFetchError(domain.FailureServer, 500, errors.New("boom"))), domain.FailureServer,
			"Server error: The server could not process the request. Please try again later."},
		{"red", failing(domain.NewFetchError(domain.FailureNetwork, 0, errors.New("refused"))), domain.FailureNetwork,
			"Network error: Unable to connect to server. Please check your internet connection."},
		{"json inválido", static(`<html>`), domain.FailureMalformed,
			"Server returned invalid data format. Please try again later."},
		{"error sin tipo", failing(errors.New("raro")), domain.FailureServer,
			"Server error: The server could not process the request. Please try again later."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := resourcesync.New(counterResource(time.Second), nil, tc.fetcher, nil)
			snap := s.Load(context.Background())
			require.NotNil(t, snap.Payload, "el respaldo siempre es renderizable")
			assert.Equal(t, counter{}, *snap.Payload)
			assert.Equal(t, resourcesync.StatusReadyWithError, snap.Status)
			assert.Equal(t, tc.kind, snap.ErrorKind)
			assert.Equal(t, tc.message, snap.ErrorMessage)
		})
	}
}

func TestLoad_TimeoutSeResuelveDentroDelLimite(t *testing.T) {
	// El fetcher ignora el contexto y nunca responde a tiempo.
	block := make(chan struct{})
	defer close(block)
	f := &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) {
		<-block
		return nil, nil
	}}
	timeout := 50 * time.Millisecond
	s := resourcesync.New(counterResource(timeout), nil, f, nil)

	start := time.Now()
	snap := s.Load(context.Background())
	elapsed := time.Since(start)

	assert.Less(t, elapsed, timeout+500*time.Millisecond)
	assert.Equal(t, resourcesync.StatusReadyWithError, snap.Status)
	assert.Equal(t, domain.FailureTimeout, snap.ErrorKind)
	assert.Equal(t, "Request timeout: Server is taking too long to respond.", snap.ErrorMessage)
}

func TestLoad_ExitoTrasErrorLimpiaElMensaje(t *testing.T) {
	fail := true
	f := &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) {
		if fail {
			return nil, domain.NewFetchError(domain.FailureNetwork, 0, errors.New("down"))
		}
		return []byte(`{"value":3}`), nil
	}}
	s := resourcesync.New(counterResource(time.Second), nil, f, nil)
	s.Load(context.Background())

	fail = false
	snap := s.Retry(context.Background())
	assert.Equal(t, resourcesync.StatusReady, snap.Status)
	assert.Empty(t, snap.ErrorKind)
	assert.Equal(t, 3, snap.Payload.Value)
	assert.Equal(t, 1, snap.RetryCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden y cancelación
// ──────────────────────────────────────────────────────────────────────────────

func TestLoad_GanaLaUltimaIniciada(t *testing.T) {
	// La primera carga responde tarde; la segunda responde enseguida.
	slowRelease := make(chan struct{})
	var calls int
	var mu sync.Mutex
	f := &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-slowRelease
			return []byte(`{"value":1}`), nil
		}
		return []byte(`{"value":2}`), nil
	}}
	s := resourcesync.New(counterResource(5*time.Second), nil, f, nil)

	done := make(chan struct{})
	go func() {
		s.Load(context.Background())
		close(done)
	}()
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, time.Second, time.Millisecond)

	snap := s.Retry(context.Background())
	assert.Equal(t, 2, snap.Payload.Value)

	close(slowRelease)
	<-done
	assert.Equal(t, 2, s.Snapshot().Payload.Value, "la respuesta vieja no pisa la nueva")
}

func TestStop_DescartaResultadosEnVuelo(t *testing.T) {
	release := make(chan struct{})
	f := &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) {
		<-release
		return []byte(`{"value":9}`), nil
	}}
	s := resourcesync.New(counterResource(5*time.Second), nil, f, nil)

	done := make(chan resourcesync.Snapshot[counter])
	go func() { done <- s.Load(context.Background()) }()
	time.Sleep(10 * time.Millisecond)

	s.Stop()
	close(release)
	snap := <-done
	assert.Nil(t, snap.Payload)
	assert.Equal(t, resourcesync.StatusLoading, snap.Status)
	assert.True(t, s.Stopped())
}

func TestAutoRefresh_ProgramaYSeDetiene(t *testing.T) {
	var calls int
	var mu sync.Mutex
	f := &fakeFetcher{get: func(context.Context, string, url.Values) ([]byte, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return []byte(`{"value":1}`), nil
	}}
	sched := &fakeScheduler{}
	s := resourcesync.New(counterResource(time.Second), nil, f, sched)

	require.NoError(t, s.StartAutoRefresh(0))
	assert.Equal(t, 30*time.Second, sched.interval, "usa el intervalo del recurso")

	sched.tick()
	sched.tick()
	s.Stop()
	sched.tick()
	s.Load(context.Background())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
	assert.True(t, sched.stopped)
}

func TestAutoRefresh_SinIntervaloNoPrograma(t *testing.T) {
	res := counterResource(time.Second)
	res.Interval = 0
	sched := &fakeScheduler{}
	s := resourcesync.New(res, nil, static(`{}`), sched)

	require.NoError(t, s.StartAutoRefresh(0))
	assert.Nil(t, sched.job)
}
