package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/infrastructure/scheduler"
)

func TestEvery_DisparaYCancela(t *testing.T) {
	s := scheduler.New(nil)
	s.Start()
	defer s.Stop(context.Background())

	var runs atomic.Int32
	stop, err := s.Every(time.Second, func() { runs.Add(1) })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	stop()
	assert.Equal(t, 0, s.Len())
	after := runs.Load()
	time.Sleep(1500 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no hay ejecuciones tras cancelar")
}

func TestEvery_IntervaloInvalido(t *testing.T) {
	s := scheduler.New(nil)
	_, err := s.Every(0, func() {})
	assert.Error(t, err)
}
