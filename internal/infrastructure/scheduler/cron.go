package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

var _ ports.Scheduler = (*CronScheduler)(nil)

// CronScheduler scheduler compartido por todas las vistas montadas, sobre robfig/cron.
// Un trabajo que sigue corriendo cuando llega el siguiente tick se salta ese tick.
type CronScheduler struct {
	c   *cron.Cron
	log *logger.Logger
}

// New construye el scheduler. Hay que llamar Start para que dispare.
func New(log *logger.Logger) *CronScheduler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("scheduler")
	cl := cronLogger{log: log}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)))
	return &CronScheduler{c: c, log: log}
}

// Start arranca el loop del cron en segundo plano.
func (s *CronScheduler) Start() { s.c.Start() }

// Stop detiene el cron y espera a los trabajos en curso o a que ctx expire.
func (s *CronScheduler) Stop(ctx context.Context) error {
	done := s.c.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Every programa job cada interval (granularidad de un segundo).
func (s *CronScheduler) Every(interval time.Duration, job func()) (func(), error) {
	if interval <= 0 {
		return nil, fmt.Errorf("scheduler: intervalo inválido %s", interval)
	}
	id := s.c.Schedule(cron.Every(interval), cron.FuncJob(job))
	s.log.Debug().Int("entry_id", int(id)).Dur("interval", interval).Msg("trabajo programado")
	return func() {
		s.c.Remove(id)
		s.log.Debug().Int("entry_id", int(id)).Msg("trabajo cancelado")
	}, nil
}

// Len cantidad de trabajos programados.
func (s *CronScheduler) Len() int { return len(s.c.Entries()) }

// cronLogger adapta el logger del agente a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Trace().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
