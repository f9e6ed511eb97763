// Package board monta y desmonta las vistas del tablero. Cada vista montada tiene su propio
// Syncer; no hay caché compartida entre vistas y un cambio de identidad desmonta todo.
package board

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/jhoicas/smart-distribution/internal/application/dto"
	"github.com/jhoicas/smart-distribution/internal/application/ports"
	"github.com/jhoicas/smart-distribution/internal/application/resourcesync"
	"github.com/jhoicas/smart-distribution/internal/application/session"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/pkg/format"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

var (
	// ErrNotMounted la vista no está montada.
	ErrNotMounted = errors.New("vista no montada")
	// ErrNoTable la vista no tiene datos exportables (estática, sin cargar o sin tabla).
	ErrNoTable = errors.New("vista sin datos exportables")
)

// Identities fuente de la identidad activa (implementada por session.UseCase).
type Identities interface {
	Current() *entity.Identity
	OnChange(fn session.ChangeFunc)
}

// Board vistas montadas para la identidad activa.
type Board struct {
	identities Identities
	fetcher    ports.Fetcher
	sched      ports.Scheduler
	log        *logger.Logger
	now        func() time.Time

	mu      sync.Mutex
	gen     uint64
	mounted map[string]handle
}

// New construye el tablero y se suscribe a los cambios de identidad.
func New(identities Identities, fetcher ports.Fetcher, sched ports.Scheduler, log *logger.Logger) *Board {
	if log == nil {
		log = logger.Nop()
	}
	b := &Board{
		identities: identities,
		fetcher:    fetcher,
		sched:      sched,
		log:        log.Named("board"),
		now:        time.Now,
		mounted:    make(map[string]handle),
	}
	identities.OnChange(func(prev, next *entity.Identity) {
		n := b.UnmountAll()
		b.log.Info().Int("views", n).Msg("identidad cambió, vistas desmontadas")
	})
	return b
}

// Available vistas que la identidad activa puede abrir.
func (b *Board) Available() []dto.ViewInfo {
	ident := b.identities.Current()
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []dto.ViewInfo
	for _, v := range registry {
		if !session.Authorize(ident, v.Roles) {
			continue
		}
		_, mounted := b.mounted[v.Name]
		out = append(out, viewInfo(v, mounted))
	}
	return out
}

func viewInfo(v View, mounted bool) dto.ViewInfo {
	roles := make([]string, len(v.Roles))
	for i, r := range v.Roles {
		roles[i] = string(r)
	}
	return dto.ViewInfo{Name: v.Name, Path: v.Path, Roles: roles, Resource: v.Resource, Mounted: mounted}
}

// gate resuelve la vista y aplica el control de acceso de la identidad activa.
func (b *Board) gate(name string) (View, *entity.Identity, error) {
	v, ok := Lookup(name)
	if !ok {
		return View{}, nil, fmt.Errorf("%w: %s", domain.ErrUnknownView, name)
	}
	ident := b.identities.Current()
	switch session.Gate(ident, v.Roles) {
	case session.Unauthenticated:
		return v, nil, domain.ErrUnauthenticated
	case session.Forbidden:
		return v, ident, domain.ErrForbidden
	}
	return v, ident, nil
}

// Mount abre la vista: crea su Syncer con los parámetros de la identidad, hace la primera carga
// y arranca el refresco automático. Si ya estaba montada devuelve su snapshot sin recargar.
// Las vistas estáticas devuelven nil.
func (b *Board) Mount(ctx context.Context, name string) (any, error) {
	v, ident, err := b.gate(name)
	if err != nil {
		return nil, err
	}
	if v.Static() {
		return nil, nil
	}
	mk, ok := factories[v.Resource]
	if !ok {
		return nil, fmt.Errorf("board: recurso %q sin constructor", v.Resource)
	}

	b.mu.Lock()
	if h, ok := b.mounted[name]; ok {
		b.mu.Unlock()
		return h.snapshot(), nil
	}
	var params url.Values
	if v.IdentityParam != "" {
		params = url.Values{v.IdentityParam: {ident.ID}}
	}
	h := mk(params, b.fetcher, b.sched, resourcesync.WithLogger(b.log), resourcesync.WithClock(b.now))
	b.mounted[name] = h
	gen := b.gen
	b.mu.Unlock()

	snap := h.load(ctx)

	b.mu.Lock()
	stale := b.gen != gen || b.mounted[name] != h
	b.mu.Unlock()
	if stale {
		// desmontada (o cambió la identidad) durante la primera carga
		h.stop()
		return nil, fmt.Errorf("%w: %s", ErrNotMounted, name)
	}
	if err := h.startAutoRefresh(); err != nil {
		b.log.Warn().Err(err).Str("view", name).Msg("no se pudo programar el refresco")
	}
	b.log.Debug().Str("view", name).Str("user", ident.ID).Msg("vista montada")
	return snap, nil
}

// Unmount cierra la vista y detiene su refresco. Devuelve false si no estaba montada.
func (b *Board) Unmount(name string) bool {
	b.mu.Lock()
	h, ok := b.mounted[name]
	delete(b.mounted, name)
	b.mu.Unlock()
	if ok {
		h.stop()
	}
	return ok
}

// UnmountAll cierra todas las vistas. Devuelve cuántas había.
func (b *Board) UnmountAll() int {
	b.mu.Lock()
	hs := b.mounted
	b.mounted = make(map[string]handle)
	b.gen++
	b.mu.Unlock()
	for _, h := range hs {
		h.stop()
	}
	return len(hs)
}

// Mounted nombres de las vistas montadas.
func (b *Board) Mounted() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.mounted))
	for _, v := range registry {
		if _, ok := b.mounted[v.Name]; ok {
			out = append(out, v.Name)
		}
	}
	return out
}

func (b *Board) handle(name string) (handle, error) {
	if _, _, err := b.gate(name); err != nil {
		return nil, err
	}
	b.mu.Lock()
	h, ok := b.mounted[name]
	b.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotMounted, name)
	}
	return h, nil
}

// Snapshot estado actual de una vista montada.
func (b *Board) Snapshot(name string) (any, error) {
	h, err := b.handle(name)
	if err != nil {
		return nil, err
	}
	return h.snapshot(), nil
}

// Retry reintento manual: incrementa el contador y recarga.
func (b *Board) Retry(ctx context.Context, name string) (any, error) {
	h, err := b.handle(name)
	if err != nil {
		return nil, err
	}
	return h.retry(ctx), nil
}

// Reload recarga sin contar como reintento (p. ej. después de un envío exitoso).
// Si la vista no está montada no hace nada.
func (b *Board) Reload(ctx context.Context, name string) {
	b.mu.Lock()
	h, ok := b.mounted[name]
	b.mu.Unlock()
	if ok {
		h.load(ctx)
	}
}

// Table exporta el payload actual de la vista como tabla.
func (b *Board) Table(name string, q TableQuery) (dto.Table, error) {
	h, err := b.handle(name)
	if err != nil {
		return dto.Table{}, err
	}
	if q.Now.IsZero() {
		q.Now = b.now()
	}
	if q.Location == nil {
		q.Location = time.Local
	}
	if q.Formatter == nil {
		q.Formatter = format.MustNew(format.DefaultLocale)
	}
	t, ok := h.table(q)
	if !ok {
		return dto.Table{}, fmt.Errorf("%w: %s", ErrNoTable, name)
	}
	return t, nil
}

// SnapshotOf snapshot tipado de una vista montada. Devuelve error si T no es el payload de la vista.
func SnapshotOf[T any](b *Board, name string) (resourcesync.Snapshot[T], error) {
	h, err := b.handle(name)
	if err != nil {
		return resourcesync.Snapshot[T]{}, err
	}
	bd, ok := h.(*binding[T])
	if !ok {
		return resourcesync.Snapshot[T]{}, fmt.Errorf("board: la vista %s no tiene payload %T", name, *new(T))
	}
	return bd.syncer.Snapshot(), nil
}
