package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/domain/repository"
	"github.com/jhoicas/smart-distribution/pkg/jwt"
	"github.com/jhoicas/smart-distribution/pkg/logger"
)

// Claves del registro durable. Se escriben y borran juntas.
const (
	KeyUser     = "user"
	KeyUserID   = "userId"
	KeyRole     = "role"
	KeyUserName = "userName"
)

var recordKeys = []string{KeyUserID, KeyRole, KeyUserName, KeyUser}

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ChangeFunc se invoca cuando cambia la identidad activa (login, logout o cambio de usuario).
// prev o next pueden ser nil.
type ChangeFunc func(prev, next *entity.Identity)

// UseCase sesión del dispositivo: a lo sumo una identidad activa, persistida en el KeyValueStore.
type UseCase struct {
	store  repository.KeyValueStore
	roster entity.Roster
	jwtCfg JWTConfig
	log    *logger.Logger

	mu        sync.RWMutex
	current   *entity.Identity
	listeners []ChangeFunc
}

// NewUseCase construye el caso de uso de sesión. Si log es nil se descarta el log.
func NewUseCase(store repository.KeyValueStore, roster entity.Roster, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{store: store, roster: roster, jwtCfg: jwtCfg, log: log.Named("session")}
}

// OnChange registra un observador de cambios de identidad.
func (uc *UseCase) OnChange(fn ChangeFunc) {
	uc.mu.Lock()
	uc.listeners = append(uc.listeners, fn)
	uc.mu.Unlock()
}

// Current devuelve una copia de la identidad activa, o nil.
func (uc *UseCase) Current() *entity.Identity {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return clone(uc.current)
}

// Restore lee el registro durable al arrancar. Ausente = sin sesión. Un registro ilegible,
// incompleto o que no coincide con el roster se descarta en silencio (se borran las cuatro claves).
// No hace llamadas de red.
func (uc *UseCase) Restore(ctx context.Context) (*entity.Identity, error) {
	raw, found, err := uc.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("session: leer registro: %w", err)
	}
	if !found {
		uc.set(nil)
		return nil, nil
	}

	ident, err := uc.decode(ctx, raw)
	if err != nil {
		uc.log.Warn().Err(err).Msg("registro de sesión descartado")
		if derr := uc.store.Delete(ctx, recordKeys...); derr != nil {
			return nil, fmt.Errorf("session: borrar registro: %w", derr)
		}
		uc.set(nil)
		return nil, nil
	}

	uc.set(ident)
	uc.log.Info().Str("user_id", ident.ID).Str("role", string(ident.Role)).Msg("sesión restaurada")
	return clone(ident), nil
}

func (uc *UseCase) decode(ctx context.Context, raw string) (*entity.Identity, error) {
	var ident entity.Identity
	if err := json.Unmarshal([]byte(raw), &ident); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageCorrupt, err)
	}
	if ident.ID == "" || ident.Name == "" || !ident.Role.Valid() {
		return nil, fmt.Errorf("%w: campos incompletos", domain.ErrStorageCorrupt)
	}
	entry, ok := uc.roster.Lookup(ident.ID)
	if !ok || entry.Role != ident.Role || entry.Name != ident.Name {
		return nil, fmt.Errorf("%w: identidad fuera del roster", domain.ErrStorageCorrupt)
	}
	// Las claves auxiliares, si existen, deben coincidir con el registro principal.
	for key, want := range map[string]string{KeyUserID: ident.ID, KeyRole: string(ident.Role), KeyUserName: ident.Name} {
		got, found, err := uc.store.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if found && got != want {
			return nil, fmt.Errorf("%w: clave %s inconsistente", domain.ErrStorageCorrupt, key)
		}
	}
	return &ident, nil
}

// Login compara id y clave (exacto, sensible a mayúsculas) contra el roster. Si coinciden
// persiste el registro y activa la identidad. Si no, devuelve ErrInvalidCredentials sin
// modificar nada.
func (uc *UseCase) Login(ctx context.Context, id, secret string) (*entity.Identity, error) {
	entry, ok := uc.roster.Lookup(id)
	if !ok || subtle.ConstantTimeCompare([]byte(entry.Secret), []byte(secret)) != 1 {
		uc.log.Info().Str("user_id", id).Msg("login rechazado")
		return nil, domain.ErrInvalidCredentials
	}

	ident := entry.Identity
	raw, err := json.Marshal(ident)
	if err != nil {
		return nil, err
	}
	// "user" se escribe al final: sin él el registro cuenta como ausente.
	writes := []struct{ key, value string }{
		{KeyUserID, ident.ID},
		{KeyRole, string(ident.Role)},
		{KeyUserName, ident.Name},
		{KeyUser, string(raw)},
	}
	for _, w := range writes {
		if err := uc.store.Set(ctx, w.key, w.value); err != nil {
			return nil, fmt.Errorf("session: guardar %s: %w", w.key, err)
		}
	}

	uc.set(&ident)
	uc.log.Info().Str("user_id", ident.ID).Str("role", string(ident.Role)).Msg("login correcto")
	return clone(&ident), nil
}

// Logout borra la identidad en memoria y el registro durable. Idempotente.
func (uc *UseCase) Logout(ctx context.Context) error {
	if err := uc.store.Delete(ctx, recordKeys...); err != nil {
		return fmt.Errorf("session: borrar registro: %w", err)
	}
	if prev := uc.set(nil); prev != nil {
		uc.log.Info().Str("user_id", prev.ID).Msg("logout")
	}
	return nil
}

// IssueToken firma un token de acceso para la API local con la identidad dada.
func (uc *UseCase) IssueToken(ident *entity.Identity) (string, error) {
	if ident == nil {
		return "", domain.ErrUnauthenticated
	}
	return jwt.Generate(uc.jwtCfg.Secret, ident.ID, string(ident.Role), ident.Name, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// Verify valida el token y lo acepta solo si su sujeto es la identidad activa.
// Tras un logout o un cambio de usuario los tokens anteriores dejan de valer.
func (uc *UseCase) Verify(token string) (*entity.Identity, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	cur := uc.Current()
	if cur == nil || cur.ID != claims.UserID || string(cur.Role) != claims.Role {
		return nil, domain.ErrUnauthenticated
	}
	return cur, nil
}

// set reemplaza la identidad activa y notifica si cambió. Devuelve la anterior.
func (uc *UseCase) set(next *entity.Identity) *entity.Identity {
	uc.mu.Lock()
	prev := uc.current
	uc.current = clone(next)
	listeners := append([]ChangeFunc(nil), uc.listeners...)
	uc.mu.Unlock()

	if sameIdentity(prev, next) {
		return prev
	}
	for _, fn := range listeners {
		fn(clone(prev), clone(next))
	}
	return prev
}

func sameIdentity(a, b *entity.Identity) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func clone(i *entity.Identity) *entity.Identity {
	if i == nil {
		return nil
	}
	c := *i
	return &c
}
