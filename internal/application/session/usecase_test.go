package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/smart-distribution/internal/application/session"
	"github.com/jhoicas/smart-distribution/internal/domain"
	"github.com/jhoicas/smart-distribution/internal/domain/entity"
	"github.com/jhoicas/smart-distribution/internal/infrastructure/storage"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testJWT = session.JWTConfig{Secret: "test-secret-key-for-unit-tests", ExpMinutes: 60, Issuer: "smart-distribution-test"}

func newSession(t *testing.T) (*session.UseCase, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return session.NewUseCase(store, entity.DefaultRoster(), testJWT, nil), store
}

func keys(t *testing.T, store *storage.MemoryStore) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, k := range []string{session.KeyUser, session.KeyUserID, session.KeyRole, session.KeyUserName} {
		v, found, err := store.Get(context.Background(), k)
		require.NoError(t, err)
		if found {
			out[k] = v
		}
	}
	return out
}

// failingStore KeyValueStore que falla en todas las escrituras.
type failingStore struct{ *storage.MemoryStore }

func (failingStore) Set(context.Context, string, string) error { return errors.New("disco lleno") }

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_TodoElRosterEntra(t *testing.T) {
	for id, entry := range entity.DefaultRoster() {
		uc, _ := newSession(t)
		ident, err := uc.Login(context.Background(), id, entry.Secret)
		require.NoError(t, err, id)
		assert.Equal(t, entry.Identity, *ident)
	}
}

func TestLogin_MutacionDeUnCaracterFalla(t *testing.T) {
	ctx := context.Background()
	for id, entry := range entity.DefaultRoster() {
		uc, store := newSession(t)

		mutated := []byte(entry.Secret)
		mutated[len(mutated)-1]++
		_, err := uc.Login(ctx, id, string(mutated))
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, id)

		_, err = uc.Login(ctx, id, entry.Secret+"x")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, id)

		idMut := []byte(id)
		idMut[0] ^= 0x20 // cambia mayúscula/minúscula
		_, err = uc.Login(ctx, string(idMut), entry.Secret)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, id)

		assert.Nil(t, uc.Current())
		assert.Empty(t, keys(t, store))
	}
}

func TestLogin_ClaveIncorrecta_MensajeExactoYSinEscritura(t *testing.T) {
	uc, store := newSession(t)

	ident, err := uc.Login(context.Background(), "BK-101", "wrong")
	require.Error(t, err)
	assert.Nil(t, ident)
	assert.Equal(t, "Invalid credentials. Please check your ID and password.", err.Error())
	assert.Empty(t, keys(t, store))
}

func TestLogin_AdminEscribeLasCuatroClaves(t *testing.T) {
	uc, store := newSession(t)

	ident, err := uc.Login(context.Background(), "admin", "1234")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, ident.Role)
	assert.Equal(t, "/", session.LandingPath(ident.Role))
	assert.False(t, session.Authorize(ident, []entity.Role{entity.RoleSales}))

	got := keys(t, store)
	assert.Equal(t, "admin", got[session.KeyUserID])
	assert.Equal(t, "admin", got[session.KeyRole])
	assert.Equal(t, "Admin User", got[session.KeyUserName])

	var stored map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[session.KeyUser]), &stored))
	assert.Equal(t, map[string]any{"id": "admin", "role": "admin", "name": "Admin User"}, stored)
}

func TestLogin_ErrorDeStorage_NoActivaSesion(t *testing.T) {
	uc := session.NewUseCase(failingStore{storage.NewMemoryStore()}, entity.DefaultRoster(), testJWT, nil)
	_, err := uc.Login(context.Background(), "admin", "1234")
	assert.Error(t, err)
	assert.Nil(t, uc.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// Restore / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestRestore_IdaYVuelta(t *testing.T) {
	ctx := context.Background()
	uc, store := newSession(t)
	want, err := uc.Login(ctx, "BK-107", "Usman107")
	require.NoError(t, err)

	// Nuevo proceso sobre el mismo almacenamiento.
	restarted := session.NewUseCase(store, entity.DefaultRoster(), testJWT, nil)
	got, err := restarted.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, restarted.Current())
}

func TestRestore_SinRegistro(t *testing.T) {
	uc, _ := newSession(t)
	got, err := uc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRestore_RegistroCorruptoSeDescarta(t *testing.T) {
	cases := map[string]string{
		"json inválido":       "{not json",
		"sin rol":             `{"id":"admin","name":"Admin User"}`,
		"rol desconocido":     `{"id":"admin","role":"root","name":"Admin User"}`,
		"fuera del roster":    `{"id":"ghost","role":"admin","name":"Ghost"}`,
		"rol no coincide":     `{"id":"rider1","role":"admin","name":"Ali"}`,
		"arreglo":             `[1,2]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			uc, store := newSession(t)
			require.NoError(t, store.Set(ctx, session.KeyUser, raw))
			require.NoError(t, store.Set(ctx, session.KeyUserID, "admin"))

			got, err := uc.Restore(ctx)
			require.NoError(t, err)
			assert.Nil(t, got)
			assert.Empty(t, keys(t, store))
		})
	}
}

func TestRestore_ClaveAuxiliarInconsistente(t *testing.T) {
	ctx := context.Background()
	uc, store := newSession(t)
	require.NoError(t, store.Set(ctx, session.KeyUser, `{"id":"admin","role":"admin","name":"Admin User"}`))
	require.NoError(t, store.Set(ctx, session.KeyRole, "rider"))

	got, err := uc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, keys(t, store))
}

func TestLogout_DobleLogoutEsIdempotente(t *testing.T) {
	ctx := context.Background()
	uc, store := newSession(t)
	_, err := uc.Login(ctx, "rider2", "1234")
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx))
	require.NoError(t, uc.Logout(ctx))
	assert.Nil(t, uc.Current())
	assert.Empty(t, keys(t, store))
}

func TestOnChange_NotificaLoginCambioYLogout(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSession(t)

	type change struct{ prev, next string }
	var seen []change
	id := func(i *entity.Identity) string {
		if i == nil {
			return ""
		}
		return i.ID
	}
	uc.OnChange(func(prev, next *entity.Identity) { seen = append(seen, change{id(prev), id(next)}) })

	_, _ = uc.Login(ctx, "admin", "1234")
	_, _ = uc.Login(ctx, "admin", "1234") // misma identidad: sin evento
	_, _ = uc.Login(ctx, "rider1", "1234")
	_ = uc.Logout(ctx)
	_ = uc.Logout(ctx)

	assert.Equal(t, []change{{"", "admin"}, {"admin", "rider1"}, {"rider1", ""}}, seen)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tokens
// ──────────────────────────────────────────────────────────────────────────────

func TestVerify_TokenSoloValeMientrasLaSesionSigaActiva(t *testing.T) {
	ctx := context.Background()
	uc, _ := newSession(t)
	ident, err := uc.Login(ctx, "BK-102", "Sarah102")
	require.NoError(t, err)
	tok, err := uc.IssueToken(ident)
	require.NoError(t, err)

	got, err := uc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "BK-102", got.ID)

	_, err = uc.Login(ctx, "rider3", "1234")
	require.NoError(t, err)
	_, err = uc.Verify(tok)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	require.NoError(t, uc.Logout(ctx))
	_, err = uc.Verify("basura")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
