package session

import "github.com/jhoicas/smart-distribution/internal/domain/entity"

// Decision resultado de la puerta de acceso de una vista.
type Decision int

const (
	// Unauthenticated sin identidad: redirigir a /login.
	Unauthenticated Decision = iota
	// Forbidden identidad sin el rol requerido: acceso denegado, no redirige.
	Forbidden
	// Allowed la vista puede montarse.
	Allowed
)

func (d Decision) String() string {
	switch d {
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "allowed"
	}
}

// LoginPath ruta a la que se redirige sin sesión.
const LoginPath = "/login"

// Authorize es puro: false sin identidad; una lista vacía de roles acepta cualquier identidad.
func Authorize(ident *entity.Identity, allowed []entity.Role) bool {
	if ident == nil {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	return ident.HasRole(allowed...)
}

// Gate decide si ident puede ver una vista restringida a allowed.
func Gate(ident *entity.Identity, allowed []entity.Role) Decision {
	switch {
	case ident == nil:
		return Unauthenticated
	case !Authorize(ident, allowed):
		return Forbidden
	default:
		return Allowed
	}
}

// LandingPath vista inicial de cada rol tras el login.
func LandingPath(role entity.Role) string {
	switch role {
	case entity.RoleSales:
		return "/sales-dashboard"
	case entity.RoleRider:
		return "/rider-dashboard"
	default:
		return "/"
	}
}
