package entity

// Role rol de negocio de una identidad.
type Role string

// Roles válidos para Identity.
const (
	RoleAdmin Role = "admin"
	RoleSales Role = "sales"
	RoleRider Role = "rider"
)

// Valid indica si r es uno de los roles conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleRider:
		return true
	}
	return false
}

// Identity identidad autenticada del dispositivo: id de negocio, rol y nombre visible.
// Nunca lleva la clave; esa solo vive en el Roster.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}

// HasRole true si la identidad tiene alguno de los roles dados.
func (i *Identity) HasRole(roles ...Role) bool {
	if i == nil {
		return false
	}
	for _, r := range roles {
		if i.Role == r {
			return true
		}
	}
	return false
}
