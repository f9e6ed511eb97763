package entity

// RosterEntry registro fijo del roster: identidad más su clave en texto plano.
// El roster es una barrera cosmética de demo, no un control de seguridad.
type RosterEntry struct {
	Identity
	Secret string
}

// Roster tabla de credenciales indexada por id (sensible a mayúsculas).
type Roster map[string]RosterEntry

// Lookup devuelve la entrada para id, si existe.
func (r Roster) Lookup(id string) (RosterEntry, bool) {
	e, ok := r[id]
	return e, ok
}

// NewRoster indexa las entradas por id.
func NewRoster(entries ...RosterEntry) Roster {
	r := make(Roster, len(entries))
	for _, e := range entries {
		r[e.ID] = e
	}
	return r
}

// DefaultRoster roster compilado del tablero: admin y riders con ids de palabra clave,
// vendedores con código de staff BK-NNN.
func DefaultRoster() Roster {
	return NewRoster(
		RosterEntry{Identity{ID: "admin", Role: RoleAdmin, Name: "Admin User"}, "1234"},
		RosterEntry{Identity{ID: "rider1", Role: RoleRider, Name: "Ali"}, "1234"},
		RosterEntry{Identity{ID: "rider2", Role: RoleRider, Name: "Usman"}, "1234"},
		RosterEntry{Identity{ID: "rider3", Role: RoleRider, Name: "Faheem"}, "1234"},

		RosterEntry{Identity{ID: "BK-101", Role: RoleSales, Name: "John Doe"}, "John101"},
		RosterEntry{Identity{ID: "BK-102", Role: RoleSales, Name: "Sarah Khan"}, "Sarah102"},
		RosterEntry{Identity{ID: "BK-103", Role: RoleSales, Name: "Mike Wilson"}, "Mike103"},
		RosterEntry{Identity{ID: "BK-104", Role: RoleSales, Name: "Emily Davis"}, "Emily104"},
		RosterEntry{Identity{ID: "BK-105", Role: RoleSales, Name: "Ali Raza"}, "Ali105"},
		RosterEntry{Identity{ID: "BK-106", Role: RoleSales, Name: "Hassan Ahmed"}, "Hassan106"},
		RosterEntry{Identity{ID: "BK-107", Role: RoleSales, Name: "Usman Tariq"}, "Usman107"},
		RosterEntry{Identity{ID: "BK-108", Role: RoleSales, Name: "Fatima Noor"}, "Fatima108"},
		RosterEntry{Identity{ID: "BK-109", Role: RoleSales, Name: "Ayesha Malik"}, "Ayesha109"},
		RosterEntry{Identity{ID: "BK-110", Role: RoleSales, Name: "Adnan Sharif"}, "Adnan110"},
		RosterEntry{Identity{ID: "BK-111", Role: RoleSales, Name: "Maria Iqbal"}, "Maria111"},
		RosterEntry{Identity{ID: "BK-112", Role: RoleSales, Name: "Rehan Siddiqui"}, "Rehan112"},
		RosterEntry{Identity{ID: "BK-113", Role: RoleSales, Name: "Hamza Ali"}, "Hamza113"},
		RosterEntry{Identity{ID: "BK-114", Role: RoleSales, Name: "Sana Javed"}, "Sana114"},
		RosterEntry{Identity{ID: "BK-115", Role: RoleSales, Name: "Salman Khan"}, "Salman115"},

		// cuenta de ventas heredada
		RosterEntry{Identity{ID: "sales1", Role: RoleSales, Name: "Salesman"}, "1234"},
	)
}
