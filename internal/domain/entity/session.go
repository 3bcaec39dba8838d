package entity

// Roles válidos en el terminal. Los perfiles de mesera siempre tienen RoleStaff
// aunque la vista los presente como "mesera"; el alias es solo de presentación.
const (
	RoleAdmin     = "admin"
	RoleBartender = "bartender"
	RoleStaff     = "staff"
	RoleTrial     = "trial"
)

// SystemRoles roles que puede devolver el login de usuarios de sistema.
// RoleStaff se obtiene únicamente por verificación de código de perfil.
var SystemRoles = []string{RoleAdmin, RoleBartender, RoleTrial}

// StaffProfile perfil de mesera/mesero: se autentica con un código corto.
type StaffProfile struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo,omitempty"`
}

// SystemUser usuario de sistema (admin, barra, trial): se autentica con credenciales.
type SystemUser struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Session actor activo del terminal, su rol y si pasó su paso de autenticación.
// Invariante: Confirmed=true implica Profile != nil o User != nil.
// UserRole se conserva solo por compatibilidad con sesiones persistidas por
// versiones anteriores; Role tiene precedencia al resolver.
type Session struct {
	Profile   *StaffProfile
	User      *SystemUser
	Role      string
	UserRole  string // legado
	Confirmed bool
	Token     string
}

// Actor informa si la sesión tiene un actor asignado.
func (s Session) Actor() bool {
	return s.Profile != nil || s.User != nil
}

// ActorNombre nombre presentable del actor, o "" sin actor.
func (s Session) ActorNombre() string {
	switch {
	case s.Profile != nil:
		return s.Profile.Nombre
	case s.User != nil:
		return s.User.Username
	default:
		return ""
	}
}
