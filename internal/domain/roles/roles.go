// Package roles resuelve el rol autoritativo de una sesión y filtra los módulos
// visibles para ese rol. Funciones puras: toda lectura de sesión pasa por aquí,
// nunca por acceso directo a los tiers de almacenamiento desde la vista.
package roles

import "github.com/jhoicas/Comandas-api/internal/domain/entity"

// Resolve devuelve el rol autoritativo de la sesión, o "" si no hay rol.
// Precedencia: Role explícito > UserRole legado > staff inferido cuando hay
// un perfil confirmado sin rol persistido (sesiones de versiones anteriores).
func Resolve(s entity.Session) string {
	if s.Role != "" {
		return s.Role
	}
	if s.UserRole != "" {
		return s.UserRole
	}
	if s.Confirmed && s.Profile != nil {
		return entity.RoleStaff
	}
	return ""
}

// FilterModules devuelve la subsecuencia de modules cuyos AllowedRoles
// contienen role, en el orden de la lista fuente. Sin rol, lista vacía.
func FilterModules(modules []entity.Module, role string) []entity.Module {
	if role == "" {
		return nil
	}
	out := make([]entity.Module, 0, len(modules))
	for _, m := range modules {
		for _, r := range m.AllowedRoles {
			if r == role {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// Allowed informa si role puede ver el módulo con la clave dada.
func Allowed(modules []entity.Module, clave, role string) bool {
	for _, m := range FilterModules(modules, role) {
		if m.Clave == clave {
			return true
		}
	}
	return false
}
