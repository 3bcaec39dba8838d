package roles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/domain/roles"
)

// El rol explícito tiene precedencia sobre el userRole legado.
func TestResolve_RolExplicitoGanaAlLegado(t *testing.T) {
	s := entity.Session{Role: "admin", UserRole: "staff", Confirmed: true}
	assert.Equal(t, "admin", roles.Resolve(s))
}

// Sin rol explícito se usa el userRole legado.
func TestResolve_UserRoleLegado(t *testing.T) {
	s := entity.Session{UserRole: entity.RoleBartender, Confirmed: true}
	assert.Equal(t, entity.RoleBartender, roles.Resolve(s))
}

// Perfil confirmado sin rol persistido se infiere como staff (compatibilidad
// con sesiones guardadas por versiones anteriores).
func TestResolve_PerfilConfirmadoSinRol_InfiereStaff(t *testing.T) {
	s := entity.Session{
		Profile:   &entity.StaffProfile{ID: 1, Nombre: "Lucía"},
		Confirmed: true,
	}
	assert.Equal(t, entity.RoleStaff, roles.Resolve(s))
}

// Sin confirmar no se infiere nada.
func TestResolve_SinConfirmar_SinRol(t *testing.T) {
	s := entity.Session{Profile: &entity.StaffProfile{ID: 1}}
	assert.Empty(t, roles.Resolve(s))
}

func TestFilterModules_PreservaOrden(t *testing.T) {
	mods := roles.FilterModules(entity.DefaultModules, entity.RoleAdmin)
	assert.NotEmpty(t, mods)

	// El orden debe ser el de la lista fuente.
	var prev int = -1
	for _, m := range mods {
		idx := indexOf(t, m.Clave)
		assert.Greater(t, idx, prev, "el módulo %s rompe el orden de la lista fuente", m.Clave)
		prev = idx
	}
}

func TestFilterModules_StaffNoVeInventario(t *testing.T) {
	mods := roles.FilterModules(entity.DefaultModules, entity.RoleStaff)
	for _, m := range mods {
		assert.NotEqual(t, "inventario", m.Clave, "staff no debe ver inventario")
		assert.NotEqual(t, "perfiles", m.Clave, "staff no debe ver perfiles")
	}
}

func TestFilterModules_SinRol_ListaVacia(t *testing.T) {
	assert.Empty(t, roles.FilterModules(entity.DefaultModules, ""))
}

func TestAllowed(t *testing.T) {
	assert.True(t, roles.Allowed(entity.DefaultModules, "inventario", entity.RoleBartender))
	assert.False(t, roles.Allowed(entity.DefaultModules, "inventario", entity.RoleStaff))
	assert.False(t, roles.Allowed(entity.DefaultModules, "inexistente", entity.RoleAdmin))
}

func indexOf(t *testing.T, clave string) int {
	t.Helper()
	for i, m := range entity.DefaultModules {
		if m.Clave == clave {
			return i
		}
	}
	t.Fatalf("módulo %s no está en DefaultModules", clave)
	return -1
}
