package entity

// Module descriptor estático de un módulo de la aplicación. La vista solo
// muestra los módulos cuyo AllowedRoles contiene el rol resuelto de la sesión.
type Module struct {
	Clave        string   `json:"clave"`
	Nombre       string   `json:"nombre"`
	Ruta         string   `json:"ruta"`
	AllowedRoles []string `json:"-"`
}

// DefaultModules lista de módulos en el orden en que se presentan.
var DefaultModules = []Module{
	{Clave: "comandas", Nombre: "Tomar pedido", Ruta: "/comandas", AllowedRoles: []string{RoleAdmin, RoleBartender, RoleStaff, RoleTrial}},
	{Clave: "pendientes", Nombre: "Pedidos pendientes", Ruta: "/pendientes", AllowedRoles: []string{RoleAdmin, RoleBartender}},
	{Clave: "mis-pedidos", Nombre: "Mis pedidos de hoy", Ruta: "/mis-pedidos", AllowedRoles: []string{RoleAdmin, RoleStaff, RoleTrial}},
	{Clave: "inventario", Nombre: "Inventario", Ruta: "/inventario", AllowedRoles: []string{RoleAdmin, RoleBartender}},
	{Clave: "perfiles", Nombre: "Perfiles de personal", Ruta: "/perfiles", AllowedRoles: []string{RoleAdmin}},
	{Clave: "reportes", Nombre: "Reportes", Ruta: "/reportes", AllowedRoles: []string{RoleAdmin}},
}
