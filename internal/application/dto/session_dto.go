package dto

// SeleccionarPerfilRequest body para POST /api/session/perfil.
type SeleccionarPerfilRequest struct {
	PerfilID int64 `json:"perfil_id"`
}

// CodigoRequest body para POST /api/session/codigo. Recordar, si viene,
// fija la preferencia "recordar sesión" antes de verificar.
type CodigoRequest struct {
	Codigo   string `json:"codigo"`
	Recordar *bool  `json:"recordar,omitempty"`
}

// LoginRequest body para POST /api/session/login.
type LoginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
	Recordar *bool  `json:"recordar,omitempty"`
}

// LoginResponse resultado de un login de usuario de sistema.
type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
}

// SesionResponse estado actual de la sesión para la vista.
type SesionResponse struct {
	Actor      string `json:"actor,omitempty"`
	Rol        string `json:"rol,omitempty"`
	Confirmado bool   `json:"confirmado"`
}

// PerfilRequest body para crear un perfil de personal.
type PerfilRequest struct {
	Nombre string `json:"nombre"`
	Codigo string `json:"codigo"`
}
