package session

import (
	"context"

	"github.com/jhoicas/Comandas-api/internal/domain/entity"
)

// LoginResult respuesta del endpoint de login del servicio remoto.
type LoginResult struct {
	UserID   int64
	Username string
	Role     string
	Token    string
}

// ProfileDirectory puerto del recurso remoto de perfiles de personal.
type ProfileDirectory interface {
	List(ctx context.Context) ([]entity.StaffProfile, error)
	Create(ctx context.Context, nombre, codigo string) (entity.StaffProfile, error)
	Delete(ctx context.Context, id int64) error
}

// CodeVerifier puerto del endpoint remoto de verificación de código de perfil.
// Un código incorrecto es (false, nil); error solo ante fallos de red o servidor.
type CodeVerifier interface {
	Verify(ctx context.Context, perfilID int64, codigo string) (bool, error)
}

// CredentialAuthenticator puerto del endpoint remoto de login de usuarios de sistema.
type CredentialAuthenticator interface {
	Login(ctx context.Context, usuario, password string) (LoginResult, error)
}
