package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Comandas-api/internal/application/state"
	"github.com/jhoicas/Comandas-api/internal/domain"
	"github.com/jhoicas/Comandas-api/internal/domain/entity"
	"github.com/jhoicas/Comandas-api/internal/domain/roles"
	"github.com/jhoicas/Comandas-api/pkg/logger"
	"github.com/jhoicas/Comandas-api/pkg/token"
)

// Manager única autoridad sobre quién usa el terminal, con qué rol y si está
// verificado. Las mutaciones son serializadas con un mutex: varios handlers
// pueden leer la sesión a la vez, pero nunca se cruzan dos mutaciones.
//
// Los fallos esperados (código incorrecto, credenciales malas, red caída)
// se devuelven como errores tipados y nunca mutan la sesión.
type Manager struct {
	tiers    state.Tiers
	dir      ProfileDirectory
	verifier CodeVerifier
	authn    CredentialAuthenticator
	log      *logger.Logger

	mu      sync.Mutex
	current entity.Session
	pending *entity.StaffProfile
}

// NewManager construye el manager de sesión.
func NewManager(tiers state.Tiers, dir ProfileDirectory, verifier CodeVerifier, authn CredentialAuthenticator, log *logger.Logger) *Manager {
	return &Manager{tiers: tiers, dir: dir, verifier: verifier, authn: authn, log: log}
}

// Current devuelve una copia de la sesión activa.
func (m *Manager) Current() entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Role rol autoritativo de la sesión activa, o "".
func (m *Manager) Role() string {
	return roles.Resolve(m.Current())
}

// Confirmed informa si el actor activo ya pasó su paso de autenticación.
func (m *Manager) Confirmed() bool {
	return m.Current().Confirmed
}

// SelectProfile deja un perfil pendiente de verificación de código.
// No marca confirmado ni toca la sesión activa.
func (m *Manager) SelectProfile(p entity.StaffProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pending = &p
}

// SetRemember fija la preferencia "recordar sesión" en el tier durable.
func (m *Manager) SetRemember(ctx context.Context, remember bool) error {
	if remember {
		return m.tiers.Durable.Set(ctx, state.KeyRememberSession, "true")
	}
	return m.tiers.Durable.Delete(ctx, state.KeyRememberSession)
}

// SubmitAccessCode verifica el código del perfil pendiente contra el servicio
// remoto. Con código correcto fija rol staff, confirma y persiste la sesión en
// el tier activo; con código incorrecto devuelve (false, nil) sin tocar estado.
// Si el servicio no responde, intenta verificar contra el hash cacheado del
// último código verificado en línea para ese perfil (terminal sin red).
func (m *Manager) SubmitAccessCode(ctx context.Context, codigo string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	perfil := m.pending
	if perfil == nil {
		perfil = m.current.Profile
	}
	if perfil == nil {
		return false, domain.ErrSinPerfilPendiente
	}

	ok, err := m.verifier.Verify(ctx, perfil.ID, codigo)
	switch {
	case err == nil:
		if ok {
			m.cacheCodigo(ctx, perfil.ID, codigo)
		}
	case errors.Is(err, domain.ErrBackendNoDisponible):
		offOK, offErr := m.verifyOffline(ctx, perfil.ID, codigo)
		if offErr != nil {
			return false, err // sin cache utilizable: reportar el fallo de red original
		}
		m.log.Warn().Int64("perfil", perfil.ID).Msg("verificación de código sin red, usando cache durable")
		ok = offOK
	default:
		return false, err
	}
	if !ok {
		return false, nil
	}

	m.current = entity.Session{Profile: perfil, Role: entity.RoleStaff, Confirmed: true}
	m.pending = nil
	m.persist(ctx)
	return true, nil
}

// LoginWithCredentials autentica un usuario de sistema. El rol devuelto debe
// ser uno de entity.SystemRoles; el usuario literal "barra" se fuerza a
// bartender. Cualquier otro rol se rechaza sin mutar la sesión.
func (m *Manager) LoginWithCredentials(ctx context.Context, usuario, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	res, err := m.authn.Login(ctx, usuario, password)
	if err != nil {
		return "", err
	}

	role := res.Role
	if usuario == "barra" {
		role = entity.RoleBartender
	} else if !validSystemRole(role) {
		return "", domain.ErrRolDesconocido
	}

	username := res.Username
	if username == "" {
		username = usuario
	}
	m.current = entity.Session{
		User:      &entity.SystemUser{ID: res.UserID, Username: username, Role: role},
		Role:      role,
		Confirmed: true,
		Token:     res.Token,
	}
	m.pending = nil
	m.persist(ctx)
	return role, nil
}

// RestoreSession reconstruye la sesión al arrancar. Lee primero el tier
// efímero; si allí falta el actor o la confirmación y la preferencia de
// recordar está activa, cae al durable. Un perfil confirmado sin rol
// persistido se restaura como staff (sesiones de versiones anteriores).
func (m *Manager) RestoreSession(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, complete := m.readTier(ctx, false)
	if !complete && m.tiers.Remember(ctx) {
		s, complete = m.readTier(ctx, true)
	}
	if s.Profile == nil && s.User == nil {
		return
	}
	if !complete {
		// Actor elegido pero sin confirmar: retomar en la pantalla de código.
		if s.Profile != nil {
			m.pending = s.Profile
		}
		return
	}
	if s.Role == "" && s.Profile != nil {
		s.Role = entity.RoleStaff
	}
	if s.User != nil && s.Token != "" && token.Expired(s.Token, time.Now()) {
		m.log.Info().Str("usuario", s.User.Username).Msg("token cacheado vencido, sesión no restaurada")
		return
	}
	m.current = s
}

// Logout limpia la sesión de ambos tiers incondicionalmente, incluida la
// preferencia de recordar y el token.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = entity.Session{}
	m.pending = nil
	return m.tiers.Wipe(ctx)
}

// ListProfiles lista los perfiles de personal del servicio remoto.
func (m *Manager) ListProfiles(ctx context.Context) ([]entity.StaffProfile, error) {
	return m.dir.List(ctx)
}

// AddProfile crea un perfil de personal en el servicio remoto.
func (m *Manager) AddProfile(ctx context.Context, nombre, codigo string) (entity.StaffProfile, error) {
	return m.dir.Create(ctx, nombre, codigo)
}

// DeleteProfile elimina un perfil; si es el perfil activo, cierra la sesión.
func (m *Manager) DeleteProfile(ctx context.Context, id int64) error {
	if err := m.dir.Delete(ctx, id); err != nil {
		return err
	}
	cur := m.Current()
	if cur.Profile != nil && cur.Profile.ID == id {
		return m.Logout(ctx)
	}
	return nil
}

// persist escribe actor, confirmación, rol y token en el tier activo.
// Un fallo de persistencia no tumba la sesión en memoria: se registra.
func (m *Manager) persist(ctx context.Context) {
	store := m.tiers.Active(m.tiers.Remember(ctx))

	var actor any
	if m.current.Profile != nil {
		actor = m.current.Profile
	} else {
		actor = m.current.User
	}
	raw, err := json.Marshal(actor)
	if err == nil {
		err = store.Set(ctx, state.KeySelectedProfile, string(raw))
	}
	if err == nil {
		err = store.Set(ctx, state.KeyCodigoConfirmado, "true")
	}
	if err == nil && m.current.Role != "" {
		err = store.Set(ctx, state.KeyUserRole, m.current.Role)
	}
	if err == nil && m.current.Token != "" {
		err = store.Set(ctx, state.KeyAuthToken, m.current.Token)
	}
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}
}

// actorRecord forma persistida del actor: cubre ambas variantes.
type actorRecord struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// readTier lee una sesión de un tier. complete indica actor + confirmación.
func (m *Manager) readTier(ctx context.Context, durable bool) (entity.Session, bool) {
	get := func(key string) string {
		store := m.tiers.Ephemeral
		if durable {
			store = m.tiers.Durable
		}
		v, err := store.Get(ctx, key)
		if err != nil {
			if !errors.Is(err, domain.ErrClaveNoEncontrada) {
				m.log.Warn().Err(err).Str("clave", key).Msg("lectura de estado falló")
			}
			return ""
		}
		return v
	}

	var s entity.Session
	raw := get(state.KeySelectedProfile)
	if raw == "" {
		return s, false
	}
	var rec actorRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		m.log.Warn().Err(err).Msg("actor persistido corrupto, se ignora")
		return s, false
	}
	if rec.Username != "" {
		s.User = &entity.SystemUser{ID: rec.UserID, Username: rec.Username, Role: rec.Role}
	} else {
		s.Profile = &entity.StaffProfile{ID: rec.ID, Nombre: rec.Nombre}
	}
	s.Confirmed = get(state.KeyCodigoConfirmado) == "true"
	s.Role = get(state.KeyUserRole)
	s.Token = get(state.KeyAuthToken)
	return s, s.Confirmed
}

// cacheCodigo guarda el bcrypt del código verificado en línea (best effort).
func (m *Manager) cacheCodigo(ctx context.Context, perfilID int64, codigo string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(codigo), bcrypt.DefaultCost)
	if err != nil {
		return
	}
	hashes := m.codigoHashes(ctx)
	hashes[strconv.FormatInt(perfilID, 10)] = string(hash)
	raw, err := json.Marshal(hashes)
	if err == nil {
		if err = m.tiers.Durable.Set(ctx, state.KeyCodigoHash, string(raw)); err != nil {
			m.log.Warn().Err(err).Msg("no se pudo cachear el hash del código")
		}
	}
}

// verifyOffline compara el código contra el hash cacheado del perfil.
func (m *Manager) verifyOffline(ctx context.Context, perfilID int64, codigo string) (bool, error) {
	hash, ok := m.codigoHashes(ctx)[strconv.FormatInt(perfilID, 10)]
	if !ok {
		return false, domain.ErrCodigoIncorrecto
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(codigo))
	return err == nil, nil
}

func (m *Manager) codigoHashes(ctx context.Context) map[string]string {
	hashes := map[string]string{}
	raw, err := m.tiers.Durable.Get(ctx, state.KeyCodigoHash)
	if err == nil {
		_ = json.Unmarshal([]byte(raw), &hashes)
	}
	return hashes
}

func validSystemRole(role string) bool {
	for _, r := range entity.SystemRoles {
		if r == role {
			return true
		}
	}
	return false
}
