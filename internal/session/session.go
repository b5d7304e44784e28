package session

import (
	"sync"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// Roles de usuario reconocidos por los predicados de permisos.
const (
	RolAdmin  = "admin"
	RolEditor = "editor"
	RolLector = "lector"
)

// Store representa la sesión vigente del usuario
//
// Vive en memoria y muere con el proceso: el token nunca se persiste a
// disco, para que una sesión no sobreviva silenciosamente entre
// ejecuciones.
type Store struct {
	mu     sync.RWMutex
	token  string
	perfil *models.Usuario
}

// Nuevo crea una sesión vacía
func Nuevo() *Store {
	return &Store{}
}

// NuevoConToken crea una sesión con un token preexistente (sin perfil)
func NuevoConToken(token string) *Store {
	return &Store{token: token}
}

// Establecer guarda el token y el perfil de una sesión recién abierta
func (s *Store) Establecer(token string, perfil *models.Usuario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.perfil = perfil
}

// Token retorna el bearer token vigente, o "" si no hay sesión
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Perfil retorna el perfil del usuario, o nil si no hay sesión
func (s *Store) Perfil() *models.Usuario {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perfil
}

// Activa retorna true si hay una sesión abierta
func (s *Store) Activa() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// Limpiar descarta token y perfil
func (s *Store) Limpiar() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.perfil = nil
}

// EsAdmin retorna true si el usuario tiene rol admin
func (s *Store) EsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perfil != nil && s.perfil.Rol == RolAdmin
}

// PuedeEditar retorna true si el usuario puede crear o modificar registros
func (s *Store) PuedeEditar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.perfil == nil {
		return false
	}
	return s.perfil.Rol == RolAdmin || s.perfil.Rol == RolEditor
}
