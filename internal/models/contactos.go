package models

import "time"

// Vendedor representa un vendedor de la concesionaria
type Vendedor struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id,omitempty"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comprador representa un comprador registrado de la concesionaria
type Comprador struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id,omitempty"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido,omitempty"`
	Email     string    `json:"email,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Notas     string    `json:"notas,omitempty"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Usuario representa el perfil del usuario autenticado
type Usuario struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}
