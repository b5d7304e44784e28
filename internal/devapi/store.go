package devapi

import (
	"context"
	"errors"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// ErrNoEncontrado se retorna cuando un registro no existe o está dado de baja
var ErrNoEncontrado = errors.New("registro no encontrado")

// Colecciones servidas por el backend de desarrollo.
const (
	ColVehiculos     = "vehiculos"
	ColVendedores    = "vendedores"
	ColCompradores   = "compradores"
	ColOperaciones   = "operaciones"
	ColImagenes      = "imagenes"
	ColPublicaciones = "publicaciones"
	ColModelos       = "modelos"
	ColUsuarios      = "usuarios"
)

// Filtro representa los parámetros de un listado
type Filtro struct {
	Igualdades map[string]string
	Page       int
	Limit      int
	OrderBy    string
	Order      string
}

// Store representa la fuente de datos inyectable del backend de desarrollo
//
// Los handlers dependen sólo de esta interfaz; en desarrollo corre la
// implementación en memoria y, cuando hace falta que los datos
// sobrevivan reinicios, la de Postgres. Eliminar es baja lógica: el
// registro queda con activo=false y desaparece de Listar y Obtener.
type Store interface {
	Listar(ctx context.Context, coleccion string, filtro Filtro) ([]map[string]any, models.Paginacion, error)
	Obtener(ctx context.Context, coleccion, id string) (map[string]any, error)
	Crear(ctx context.Context, coleccion string, doc map[string]any) (map[string]any, error)
	Actualizar(ctx context.Context, coleccion, id string, cambios map[string]any) (map[string]any, error)
	Eliminar(ctx context.Context, coleccion, id string) error
	Cerrar() error
}
