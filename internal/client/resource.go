package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
	"github.com/sirupsen/logrus"
)

// Datos representa un payload parcial: sólo viajan los campos presentes
type Datos map[string]any

// Recurso representa el cliente CRUD genérico para un tipo de recurso
//
// Un Recurso por entidad (vehiculos, vendedores, ...) reemplaza los
// cinco módulos de servicio casi idénticos que este patrón suele
// producir. La clasificación de errores vive en transport; acá sólo se
// valida, se llama y se normaliza el sobre de respuesta.
type Recurso[T any] struct {
	t        *transport.Cliente
	nombre   string // segmento de ruta y clave plural del sobre: "vendedores"
	singular string // clave singular del sobre: "vendedor"
	reglas   []Regla
	logger   *logrus.Logger
}

// NuevoRecurso crea un cliente CRUD para /api/{nombre}
func NuevoRecurso[T any](t *transport.Cliente, nombre, singular string, reglas []Regla, logger *logrus.Logger) *Recurso[T] {
	return &Recurso[T]{
		t:        t,
		nombre:   nombre,
		singular: singular,
		reglas:   reglas,
		logger:   logger,
	}
}

// Nombre retorna el nombre del recurso (segmento de ruta)
func (r *Recurso[T]) Nombre() string {
	return r.nombre
}

// List obtiene una página de recursos aplicando filtros y defaults
func (r *Recurso[T]) List(ctx context.Context, filtros Filtros) Resultado[Pagina[T]] {
	completos := conDefaults(filtros)

	resp, err := r.t.Do(ctx, http.MethodGet, "/api/"+r.nombre, completos.Query(), nil)
	if err != nil {
		return fallaDesdeError[Pagina[T]](err)
	}
	if !resp.Success {
		return falla[Pagina[T]](resp.MensajeServidor())
	}

	var items []T
	if err := resp.Recurso(r.nombre, &items); err != nil {
		r.logger.WithError(err).WithField("recurso", r.nombre).Error("Respuesta de listado inválida")
		return falla[Pagina[T]]("Respuesta inválida del servidor.")
	}

	pagina := Pagina[T]{Items: items}
	if resp.Pagination != nil {
		pagina.Paginacion = *resp.Pagination
	} else {
		pagina.Paginacion = models.Paginacion{Page: 1, Pages: 1, Total: len(items), Limit: len(items)}
	}
	return exito(pagina)
}

// GetByID obtiene un recurso por id
//
// Falla localmente, sin llamada de red, si el id viene vacío.
func (r *Recurso[T]) GetByID(ctx context.Context, id string) Resultado[T] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[T]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}

	resp, err := r.t.Do(ctx, http.MethodGet, "/api/"+r.nombre+"/"+id, nil, nil)
	if err != nil {
		return fallaDesdeError[T](err)
	}
	return r.desempaquetar(resp)
}

// Create valida el payload localmente y crea el recurso
//
// Si la validación estructural falla no se hace ninguna llamada de red;
// el Resultado trae todas las violaciones juntas.
func (r *Recurso[T]) Create(ctx context.Context, datos Datos) Resultado[T] {
	if detalles := Validar(datos, r.reglas); len(detalles) > 0 {
		return fallaValidacion[T](detalles)
	}

	resp, err := r.t.Do(ctx, http.MethodPost, "/api/"+r.nombre, nil, datos)
	if err != nil {
		return fallaDesdeError[T](err)
	}
	return r.desempaquetar(resp)
}

// Update envía una actualización parcial del recurso
//
// Sólo viajan los campos presentes en datos; el resto queda intacto del
// lado del servidor.
func (r *Recurso[T]) Update(ctx context.Context, id string, datos Datos) Resultado[T] {
	var detalles []models.DetalleError
	if strings.TrimSpace(id) == "" {
		detalles = append(detalles, models.DetalleError{Campo: "id", Mensaje: "El id es obligatorio"})
	}
	if len(datos) == 0 {
		detalles = append(detalles, models.DetalleError{Campo: "payload", Mensaje: "No hay campos para actualizar"})
	}
	if len(detalles) > 0 {
		return fallaValidacion[T](detalles)
	}

	resp, err := r.t.Do(ctx, http.MethodPut, "/api/"+r.nombre+"/"+id, nil, datos)
	if err != nil {
		return fallaDesdeError[T](err)
	}
	return r.desempaquetar(resp)
}

// Remove elimina un recurso (baja lógica del lado del servidor)
func (r *Recurso[T]) Remove(ctx context.Context, id string) Resultado[struct{}] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[struct{}]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}

	resp, err := r.t.Do(ctx, http.MethodDelete, "/api/"+r.nombre+"/"+id, nil, nil)
	if err != nil {
		return fallaDesdeError[struct{}](err)
	}
	if !resp.Success {
		return falla[struct{}](resp.MensajeServidor())
	}
	return exito(struct{}{})
}

// desempaquetar extrae la entidad bajo la clave singular del sobre
func (r *Recurso[T]) desempaquetar(resp *transport.Respuesta) Resultado[T] {
	if !resp.Success {
		return falla[T](resp.MensajeServidor())
	}
	var entidad T
	if err := resp.Recurso(r.singular, &entidad); err != nil {
		r.logger.WithError(err).WithField("recurso", r.nombre).Error("Respuesta de entidad inválida")
		return falla[T]("Respuesta inválida del servidor.")
	}
	return exito(entidad)
}
