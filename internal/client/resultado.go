package client

import (
	"errors"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
)

// Resultado representa el sobre uniforme que retorna todo cliente de recursos
//
// Las operaciones nunca devuelven errores crudos: un fallo de red, una
// respuesta no exitosa del servidor o una validación local fallida
// terminan todos en Success=false con un mensaje mostrable. Campos
// conserva las violaciones por campo (locales o del servidor) para que
// el formulario las mapee de vuelta a sus inputs.
type Resultado[T any] struct {
	Success bool
	Data    T
	Error   string
	Clase   transport.Clase
	Errores []string
	Campos  []models.DetalleError
}

// Pagina representa una página de resultados de un listado
type Pagina[T any] struct {
	Items      []T
	Paginacion models.Paginacion
}

func exito[T any](data T) Resultado[T] {
	return Resultado[T]{Success: true, Data: data}
}

func falla[T any](mensaje string) Resultado[T] {
	return Resultado[T]{Success: false, Error: mensaje}
}

func fallaValidacion[T any](detalles []models.DetalleError) Resultado[T] {
	mensajes := make([]string, 0, len(detalles))
	for _, d := range detalles {
		mensajes = append(mensajes, d.Mensaje)
	}
	return Resultado[T]{
		Success: false,
		Error:   "Datos inválidos",
		Errores: mensajes,
		Campos:  detalles,
	}
}

func fallaDesdeError[T any](err error) Resultado[T] {
	var te *transport.Error
	if errors.As(err, &te) {
		return Resultado[T]{
			Success: false,
			Error:   te.Mensaje,
			Clase:   te.Clase,
			Campos:  te.Details,
		}
	}
	return Resultado[T]{Success: false, Error: err.Error()}
}
