package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
	"github.com/sirupsen/logrus"
)

// Vehiculos representa el cliente de vehículos con sus subrecursos
type Vehiculos struct {
	*Recurso[models.Vehiculo]
	t      *transport.Cliente
	logger *logrus.Logger
}

// NuevoVehiculos crea el cliente CRUD de vehículos
func NuevoVehiculos(t *transport.Cliente, logger *logrus.Logger) *Vehiculos {
	return &Vehiculos{
		Recurso: NuevoRecurso[models.Vehiculo](t, "vehiculos", "vehiculo", reglasVehiculo(), logger),
		t:       t,
		logger:  logger,
	}
}

// Imagenes lista las imágenes de un vehículo
func (v *Vehiculos) Imagenes(ctx context.Context, id string) Resultado[[]models.Imagen] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[[]models.Imagen]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}

	resp, err := v.t.Do(ctx, http.MethodGet, "/api/vehiculos/"+id+"/imagenes", nil, nil)
	if err != nil {
		return fallaDesdeError[[]models.Imagen](err)
	}
	if !resp.Success {
		return falla[[]models.Imagen](resp.MensajeServidor())
	}
	var imagenes []models.Imagen
	if err := resp.Recurso("imagenes", &imagenes); err != nil {
		return falla[[]models.Imagen]("Respuesta inválida del servidor.")
	}
	return exito(imagenes)
}

// Publicaciones lista las publicaciones de un vehículo
func (v *Vehiculos) Publicaciones(ctx context.Context, id string) Resultado[[]models.Publicacion] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[[]models.Publicacion]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}

	resp, err := v.t.Do(ctx, http.MethodGet, "/api/vehiculos/"+id+"/publicaciones", nil, nil)
	if err != nil {
		return fallaDesdeError[[]models.Publicacion](err)
	}
	if !resp.Success {
		return falla[[]models.Publicacion](resp.MensajeServidor())
	}
	var publicaciones []models.Publicacion
	if err := resp.Recurso("publicaciones", &publicaciones); err != nil {
		return falla[[]models.Publicacion]("Respuesta inválida del servidor.")
	}
	return exito(publicaciones)
}

// Publicar crea una publicación para un vehículo
func (v *Vehiculos) Publicar(ctx context.Context, id string, datos Datos) Resultado[models.Publicacion] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[models.Publicacion]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}
	if detalles := Validar(datos, reglasPublicacion()); len(detalles) > 0 {
		return fallaValidacion[models.Publicacion](detalles)
	}

	resp, err := v.t.Do(ctx, http.MethodPost, "/api/vehiculos/"+id+"/publicaciones", nil, datos)
	if err != nil {
		return fallaDesdeError[models.Publicacion](err)
	}
	if !resp.Success {
		return falla[models.Publicacion](resp.MensajeServidor())
	}
	var publicacion models.Publicacion
	if err := resp.Recurso("publicacion", &publicacion); err != nil {
		return falla[models.Publicacion]("Respuesta inválida del servidor.")
	}
	return exito(publicacion)
}

// Imagenes representa el cliente de imágenes con la operación de principal
type Imagenes struct {
	*Recurso[models.Imagen]
	t *transport.Cliente
}

// NuevoImagenes crea el cliente CRUD de imágenes
func NuevoImagenes(t *transport.Cliente, logger *logrus.Logger) *Imagenes {
	return &Imagenes{
		Recurso: NuevoRecurso[models.Imagen](t, "imagenes", "imagen", reglasImagen(), logger),
		t:       t,
	}
}

// MarcarPrincipal marca una imagen como principal de su vehículo
//
// El servidor garantiza el invariante de una sola principal por
// vehículo desmarcando al resto.
func (i *Imagenes) MarcarPrincipal(ctx context.Context, id string) Resultado[models.Imagen] {
	if strings.TrimSpace(id) == "" {
		return fallaValidacion[models.Imagen]([]models.DetalleError{{Campo: "id", Mensaje: "El id es obligatorio"}})
	}

	resp, err := i.t.Do(ctx, http.MethodPatch, "/api/imagenes/"+id+"/principal", nil, nil)
	if err != nil {
		return fallaDesdeError[models.Imagen](err)
	}
	if !resp.Success {
		return falla[models.Imagen](resp.MensajeServidor())
	}
	var imagen models.Imagen
	if err := resp.Recurso("imagen", &imagen); err != nil {
		return falla[models.Imagen]("Respuesta inválida del servidor.")
	}
	return exito(imagen)
}
