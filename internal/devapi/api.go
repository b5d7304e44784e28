package devapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/states"
	"github.com/sirupsen/logrus"
)

// API maneja los endpoints del backend de desarrollo
type API struct {
	store  Store
	redis  *Redis
	cfg    *config.Config
	logger *logrus.Logger
}

// NewAPI crea una nueva instancia de la API
func NewAPI(store Store, redis *Redis, cfg *config.Config, logger *logrus.Logger) *API {
	return &API{
		store:  store,
		redis:  redis,
		cfg:    cfg,
		logger: logger,
	}
}

// Campos obligatorios por colección; el resto de la validación
// estructural corre del lado del cliente.
var requeridos = map[string][]string{
	ColVehiculos:     {"anio"},
	ColVendedores:    {"nombre"},
	ColCompradores:   {"nombre"},
	ColOperaciones:   {"tipo", "vehiculo_id"},
	ColImagenes:      {"vehiculo_id", "url"},
	ColPublicaciones: {"plataforma", "titulo"},
}

// Listar retorna el handler de listado de una colección
func (api *API) Listar(coleccion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		filtro := Filtro{
			Igualdades: make(map[string]string),
			Page:       enteroQuery(c, "page", 1),
			Limit:      enteroQuery(c, "limit", 12),
			OrderBy:    c.DefaultQuery("orderBy", "created_at"),
			Order:      c.DefaultQuery("order", "desc"),
		}
		for clave, valores := range c.Request.URL.Query() {
			switch clave {
			case "page", "limit", "orderBy", "order":
				continue
			}
			if len(valores) > 0 && valores[0] != "" {
				filtro.Igualdades[clave] = valores[0]
			}
		}

		docs, paginacion, err := api.store.Listar(c.Request.Context(), coleccion, filtro)
		if err != nil {
			api.logger.WithError(err).WithField("coleccion", coleccion).Error("Error listando documentos")
			c.JSON(http.StatusInternalServerError, models.NuevoError("Error consultando "+coleccion))
			return
		}
		if docs == nil {
			docs = []map[string]any{}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			coleccion:    docs,
			"pagination": paginacion,
		})
	}
}

// Obtener retorna el handler de detalle de una colección
func (api *API) Obtener(coleccion, singular string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := api.store.Obtener(c.Request.Context(), coleccion, c.Param("id"))
		if err != nil {
			api.responderErrorStore(c, coleccion, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, singular: doc})
	}
}

// Crear retorna el handler de alta de una colección
func (api *API) Crear(coleccion, singular string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc map[string]any
		if err := c.ShouldBindJSON(&doc); err != nil {
			c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Formato de request inválido", []models.DetalleError{
				{Campo: "body", Mensaje: err.Error()},
			}))
			return
		}

		if detalles := api.faltantes(coleccion, doc); len(detalles) > 0 {
			c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Datos inválidos", detalles))
			return
		}

		creado, err := api.store.Crear(c.Request.Context(), coleccion, doc)
		if err != nil {
			api.logger.WithError(err).WithField("coleccion", coleccion).Error("Error creando documento")
			c.JSON(http.StatusInternalServerError, models.NuevoError("Error creando el registro"))
			return
		}

		api.logger.WithFields(logrus.Fields{
			"coleccion": coleccion,
			"id":        creado["id"],
		}).Info("Registro creado")
		c.JSON(http.StatusCreated, gin.H{"success": true, singular: creado})
	}
}

// Actualizar retorna el handler de actualización parcial de una colección
func (api *API) Actualizar(coleccion, singular string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cambios map[string]any
		if err := c.ShouldBindJSON(&cambios); err != nil {
			c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Formato de request inválido", []models.DetalleError{
				{Campo: "body", Mensaje: err.Error()},
			}))
			return
		}
		if len(cambios) == 0 {
			c.JSON(http.StatusBadRequest, models.NuevoError("No hay campos para actualizar"))
			return
		}

		doc, err := api.store.Actualizar(c.Request.Context(), coleccion, c.Param("id"), cambios)
		if err != nil {
			api.responderErrorStore(c, coleccion, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, singular: doc})
	}
}

// Eliminar retorna el handler de baja lógica de una colección
func (api *API) Eliminar(coleccion string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := api.store.Eliminar(c.Request.Context(), coleccion, c.Param("id")); err != nil {
			api.responderErrorStore(c, coleccion, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registro eliminado"})
	}
}

// Estados responde el catálogo de estados de vehículos
func (api *API) Estados(c *gin.Context) {
	catalogo := make([]models.EstadoVehiculo, 0)
	for _, info := range states.Todos() {
		catalogo = append(catalogo, models.EstadoVehiculo{Codigo: info.Codigo, Etiqueta: info.Etiqueta})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "estados": catalogo})
}

// ImagenesDeVehiculo lista las imágenes de un vehículo ordenadas
func (api *API) ImagenesDeVehiculo(c *gin.Context) {
	docs, _, err := api.store.Listar(c.Request.Context(), ColImagenes, Filtro{
		Igualdades: map[string]string{"vehiculo_id": c.Param("id")},
		Page:       1,
		Limit:      100,
		OrderBy:    "orden",
		Order:      "asc",
	})
	if err != nil {
		api.logger.WithError(err).Error("Error listando imágenes")
		c.JSON(http.StatusInternalServerError, models.NuevoError("Error consultando imágenes"))
		return
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "imagenes": docs})
}

// PublicacionesDeVehiculo lista las publicaciones de un vehículo
func (api *API) PublicacionesDeVehiculo(c *gin.Context) {
	docs, _, err := api.store.Listar(c.Request.Context(), ColPublicaciones, Filtro{
		Igualdades: map[string]string{"vehiculo_id": c.Param("id")},
		Page:       1,
		Limit:      100,
	})
	if err != nil {
		api.logger.WithError(err).Error("Error listando publicaciones")
		c.JSON(http.StatusInternalServerError, models.NuevoError("Error consultando publicaciones"))
		return
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "publicaciones": docs})
}

// PublicarVehiculo crea una publicación para el vehículo de la ruta
func (api *API) PublicarVehiculo(c *gin.Context) {
	vehiculoID := c.Param("id")
	if _, err := api.store.Obtener(c.Request.Context(), ColVehiculos, vehiculoID); err != nil {
		api.responderErrorStore(c, ColVehiculos, err)
		return
	}

	var doc map[string]any
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Formato de request inválido", []models.DetalleError{
			{Campo: "body", Mensaje: err.Error()},
		}))
		return
	}
	doc["vehiculo_id"] = vehiculoID
	if _, ok := doc["activa"]; !ok {
		doc["activa"] = true
	}

	if detalles := api.faltantes(ColPublicaciones, doc); len(detalles) > 0 {
		c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Datos inválidos", detalles))
		return
	}

	creado, err := api.store.Crear(c.Request.Context(), ColPublicaciones, doc)
	if err != nil {
		api.logger.WithError(err).Error("Error creando publicación")
		c.JSON(http.StatusInternalServerError, models.NuevoError("Error creando la publicación"))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "publicacion": creado})
}

// MarcarImagenPrincipal marca una imagen como principal de su vehículo
//
// Mantiene el invariante de una sola principal por vehículo desmarcando
// a las hermanas antes de marcar la pedida.
func (api *API) MarcarImagenPrincipal(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	imagen, err := api.store.Obtener(ctx, ColImagenes, id)
	if err != nil {
		api.responderErrorStore(c, ColImagenes, err)
		return
	}

	vehiculoID, _ := imagen["vehiculo_id"].(string)
	hermanas, _, err := api.store.Listar(ctx, ColImagenes, Filtro{
		Igualdades: map[string]string{"vehiculo_id": vehiculoID},
		Page:       1,
		Limit:      100,
	})
	if err != nil {
		api.logger.WithError(err).Error("Error listando imágenes del vehículo")
		c.JSON(http.StatusInternalServerError, models.NuevoError("Error actualizando la imagen"))
		return
	}

	for _, hermana := range hermanas {
		esPrincipal, _ := hermana["es_principal"].(bool)
		hermanaID, _ := hermana["id"].(string)
		if !esPrincipal || hermanaID == id {
			continue
		}
		if _, err := api.store.Actualizar(ctx, ColImagenes, hermanaID, map[string]any{"es_principal": false}); err != nil {
			api.logger.WithError(err).Error("Error desmarcando imagen principal")
			c.JSON(http.StatusInternalServerError, models.NuevoError("Error actualizando la imagen"))
			return
		}
	}

	actualizada, err := api.store.Actualizar(ctx, ColImagenes, id, map[string]any{"es_principal": true})
	if err != nil {
		api.responderErrorStore(c, ColImagenes, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "imagen": actualizada})
}

func (api *API) faltantes(coleccion string, doc map[string]any) []models.DetalleError {
	var detalles []models.DetalleError
	for _, campo := range requeridos[coleccion] {
		valor, ok := doc[campo]
		if !ok || valor == nil || valor == "" {
			detalles = append(detalles, models.DetalleError{
				Campo:   campo,
				Mensaje: "El campo " + campo + " es obligatorio",
			})
		}
	}
	return detalles
}

func (api *API) responderErrorStore(c *gin.Context, coleccion string, err error) {
	if errors.Is(err, ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, models.NuevoError("Registro no encontrado"))
		return
	}
	api.logger.WithError(err).WithField("coleccion", coleccion).Error("Error de store")
	c.JSON(http.StatusInternalServerError, models.NuevoError("Error interno del servidor"))
}

func enteroQuery(c *gin.Context, clave string, defecto int) int {
	if valor := c.Query(clave); valor != "" {
		if entero, err := strconv.Atoi(valor); err == nil && entero > 0 {
			return entero
		}
	}
	return defecto
}
