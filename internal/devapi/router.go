package devapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Router arma el router del backend de desarrollo
func Router(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "concesionaria-devapi",
		})
	})

	raiz := router.Group("/api")

	// Auth
	raiz.POST("/auth/login", api.Login)
	raiz.POST("/auth/logout", api.AuthMiddleware(), api.Logout)
	raiz.GET("/auth/me", api.AuthMiddleware(), api.Me)

	// Recursos protegidos
	protegido := raiz.Group("", api.AuthMiddleware(), api.RateLimit())
	{
		protegido.GET("/vehiculos/filtros/estados", api.Estados)
		protegido.GET("/vehiculos/:id/imagenes", api.ImagenesDeVehiculo)
		protegido.GET("/vehiculos/:id/publicaciones", api.PublicacionesDeVehiculo)
		protegido.POST("/vehiculos/:id/publicaciones", api.PublicarVehiculo)
		protegido.PATCH("/imagenes/:id/principal", api.MarcarImagenPrincipal)

		crud := []struct {
			coleccion string
			singular  string
		}{
			{ColVehiculos, "vehiculo"},
			{ColVendedores, "vendedor"},
			{ColCompradores, "comprador"},
			{ColOperaciones, "operacion"},
			{ColImagenes, "imagen"},
			{ColPublicaciones, "publicacion"},
		}
		for _, recurso := range crud {
			protegido.GET("/"+recurso.coleccion, api.Listar(recurso.coleccion))
			protegido.POST("/"+recurso.coleccion, api.Crear(recurso.coleccion, recurso.singular))
			protegido.GET("/"+recurso.coleccion+"/:id", api.Obtener(recurso.coleccion, recurso.singular))
			protegido.PUT("/"+recurso.coleccion+"/:id", api.Actualizar(recurso.coleccion, recurso.singular))
			protegido.DELETE("/"+recurso.coleccion+"/:id", api.Eliminar(recurso.coleccion))
		}
	}

	return router
}
