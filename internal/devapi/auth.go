package devapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Login autentica por email y contraseña y emite un token de sesión
func (api *API) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.NuevoErrorValidacion("Email y contraseña son obligatorios", []models.DetalleError{
			{Campo: "email", Mensaje: "El email es obligatorio"},
			{Campo: "password", Mensaje: "La contraseña es obligatoria"},
		}))
		return
	}

	usuarios, _, err := api.store.Listar(c.Request.Context(), ColUsuarios, Filtro{
		Igualdades: map[string]string{"email": req.Email},
		Page:       1,
		Limit:      1,
	})
	if err != nil || len(usuarios) == 0 {
		c.JSON(http.StatusUnauthorized, models.NuevoError("Credenciales inválidas"))
		return
	}
	usuario := usuarios[0]

	hash, _ := usuario["password_hash"].(string)
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.NuevoError("Credenciales inválidas"))
		return
	}

	id, _ := usuario["id"].(string)
	rol, _ := usuario["rol"].(string)
	claims := jwt.RegisteredClaims{
		Subject:   id,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(api.cfg.JWT.Expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(api.cfg.JWT.Secret))
	if err != nil {
		api.logger.WithError(err).Error("Error firmando token")
		c.JSON(http.StatusInternalServerError, models.NuevoError("Error generando la sesión"))
		return
	}

	api.logger.WithFields(map[string]any{"usuario": req.Email, "rol": rol}).Info("Login exitoso")
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"usuario": perfilPublico(usuario),
	})
}

// Logout cierra la sesión; el token simplemente deja de usarse
func (api *API) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sesión cerrada"})
}

// Me retorna el perfil del usuario autenticado
func (api *API) Me(c *gin.Context) {
	usuario, ok := c.Get("usuario")
	if !ok {
		c.JSON(http.StatusUnauthorized, models.NuevoError("Sesión inválida"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "usuario": perfilPublico(usuario.(map[string]any))})
}

// AuthMiddleware valida el bearer token y carga el usuario en el contexto
func (api *API) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		encabezado := c.GetHeader("Authorization")
		if !strings.HasPrefix(encabezado, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NuevoError("Sesión expirada o inexistente"))
			return
		}
		crudo := strings.TrimPrefix(encabezado, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(crudo, claims, func(t *jwt.Token) (any, error) {
			return []byte(api.cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NuevoError("Sesión expirada o inexistente"))
			return
		}

		usuario, err := api.store.Obtener(c.Request.Context(), ColUsuarios, claims.Subject)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.NuevoError("Sesión expirada o inexistente"))
			return
		}

		c.Set("usuario", usuario)
		c.Set("usuario_id", claims.Subject)
		c.Next()
	}
}

// RateLimit limita las peticiones por usuario en ventanas de un minuto
//
// Sin Redis disponible el middleware se desactiva; el backend de
// desarrollo sigue funcionando, sólo que sin 429.
func (api *API) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if api.redis == nil || api.cfg.RateLimit.PorMinuto <= 0 {
			c.Next()
			return
		}

		identidad := c.GetString("usuario_id")
		if identidad == "" {
			identidad = c.ClientIP()
		}
		clave := "rl:" + identidad + ":" + time.Now().UTC().Format("200601021504")

		cuenta, err := api.redis.ContarVentana(c.Request.Context(), clave, time.Minute)
		if err != nil {
			api.logger.WithError(err).Warn("Rate limiter sin Redis; petición permitida")
			c.Next()
			return
		}
		if cuenta > int64(api.cfg.RateLimit.PorMinuto) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				models.NuevoError("Demasiadas peticiones. Esperá un momento e intentá de nuevo."))
			return
		}
		c.Next()
	}
}

// perfilPublico retorna el usuario sin campos sensibles
func perfilPublico(usuario map[string]any) map[string]any {
	publico := make(map[string]any, len(usuario))
	for clave, valor := range usuario {
		switch clave {
		case "password_hash", "activo", "created_at", "updated_at":
			continue
		}
		publico[clave] = valor
	}
	return publico
}
