package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/session"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
	"github.com/sirupsen/logrus"
)

// Auth maneja login, logout y perfil contra /api/auth
type Auth struct {
	t      *transport.Cliente
	sesion *session.Store
	logger *logrus.Logger
}

// NuevoAuth crea el cliente de autenticación
func NuevoAuth(t *transport.Cliente, sesion *session.Store, logger *logrus.Logger) *Auth {
	return &Auth{t: t, sesion: sesion, logger: logger}
}

// Login abre sesión y guarda token y perfil en el store
func (a *Auth) Login(ctx context.Context, email, password string) Resultado[models.Usuario] {
	var detalles []models.DetalleError
	if strings.TrimSpace(email) == "" {
		detalles = append(detalles, models.DetalleError{Campo: "email", Mensaje: "El email es obligatorio"})
	} else if !patronEmail.MatchString(email) {
		detalles = append(detalles, models.DetalleError{Campo: "email", Mensaje: "El email tiene un formato inválido"})
	}
	if password == "" {
		detalles = append(detalles, models.DetalleError{Campo: "password", Mensaje: "La contraseña es obligatoria"})
	}
	if len(detalles) > 0 {
		return fallaValidacion[models.Usuario](detalles)
	}

	resp, err := a.t.Do(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return fallaDesdeError[models.Usuario](err)
	}
	if !resp.Success {
		return falla[models.Usuario](resp.MensajeServidor())
	}

	var token string
	if err := resp.Recurso("token", &token); err != nil || token == "" {
		return falla[models.Usuario]("El servidor no devolvió un token de sesión.")
	}
	var usuario models.Usuario
	if err := resp.Recurso("usuario", &usuario); err != nil {
		return falla[models.Usuario]("Respuesta inválida del servidor.")
	}

	a.sesion.Establecer(token, &usuario)
	a.logger.WithFields(logrus.Fields{
		"usuario": usuario.Email,
		"rol":     usuario.Rol,
	}).Info("Sesión iniciada")

	return exito(usuario)
}

// Logout cierra la sesión en el servidor y limpia el store local
//
// El store se limpia aunque el servidor falle: una sesión local a
// medias es peor que repetir el logout.
func (a *Auth) Logout(ctx context.Context) Resultado[struct{}] {
	defer a.sesion.Limpiar()

	resp, err := a.t.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return fallaDesdeError[struct{}](err)
	}
	if !resp.Success {
		return falla[struct{}](resp.MensajeServidor())
	}
	return exito(struct{}{})
}

// Me obtiene el perfil del usuario autenticado
func (a *Auth) Me(ctx context.Context) Resultado[models.Usuario] {
	resp, err := a.t.Do(ctx, http.MethodGet, "/api/auth/me", nil, nil)
	if err != nil {
		return fallaDesdeError[models.Usuario](err)
	}
	if !resp.Success {
		return falla[models.Usuario](resp.MensajeServidor())
	}

	var usuario models.Usuario
	if err := resp.Recurso("usuario", &usuario); err != nil {
		return falla[models.Usuario]("Respuesta inválida del servidor.")
	}
	return exito(usuario)
}
