package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/sirupsen/logrus"
)

// Clase representa la clasificación de un error de transporte
type Clase string

const (
	ClaseAuthExpired Clase = "AUTH_EXPIRED"
	ClaseForbidden   Clase = "FORBIDDEN"
	ClaseRateLimited Clase = "RATE_LIMITED"
	ClaseUnreachable Clase = "UNREACHABLE"
	ClaseServerError Clase = "SERVER_ERROR"
)

// Error representa un error de transporte ya clasificado
//
// Los clientes de recursos nunca ven errores crudos de net/http; todo
// error que cruza esta capa sale con una Clase y un mensaje apto para
// mostrar al usuario. Details conserva los errores por campo que el
// servidor haya enviado.
type Error struct {
	Clase   Clase
	Status  int
	Mensaje string
	Details []models.DetalleError
}

// Error implementa la interfaz error
func (e *Error) Error() string {
	return e.Mensaje
}

// TokenProvider retorna el bearer token vigente, o "" si no hay sesión
type TokenProvider func() string

// Cliente representa el adaptador HTTP hacia el backend
type Cliente struct {
	httpClient *http.Client
	baseURL    string
	token      TokenProvider
	// onAuthExpired se invoca exactamente una vez por respuesta 401,
	// antes de retornar el error al llamador. 403 y 429 no lo tocan.
	onAuthExpired func()
	logger        *logrus.Logger
}

// NuevoCliente crea un adaptador HTTP con timeout y base URL fijos
func NuevoCliente(baseURL string, timeout time.Duration, token TokenProvider, logger *logrus.Logger) *Cliente {
	return &Cliente{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		logger:     logger,
	}
}

// AlExpirarSesion registra el hook que se dispara ante una respuesta 401
func (c *Cliente) AlExpirarSesion(fn func()) {
	c.onAuthExpired = fn
}

// Respuesta representa el sobre genérico de la API
//
// Cada endpoint responde success más claves específicas del recurso
// (vehiculos, vendedor, ...); Recursos conserva esas claves crudas para
// que el cliente de recursos decodifique la suya.
type Respuesta struct {
	Success    bool
	Message    string
	Err        string
	Details    []models.DetalleError
	Pagination *models.Paginacion
	Recursos   map[string]json.RawMessage
}

// UnmarshalJSON implementa json.Unmarshaler separando las claves del sobre
func (r *Respuesta) UnmarshalJSON(data []byte) error {
	var crudo map[string]json.RawMessage
	if err := json.Unmarshal(data, &crudo); err != nil {
		return err
	}
	r.Recursos = make(map[string]json.RawMessage)
	for clave, valor := range crudo {
		switch clave {
		case "success":
			if err := json.Unmarshal(valor, &r.Success); err != nil {
				return err
			}
		case "message":
			_ = json.Unmarshal(valor, &r.Message)
		case "error":
			_ = json.Unmarshal(valor, &r.Err)
		case "details":
			_ = json.Unmarshal(valor, &r.Details)
		case "pagination":
			_ = json.Unmarshal(valor, &r.Pagination)
		default:
			r.Recursos[clave] = valor
		}
	}
	return nil
}

// Recurso decodifica la clave indicada del sobre en out
func (r *Respuesta) Recurso(clave string, out any) error {
	valor, ok := r.Recursos[clave]
	if !ok {
		return fmt.Errorf("la respuesta no contiene la clave %q", clave)
	}
	return json.Unmarshal(valor, out)
}

// MensajeServidor retorna el mensaje de error que haya enviado el servidor
func (r *Respuesta) MensajeServidor() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Err
}

// Do ejecuta una petición contra el backend y clasifica el resultado
//
// En 2xx decodifica el cuerpo en una Respuesta; en cualquier otro caso
// retorna un *Error clasificado. La cancelación de contexto se propaga
// sin clasificar para que el llamador distinga una petición abortada de
// un backend caído.
func (c *Cliente) Do(ctx context.Context, method, path string, query url.Values, in any) (*Respuesta, error) {
	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return nil, err
		}
		body = buf
	}

	destino := c.baseURL + path
	if len(query) > 0 {
		destino += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, destino, body)
	if err != nil {
		return nil, err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, context.Canceled
		}
		c.logger.WithError(err).WithField("path", path).Warn("Backend unreachable")
		return nil, &Error{
			Clase:   ClaseUnreachable,
			Mensaje: "No se pudo conectar con el servidor. Verificá tu conexión.",
		}
	}
	defer func() { _ = resp.Body.Close() }()

	cuerpo, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			Clase:   ClaseUnreachable,
			Mensaje: "No se pudo leer la respuesta del servidor.",
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var r Respuesta
		if err := json.Unmarshal(cuerpo, &r); err != nil {
			return nil, &Error{
				Clase:   ClaseServerError,
				Status:  resp.StatusCode,
				Mensaje: "Respuesta inválida del servidor.",
			}
		}
		return &r, nil
	}

	return nil, c.clasificar(resp.StatusCode, cuerpo)
}

// clasificar convierte una respuesta no exitosa en un *Error con Clase
func (c *Cliente) clasificar(status int, cuerpo []byte) *Error {
	var servidor models.RespuestaError
	_ = json.Unmarshal(cuerpo, &servidor)

	mensaje := servidor.Message
	if mensaje == "" {
		mensaje = servidor.Error
	}

	switch status {
	case http.StatusUnauthorized:
		if c.onAuthExpired != nil {
			c.onAuthExpired()
		}
		if mensaje == "" {
			mensaje = "Tu sesión expiró. Iniciá sesión nuevamente."
		}
		return &Error{Clase: ClaseAuthExpired, Status: status, Mensaje: mensaje, Details: servidor.Details}
	case http.StatusForbidden:
		if mensaje == "" {
			mensaje = "No tenés permisos para realizar esta acción."
		}
		return &Error{Clase: ClaseForbidden, Status: status, Mensaje: mensaje, Details: servidor.Details}
	case http.StatusTooManyRequests:
		if mensaje == "" {
			mensaje = "Demasiadas peticiones. Esperá un momento e intentá de nuevo."
		}
		return &Error{Clase: ClaseRateLimited, Status: status, Mensaje: mensaje, Details: servidor.Details}
	default:
		if mensaje == "" {
			mensaje = fmt.Sprintf("%d: %s", status, http.StatusText(status))
		}
		return &Error{Clase: ClaseServerError, Status: status, Mensaje: mensaje, Details: servidor.Details}
	}
}
