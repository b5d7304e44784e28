package models

// DetalleError representa un error de validación a nivel de campo
type DetalleError struct {
	Campo   string `json:"field"`
	Mensaje string `json:"message"`
}

// RespuestaError representa la respuesta de error estandarizada de la API
//
// Todas las respuestas no exitosas llevan success=false más un mensaje
// legible; los errores de validación del servidor agregan details con el
// campo ofensivo de cada violación.
type RespuestaError struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Error   string         `json:"error,omitempty"`
	Details []DetalleError `json:"details,omitempty"`
}

// NuevoError crea una respuesta de error con mensaje
func NuevoError(mensaje string) RespuestaError {
	return RespuestaError{Success: false, Message: mensaje, Error: mensaje}
}

// NuevoErrorValidacion crea un error de validación con detalles por campo
func NuevoErrorValidacion(mensaje string, detalles []DetalleError) RespuestaError {
	return RespuestaError{Success: false, Message: mensaje, Error: mensaje, Details: detalles}
}
