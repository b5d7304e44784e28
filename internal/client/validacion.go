package client

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// Regla representa una regla de validación estructural sobre un campo
//
// MinLen/MaxLen y Patron aplican sólo a valores de texto; Custom recibe
// el valor crudo y retorna un mensaje de error, o "" si el valor es
// válido.
type Regla struct {
	Campo     string
	Requerido bool
	MinLen    int
	MaxLen    int
	Patron    *regexp.Regexp
	Mensaje   string
	Custom    func(valor any) string
}

// Validar corre todas las reglas y junta todas las violaciones
//
// No corta en la primera falla: el formulario tiene que poder mostrar
// todos los problemas de una vez.
func Validar(datos Datos, reglas []Regla) []models.DetalleError {
	var detalles []models.DetalleError

	for _, regla := range reglas {
		valor, presente := datos[regla.Campo]
		if !presente || valor == nil || esTextoVacio(valor) {
			if regla.Requerido {
				detalles = append(detalles, models.DetalleError{
					Campo:   regla.Campo,
					Mensaje: fmt.Sprintf("El campo %s es obligatorio", regla.Campo),
				})
			}
			continue
		}

		if texto, ok := valor.(string); ok {
			largo := utf8.RuneCountInString(texto)
			if regla.MinLen > 0 && largo < regla.MinLen {
				detalles = append(detalles, models.DetalleError{
					Campo:   regla.Campo,
					Mensaje: fmt.Sprintf("El campo %s debe tener al menos %d caracteres", regla.Campo, regla.MinLen),
				})
			}
			if regla.MaxLen > 0 && largo > regla.MaxLen {
				detalles = append(detalles, models.DetalleError{
					Campo:   regla.Campo,
					Mensaje: fmt.Sprintf("El campo %s no puede superar los %d caracteres", regla.Campo, regla.MaxLen),
				})
			}
			if regla.Patron != nil && !regla.Patron.MatchString(texto) {
				mensaje := regla.Mensaje
				if mensaje == "" {
					mensaje = fmt.Sprintf("El campo %s tiene un formato inválido", regla.Campo)
				}
				detalles = append(detalles, models.DetalleError{Campo: regla.Campo, Mensaje: mensaje})
			}
		}

		if regla.Custom != nil {
			if mensaje := regla.Custom(valor); mensaje != "" {
				detalles = append(detalles, models.DetalleError{Campo: regla.Campo, Mensaje: mensaje})
			}
		}
	}

	return detalles
}

func esTextoVacio(valor any) bool {
	texto, ok := valor.(string)
	return ok && strings.TrimSpace(texto) == ""
}

// aNumero intenta interpretar un valor JSON como número
func aNumero(valor any) (float64, bool) {
	switch v := valor.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
