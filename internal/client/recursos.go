package client

import (
	"fmt"
	"regexp"
	"time"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
	"github.com/sirupsen/logrus"
)

var (
	patronEmail = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	patronURL   = regexp.MustCompile(`^https?://`)
)

// anioMinimo y la cota superior (año actual + 1) aplican uniformes en
// todos los formularios; los bounds históricos divergentes quedaron
// unificados acá.
const anioMinimo = 1950

func validarAnio(valor any) string {
	anio, ok := aNumero(valor)
	if !ok {
		return "El año debe ser numérico"
	}
	maximo := time.Now().Year() + 1
	if anio < anioMinimo || anio > float64(maximo) {
		return fmt.Sprintf("El año debe estar entre %d y %d", anioMinimo, maximo)
	}
	return ""
}

func validarNoNegativo(campo string) func(any) string {
	return func(valor any) string {
		numero, ok := aNumero(valor)
		if !ok {
			return fmt.Sprintf("El campo %s debe ser numérico", campo)
		}
		if numero < 0 {
			return fmt.Sprintf("El campo %s no puede ser negativo", campo)
		}
		return ""
	}
}

func validarEnTexto(campo string, permitidos ...string) func(any) string {
	return func(valor any) string {
		texto, ok := valor.(string)
		if !ok {
			return fmt.Sprintf("El campo %s debe ser texto", campo)
		}
		for _, permitido := range permitidos {
			if texto == permitido {
				return ""
			}
		}
		return fmt.Sprintf("El campo %s tiene un valor no soportado: %s", campo, texto)
	}
}

// reglasContacto arma la tabla de reglas compartida por vendedores y compradores
func reglasContacto() []Regla {
	return []Regla{
		{Campo: "nombre", Requerido: true, MaxLen: 100},
		{Campo: "apellido", MaxLen: 100},
		{Campo: "email", Patron: patronEmail, Mensaje: "El email tiene un formato inválido"},
		{Campo: "telefono", MaxLen: 30},
		{Campo: "direccion", MaxLen: 200},
		{Campo: "notas", MaxLen: 1000},
	}
}

func reglasVehiculo() []Regla {
	return []Regla{
		{Campo: "anio", Requerido: true, Custom: validarAnio},
		{Campo: "patente", MaxLen: 15},
		{Campo: "valor", Custom: validarNoNegativo("valor")},
		{Campo: "kilometraje", Custom: validarNoNegativo("kilometraje")},
		{Campo: "moneda", Custom: validarEnTexto("moneda", string(models.MonedaPesos), string(models.MonedaDolares))},
		{Campo: "observaciones", MaxLen: 2000},
	}
}

func reglasOperacion() []Regla {
	return []Regla{
		{Campo: "tipo", Requerido: true, Custom: validarEnTexto("tipo",
			string(models.OperacionCompra), string(models.OperacionVenta),
			string(models.OperacionDeposito), string(models.OperacionTraslado))},
		{Campo: "vehiculo_id", Requerido: true},
		{Campo: "monto", Custom: validarNoNegativo("monto")},
		{Campo: "moneda", Custom: validarEnTexto("moneda", string(models.MonedaPesos), string(models.MonedaDolares))},
		{Campo: "notas", MaxLen: 1000},
	}
}

func reglasImagen() []Regla {
	return []Regla{
		{Campo: "vehiculo_id", Requerido: true},
		{Campo: "url", Requerido: true, Patron: patronURL, Mensaje: "La URL de la imagen debe ser http(s)"},
		{Campo: "orden", Custom: validarNoNegativo("orden")},
	}
}

func reglasPublicacion() []Regla {
	return []Regla{
		{Campo: "plataforma", Requerido: true, Custom: validarEnTexto("plataforma",
			string(models.PlataformaWeb), string(models.PlataformaFacebook),
			string(models.PlataformaInstagram), string(models.PlataformaMarketplace),
			string(models.PlataformaOtra))},
		{Campo: "titulo", Requerido: true, MaxLen: 150},
		{Campo: "url", Patron: patronURL, Mensaje: "La URL de la publicación debe ser http(s)"},
		{Campo: "descripcion", MaxLen: 500},
	}
}

// NuevoVendedores crea el cliente CRUD de vendedores
func NuevoVendedores(t *transport.Cliente, logger *logrus.Logger) *Recurso[models.Vendedor] {
	return NuevoRecurso[models.Vendedor](t, "vendedores", "vendedor", reglasContacto(), logger)
}

// NuevoCompradores crea el cliente CRUD de compradores
func NuevoCompradores(t *transport.Cliente, logger *logrus.Logger) *Recurso[models.Comprador] {
	return NuevoRecurso[models.Comprador](t, "compradores", "comprador", reglasContacto(), logger)
}

// NuevoOperaciones crea el cliente CRUD de operaciones
func NuevoOperaciones(t *transport.Cliente, logger *logrus.Logger) *Recurso[models.Operacion] {
	return NuevoRecurso[models.Operacion](t, "operaciones", "operacion", reglasOperacion(), logger)
}
