package client

import (
	"regexp"
	"strings"
	"testing"
)

func TestValidarJuntaTodasLasViolaciones(t *testing.T) {
	reglas := []Regla{
		{Campo: "nombre", Requerido: true},
		{Campo: "email", Requerido: true, Patron: regexp.MustCompile(`^\S+@\S+$`), Mensaje: "El email tiene un formato inválido"},
		{Campo: "anio", Custom: func(valor any) string {
			if numero, ok := aNumero(valor); !ok || numero < 1950 {
				return "El año está fuera de rango"
			}
			return ""
		}},
	}

	datos := Datos{"email": "no-es-un-email", "anio": 1910}
	detalles := Validar(datos, reglas)

	if len(detalles) != 3 {
		t.Fatalf("esperaba 3 violaciones, obtuve %d: %+v", len(detalles), detalles)
	}

	porCampo := map[string]string{}
	for _, d := range detalles {
		porCampo[d.Campo] = d.Mensaje
	}
	if !strings.Contains(porCampo["nombre"], "obligatorio") {
		t.Fatalf("mensaje de requerido: %q", porCampo["nombre"])
	}
	if porCampo["email"] != "El email tiene un formato inválido" {
		t.Fatalf("mensaje de patrón: %q", porCampo["email"])
	}
	if porCampo["anio"] != "El año está fuera de rango" {
		t.Fatalf("mensaje custom: %q", porCampo["anio"])
	}
}

func TestValidarTextoEnBlancoCuentaComoAusente(t *testing.T) {
	reglas := []Regla{{Campo: "nombre", Requerido: true, MinLen: 2}}

	detalles := Validar(Datos{"nombre": "   "}, reglas)
	if len(detalles) != 1 {
		t.Fatalf("esperaba 1 violación, obtuve %+v", detalles)
	}
	if !strings.Contains(detalles[0].Mensaje, "obligatorio") {
		t.Fatalf("un texto en blanco debe fallar como ausente, no por largo: %q", detalles[0].Mensaje)
	}
}

func TestValidarOpcionalAusenteNoFalla(t *testing.T) {
	reglas := []Regla{
		{Campo: "notas", MaxLen: 500},
		{Campo: "telefono", Patron: regexp.MustCompile(`^[0-9+\- ]+$`)},
	}

	if detalles := Validar(Datos{}, reglas); len(detalles) != 0 {
		t.Fatalf("un opcional ausente no debe fallar: %+v", detalles)
	}
}

func TestValidarLargosDeTexto(t *testing.T) {
	reglas := []Regla{{Campo: "patente", MinLen: 6, MaxLen: 7}}

	if detalles := Validar(Datos{"patente": "AB1"}, reglas); len(detalles) != 1 {
		t.Fatalf("corto: %+v", detalles)
	}
	if detalles := Validar(Datos{"patente": "AB123CD9"}, reglas); len(detalles) != 1 {
		t.Fatalf("largo: %+v", detalles)
	}
	if detalles := Validar(Datos{"patente": "AB123CD"}, reglas); len(detalles) != 0 {
		t.Fatalf("válido: %+v", detalles)
	}
}

func TestValidarDatosValidosNoReportaNada(t *testing.T) {
	reglas := []Regla{
		{Campo: "nombre", Requerido: true, MinLen: 2},
		{Campo: "email", Requerido: true, Patron: regexp.MustCompile(`^\S+@\S+$`)},
	}

	detalles := Validar(Datos{"nombre": "Carlos", "email": "carlos@concesionaria.local"}, reglas)
	if len(detalles) != 0 {
		t.Fatalf("datos válidos reportaron violaciones: %+v", detalles)
	}
}
