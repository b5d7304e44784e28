package states

import (
	"strings"
)

// Códigos canónicos del ciclo de vida de un vehículo.
const (
	Disponible    = "DISPONIBLE"
	Reservado     = "RESERVADO"
	Vendido       = "VENDIDO"
	Mantenimiento = "MANTENIMIENTO"
	EnTransito    = "EN_TRANSITO"
	Baja          = "BAJA"
	Desconocido   = "DESCONOCIDO"
)

// Info representa cómo se presenta un estado en pantalla
type Info struct {
	Codigo   string
	Etiqueta string
	Color    string
}

var porCodigo = map[string]Info{
	Disponible:    {Disponible, "Disponible", "green"},
	Reservado:     {Reservado, "Reservado", "amber"},
	Vendido:       {Vendido, "Vendido", "blue"},
	Mantenimiento: {Mantenimiento, "En mantenimiento", "red"},
	EnTransito:    {EnTransito, "En tránsito", "cyan"},
	Baja:          {Baja, "Dado de baja", "gray"},
}

// Alias históricos que todavía llegan desde registros viejos.
var alias = map[string]string{
	"EN_REPARACION": Mantenimiento,
	"REPARACION":    Mantenimiento,
	"TRANSITO":      EnTransito,
	"DADO_DE_BAJA":  Baja,
}

// Ids numéricos del esquema legado.
var porLegado = map[int]string{
	1: Disponible,
	2: Reservado,
	3: Vendido,
	4: Mantenimiento,
	5: EnTransito,
	6: Baja,
}

var desconocido = Info{Desconocido, "Sin estado", "gray"}

// Describir mapea cualquier representación de estado a su presentación
//
// Acepta el código como texto, el id numérico legado o el objeto
// anidado {codigo|estado|nombre}; es total: valores desconocidos,
// nulos o de tipo inesperado caen en el default en vez de romper la
// vista.
func Describir(valor any) Info {
	switch v := valor.(type) {
	case string:
		return porTexto(v)
	case int:
		return porNumero(v)
	case int64:
		return porNumero(int(v))
	case float64:
		return porNumero(int(v))
	case map[string]any:
		for _, clave := range []string{"codigo", "estado", "nombre", "id"} {
			if anidado, ok := v[clave]; ok {
				if info := Describir(anidado); info.Codigo != Desconocido {
					return info
				}
			}
		}
		return desconocido
	default:
		return desconocido
	}
}

func porTexto(texto string) Info {
	codigo := strings.ToUpper(strings.TrimSpace(texto))
	codigo = strings.ReplaceAll(codigo, " ", "_")
	if canonico, ok := alias[codigo]; ok {
		codigo = canonico
	}
	if info, ok := porCodigo[codigo]; ok {
		return info
	}
	return desconocido
}

func porNumero(id int) Info {
	if codigo, ok := porLegado[id]; ok {
		return porCodigo[codigo]
	}
	return desconocido
}

// Todos retorna los estados canónicos en orden de ciclo de vida
func Todos() []Info {
	return []Info{
		porCodigo[Disponible],
		porCodigo[Reservado],
		porCodigo[Vendido],
		porCodigo[Mantenimiento],
		porCodigo[EnTransito],
		porCodigo[Baja],
	}
}
