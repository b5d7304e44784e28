package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// Dato representa un campo lógico ya reconciliado
//
// Presente distingue un valor real de un campo ausente: un campo que no
// vino en ninguna de sus formas queda Presente=false, nunca "" ni 0
// disfrazados de valor.
type Dato struct {
	Texto    string
	Numero   float64
	EsNumero bool
	Presente bool
}

// Mostrar retorna el valor como texto, o "-" si el campo está ausente
func (d Dato) Mostrar() string {
	if !d.Presente {
		return "-"
	}
	if d.EsNumero {
		return strconv.FormatFloat(d.Numero, 'f', -1, 64)
	}
	return d.Texto
}

// VistaVehiculo representa la vista canónica de un vehículo
//
// Todos los campos lógicos están siempre presentes como Dato, con
// Presente=false cuando ninguna de las formas históricas traía valor.
type VistaVehiculo struct {
	Marca       Dato
	Modelo      Dato
	Version     Dato
	Anio        Dato
	Patente     Dato
	Kilometraje Dato
	Valor       Dato
	Moneda      Dato
	Estado      Dato
	Motor       Dato
	Transmision Dato
}

// rutasVehiculo define, por campo lógico, las ubicaciones posibles en
// orden de prioridad: primero el objeto relacionado, después el campo
// plano legado, después los alias históricos. Gana la primera fuente
// con un texto no vacío o un número finito.
var rutasVehiculo = []struct {
	campo string
	rutas []string
}{
	{"marca", []string{"modelo.marca", "marca", "modelo_autos.marca", "vehiculo_marca"}},
	{"modelo", []string{"modelo.modelo", "modelo", "modelo_nombre", "modelo_autos.modelo", "vehiculo_modelo"}},
	{"version", []string{"modelo.version", "version", "modelo_autos.version"}},
	{"anio", []string{"anio", "vehiculo_ano", "ano", "modelo.anio", "modelo_autos.ano"}},
	{"patente", []string{"patente", "dominio", "placa"}},
	{"kilometraje", []string{"kilometraje", "km", "kilometros"}},
	{"valor", []string{"valor", "precio", "precio_venta"}},
	{"moneda", []string{"moneda", "divisa"}},
	{"estado", []string{"estado.codigo", "estado", "estado_vehiculo"}},
	{"motor", []string{"modelo.motor", "motor", "modelo_autos.motor"}},
	{"transmision", []string{"modelo.transmision", "transmision", "modelo_autos.transmision"}},
}

// Normalizar reconcilia las formas históricas de un vehículo en una vista canónica
//
// Es pura y total: no muta la entrada y cualquier forma de entrada
// (incluso nil) produce una vista completa sin panics. Aplicarla sobre
// datos ya canónicos es un punto fijo.
func Normalizar(crudo map[string]any) VistaVehiculo {
	valores := make(map[string]Dato, len(rutasVehiculo))
	for _, definicion := range rutasVehiculo {
		for _, ruta := range definicion.rutas {
			if dato, ok := buscar(crudo, ruta); ok {
				valores[definicion.campo] = dato
				break
			}
		}
	}

	return VistaVehiculo{
		Marca:       valores["marca"],
		Modelo:      valores["modelo"],
		Version:     valores["version"],
		Anio:        valores["anio"],
		Patente:     valores["patente"],
		Kilometraje: valores["kilometraje"],
		Valor:       valores["valor"],
		Moneda:      valores["moneda"],
		Estado:      valores["estado"],
		Motor:       valores["motor"],
		Transmision: valores["transmision"],
	}
}

// DeVehiculo normaliza una entidad ya decodificada
func DeVehiculo(vehiculo models.Vehiculo) VistaVehiculo {
	datos, err := json.Marshal(vehiculo)
	if err != nil {
		return VistaVehiculo{}
	}
	var crudo map[string]any
	if err := json.Unmarshal(datos, &crudo); err != nil {
		return VistaVehiculo{}
	}
	return Normalizar(crudo)
}

// AMapa serializa la vista con las claves canónicas planas
//
// Sólo los campos presentes aparecen en el mapa; Normalizar(AMapa(v))
// reproduce v.
func (v VistaVehiculo) AMapa() map[string]any {
	salida := make(map[string]any)
	agregar := func(clave string, dato Dato) {
		if !dato.Presente {
			return
		}
		if dato.EsNumero {
			salida[clave] = dato.Numero
		} else {
			salida[clave] = dato.Texto
		}
	}
	agregar("marca", v.Marca)
	agregar("modelo", v.Modelo)
	agregar("version", v.Version)
	agregar("anio", v.Anio)
	agregar("patente", v.Patente)
	agregar("kilometraje", v.Kilometraje)
	agregar("valor", v.Valor)
	agregar("moneda", v.Moneda)
	agregar("estado", v.Estado)
	agregar("motor", v.Motor)
	agregar("transmision", v.Transmision)
	return salida
}

// buscar resuelve una ruta con puntos dentro del mapa crudo
func buscar(crudo map[string]any, ruta string) (Dato, bool) {
	if crudo == nil {
		return Dato{}, false
	}

	partes := strings.Split(ruta, ".")
	actual := any(crudo)
	for _, parte := range partes {
		mapa, ok := actual.(map[string]any)
		if !ok {
			return Dato{}, false
		}
		actual, ok = mapa[parte]
		if !ok {
			return Dato{}, false
		}
	}

	return comoDato(actual)
}

// comoDato acepta sólo textos no vacíos y números finitos como valores
func comoDato(valor any) (Dato, bool) {
	switch v := valor.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return Dato{}, false
		}
		return Dato{Texto: v, Presente: true}, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Dato{}, false
		}
		return Dato{Numero: v, EsNumero: true, Presente: true}, true
	case int:
		return Dato{Numero: float64(v), EsNumero: true, Presente: true}, true
	case int64:
		return Dato{Numero: float64(v), EsNumero: true, Presente: true}, true
	case json.Number:
		numero, err := v.Float64()
		if err != nil || math.IsNaN(numero) || math.IsInf(numero, 0) {
			return Dato{}, false
		}
		return Dato{Numero: numero, EsNumero: true, Presente: true}, true
	default:
		return Dato{}, false
	}
}
