package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Filtros representa los filtros de un listado como pares clave/valor
type Filtros map[string]any

// Valores por defecto que se inyectan cuando el llamador no los provee.
const (
	paginaDefault = 1
	limiteDefault = 12
	ordenarPorDef = "created_at"
	ordenDefault  = "desc"
)

// conDefaults retorna una copia de f con los defaults de listado aplicados
func conDefaults(f Filtros) Filtros {
	completos := make(Filtros, len(f)+4)
	for clave, valor := range f {
		completos[clave] = valor
	}
	if vacio(completos["page"]) {
		completos["page"] = paginaDefault
	}
	if vacio(completos["limit"]) {
		completos["limit"] = limiteDefault
	}
	if vacio(completos["orderBy"]) {
		completos["orderBy"] = ordenarPorDef
	}
	if vacio(completos["order"]) {
		completos["order"] = ordenDefault
	}
	return completos
}

// Query construye la query string omitiendo claves vacías o nulas
//
// Un filtro en "" o nil nunca viaja como parámetro vacío; el backend
// interpreta la ausencia como "sin filtrar".
func (f Filtros) Query() url.Values {
	q := url.Values{}
	for clave, valor := range f {
		if vacio(valor) {
			continue
		}
		q.Set(clave, aTexto(valor))
	}
	return q
}

func vacio(valor any) bool {
	if valor == nil {
		return true
	}
	if texto, ok := valor.(string); ok {
		return strings.TrimSpace(texto) == ""
	}
	return false
}

func aTexto(valor any) string {
	switch v := valor.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
