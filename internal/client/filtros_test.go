package client

import "testing"

func TestConDefaultsInyectaValoresFaltantes(t *testing.T) {
	completos := conDefaults(Filtros{"marca": "Toyota"})

	if completos["page"] != 1 || completos["limit"] != 12 {
		t.Fatalf("paginación por defecto incorrecta: %+v", completos)
	}
	if completos["orderBy"] != "created_at" || completos["order"] != "desc" {
		t.Fatalf("orden por defecto incorrecto: %+v", completos)
	}
	if completos["marca"] != "Toyota" {
		t.Fatalf("se perdió un filtro del llamador: %+v", completos)
	}
}

func TestConDefaultsRespetaValoresDelLlamador(t *testing.T) {
	original := Filtros{"page": 3, "limit": 50, "orderBy": "anio", "order": "asc"}
	completos := conDefaults(original)

	if completos["page"] != 3 || completos["limit"] != 50 {
		t.Fatalf("se pisó la paginación del llamador: %+v", completos)
	}
	if completos["orderBy"] != "anio" || completos["order"] != "asc" {
		t.Fatalf("se pisó el orden del llamador: %+v", completos)
	}
}

func TestConDefaultsNoMutaElOriginal(t *testing.T) {
	original := Filtros{"marca": "Fiat"}
	_ = conDefaults(original)

	if len(original) != 1 {
		t.Fatalf("conDefaults mutó el mapa original: %+v", original)
	}
}

func TestQueryOmiteVaciosYNulos(t *testing.T) {
	filtros := Filtros{
		"marca":       "Toyota",
		"estado":      "",
		"vendedor_id": nil,
		"page":        2,
		"valor":       1500.5,
	}

	q := filtros.Query()
	if q.Get("marca") != "Toyota" || q.Get("page") != "2" || q.Get("valor") != "1500.5" {
		t.Fatalf("query incompleta: %v", q)
	}
	if q.Has("estado") || q.Has("vendedor_id") {
		t.Fatalf("un filtro vacío no debe viajar: %v", q)
	}
}

func TestQueryOmiteTextoEnBlanco(t *testing.T) {
	q := Filtros{"estado": "   "}.Query()
	if q.Has("estado") {
		t.Fatalf("un filtro en blanco no debe viajar: %v", q)
	}
}
