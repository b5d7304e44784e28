package client

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestEstadosCacheaDentroDelTTL(t *testing.T) {
	tr, hits := servidorPrueba(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/vehiculos/filtros/estados" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"success":true,"estados":[{"codigo":"DISPONIBLE","etiqueta":"Disponible"},{"codigo":"VENDIDO","etiqueta":"Vendido"}]}`))
	})
	catalogo := NuevoCatalogoEstados(tr, time.Hour)

	primero := catalogo.Estados(context.Background())
	if !primero.Success || len(primero.Data) != 2 {
		t.Fatalf("primera lectura: %+v", primero)
	}

	segundo := catalogo.Estados(context.Background())
	if !segundo.Success {
		t.Fatalf("segunda lectura falló: %s", segundo.Error)
	}
	if hits.Load() != 1 {
		t.Fatalf("el cache no evitó la segunda llamada: %d hits", hits.Load())
	}
}

func TestEstadosInvalidarVuelveAlBackend(t *testing.T) {
	tr, hits := servidorPrueba(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"estados":[{"codigo":"DISPONIBLE","etiqueta":"Disponible"}]}`))
	})
	catalogo := NuevoCatalogoEstados(tr, time.Hour)

	_ = catalogo.Estados(context.Background())
	catalogo.Invalidar()
	_ = catalogo.Estados(context.Background())

	if hits.Load() != 2 {
		t.Fatalf("esperaba 2 llamadas tras invalidar, hubo %d", hits.Load())
	}
}

func TestEstadosFallaNoQuedaCacheada(t *testing.T) {
	fallar := true
	tr, hits := servidorPrueba(t, func(w http.ResponseWriter, r *http.Request) {
		if fallar {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false,"message":"Error interno"}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true,"estados":[{"codigo":"DISPONIBLE","etiqueta":"Disponible"}]}`))
	})
	catalogo := NuevoCatalogoEstados(tr, time.Hour)

	if res := catalogo.Estados(context.Background()); res.Success {
		t.Fatal("esperaba una falla del backend")
	}

	fallar = false
	res := catalogo.Estados(context.Background())
	if !res.Success || len(res.Data) != 1 {
		t.Fatalf("la falla quedó cacheada: %+v", res)
	}
	if hits.Load() != 2 {
		t.Fatalf("hits = %d", hits.Load())
	}
}
