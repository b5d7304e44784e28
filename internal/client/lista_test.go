package client

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// TestRefrescarDescartaLaRespuestaVieja simula la carrera clásica de un
// buscador: la petición por "Toyota" se demora y la de "Honda" llega
// antes. El resultado vigente tiene que ser el de los últimos filtros.
func TestRefrescarDescartaLaRespuestaVieja(t *testing.T) {
	llegoToyota := make(chan struct{})

	tr, _ := servidorPrueba(t, func(w http.ResponseWriter, r *http.Request) {
		marca := r.URL.Query().Get("marca")
		if marca == "Toyota" {
			close(llegoToyota)
			// Se queda colgada hasta que la cancelen.
			<-r.Context().Done()
			return
		}
		_, _ = fmt.Fprintf(w, `{"success":true,"vehiculos":[{"id":"h1","marca":"%s"}]}`, marca)
	})
	recurso := NuevoRecurso[models.Vehiculo](tr, "vehiculos", "vehiculo", nil, loggerPrueba())
	lista := VigilarLista(recurso)

	viejo := make(chan Resultado[Pagina[models.Vehiculo]], 1)
	go func() {
		viejo <- lista.Refrescar(context.Background(), Filtros{"marca": "Toyota"})
	}()

	<-llegoToyota
	nuevo := lista.Refrescar(context.Background(), Filtros{"marca": "Honda"})
	if !nuevo.Success {
		t.Fatalf("el refresco nuevo falló: %s", nuevo.Error)
	}
	if len(nuevo.Data.Items) != 1 || nuevo.Data.Items[0].Marca != "Honda" {
		t.Fatalf("Items = %+v", nuevo.Data.Items)
	}

	select {
	case res := <-viejo:
		if res.Success {
			t.Fatal("la respuesta vieja no debe pisar el resultado vigente")
		}
		if res.Error != MensajeObsoleto {
			t.Fatalf("Error = %q, esperaba el mensaje de descarte", res.Error)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("el refresco viejo nunca terminó")
	}

	vigente, filtros, hay := lista.Vigente()
	if !hay {
		t.Fatal("Vigente no tiene resultado")
	}
	if filtros["marca"] != "Honda" {
		t.Fatalf("filtros vigentes = %+v", filtros)
	}
	if !vigente.Success || vigente.Data.Items[0].Marca != "Honda" {
		t.Fatalf("resultado vigente = %+v", vigente)
	}
}

func TestRefrescarGuardaElResultadoVigente(t *testing.T) {
	tr, _ := servidorPrueba(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"vehiculos":[{"id":"v1"}]}`))
	})
	recurso := NuevoRecurso[models.Vehiculo](tr, "vehiculos", "vehiculo", nil, loggerPrueba())
	lista := VigilarLista(recurso)

	if _, _, hay := lista.Vigente(); hay {
		t.Fatal("no debería haber resultado antes del primer refresco")
	}

	res := lista.Refrescar(context.Background(), Filtros{"estado": "DISPONIBLE"})
	if !res.Success {
		t.Fatalf("Refrescar falló: %s", res.Error)
	}

	vigente, filtros, hay := lista.Vigente()
	if !hay || !vigente.Success {
		t.Fatalf("vigente = %+v, hay = %v", vigente, hay)
	}
	if filtros["estado"] != "DISPONIBLE" {
		t.Fatalf("filtros = %+v", filtros)
	}
}
