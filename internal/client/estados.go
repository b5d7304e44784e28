package client

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/transport"
)

// CatalogoEstados cachea el catálogo de estados del servidor
//
// El catálogo cambia rara vez; se guarda en memoria con un TTL (5
// minutos por defecto) para no pegarle al backend en cada render de
// filtros.
type CatalogoEstados struct {
	t   *transport.Cliente
	ttl time.Duration

	mu      sync.Mutex
	estados []models.EstadoVehiculo
	expira  time.Time
}

// NuevoCatalogoEstados crea el catálogo con el TTL indicado
func NuevoCatalogoEstados(t *transport.Cliente, ttl time.Duration) *CatalogoEstados {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogoEstados{t: t, ttl: ttl}
}

// Estados retorna el catálogo, desde cache si todavía está vigente
func (c *CatalogoEstados) Estados(ctx context.Context) Resultado[[]models.EstadoVehiculo] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.estados != nil && time.Now().Before(c.expira) {
		return exito(c.estados)
	}

	resp, err := c.t.Do(ctx, http.MethodGet, "/api/vehiculos/filtros/estados", nil, nil)
	if err != nil {
		return fallaDesdeError[[]models.EstadoVehiculo](err)
	}
	if !resp.Success {
		return falla[[]models.EstadoVehiculo](resp.MensajeServidor())
	}

	var estados []models.EstadoVehiculo
	if err := resp.Recurso("estados", &estados); err != nil {
		return falla[[]models.EstadoVehiculo]("Respuesta inválida del servidor.")
	}

	c.estados = estados
	c.expira = time.Now().Add(c.ttl)
	return exito(estados)
}

// Invalidar descarta el cache; la próxima lectura vuelve al backend
func (c *CatalogoEstados) Invalidar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.estados = nil
	c.expira = time.Time{}
}
