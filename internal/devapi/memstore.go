package devapi

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
)

// MemStore representa la fuente de datos en memoria
//
// Reemplaza al viejo arreglo global de datos de prueba: el estado vive
// detrás de la interfaz Store y cada test puede crear el suyo sin que
// se filtre entre casos.
type MemStore struct {
	mu          sync.RWMutex
	colecciones map[string]map[string]map[string]any
}

// NuevoMemStore crea una fuente de datos en memoria vacía
func NuevoMemStore() *MemStore {
	return &MemStore{colecciones: make(map[string]map[string]map[string]any)}
}

// Listar retorna una página de documentos activos que matchean el filtro
func (s *MemStore) Listar(ctx context.Context, coleccion string, filtro Filtro) ([]map[string]any, models.Paginacion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var encontrados []map[string]any
	for _, doc := range s.colecciones[coleccion] {
		if !estaActivo(doc) {
			continue
		}
		if !matchea(doc, filtro.Igualdades) {
			continue
		}
		encontrados = append(encontrados, clonar(doc))
	}

	ordenar(encontrados, filtro.OrderBy, filtro.Order)
	pagina, paginacion := paginar(encontrados, filtro.Page, filtro.Limit)
	return pagina, paginacion, nil
}

// Obtener retorna un documento activo por id
func (s *MemStore) Obtener(ctx context.Context, coleccion, id string) (map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.colecciones[coleccion][id]
	if !ok || !estaActivo(doc) {
		return nil, ErrNoEncontrado
	}
	return clonar(doc), nil
}

// Crear inserta un documento nuevo con id generado
func (s *MemStore) Crear(ctx context.Context, coleccion string, doc map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nuevo := clonar(doc)
	if _, ok := nuevo["id"]; !ok {
		nuevo["id"] = uuid.New().String()
	}
	ahora := time.Now().UTC().Format(time.RFC3339)
	nuevo["activo"] = true
	nuevo["created_at"] = ahora
	nuevo["updated_at"] = ahora

	if s.colecciones[coleccion] == nil {
		s.colecciones[coleccion] = make(map[string]map[string]any)
	}
	id := fmt.Sprint(nuevo["id"])
	s.colecciones[coleccion][id] = nuevo
	return clonar(nuevo), nil
}

// Actualizar aplica cambios parciales sobre un documento activo
func (s *MemStore) Actualizar(ctx context.Context, coleccion, id string, cambios map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.colecciones[coleccion][id]
	if !ok || !estaActivo(doc) {
		return nil, ErrNoEncontrado
	}
	for clave, valor := range cambios {
		if clave == "id" || clave == "created_at" {
			continue
		}
		doc[clave] = valor
	}
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return clonar(doc), nil
}

// Eliminar marca un documento como inactivo
func (s *MemStore) Eliminar(ctx context.Context, coleccion, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.colecciones[coleccion][id]
	if !ok || !estaActivo(doc) {
		return ErrNoEncontrado
	}
	doc["activo"] = false
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)
	return nil
}

// Cerrar no hace nada en la implementación en memoria
func (s *MemStore) Cerrar() error {
	return nil
}

func estaActivo(doc map[string]any) bool {
	activo, ok := doc["activo"].(bool)
	return !ok || activo
}

func matchea(doc map[string]any, igualdades map[string]string) bool {
	for campo, esperado := range igualdades {
		valor, ok := doc[campo]
		if !ok || fmt.Sprint(valor) != esperado {
			return false
		}
	}
	return true
}

func ordenar(docs []map[string]any, orderBy, order string) {
	if orderBy == "" {
		orderBy = "created_at"
	}
	descendente := !strings.EqualFold(order, "asc")
	sort.SliceStable(docs, func(i, j int) bool {
		a := fmt.Sprint(docs[i][orderBy])
		b := fmt.Sprint(docs[j][orderBy])
		if descendente {
			return a > b
		}
		return a < b
	})
}

func paginar(docs []map[string]any, page, limit int) ([]map[string]any, models.Paginacion) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}
	total := len(docs)
	paginas := (total + limit - 1) / limit
	if paginas == 0 {
		paginas = 1
	}

	desde := (page - 1) * limit
	if desde > total {
		desde = total
	}
	hasta := desde + limit
	if hasta > total {
		hasta = total
	}

	return docs[desde:hasta], models.Paginacion{Page: page, Pages: paginas, Total: total, Limit: limit}
}

// clonar copia un documento en profundidad vía JSON
func clonar(doc map[string]any) map[string]any {
	datos, err := json.Marshal(doc)
	if err != nil {
		return map[string]any{}
	}
	var copia map[string]any
	if err := json.Unmarshal(datos, &copia); err != nil {
		return map[string]any{}
	}
	return copia
}
