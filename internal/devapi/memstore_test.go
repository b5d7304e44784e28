package devapi

import (
	"context"
	"testing"
)

func TestMemStoreCrearGeneraIDyTimestamps(t *testing.T) {
	store := NuevoMemStore()

	doc, err := store.Crear(context.Background(), ColVendedores, map[string]any{"nombre": "Carlos"})
	if err != nil {
		t.Fatalf("Crear: %v", err)
	}
	if doc["id"] == nil || doc["id"] == "" {
		t.Fatalf("no se generó id: %+v", doc)
	}
	if doc["created_at"] == nil || doc["updated_at"] == nil {
		t.Fatalf("faltan timestamps: %+v", doc)
	}
	if activo, _ := doc["activo"].(bool); !activo {
		t.Fatalf("un documento nuevo debe estar activo: %+v", doc)
	}
}

func TestMemStoreEliminarEsBajaLogica(t *testing.T) {
	ctx := context.Background()
	store := NuevoMemStore()

	doc, _ := store.Crear(ctx, ColVendedores, map[string]any{"nombre": "Carlos"})
	id := doc["id"].(string)

	if err := store.Eliminar(ctx, ColVendedores, id); err != nil {
		t.Fatalf("Eliminar: %v", err)
	}

	if _, err := store.Obtener(ctx, ColVendedores, id); err != ErrNoEncontrado {
		t.Fatalf("un documento dado de baja no debe obtenerse: %v", err)
	}
	docs, paginacion, err := store.Listar(ctx, ColVendedores, Filtro{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("Listar: %v", err)
	}
	if len(docs) != 0 || paginacion.Total != 0 {
		t.Fatalf("un documento dado de baja no debe listarse: %+v", docs)
	}

	if err := store.Eliminar(ctx, ColVendedores, id); err != ErrNoEncontrado {
		t.Fatalf("una segunda baja debe fallar: %v", err)
	}
}

func TestMemStoreActualizarPreservaIDyCreatedAt(t *testing.T) {
	ctx := context.Background()
	store := NuevoMemStore()

	doc, _ := store.Crear(ctx, ColVehiculos, map[string]any{"anio": 2020, "marca": "Fiat"})
	id := doc["id"].(string)
	creado := doc["created_at"]

	actualizado, err := store.Actualizar(ctx, ColVehiculos, id, map[string]any{
		"marca":      "Peugeot",
		"id":         "otro-id",
		"created_at": "1999-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("Actualizar: %v", err)
	}
	if actualizado["marca"] != "Peugeot" {
		t.Fatalf("no se aplicó el cambio: %+v", actualizado)
	}
	if actualizado["id"] != id || actualizado["created_at"] != creado {
		t.Fatalf("id o created_at fueron pisados: %+v", actualizado)
	}
}

func TestMemStoreListarFiltraYPagina(t *testing.T) {
	ctx := context.Background()
	store := NuevoMemStore()

	for _, marca := range []string{"Toyota", "Toyota", "Honda"} {
		if _, err := store.Crear(ctx, ColVehiculos, map[string]any{"anio": 2020, "marca": marca}); err != nil {
			t.Fatalf("Crear: %v", err)
		}
	}

	docs, paginacion, err := store.Listar(ctx, ColVehiculos, Filtro{
		Igualdades: map[string]string{"marca": "Toyota"},
		Page:       1,
		Limit:      1,
	})
	if err != nil {
		t.Fatalf("Listar: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("limit ignorado: %d docs", len(docs))
	}
	if paginacion.Total != 2 || paginacion.Pages != 2 {
		t.Fatalf("paginación = %+v", paginacion)
	}
}

func TestMemStoreListarNoCompartePunteros(t *testing.T) {
	ctx := context.Background()
	store := NuevoMemStore()

	doc, _ := store.Crear(ctx, ColVendedores, map[string]any{"nombre": "Carlos"})
	id := doc["id"].(string)

	docs, _, _ := store.Listar(ctx, ColVendedores, Filtro{Page: 1, Limit: 10})
	docs[0]["nombre"] = "Mutado"

	original, _ := store.Obtener(ctx, ColVendedores, id)
	if original["nombre"] != "Carlos" {
		t.Fatalf("el store compartió el documento interno: %+v", original)
	}
}
