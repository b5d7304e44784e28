package devapi

import (
	"context"
	"fmt"

	"github.com/hypernova-labs/concesionaria-backoffice/internal/session"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/states"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Sembrar carga datos de demostración si el store está vacío
//
// Incluye un vehículo con forma plana legada (marca/modelo sobre el
// registro) y otro con el objeto modelo relacionado, para poder probar
// el normalizador contra datos realistas.
func Sembrar(ctx context.Context, store Store, logger *logrus.Logger) error {
	existentes, _, err := store.Listar(ctx, ColUsuarios, Filtro{Page: 1, Limit: 1})
	if err != nil {
		return fmt.Errorf("error checking seed data: %w", err)
	}
	if len(existentes) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing seed password: %w", err)
	}
	if _, err := store.Crear(ctx, ColUsuarios, map[string]any{
		"email":         "admin@concesionaria.local",
		"nombre":        "Admin",
		"rol":           session.RolAdmin,
		"password_hash": string(hash),
	}); err != nil {
		return fmt.Errorf("error seeding users: %w", err)
	}

	vendedor, err := store.Crear(ctx, ColVendedores, map[string]any{
		"nombre":   "Carlos",
		"apellido": "Gutiérrez",
		"email":    "carlos@concesionaria.local",
		"telefono": "11-5555-0101",
	})
	if err != nil {
		return fmt.Errorf("error seeding vendedores: %w", err)
	}

	comprador, err := store.Crear(ctx, ColCompradores, map[string]any{
		"nombre":   "Lucía",
		"apellido": "Fernández",
		"email":    "lucia@example.com",
		"telefono": "11-5555-0202",
	})
	if err != nil {
		return fmt.Errorf("error seeding compradores: %w", err)
	}

	// Forma normalizada: el modelo viaja como objeto relacionado.
	moderno, err := store.Crear(ctx, ColVehiculos, map[string]any{
		"anio":        2021,
		"patente":     "AF123BC",
		"kilometraje": 45000,
		"valor":       18500000,
		"moneda":      "ARS",
		"estado":      states.Disponible,
		"vendedor_id": vendedor["id"],
		"modelo": map[string]any{
			"marca":       "Toyota",
			"modelo":      "Corolla",
			"version":     "XEI 2.0",
			"transmision": "CVT",
		},
	})
	if err != nil {
		return fmt.Errorf("error seeding vehiculos: %w", err)
	}

	// Forma plana legada, como la devuelven los registros migrados.
	if _, err := store.Crear(ctx, ColVehiculos, map[string]any{
		"vehiculo_ano": 2015,
		"marca":        "Volkswagen",
		"modelo":       "Gol Trend",
		"patente":      "OPQ456",
		"km":           112000,
		"precio":       7200000,
		"moneda":       "ARS",
		"estado":       2,
		"vendedor_id":  vendedor["id"],
	}); err != nil {
		return fmt.Errorf("error seeding vehiculos: %w", err)
	}

	if _, err := store.Crear(ctx, ColOperaciones, map[string]any{
		"tipo":         "venta",
		"vehiculo_id":  moderno["id"],
		"vendedor_id":  vendedor["id"],
		"comprador_id": comprador["id"],
		"monto":        18500000,
		"moneda":       "ARS",
		"estado":       "en_curso",
		"datos_extra":  map[string]any{"financiacion": "contado"},
	}); err != nil {
		return fmt.Errorf("error seeding operaciones: %w", err)
	}

	if _, err := store.Crear(ctx, ColImagenes, map[string]any{
		"vehiculo_id":  moderno["id"],
		"url":          "https://cdn.concesionaria.local/corolla-frente.jpg",
		"orden":        0,
		"es_principal": true,
	}); err != nil {
		return fmt.Errorf("error seeding imagenes: %w", err)
	}
	if _, err := store.Crear(ctx, ColImagenes, map[string]any{
		"vehiculo_id":  moderno["id"],
		"url":          "https://cdn.concesionaria.local/corolla-interior.jpg",
		"orden":        1,
		"es_principal": false,
	}); err != nil {
		return fmt.Errorf("error seeding imagenes: %w", err)
	}

	if _, err := store.Crear(ctx, ColPublicaciones, map[string]any{
		"vehiculo_id": moderno["id"],
		"plataforma":  "marketplace",
		"titulo":      "Toyota Corolla XEI 2.0 2021",
		"url":         "https://marketplace.example.com/av/12345",
		"activa":      true,
	}); err != nil {
		return fmt.Errorf("error seeding publicaciones: %w", err)
	}

	logger.Info("Datos de demostración cargados")
	return nil
}
