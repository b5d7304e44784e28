package devapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/models"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// esquema crea la tabla de documentos si no existe
const esquema = `
CREATE TABLE IF NOT EXISTS documentos (
	coleccion  TEXT        NOT NULL,
	id         UUID        NOT NULL,
	datos      JSONB       NOT NULL,
	activo     BOOLEAN     NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (coleccion, id)
);
CREATE INDEX IF NOT EXISTS documentos_activos ON documentos (coleccion, activo);
`

var campoSeguro = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PgStore representa la fuente de datos respaldada por PostgreSQL
//
// Guarda cada entidad como documento JSONB, igual que el sobre que
// viaja por la API; los filtros de igualdad se resuelven con datos->>.
type PgStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NuevoPgStore abre la conexión y asegura el esquema
func NuevoPgStore(cfg *config.Config, logger *logrus.Logger) (*PgStore, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	if _, err := db.Exec(esquema); err != nil {
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &PgStore{db: db, logger: logger}, nil
}

// Listar retorna una página de documentos activos que matchean el filtro
func (s *PgStore) Listar(ctx context.Context, coleccion string, filtro Filtro) ([]map[string]any, models.Paginacion, error) {
	condiciones := []string{"coleccion = $1", "activo = TRUE"}
	argumentos := []any{coleccion}
	for campo, valor := range filtro.Igualdades {
		if !campoSeguro.MatchString(campo) {
			continue
		}
		argumentos = append(argumentos, valor)
		condiciones = append(condiciones, fmt.Sprintf("datos->>'%s' = $%d", campo, len(argumentos)))
	}
	donde := strings.Join(condiciones, " AND ")

	var total int
	contar := "SELECT COUNT(*) FROM documentos WHERE " + donde
	if err := s.db.QueryRowContext(ctx, contar, argumentos...).Scan(&total); err != nil {
		return nil, models.Paginacion{}, fmt.Errorf("error counting documents: %w", err)
	}

	page := filtro.Page
	if page < 1 {
		page = 1
	}
	limit := filtro.Limit
	if limit < 1 {
		limit = 12
	}

	consulta := fmt.Sprintf(
		"SELECT datos FROM documentos WHERE %s ORDER BY %s %s LIMIT %d OFFSET %d",
		donde, columnaOrden(filtro.OrderBy), direccionOrden(filtro.Order), limit, (page-1)*limit,
	)
	filas, err := s.db.QueryContext(ctx, consulta, argumentos...)
	if err != nil {
		return nil, models.Paginacion{}, fmt.Errorf("error querying documents: %w", err)
	}
	defer func() { _ = filas.Close() }()

	var docs []map[string]any
	for filas.Next() {
		var crudo []byte
		if err := filas.Scan(&crudo); err != nil {
			return nil, models.Paginacion{}, fmt.Errorf("error scanning document: %w", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(crudo, &doc); err != nil {
			return nil, models.Paginacion{}, fmt.Errorf("error decoding document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := filas.Err(); err != nil {
		return nil, models.Paginacion{}, fmt.Errorf("error iterating documents: %w", err)
	}

	paginas := (total + limit - 1) / limit
	if paginas == 0 {
		paginas = 1
	}
	return docs, models.Paginacion{Page: page, Pages: paginas, Total: total, Limit: limit}, nil
}

// Obtener retorna un documento activo por id
func (s *PgStore) Obtener(ctx context.Context, coleccion, id string) (map[string]any, error) {
	var crudo []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT datos FROM documentos WHERE coleccion = $1 AND id = $2 AND activo = TRUE",
		coleccion, id,
	).Scan(&crudo)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEncontrado
		}
		return nil, fmt.Errorf("error querying document: %w", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(crudo, &doc); err != nil {
		return nil, fmt.Errorf("error decoding document: %w", err)
	}
	return doc, nil
}

// Crear inserta un documento nuevo con id generado
func (s *PgStore) Crear(ctx context.Context, coleccion string, doc map[string]any) (map[string]any, error) {
	nuevo := make(map[string]any, len(doc)+4)
	for clave, valor := range doc {
		nuevo[clave] = valor
	}
	id := uuid.New().String()
	if existente, ok := nuevo["id"].(string); ok && existente != "" {
		id = existente
	}
	ahora := time.Now().UTC().Format(time.RFC3339)
	nuevo["id"] = id
	nuevo["activo"] = true
	nuevo["created_at"] = ahora
	nuevo["updated_at"] = ahora

	datos, err := json.Marshal(nuevo)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO documentos (coleccion, id, datos, activo) VALUES ($1, $2, $3, TRUE)",
		coleccion, id, datos,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating document: %w", err)
	}
	return nuevo, nil
}

// Actualizar aplica cambios parciales sobre un documento activo
func (s *PgStore) Actualizar(ctx context.Context, coleccion, id string, cambios map[string]any) (map[string]any, error) {
	doc, err := s.Obtener(ctx, coleccion, id)
	if err != nil {
		return nil, err
	}
	for clave, valor := range cambios {
		if clave == "id" || clave == "created_at" {
			continue
		}
		doc[clave] = valor
	}
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	datos, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE documentos SET datos = $1, updated_at = NOW() WHERE coleccion = $2 AND id = $3",
		datos, coleccion, id,
	)
	if err != nil {
		return nil, fmt.Errorf("error updating document: %w", err)
	}
	return doc, nil
}

// Eliminar marca un documento como inactivo
func (s *PgStore) Eliminar(ctx context.Context, coleccion, id string) error {
	doc, err := s.Obtener(ctx, coleccion, id)
	if err != nil {
		return err
	}
	doc["activo"] = false
	doc["updated_at"] = time.Now().UTC().Format(time.RFC3339)

	datos, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error encoding document: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE documentos SET datos = $1, activo = FALSE, updated_at = NOW() WHERE coleccion = $2 AND id = $3",
		datos, coleccion, id,
	)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	return nil
}

// Cerrar cierra la conexión a la base de datos
func (s *PgStore) Cerrar() error {
	return s.db.Close()
}

func columnaOrden(orderBy string) string {
	switch orderBy {
	case "", "created_at":
		return "created_at"
	case "updated_at":
		return "updated_at"
	default:
		if campoSeguro.MatchString(orderBy) {
			return fmt.Sprintf("datos->>'%s'", orderBy)
		}
		return "created_at"
	}
}

func direccionOrden(order string) string {
	if strings.EqualFold(order, "asc") {
		return "ASC"
	}
	return "DESC"
}
