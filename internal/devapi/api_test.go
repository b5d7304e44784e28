package devapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hypernova-labs/concesionaria-backoffice/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type entorno struct {
	router *gin.Engine
	store  *MemStore
	token  string
}

// levantarAPI arma el backend con un MemStore sembrado con un admin
func levantarAPI(t *testing.T) *entorno {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	cfg := &config.Config{
		JWT:       config.JWTConfig{Secret: "secreto-de-prueba", Expiry: time.Hour},
		RateLimit: config.RateLimitConfig{PorMinuto: 0},
	}

	store := NuevoMemStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	if _, err := store.Crear(context.Background(), ColUsuarios, map[string]any{
		"email":         "admin@concesionaria.local",
		"nombre":        "Admin",
		"rol":           "admin",
		"password_hash": string(hash),
	}); err != nil {
		t.Fatalf("sembrando usuario: %v", err)
	}

	router := Router(NewAPI(store, nil, cfg, logger))
	e := &entorno{router: router, store: store}
	e.token = e.login(t, "admin@concesionaria.local", "admin123")
	return e
}

func (e *entorno) login(t *testing.T, email, password string) string {
	t.Helper()
	respuesta := e.pedir(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    email,
		"password": password,
	}, "")
	if respuesta.Code != http.StatusOK {
		t.Fatalf("login: status %d, body %s", respuesta.Code, respuesta.Body.String())
	}
	var cuerpo map[string]any
	if err := json.Unmarshal(respuesta.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("login: %v", err)
	}
	token, _ := cuerpo["token"].(string)
	if token == "" {
		t.Fatalf("login sin token: %s", respuesta.Body.String())
	}
	return token
}

func (e *entorno) pedir(t *testing.T, metodo, path string, cuerpo any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer = &bytes.Buffer{}
	if cuerpo != nil {
		if err := json.NewEncoder(body).Encode(cuerpo); err != nil {
			t.Fatalf("codificando cuerpo: %v", err)
		}
	}
	req := httptest.NewRequest(metodo, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodificar(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var cuerpo map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &cuerpo); err != nil {
		t.Fatalf("decodificando respuesta: %v (%s)", err, w.Body.String())
	}
	return cuerpo
}

func TestLoginConPasswordIncorrectaDevuelve401(t *testing.T) {
	e := levantarAPI(t)

	w := e.pedir(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@concesionaria.local",
		"password": "incorrecta",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
	cuerpo := decodificar(t, w)
	if exito, _ := cuerpo["success"].(bool); exito {
		t.Fatal("success debe ser false")
	}
}

func TestLoginNoExponeElHash(t *testing.T) {
	e := levantarAPI(t)

	w := e.pedir(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "admin@concesionaria.local",
		"password": "admin123",
	}, "")
	cuerpo := decodificar(t, w)
	usuario, _ := cuerpo["usuario"].(map[string]any)
	if usuario == nil {
		t.Fatalf("sin usuario en la respuesta: %s", w.Body.String())
	}
	if _, expuesto := usuario["password_hash"]; expuesto {
		t.Fatal("el hash de la contraseña no debe viajar")
	}
	if usuario["rol"] != "admin" {
		t.Fatalf("usuario = %+v", usuario)
	}
}

func TestRecursosSinTokenDevuelven401(t *testing.T) {
	e := levantarAPI(t)

	for _, caso := range []struct{ metodo, path string }{
		{http.MethodGet, "/api/vehiculos"},
		{http.MethodGet, "/api/vehiculos/filtros/estados"},
		{http.MethodPost, "/api/vendedores"},
		{http.MethodGet, "/api/auth/me"},
	} {
		w := e.pedir(t, caso.metodo, caso.path, nil, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: status = %d", caso.metodo, caso.path, w.Code)
		}
	}
}

func TestMeDevuelveElPerfilDelToken(t *testing.T) {
	e := levantarAPI(t)

	w := e.pedir(t, http.MethodGet, "/api/auth/me", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	cuerpo := decodificar(t, w)
	usuario, _ := cuerpo["usuario"].(map[string]any)
	if usuario["email"] != "admin@concesionaria.local" {
		t.Fatalf("usuario = %+v", usuario)
	}
}

func TestCicloCRUDDeVendedores(t *testing.T) {
	e := levantarAPI(t)

	// Alta
	w := e.pedir(t, http.MethodPost, "/api/vendedores", map[string]any{
		"nombre": "Carlos", "apellido": "Gutiérrez",
	}, e.token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", w.Code, w.Body.String())
	}
	creado, _ := decodificar(t, w)["vendedor"].(map[string]any)
	id, _ := creado["id"].(string)
	if id == "" {
		t.Fatalf("sin id: %+v", creado)
	}

	// Listado con sobre y paginación
	w = e.pedir(t, http.MethodGet, "/api/vendedores", nil, e.token)
	cuerpo := decodificar(t, w)
	vendedores, _ := cuerpo["vendedores"].([]any)
	if len(vendedores) != 1 {
		t.Fatalf("vendedores = %+v", cuerpo)
	}
	paginacion, _ := cuerpo["pagination"].(map[string]any)
	if paginacion["total"] != float64(1) {
		t.Fatalf("pagination = %+v", paginacion)
	}

	// Actualización parcial
	w = e.pedir(t, http.MethodPut, "/api/vendedores/"+id, map[string]any{"telefono": "11-5555"}, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("update: status %d: %s", w.Code, w.Body.String())
	}
	actualizado, _ := decodificar(t, w)["vendedor"].(map[string]any)
	if actualizado["telefono"] != "11-5555" || actualizado["nombre"] != "Carlos" {
		t.Fatalf("update pisó campos: %+v", actualizado)
	}

	// Baja lógica
	w = e.pedir(t, http.MethodDelete, "/api/vendedores/"+id, nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: status %d", w.Code)
	}
	w = e.pedir(t, http.MethodGet, "/api/vendedores", nil, e.token)
	if vendedores, _ := decodificar(t, w)["vendedores"].([]any); len(vendedores) != 0 {
		t.Fatalf("el listado no debe mostrar bajas: %+v", vendedores)
	}
	w = e.pedir(t, http.MethodGet, "/api/vendedores/"+id, nil, e.token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get tras baja: status %d", w.Code)
	}
}

func TestCrearSinCamposObligatoriosDevuelveDetalles(t *testing.T) {
	e := levantarAPI(t)

	w := e.pedir(t, http.MethodPost, "/api/operaciones", map[string]any{"monto": 100}, e.token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	cuerpo := decodificar(t, w)
	detalles, _ := cuerpo["details"].([]any)
	if len(detalles) != 2 {
		t.Fatalf("esperaba detalles de tipo y vehiculo_id: %+v", cuerpo)
	}
}

func TestEstadosDevuelveElCatalogo(t *testing.T) {
	e := levantarAPI(t)

	w := e.pedir(t, http.MethodGet, "/api/vehiculos/filtros/estados", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	estados, _ := decodificar(t, w)["estados"].([]any)
	if len(estados) != 6 {
		t.Fatalf("estados = %+v", estados)
	}
	primero, _ := estados[0].(map[string]any)
	if primero["codigo"] != "DISPONIBLE" || primero["etiqueta"] == "" {
		t.Fatalf("primer estado = %+v", primero)
	}
}

func TestPublicarVehiculoInyectaElVehiculoID(t *testing.T) {
	e := levantarAPI(t)

	vehiculo, err := e.store.Crear(context.Background(), ColVehiculos, map[string]any{"anio": 2020})
	if err != nil {
		t.Fatalf("Crear: %v", err)
	}
	id := vehiculo["id"].(string)

	w := e.pedir(t, http.MethodPost, "/api/vehiculos/"+id+"/publicaciones", map[string]any{
		"plataforma": "marketplace",
		"titulo":     "Corolla 2020",
	}, e.token)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	publicacion, _ := decodificar(t, w)["publicacion"].(map[string]any)
	if publicacion["vehiculo_id"] != id {
		t.Fatalf("publicacion = %+v", publicacion)
	}
	if activa, _ := publicacion["activa"].(bool); !activa {
		t.Fatalf("una publicación nueva debe nacer activa: %+v", publicacion)
	}
}

func TestMarcarPrincipalDesmarcaALasHermanas(t *testing.T) {
	e := levantarAPI(t)
	ctx := context.Background()

	vehiculo, _ := e.store.Crear(ctx, ColVehiculos, map[string]any{"anio": 2020})
	vehiculoID := vehiculo["id"].(string)

	primera, _ := e.store.Crear(ctx, ColImagenes, map[string]any{
		"vehiculo_id": vehiculoID, "url": "https://img/1.jpg", "es_principal": true,
	})
	segunda, _ := e.store.Crear(ctx, ColImagenes, map[string]any{
		"vehiculo_id": vehiculoID, "url": "https://img/2.jpg", "es_principal": false,
	})

	w := e.pedir(t, http.MethodPatch, "/api/imagenes/"+segunda["id"].(string)+"/principal", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	viejaPrincipal, _ := e.store.Obtener(ctx, ColImagenes, primera["id"].(string))
	if esPrincipal, _ := viejaPrincipal["es_principal"].(bool); esPrincipal {
		t.Fatal("la principal anterior debió desmarcarse")
	}
	nuevaPrincipal, _ := e.store.Obtener(ctx, ColImagenes, segunda["id"].(string))
	if esPrincipal, _ := nuevaPrincipal["es_principal"].(bool); !esPrincipal {
		t.Fatal("la imagen pedida debió quedar como principal")
	}
}

func TestImagenesDeVehiculoFiltraPorVehiculo(t *testing.T) {
	e := levantarAPI(t)
	ctx := context.Background()

	vehiculo, _ := e.store.Crear(ctx, ColVehiculos, map[string]any{"anio": 2020})
	otro, _ := e.store.Crear(ctx, ColVehiculos, map[string]any{"anio": 2021})
	_, _ = e.store.Crear(ctx, ColImagenes, map[string]any{"vehiculo_id": vehiculo["id"], "url": "https://img/1.jpg"})
	_, _ = e.store.Crear(ctx, ColImagenes, map[string]any{"vehiculo_id": otro["id"], "url": "https://img/2.jpg"})

	w := e.pedir(t, http.MethodGet, "/api/vehiculos/"+vehiculo["id"].(string)+"/imagenes", nil, e.token)
	imagenes, _ := decodificar(t, w)["imagenes"].([]any)
	if len(imagenes) != 1 {
		t.Fatalf("imagenes = %+v", imagenes)
	}
}
