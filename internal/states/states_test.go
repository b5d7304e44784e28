package states

import "testing"

func TestDescribirCodigosCanonicos(t *testing.T) {
	casos := []struct {
		codigo   string
		etiqueta string
		color    string
	}{
		{Disponible, "Disponible", "green"},
		{Reservado, "Reservado", "amber"},
		{Vendido, "Vendido", "blue"},
		{Mantenimiento, "En mantenimiento", "red"},
		{EnTransito, "En tránsito", "cyan"},
		{Baja, "Dado de baja", "gray"},
	}

	for _, caso := range casos {
		info := Describir(caso.codigo)
		if info.Etiqueta != caso.etiqueta || info.Color != caso.color {
			t.Fatalf("Describir(%s) = %+v", caso.codigo, info)
		}
	}
}

func TestDescribirNormalizaElTexto(t *testing.T) {
	for _, texto := range []string{"disponible", " Disponible ", "DISPONIBLE"} {
		if info := Describir(texto); info.Codigo != Disponible {
			t.Fatalf("Describir(%q) = %+v", texto, info)
		}
	}
	if info := Describir("en transito"); info.Codigo != EnTransito {
		t.Fatalf("los espacios deben mapear a guiones bajos: %+v", info)
	}
}

func TestDescribirAliasHistoricos(t *testing.T) {
	if info := Describir("EN_REPARACION"); info.Codigo != Mantenimiento {
		t.Fatalf("alias de reparación: %+v", info)
	}
	if info := Describir("DADO_DE_BAJA"); info.Codigo != Baja {
		t.Fatalf("alias de baja: %+v", info)
	}
}

func TestDescribirIdsNumericosLegados(t *testing.T) {
	if info := Describir(2); info.Codigo != Reservado {
		t.Fatalf("Describir(2) = %+v", info)
	}
	if info := Describir(float64(3)); info.Codigo != Vendido {
		t.Fatalf("Describir(3.0) = %+v", info)
	}
	if info := Describir(99); info.Codigo != Desconocido {
		t.Fatalf("un id fuera de tabla debe caer en el default: %+v", info)
	}
}

func TestDescribirObjetoAnidado(t *testing.T) {
	info := Describir(map[string]any{"codigo": "VENDIDO", "etiqueta": "Vendido"})
	if info.Codigo != Vendido {
		t.Fatalf("objeto anidado: %+v", info)
	}

	info = Describir(map[string]any{"id": float64(5)})
	if info.Codigo != EnTransito {
		t.Fatalf("objeto con id legado: %+v", info)
	}
}

func TestDescribirEsTotal(t *testing.T) {
	for _, valor := range []any{nil, true, []string{"DISPONIBLE"}, "CUALQUIER_COSA", map[string]any{}} {
		info := Describir(valor)
		if info.Codigo != Desconocido || info.Etiqueta != "Sin estado" || info.Color != "gray" {
			t.Fatalf("Describir(%v) = %+v, esperaba el default", valor, info)
		}
	}
}

func TestTodosCubreElCicloDeVida(t *testing.T) {
	todos := Todos()
	if len(todos) != 6 {
		t.Fatalf("Todos() tiene %d estados", len(todos))
	}
	if todos[0].Codigo != Disponible || todos[len(todos)-1].Codigo != Baja {
		t.Fatalf("orden inesperado: %+v", todos)
	}
	for _, info := range todos {
		if info.Etiqueta == "" || info.Color == "" {
			t.Fatalf("estado incompleto: %+v", info)
		}
	}
}
