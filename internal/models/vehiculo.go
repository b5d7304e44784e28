package models

import (
	"time"
)

// Vehiculo representa una unidad en el inventario de la concesionaria
type Vehiculo struct {
	ID               string     `json:"id"`
	Anio             int        `json:"anio"`
	Patente          string     `json:"patente,omitempty"`
	Kilometraje      int        `json:"kilometraje,omitempty"`
	Valor            float64    `json:"valor"`
	Moneda           Moneda     `json:"moneda,omitempty"`
	Estado           string     `json:"estado,omitempty"`
	FechaIngreso     *time.Time `json:"fecha_ingreso,omitempty"`
	Observaciones    string     `json:"observaciones,omitempty"`
	TareasPendientes []string   `json:"tareas_pendientes,omitempty"`
	ModeloID         string     `json:"modelo_id,omitempty"`
	VendedorID       string     `json:"vendedor_id,omitempty"`
	CompradorID      string     `json:"comprador_id,omitempty"`
	Activo           bool       `json:"activo"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Forma normalizada: el vehículo referencia un registro Modelo compartido.
	Modelo *Modelo `json:"modelo,omitempty"`

	// Campos planos legados; vehículos viejos llegan con la marca/modelo
	// directamente sobre el registro en vez del objeto relacionado.
	Marca         string `json:"marca,omitempty"`
	ModeloNombre  string `json:"modelo_nombre,omitempty"`
	VersionLegada string `json:"version,omitempty"`

	Imagenes      []Imagen      `json:"imagenes,omitempty"`
	Publicaciones []Publicacion `json:"publicaciones,omitempty"`
}

// Modelo representa un modelo de vehículo compartido por varias unidades
type Modelo struct {
	ID          string `json:"id"`
	Marca       string `json:"marca"`
	Modelo      string `json:"modelo"`
	Version     string `json:"version,omitempty"`
	Anio        int    `json:"anio,omitempty"`
	Motor       string `json:"motor,omitempty"`
	Transmision string `json:"transmision,omitempty"`
}

// EstadoVehiculo representa una entrada del catálogo de estados del servidor
type EstadoVehiculo struct {
	Codigo   string `json:"codigo"`
	Etiqueta string `json:"etiqueta"`
}
