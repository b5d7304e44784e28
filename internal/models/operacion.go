package models

import "time"

// TipoOperacion representa el tipo de una operación comercial
type TipoOperacion string

const (
	OperacionCompra   TipoOperacion = "compra"
	OperacionVenta    TipoOperacion = "venta"
	OperacionDeposito TipoOperacion = "deposito"
	OperacionTraslado TipoOperacion = "traslado"
)

// Operacion representa una transacción comercial sobre un vehículo
//
// DatosExtra es una bolsa de datos cuya forma depende del tipo de
// operación (por ejemplo una venta lleva datos de financiación, un
// traslado lleva origen y destino).
type Operacion struct {
	ID          string         `json:"id"`
	Tipo        TipoOperacion  `json:"tipo"`
	VehiculoID  string         `json:"vehiculo_id"`
	VendedorID  string         `json:"vendedor_id,omitempty"`
	CompradorID string         `json:"comprador_id,omitempty"`
	Monto       float64        `json:"monto"`
	Moneda      Moneda         `json:"moneda,omitempty"`
	Estado      string         `json:"estado,omitempty"`
	Fecha       *time.Time     `json:"fecha,omitempty"`
	Notas       string         `json:"notas,omitempty"`
	DatosExtra  map[string]any `json:"datos_extra,omitempty"`
	Activo      bool           `json:"activo"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Publicacion representa un aviso de un vehículo en una plataforma externa
type Publicacion struct {
	ID          string     `json:"id"`
	VehiculoID  string     `json:"vehiculo_id"`
	Plataforma  Plataforma `json:"plataforma"`
	Titulo      string     `json:"titulo"`
	URL         string     `json:"url,omitempty"`
	IDExterno   string     `json:"id_externo,omitempty"`
	Descripcion string     `json:"descripcion,omitempty"`
	Activa      bool       `json:"activa"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Imagen representa una foto de un vehículo
//
// A lo sumo una imagen por vehículo puede tener EsPrincipal=true; el
// backend reacomoda el resto al marcar una nueva principal.
type Imagen struct {
	ID          string    `json:"id"`
	VehiculoID  string    `json:"vehiculo_id"`
	URL         string    `json:"url"`
	Orden       int       `json:"orden"`
	EsPrincipal bool      `json:"es_principal"`
	Activo      bool      `json:"activo"`
	CreatedAt   time.Time `json:"created_at"`
}
