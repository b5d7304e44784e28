package models

// Paginacion representa los metadatos de paginación que acompañan a cada listado
type Paginacion struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
	Limit int `json:"limit"`
}

// Moneda representa la moneda de un valor monetario
type Moneda string

const (
	MonedaPesos   Moneda = "ARS"
	MonedaDolares Moneda = "USD"
)

// Plataforma representa la plataforma externa de una publicación
type Plataforma string

const (
	PlataformaWeb         Plataforma = "web"
	PlataformaFacebook    Plataforma = "facebook"
	PlataformaInstagram   Plataforma = "instagram"
	PlataformaMarketplace Plataforma = "marketplace"
	PlataformaOtra        Plataforma = "otra"
)
