package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest cuerpo para crear/actualizar un producto.
// Stock solo se acepta en la creación (stock inicial); después solo lo mueve
// el motor de transacciones.
type ProductRequest struct {
	Name        string          `json:"name"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Stock       int64           `json:"stock"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
