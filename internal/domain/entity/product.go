package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock solo se modifica a través del motor de transacciones (nunca por el CRUD),
// y la base garantiza Stock >= 0 con un CHECK.
type Product struct {
	ID          string
	Name        string
	Stock       int64
	Price       decimal.Decimal // precio de venta
	Category    string
	Description string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
