package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIn  = "in"  // entrada
	TransactionTypeOut = "out" // salida
)

// Transaction representa un movimiento de stock (entrada o salida).
// Es inmutable una vez creada: el historial es un ledger append-only.
type Transaction struct {
	ID        string
	ProductID string
	Type      string // in, out
	Quantity  int64  // siempre positivo; el signo lo da Type
	Note      string
	Operator  string // username del actor que registró el movimiento
	CreatedAt time.Time

	// ProductName viene del JOIN con products en los listados; no se persiste aquí.
	ProductName string
}
