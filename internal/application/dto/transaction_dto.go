package dto

import "time"

// RegisterTransactionRequest cuerpo para registrar un movimiento de stock.
type RegisterTransactionRequest struct {
	ProductID string `json:"product_id"`
	Type      string `json:"type"` // "in" | "out"
	Quantity  int64  `json:"quantity"`
	Note      string `json:"note"`
}

// RegisterTransactionResponse respuesta de creación de movimiento.
type RegisterTransactionResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
}

// TransactionResponse representación HTTP de un movimiento, con nombre de producto.
type TransactionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Note        string    `json:"note"`
	Operator    string    `json:"operator"`
	CreatedAt   time.Time `json:"created_at"`
}
