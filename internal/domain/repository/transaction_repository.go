package repository

import "github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"

// TransactionRepository puerto de persistencia para el ledger de movimientos.
// Solo Create y listados: las transacciones no se actualizan ni se borran.
type TransactionRepository interface {
	Create(transaction *entity.Transaction) error

	// List devuelve los movimientos más recientes primero, con el nombre del
	// producto resuelto vía JOIN (ProductName).
	List(limit, offset int) ([]*entity.Transaction, error)
}
