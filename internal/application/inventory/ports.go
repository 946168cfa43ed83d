package inventory

import (
	"context"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la mutación de stock y la fila del ledger se
// confirmen juntas o no se confirme ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error) error
}
