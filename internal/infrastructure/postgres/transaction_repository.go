package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un movimiento de stock. El ledger es append-only: no hay Update ni Delete.
func (r *TransactionRepo) Create(transaction *entity.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, product_id, type, quantity, note, operator, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		transaction.ID, transaction.ProductID, transaction.Type, transaction.Quantity,
		transaction.Note, transaction.Operator, transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// List devuelve movimientos con el nombre del producto resuelto (LEFT JOIN: el
// producto pudo haberse borrado después del movimiento), más recientes primero.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT t.id, t.product_id, t.type, t.quantity, t.note, t.operator, t.created_at,
		       COALESCE(p.name, '')
		FROM transactions t
		LEFT JOIN products p ON p.id = t.product_id
		ORDER BY t.created_at DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.Note, &t.Operator,
			&t.CreatedAt, &t.ProductName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
