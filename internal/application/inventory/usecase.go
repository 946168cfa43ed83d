package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

// TransactionUseCase motor de transacciones de stock: valida y aplica entradas y
// salidas de forma atómica, dejando un ledger append-only.
//
// La salida usa un UPDATE condicionado (stock = stock - q WHERE stock >= q): el
// check de suficiencia y la resta ocurren en una sola sentencia, así dos salidas
// concurrentes sobre el mismo producto no pueden perder la actualización ni dejar
// stock negativo.
type TransactionUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	recorder    *audit.Recorder
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	recorder *audit.Recorder,
) *TransactionUseCase {
	return &TransactionUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		txRepo:      txRepo,
		recorder:    recorder,
	}
}

// TransactionInput entrada para registrar un movimiento de stock.
type TransactionInput struct {
	ProductID string
	Type      string // "in" | "out"
	Quantity  int64
	Note      string
	Operator  string // username del actor
}

// Apply valida y aplica el movimiento. Devuelve el ID de la transacción creada.
//
// Errores: domain.ErrInvalidInput (tipo o cantidad inválidos),
// domain.ErrInsufficientStock (el update condicionado no afectó filas: producto
// inexistente o stock insuficiente), o error de infraestructura.
func (uc *TransactionUseCase) Apply(ctx context.Context, input TransactionInput) (string, error) {
	if input.Type != entity.TransactionTypeIn && input.Type != entity.TransactionTypeOut {
		return "", domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.Quantity <= 0 {
		return "", domain.ErrInvalidInput
	}

	// Nombre del producto para el contexto de auditoría. Que no exista aquí no es
	// error: el check de existencia autoritativo es el update condicionado.
	productName := ""
	if product, err := uc.productRepo.GetByID(input.ProductID); err == nil && product != nil {
		productName = product.Name
	}

	now := time.Now()
	transactionID := uuid.New().String()

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		transactionRepo repository.TransactionRepository,
	) error {
		var ok bool
		var err error
		if input.Type == entity.TransactionTypeIn {
			ok, err = productRepo.AddStock(input.ProductID, input.Quantity)
		} else {
			ok, err = productRepo.RemoveStockGuarded(input.ProductID, input.Quantity)
		}
		if err != nil {
			return err
		}
		if !ok {
			// Cero filas afectadas: aborta antes de escribir nada en el ledger.
			return domain.ErrInsufficientStock
		}
		return transactionRepo.Create(&entity.Transaction{
			ID:        transactionID,
			ProductID: input.ProductID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Note:      input.Note,
			Operator:  input.Operator,
			CreatedAt: now,
		})
	})
	if err != nil {
		return "", err
	}

	// Auditoría fuera de la tx: best-effort, nunca revierte el movimiento.
	uc.recorder.Record(input.Operator, entity.ActionAddTransaction, map[string]any{
		"product_id":   input.ProductID,
		"product_name": productName,
		"type":         input.Type,
		"quantity":     input.Quantity,
	})

	return transactionID, nil
}

// List devuelve el ledger paginado, más reciente primero, con nombre de producto.
func (uc *TransactionUseCase) List(page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	transactions, err := uc.txRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, dto.TransactionResponse{
			ID:          t.ID,
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Type:        t.Type,
			Quantity:    t.Quantity,
			Note:        t.Note,
			Operator:    t.Operator,
			CreatedAt:   t.CreatedAt,
		})
	}
	return out, nil
}
