package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/inventory"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
	apphttp "github.com/BlockbyJamez/my-inventory-app/internal/interfaces/http"
	"github.com/BlockbyJamez/my-inventory-app/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para armar el caso de uso detrás del handler
// ──────────────────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	stock map[string]int64
}

func (s *stubProductRepo) Create(*entity.Product) error { return nil }
func (s *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	if _, ok := s.stock[id]; !ok {
		return nil, domain.ErrNotFound
	}
	return &entity.Product{ID: id, Name: "Producto " + id, Stock: s.stock[id]}, nil
}
func (s *stubProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (s *stubProductRepo) Update(*entity.Product) error             { return nil }
func (s *stubProductRepo) Delete(string) error                      { return nil }

func (s *stubProductRepo) AddStock(id string, quantity int64) (bool, error) {
	if _, ok := s.stock[id]; !ok {
		return false, nil
	}
	s.stock[id] += quantity
	return true, nil
}

func (s *stubProductRepo) RemoveStockGuarded(id string, quantity int64) (bool, error) {
	current, ok := s.stock[id]
	if !ok || current < quantity {
		return false, nil
	}
	s.stock[id] = current - quantity
	return true, nil
}

type stubTransactionRepo struct {
	rows []*entity.Transaction
}

func (s *stubTransactionRepo) Create(t *entity.Transaction) error {
	s.rows = append(s.rows, t)
	return nil
}
func (s *stubTransactionRepo) List(int, int) ([]*entity.Transaction, error) { return s.rows, nil }

type stubLogRepo struct{}

func (stubLogRepo) Create(*entity.LogEntry) error              { return nil }
func (stubLogRepo) ListRecent(int) ([]*entity.LogEntry, error) { return nil, nil }

// stubTxRunner invoca fn directamente con los repos en memoria (sin tx real).
type stubTxRunner struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

func (s *stubTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	transactionRepo repository.TransactionRepository,
) error) error {
	return fn(s.productRepo, s.txRepo)
}

// buildTransactionApp arma una app Fiber con la ruta POST /api/transactions
// protegida igual que en el Router real.
func buildTransactionApp(initialStock map[string]int64) (*fiber.App, *stubProductRepo) {
	products := &stubProductRepo{stock: initialStock}
	transactions := &stubTransactionRepo{}
	recorder := audit.NewRecorder(stubLogRepo{}, logger.Nop())
	uc := inventory.NewTransactionUseCase(
		&stubTxRunner{productRepo: products, txRepo: transactions},
		products, transactions, recorder,
	)
	h := apphttp.NewTransactionHandler(uc)

	app := fiber.New()
	app.Post("/api/transactions",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(entity.RoleAdmin),
		h.Register,
	)
	return app, products
}

func postTransaction(t *testing.T, app *fiber.App, token string, body dto.RegisterTransactionRequest) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del endpoint POST /api/transactions
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterTransaction_EntradaExitosa(t *testing.T) {
	app, products := buildTransactionApp(map[string]int64{"p1": 10})

	resp := postTransaction(t, app, tokenFor(t, "ana", "admin"), dto.RegisterTransactionRequest{
		ProductID: "p1", Type: "in", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.RegisterTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.NotEmpty(t, out.TransactionID, "debe devolver el id de la transacción creada")
	assert.Equal(t, int64(15), products.stock["p1"], "el stock debe reflejar la entrada")
}

func TestRegisterTransaction_SalidaSinStock_Retorna400(t *testing.T) {
	app, products := buildTransactionApp(map[string]int64{"p1": 3})

	resp := postTransaction(t, app, tokenFor(t, "ana", "admin"), dto.RegisterTransactionRequest{
		ProductID: "p1", Type: "out", Quantity: 5,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, int64(3), products.stock["p1"], "el stock no debe cambiar")
}

func TestRegisterTransaction_TipoInvalido_Retorna400(t *testing.T) {
	app, _ := buildTransactionApp(map[string]int64{"p1": 3})

	resp := postTransaction(t, app, tokenFor(t, "ana", "admin"), dto.RegisterTransactionRequest{
		ProductID: "p1", Type: "transfer", Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestRegisterTransaction_ViewerBloqueado_Retorna403(t *testing.T) {
	app, _ := buildTransactionApp(map[string]int64{"p1": 3})

	resp := postTransaction(t, app, tokenFor(t, "beto", "viewer"), dto.RegisterTransactionRequest{
		ProductID: "p1", Type: "in", Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRegisterTransaction_SinToken_Retorna401(t *testing.T) {
	app, _ := buildTransactionApp(map[string]int64{"p1": 3})

	resp := postTransaction(t, app, "", dto.RegisterTransactionRequest{
		ProductID: "p1", Type: "in", Quantity: 1,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
