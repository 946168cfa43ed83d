package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/auth"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/inventory"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/usecase"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	UserUC        *usecase.UserUseCase
	LogUC         *usecase.LogUseCase
	TransactionUC *inventory.TransactionUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Recuperación de contraseña (público: el actor aún no tiene sesión)
	api.Post("/forgot-password", authHandler.ForgotPassword)
	api.Post("/verify-code", authHandler.VerifyCode)
	api.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products: lectura para cualquier autenticado, mutación solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Transactions: listar cualquier autenticado, registrar solo admin
	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", adminOnly, transactionHandler.Register)

	// Users y logs: solo admin
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id/role", userHandler.UpdateRole)

	logs := protected.Group("/logs", adminOnly)
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.List)
}
