package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BlockbyJamez/my-inventory-app/internal/application/audit"
	"github.com/BlockbyJamez/my-inventory-app/internal/application/dto"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Las mutaciones son admin-only (lo gatea el
// router) y se auditan. El stock solo se acepta como valor inicial en Create;
// después únicamente lo mueve el motor de transacciones.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	recorder    *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, recorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, recorder: recorder}
}

func validateProduct(in dto.ProductRequest) error {
	if in.Name == "" || in.Stock < 0 || in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create registra un producto nuevo con su stock inicial.
func (uc *ProductUseCase) Create(in dto.ProductRequest, actor string) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Stock:       in.Stock,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, entity.ActionAddProduct, map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
		"stock":      product.Stock,
	})
	return toProductResponse(product), nil
}

// GetByID devuelve un producto o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualiza los campos editables (el stock no: ese lo mueve el motor de
// transacciones). Devuelve domain.ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest, actor string) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.Category = in.Category
	product.Description = in.Description
	product.ImageURL = in.ImageURL
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	uc.recorder.Record(actor, entity.ActionUpdateProduct, map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return toProductResponse(product), nil
}

// Delete elimina un producto. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Delete(id string, actor string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.productRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actor, entity.ActionDeleteProduct, map[string]any{
		"product_id": id,
		"name":       product.Name,
	})
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Stock:       p.Stock,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
