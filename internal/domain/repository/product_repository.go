package repository

import "github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
//
// AddStock y RemoveStockGuarded son las únicas vías para mutar Stock. Ambas devuelven
// false si la sentencia no afectó filas: producto inexistente, o stock insuficiente en
// el caso de RemoveStockGuarded (el UPDATE condicionado hace el check y la resta en una
// sola sentencia atómica, sin leer-luego-escribir).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error

	AddStock(id string, quantity int64) (bool, error)
	RemoveStockGuarded(id string, quantity int64) (bool, error)
}
