package ports

import "github.com/snapshot/storefront/internal/core/domain"

type CatalogService interface {
	List() []domain.Product
	Get(id int) (*domain.Product, error)
}
