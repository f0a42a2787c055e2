package service

import "github.com/snapshot/storefront/internal/core/domain"

// CatalogService serves the fixed product catalog.
type CatalogService struct {
	products []domain.Product
}

func NewCatalogService(products []domain.Product) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *CatalogService) Get(id int) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
