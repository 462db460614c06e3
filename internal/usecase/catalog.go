package usecase

import "github.com/sweetcrumb/bakeshop/internal/domain/model"

// CatalogUseCase serves the fixed product catalog.
type CatalogUseCase struct {
	products []model.Product
}

// NewCatalogUseCase constructs CatalogUseCase with the shop's assortment.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{
		products: []model.Product{
			{ID: 1, Name: "Chocolate Chip", Price: 25},
			{ID: 2, Name: "Red Velvet", Price: 30},
		},
	}
}

// Products returns the catalog entries.
func (u *CatalogUseCase) Products() []model.Product {
	out := make([]model.Product, len(u.products))
	copy(out, u.products)
	return out
}
