package repository

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryRepository defines the interface for warehouse catalogue
// operations. Stock mutations tied to financial documents do not go
// through here; those belong to LedgerRepository.
type InventoryRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)
	// GetByIDs retrieves multiple items by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error)
	Update(ctx context.Context, item *entity.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *InventoryFilterParams) ([]entity.InventoryItem, int64, error)
}

// InventoryFilterParams contains filtering parameters for inventory queries
type InventoryFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   *enum.ItemCategory
	// InStockOnly keeps only rows with stock_cajas > 0 (the sale form's view)
	InStockOnly bool
}
