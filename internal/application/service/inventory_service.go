package service

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
	"github.com/google/uuid"
)

// InventoryService manages the warehouse catalogue. Direct stock edits
// here set an absolute value (correcting a count); stock movement tied to
// sales and settlements goes through the ledger instead.
type InventoryService struct {
	inventoryRepo repository.InventoryRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(inventoryRepo repository.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// InventoryInput represents the create/update inventory item input
type InventoryInput struct {
	Category enum.ItemCategory
	Type     string
	Quality  *string
	Origin   *string
	Stock    int
}

func (i *InventoryInput) validate() error {
	if !i.Category.IsValid() {
		return apperror.NewValidationError("Categoría inválida")
	}
	if i.Type == "" {
		return apperror.NewValidationError("El tipo es obligatorio")
	}
	if i.Stock < 0 {
		return apperror.NewValidationError("El stock no puede ser negativo")
	}
	return nil
}

// CreateItem creates an inventory item. Quality and origin only apply to
// produce; for material they are discarded.
func (s *InventoryService) CreateItem(ctx context.Context, input *InventoryInput) (*entity.InventoryItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		Category: input.Category,
		Type:     input.Type,
		Stock:    input.Stock,
	}
	if input.Category == enum.CategoryProduce {
		item.Quality = input.Quality
		item.Origin = input.Origin
	}

	if err := s.inventoryRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Producto no encontrado")
	}
	return item, nil
}

// UpdateItem updates an inventory item
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, input *InventoryInput) (*entity.InventoryItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Category = input.Category
	item.Type = input.Type
	item.Stock = input.Stock
	if input.Category == enum.CategoryProduce {
		item.Quality = input.Quality
		item.Origin = input.Origin
	} else {
		item.Quality = nil
		item.Origin = nil
	}

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes an inventory item
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}
	return s.inventoryRepo.Delete(ctx, id)
}

// ListItems lists inventory items with filtering
func (s *InventoryService) ListItems(ctx context.Context, params *repository.InventoryFilterParams) (*pagination.PaginatedResult[entity.InventoryItem], error) {
	items, total, err := s.inventoryRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}
