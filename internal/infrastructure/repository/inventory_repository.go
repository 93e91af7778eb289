package repository

import (
	"context"
	"errors"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	domainRepo "github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository creates a new inventory repository
func NewInventoryRepository(db *gorm.DB) domainRepo.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// GetByIDs retrieves multiple inventory items in a single query
func (r *inventoryRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.InventoryItem, error) {
	if len(ids) == 0 {
		return []entity.InventoryItem{}, nil
	}
	var items []entity.InventoryItem
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepository) List(ctx context.Context, params *domainRepo.InventoryFilterParams) ([]entity.InventoryItem, int64, error) {
	var items []entity.InventoryItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventoryItem{})

	if params.Search != "" {
		query = query.Where("tipo ILIKE ? OR origen ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Category != nil {
		query = query.Where("categoria = ?", *params.Category)
	}

	if params.InStockOnly {
		query = query.Where("stock_cajas > 0")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("tipo ASC").
		Find(&items).Error

	return items, total, err
}
