package repository

import (
	"context"
	"errors"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	domainRepo "github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})

	if params.Status != nil {
		query = query.Where("estado_pago = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("cliente_id = ?", *params.CustomerID)
	}

	if params.FolioYear != nil {
		query = query.Where("anio_folio = ?", *params.FolioYear)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("fecha DESC").
		Find(&sales).Error

	return sales, total, err
}

// MarkPaidBatch clears the balance on every listed sale. One bulk update;
// each row is independent, so there is no all-or-nothing requirement here.
func (r *saleRepository) MarkPaidBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"estado_pago":     enum.PaymentPaid,
			"saldo_pendiente": 0,
		})
	return result.RowsAffected, result.Error
}

type settlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository creates a new settlement repository
func NewSettlementRepository(db *gorm.DB) domainRepo.SettlementRepository {
	return &settlementRepository{db: db}
}

func (r *settlementRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	var settlement entity.Settlement
	err := r.db.WithContext(ctx).
		Preload("Entries").Preload("Deductions").
		First(&settlement, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settlement, err
}

func (r *settlementRepository) List(ctx context.Context, params *domainRepo.SettlementFilterParams) ([]entity.Settlement, int64, error) {
	var settlements []entity.Settlement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Settlement{})

	if params.SupplierID != nil {
		query = query.Where("proveedor_id = ?", *params.SupplierID)
	}

	if params.FolioYear != nil {
		query = query.Where("anio_folio = ?", *params.FolioYear)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Entries").Preload("Deductions").
		Order("fecha_registro DESC").
		Find(&settlements).Error

	return settlements, total, err
}
