package service

import (
	"context"
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SettlementService registers supplier liquidaciones. A settlement is
// created once through the ledger (each received line adds stock) and is
// immutable afterwards; there is no deletion path.
type SettlementService struct {
	ledger         repository.LedgerRepository
	settlementRepo repository.SettlementRepository
	supplierRepo   repository.SupplierRepository
}

// NewSettlementService creates a new settlement service
func NewSettlementService(
	ledger repository.LedgerRepository,
	settlementRepo repository.SettlementRepository,
	supplierRepo repository.SupplierRepository,
) *SettlementService {
	return &SettlementService{
		ledger:         ledger,
		settlementRepo: settlementRepo,
		supplierRepo:   supplierRepo,
	}
}

// EntryInput is one received-goods line of a settlement
type EntryInput struct {
	ItemID    uuid.UUID
	Boxes     int
	UnitPrice decimal.Decimal
}

// DeductionInput is one expense line subtracted from the payable amount
type DeductionInput struct {
	Concept string
	Amount  decimal.Decimal
}

// CreateSettlementInput represents the create settlement input
type CreateSettlementInput struct {
	SupplierID uuid.UUID
	Date       string
	Entries    []EntryInput
	Deductions []DeductionInput
}

// CreateSettlement validates the input, totals goods and deductions, and
// hands the document to the ledger transaction. Net payable is goods
// value minus deductions.
func (s *SettlementService) CreateSettlement(ctx context.Context, input *CreateSettlementInput) (*entity.Settlement, error) {
	if input.SupplierID == uuid.Nil {
		return nil, apperror.NewValidationError("Selecciona un proveedor")
	}
	if len(input.Entries) == 0 {
		return nil, apperror.NewValidationError("Completa los productos recibidos")
	}
	for _, entry := range input.Entries {
		if entry.ItemID == uuid.Nil || entry.Boxes <= 0 || entry.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewValidationError("Completa los productos recibidos")
		}
	}
	for _, deduction := range input.Deductions {
		if deduction.Concept == "" || deduction.Amount.IsNegative() {
			return nil, apperror.NewValidationError("Completa los gastos a descontar")
		}
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Proveedor no encontrado")
	}

	entries := make([]entity.SettlementEntry, 0, len(input.Entries))
	goodsTotal := decimal.Zero
	for _, entry := range input.Entries {
		subtotal := entry.UnitPrice.Mul(decimal.NewFromInt(int64(entry.Boxes)))
		goodsTotal = goodsTotal.Add(subtotal)
		entries = append(entries, entity.SettlementEntry{
			ItemID:    entry.ItemID,
			Boxes:     entry.Boxes,
			UnitPrice: entry.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	deductions := make([]entity.SettlementDeduction, 0, len(input.Deductions))
	deductionsTotal := decimal.Zero
	for _, deduction := range input.Deductions {
		deductionsTotal = deductionsTotal.Add(deduction.Amount)
		deductions = append(deductions, entity.SettlementDeduction{
			Concept: deduction.Concept,
			Amount:  deduction.Amount,
		})
	}

	date := input.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	settlement := &entity.Settlement{
		SupplierID:      supplier.ID,
		SupplierName:    supplier.Name,
		RegisteredAt:    time.Now(),
		Date:            date,
		GoodsTotal:      goodsTotal,
		DeductionsTotal: deductionsTotal,
		NetPayable:      goodsTotal.Sub(deductionsTotal),
		Status:          enum.PaymentPending,
		Entries:         entries,
		Deductions:      deductions,
	}

	if err := s.ledger.CreateSettlement(ctx, settlement); err != nil {
		return nil, err
	}

	return settlement, nil
}

// GetSettlement retrieves a settlement with its entries and deductions
func (s *SettlementService) GetSettlement(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	settlement, err := s.settlementRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if settlement == nil {
		return nil, apperror.NewNotFoundError("Liquidación no encontrada")
	}
	return settlement, nil
}

// ListSettlements lists settlements with filtering
func (s *SettlementService) ListSettlements(ctx context.Context, params *repository.SettlementFilterParams) (*pagination.PaginatedResult[entity.Settlement], error) {
	settlements, total, err := s.settlementRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(settlements, pag), nil
}
