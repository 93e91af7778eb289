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

// SaleService handles sale notes. Creation and deletion go through the
// ledger so stock and the folio sequence stay consistent; everything the
// ledger does not need (precondition checks, totals, payment state) is
// computed here before the transaction starts.
type SaleService struct {
	ledger       repository.LedgerRepository
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewSaleService creates a new sale service
func NewSaleService(
	ledger repository.LedgerRepository,
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
) *SaleService {
	return &SaleService{
		ledger:       ledger,
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// SaleLineInput is one requested line of a sale
type SaleLineInput struct {
	ItemID    uuid.UUID
	Boxes     int
	UnitPrice decimal.Decimal
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	CustomerID uuid.UUID
	Method     enum.PaymentMethod
	Lines      []SaleLineInput
}

// CreateSale validates the input, computes line subtotals, the grand
// total and the initial payment state, and hands the assembled note to
// the ledger transaction. On any failure nothing is persisted.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.Sale, error) {
	if input.CustomerID == uuid.Nil {
		return nil, apperror.NewValidationError("Selecciona un cliente")
	}
	if len(input.Lines) == 0 {
		return nil, apperror.NewValidationError("Agrega al menos un producto")
	}
	for _, line := range input.Lines {
		if line.ItemID == uuid.Nil || line.Boxes <= 0 || line.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewValidationError("Completa todos los productos")
		}
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Cliente no encontrado")
	}

	items := make([]entity.SaleItem, 0, len(input.Lines))
	total := decimal.Zero
	for _, line := range input.Lines {
		subtotal := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Boxes)))
		total = total.Add(subtotal)
		items = append(items, entity.SaleItem{
			ItemID:    line.ItemID,
			Boxes:     line.Boxes,
			UnitPrice: line.UnitPrice,
			Subtotal:  subtotal,
		})
	}

	status := input.Method.Status()
	balance := total
	if status == enum.PaymentPaid {
		balance = decimal.Zero
	}

	sale := &entity.Sale{
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Date:         time.Now(),
		Total:        total,
		Status:       status,
		Balance:      balance,
		Method:       input.Method,
		Items:        items,
	}

	if err := s.ledger.CreateSale(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// GetSale retrieves a sale with its line items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Venta no encontrada")
	}
	return sale, nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// DeleteSale removes a sale through the compensating ledger transaction,
// restoring the stock its lines consumed.
func (s *SaleService) DeleteSale(ctx context.Context, id uuid.UUID) error {
	return s.ledger.DeleteSale(ctx, id)
}

// MarkPaid settles the balance on the given sales. Touches payment fields
// only, never inventory.
func (s *SaleService) MarkPaid(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.NewValidationError("Selecciona al menos una venta")
	}
	return s.saleRepo.MarkPaidBatch(ctx, ids)
}
