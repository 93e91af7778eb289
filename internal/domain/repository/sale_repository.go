package repository

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
	"github.com/google/uuid"
)

// SaleRepository defines read and payment-state operations on sale notes.
// Creation and deletion are ledger transactions (see LedgerRepository):
// they mutate inventory stock and must not be reachable from here.
type SaleRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// MarkPaidBatch sets estado_pago=Pagado and saldo_pendiente=0 on every
	// given sale. A plain batch update: it has no cross-document consistency
	// requirement and never touches inventory.
	MarkPaidBatch(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.PaymentStatus
	CustomerID *uuid.UUID
	FolioYear  *int
}

// SettlementRepository defines read operations on settlements. Settlements
// are created by the ledger transaction and are immutable afterwards: no
// update or delete methods exist on purpose.
type SettlementRepository interface {
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Settlement, error)
	List(ctx context.Context, params *SettlementFilterParams) ([]entity.Settlement, int64, error)
}

// SettlementFilterParams contains filtering parameters for settlement queries
type SettlementFilterParams struct {
	Pagination *pagination.PaginationParams
	SupplierID *uuid.UUID
	FolioYear  *int
}
