package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/andresproyectosx24/chayotex/pkg/pagination"
)

// fakeLedger records the documents handed to it and can be primed to
// fail, standing in for the transactional store.
type fakeLedger struct {
	sales       []*entity.Sale
	settlements []*entity.Settlement
	deleted     []uuid.UUID
	nextFolio   int
	failWith    error
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{nextFolio: 1}
}

func (f *fakeLedger) CreateSale(ctx context.Context, sale *entity.Sale) error {
	if f.failWith != nil {
		return f.failWith
	}
	sale.ID = uuid.New()
	sale.Folio = f.nextFolio
	sale.FolioYear = time.Now().Year()
	f.nextFolio++
	f.sales = append(f.sales, sale)
	return nil
}

func (f *fakeLedger) DeleteSale(ctx context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeLedger) CreateSettlement(ctx context.Context, settlement *entity.Settlement) error {
	if f.failWith != nil {
		return f.failWith
	}
	settlement.ID = uuid.New()
	settlement.Folio = f.nextFolio
	settlement.FolioYear = time.Now().Year()
	f.nextFolio++
	f.settlements = append(f.settlements, settlement)
	return nil
}

type fakeSaleRepo struct {
	sales      map[uuid.UUID]*entity.Sale
	markedPaid []uuid.UUID
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[uuid.UUID]*entity.Sale)}
}

func (f *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.sales[id], nil
}

func (f *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return f.sales[id], nil
}

func (f *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, 0, len(f.sales))
	for _, s := range f.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSaleRepo) MarkPaidBatch(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if s, ok := f.sales[id]; ok && s.Status == enum.PaymentPending {
			s.Status = enum.PaymentPaid
			s.Balance = decimal.Zero
			f.markedPaid = append(f.markedPaid, id)
			n++
		}
	}
	return n, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	out := make([]entity.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func saleFixture(t *testing.T) (*SaleService, *fakeLedger, *fakeSaleRepo, *entity.Customer) {
	t.Helper()
	ledger := newFakeLedger()
	saleRepo := newFakeSaleRepo()
	customerRepo := newFakeCustomerRepo()
	customer := &entity.Customer{Name: "Juan Pérez"}
	if err := customerRepo.Create(context.Background(), customer); err != nil {
		t.Fatalf("seeding customer: %v", err)
	}
	return NewSaleService(ledger, saleRepo, customerRepo), ledger, saleRepo, customer
}

func TestCreateSale_CreditTotalsAndBalance(t *testing.T) {
	svc, ledger, _, customer := saleFixture(t)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: customer.ID,
		Method:     enum.MethodCredit,
		Lines: []SaleLineInput{
			{ItemID: uuid.New(), Boxes: 10, UnitPrice: decimal.NewFromInt(5)},
			{ItemID: uuid.New(), Boxes: 3, UnitPrice: decimal.NewFromInt(20)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale error: %v", err)
	}

	if sale.Total.String() != "110" {
		t.Fatalf("expected total 110, got %s", sale.Total.String())
	}
	if sale.Status != enum.PaymentPending {
		t.Fatalf("expected status Pendiente, got %s", sale.Status)
	}
	if !sale.Balance.Equal(sale.Total) {
		t.Fatalf("credit sale balance should equal total, got %s", sale.Balance.String())
	}
	if sale.CustomerName != "Juan Pérez" {
		t.Fatalf("expected customer name snapshot, got %q", sale.CustomerName)
	}
	if len(ledger.sales) != 1 {
		t.Fatalf("expected 1 sale handed to ledger, got %d", len(ledger.sales))
	}
	if sale.Items[0].Subtotal.String() != "50" || sale.Items[1].Subtotal.String() != "60" {
		t.Fatalf("unexpected line subtotals: %s, %s",
			sale.Items[0].Subtotal.String(), sale.Items[1].Subtotal.String())
	}
}

func TestCreateSale_PaidMethodZeroBalance(t *testing.T) {
	svc, _, _, customer := saleFixture(t)

	sale, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: customer.ID,
		Method:     enum.MethodPaid,
		Lines: []SaleLineInput{
			{ItemID: uuid.New(), Boxes: 4, UnitPrice: decimal.NewFromInt(25)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSale error: %v", err)
	}

	if sale.Status != enum.PaymentPaid {
		t.Fatalf("expected status Pagado, got %s", sale.Status)
	}
	if !sale.Balance.IsZero() {
		t.Fatalf("paid sale balance should be zero, got %s", sale.Balance.String())
	}
}

func TestCreateSale_Validation(t *testing.T) {
	svc, ledger, _, customer := saleFixture(t)

	cases := []struct {
		name  string
		input *CreateSaleInput
	}{
		{"missing customer", &CreateSaleInput{
			Method: enum.MethodCredit,
			Lines:  []SaleLineInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
		}},
		{"no lines", &CreateSaleInput{CustomerID: customer.ID, Method: enum.MethodCredit}},
		{"zero boxes", &CreateSaleInput{
			CustomerID: customer.ID,
			Method:     enum.MethodCredit,
			Lines:      []SaleLineInput{{ItemID: uuid.New(), Boxes: 0, UnitPrice: decimal.NewFromInt(1)}},
		}},
		{"zero price", &CreateSaleInput{
			CustomerID: customer.ID,
			Method:     enum.MethodCredit,
			Lines:      []SaleLineInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.Zero}},
		}},
	}
	for _, tc := range cases {
		_, err := svc.CreateSale(context.Background(), tc.input)
		if !apperror.IsKind(err, apperror.KindValidationFailed) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	if len(ledger.sales) != 0 {
		t.Fatalf("rejected input must not reach the ledger, got %d sales", len(ledger.sales))
	}
}

func TestCreateSale_UnknownCustomer(t *testing.T) {
	svc, _, _, _ := saleFixture(t)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: uuid.New(),
		Method:     enum.MethodCredit,
		Lines:      []SaleLineInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
	})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestCreateSale_LedgerFailurePropagates(t *testing.T) {
	svc, ledger, _, customer := saleFixture(t)
	ledger.failWith = apperror.NewInsufficientStockError("Chayote Primera (Coatepec)", 30)

	_, err := svc.CreateSale(context.Background(), &CreateSaleInput{
		CustomerID: customer.ID,
		Method:     enum.MethodCredit,
		Lines:      []SaleLineInput{{ItemID: uuid.New(), Boxes: 50, UnitPrice: decimal.NewFromInt(5)}},
	})
	if !apperror.IsKind(err, apperror.KindInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	appErr := apperror.GetAppError(err)
	if appErr.Message != "Stock insuficiente para Chayote Primera (Coatepec). Disponibles: 30" {
		t.Fatalf("unexpected message: %q", appErr.Message)
	}
}

func TestMarkPaid_OnlyPendingSalesChange(t *testing.T) {
	svc, _, saleRepo, _ := saleFixture(t)

	pending := &entity.Sale{
		ID:      uuid.New(),
		Status:  enum.PaymentPending,
		Total:   decimal.NewFromInt(200),
		Balance: decimal.NewFromInt(200),
	}
	alreadyPaid := &entity.Sale{
		ID:      uuid.New(),
		Status:  enum.PaymentPaid,
		Total:   decimal.NewFromInt(90),
		Balance: decimal.Zero,
	}
	saleRepo.sales[pending.ID] = pending
	saleRepo.sales[alreadyPaid.ID] = alreadyPaid

	updated, err := svc.MarkPaid(context.Background(), []uuid.UUID{pending.ID, alreadyPaid.ID})
	if err != nil {
		t.Fatalf("MarkPaid error: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected 1 updated sale, got %d", updated)
	}
	if pending.Status != enum.PaymentPaid || !pending.Balance.IsZero() {
		t.Fatalf("pending sale not settled: status=%s balance=%s", pending.Status, pending.Balance)
	}
}

func TestMarkPaid_EmptyBatchRejected(t *testing.T) {
	svc, _, _, _ := saleFixture(t)

	_, err := svc.MarkPaid(context.Background(), nil)
	if !apperror.IsKind(err, apperror.KindValidationFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDeleteSale_ReachesLedger(t *testing.T) {
	svc, ledger, _, _ := saleFixture(t)

	id := uuid.New()
	if err := svc.DeleteSale(context.Background(), id); err != nil {
		t.Fatalf("DeleteSale error: %v", err)
	}
	if len(ledger.deleted) != 1 || ledger.deleted[0] != id {
		t.Fatalf("expected ledger delete for %s, got %v", id, ledger.deleted)
	}
}
