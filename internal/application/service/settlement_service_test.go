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

type fakeSupplierRepo struct {
	suppliers map[uuid.UUID]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[uuid.UUID]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	f.suppliers[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.suppliers, id)
	return nil
}

func (f *fakeSupplierRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	out := make([]entity.Supplier, 0, len(f.suppliers))
	for _, s := range f.suppliers {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type fakeSettlementRepo struct {
	settlements map[uuid.UUID]*entity.Settlement
}

func newFakeSettlementRepo() *fakeSettlementRepo {
	return &fakeSettlementRepo{settlements: make(map[uuid.UUID]*entity.Settlement)}
}

func (f *fakeSettlementRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Settlement, error) {
	return f.settlements[id], nil
}

func (f *fakeSettlementRepo) List(ctx context.Context, params *repository.SettlementFilterParams) ([]entity.Settlement, int64, error) {
	out := make([]entity.Settlement, 0, len(f.settlements))
	for _, s := range f.settlements {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func settlementFixture(t *testing.T) (*SettlementService, *fakeLedger, *entity.Supplier) {
	t.Helper()
	ledger := newFakeLedger()
	settlementRepo := newFakeSettlementRepo()
	supplierRepo := newFakeSupplierRepo()
	supplier := &entity.Supplier{Name: "Rancho El Mirador"}
	if err := supplierRepo.Create(context.Background(), supplier); err != nil {
		t.Fatalf("seeding supplier: %v", err)
	}
	return NewSettlementService(ledger, settlementRepo, supplierRepo), ledger, supplier
}

func TestCreateSettlement_NetPayable(t *testing.T) {
	svc, ledger, supplier := settlementFixture(t)

	settlement, err := svc.CreateSettlement(context.Background(), &CreateSettlementInput{
		SupplierID: supplier.ID,
		Date:       "2026-08-30",
		Entries: []EntryInput{
			{ItemID: uuid.New(), Boxes: 40, UnitPrice: decimal.NewFromInt(20)},
			{ItemID: uuid.New(), Boxes: 10, UnitPrice: decimal.NewFromInt(20)},
		},
		Deductions: []DeductionInput{
			{Concept: "Flete", Amount: decimal.NewFromInt(100)},
			{Concept: "Cajas", Amount: decimal.NewFromInt(50)},
		},
	})
	if err != nil {
		t.Fatalf("CreateSettlement error: %v", err)
	}

	if settlement.GoodsTotal.String() != "1000" {
		t.Fatalf("expected goods total 1000, got %s", settlement.GoodsTotal.String())
	}
	if settlement.DeductionsTotal.String() != "150" {
		t.Fatalf("expected deductions total 150, got %s", settlement.DeductionsTotal.String())
	}
	if settlement.NetPayable.String() != "850" {
		t.Fatalf("expected net payable 850, got %s", settlement.NetPayable.String())
	}
	if settlement.Status != enum.PaymentPending {
		t.Fatalf("new settlement should be Pendiente, got %s", settlement.Status)
	}
	if settlement.SupplierName != "Rancho El Mirador" {
		t.Fatalf("expected supplier name snapshot, got %q", settlement.SupplierName)
	}
	if settlement.Date != "2026-08-30" {
		t.Fatalf("expected manual date preserved, got %q", settlement.Date)
	}
	if len(ledger.settlements) != 1 {
		t.Fatalf("expected 1 settlement handed to ledger, got %d", len(ledger.settlements))
	}
}

func TestCreateSettlement_DefaultsDateToToday(t *testing.T) {
	svc, _, supplier := settlementFixture(t)

	settlement, err := svc.CreateSettlement(context.Background(), &CreateSettlementInput{
		SupplierID: supplier.ID,
		Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(10)}},
	})
	if err != nil {
		t.Fatalf("CreateSettlement error: %v", err)
	}

	if settlement.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's date, got %q", settlement.Date)
	}
}

func TestCreateSettlement_NoDeductions(t *testing.T) {
	svc, _, supplier := settlementFixture(t)

	settlement, err := svc.CreateSettlement(context.Background(), &CreateSettlementInput{
		SupplierID: supplier.ID,
		Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 5, UnitPrice: decimal.NewFromInt(30)}},
	})
	if err != nil {
		t.Fatalf("CreateSettlement error: %v", err)
	}

	if !settlement.NetPayable.Equal(settlement.GoodsTotal) {
		t.Fatalf("without deductions net payable should equal goods total, got %s vs %s",
			settlement.NetPayable.String(), settlement.GoodsTotal.String())
	}
}

func TestCreateSettlement_Validation(t *testing.T) {
	svc, ledger, supplier := settlementFixture(t)

	cases := []struct {
		name  string
		input *CreateSettlementInput
	}{
		{"missing supplier", &CreateSettlementInput{
			Entries: []EntryInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
		}},
		{"no entries", &CreateSettlementInput{SupplierID: supplier.ID}},
		{"zero boxes", &CreateSettlementInput{
			SupplierID: supplier.ID,
			Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 0, UnitPrice: decimal.NewFromInt(1)}},
		}},
		{"deduction without concept", &CreateSettlementInput{
			SupplierID: supplier.ID,
			Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
			Deductions: []DeductionInput{{Concept: "", Amount: decimal.NewFromInt(5)}},
		}},
		{"negative deduction", &CreateSettlementInput{
			SupplierID: supplier.ID,
			Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
			Deductions: []DeductionInput{{Concept: "Flete", Amount: decimal.NewFromInt(-5)}},
		}},
	}
	for _, tc := range cases {
		_, err := svc.CreateSettlement(context.Background(), tc.input)
		if !apperror.IsKind(err, apperror.KindValidationFailed) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	if len(ledger.settlements) != 0 {
		t.Fatalf("rejected input must not reach the ledger, got %d settlements", len(ledger.settlements))
	}
}

func TestCreateSettlement_UnknownSupplier(t *testing.T) {
	svc, _, _ := settlementFixture(t)

	_, err := svc.CreateSettlement(context.Background(), &CreateSettlementInput{
		SupplierID: uuid.New(),
		Entries:    []EntryInput{{ItemID: uuid.New(), Boxes: 1, UnitPrice: decimal.NewFromInt(1)}},
	})
	if !apperror.IsKind(err, apperror.KindNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}
