package repository

import (
	"context"
	"errors"
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	domainRepo "github.com/andresproyectosx24/chayotex/internal/domain/repository"
	"github.com/andresproyectosx24/chayotex/pkg/apperror"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates the gorm-backed ledger. Each operation is a
// single database transaction: inventory rows are locked and validated
// before any write, so a failed line leaves no partial effect.
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateSale(ctx context.Context, sale *entity.Sale) error {
	year := time.Now().Year()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Read phase: lock every referenced inventory row.
		itemMap, err := lockInventory(tx, saleItemIDs(sale.Items))
		if err != nil {
			return err
		}

		// Validate every line against the locked rows. Two lines may name
		// the same item, so sufficiency is checked on the running total.
		needed := make(map[uuid.UUID]int, len(sale.Items))
		for i := range sale.Items {
			line := &sale.Items[i]
			inv, ok := itemMap[line.ItemID]
			if !ok {
				return apperror.NewNotFoundError("Producto no encontrado")
			}
			needed[line.ItemID] += line.Boxes
			if needed[line.ItemID] > inv.Stock {
				return apperror.NewInsufficientStockError(inv.Description(), inv.Stock)
			}
			line.Description = inv.Description()
		}

		// Write phase.
		for id, boxes := range needed {
			if err := adjustStock(tx, id, -boxes); err != nil {
				return err
			}
		}

		folio, err := allocateFolio(tx, enum.KindSale, year)
		if err != nil {
			return err
		}
		sale.Folio = folio
		sale.FolioYear = year
		if sale.Date.IsZero() {
			sale.Date = time.Now()
		}

		return tx.Create(sale).Error
	})

	return translateTxError(err)
}

func (r *ledgerRepository) DeleteSale(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sale entity.Sale
		if err := tx.Preload("Items").First(&sale, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NewNotFoundError("Venta no encontrada")
			}
			return err
		}

		// An inventory item deleted since the sale was made is tolerated:
		// there is nothing left to restore its boxes to.
		itemMap, err := lockInventory(tx, saleItemIDs(sale.Items))
		if err != nil {
			return err
		}

		restored := make(map[uuid.UUID]int, len(sale.Items))
		for _, line := range sale.Items {
			if _, ok := itemMap[line.ItemID]; ok {
				restored[line.ItemID] += line.Boxes
			}
		}

		for itemID, boxes := range restored {
			if err := adjustStock(tx, itemID, boxes); err != nil {
				return err
			}
		}

		if err := tx.Where("sale_id = ?", sale.ID).Delete(&entity.SaleItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sale).Error
	})

	return translateTxError(err)
}

func (r *ledgerRepository) CreateSettlement(ctx context.Context, settlement *entity.Settlement) error {
	year := time.Now().Year()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := make([]uuid.UUID, len(settlement.Entries))
		for i := range settlement.Entries {
			ids[i] = settlement.Entries[i].ItemID
		}

		itemMap, err := lockInventory(tx, ids)
		if err != nil {
			return err
		}

		// Received goods only add stock, so there is no sufficiency check;
		// the referenced catalogue row still has to exist.
		received := make(map[uuid.UUID]int, len(settlement.Entries))
		for i := range settlement.Entries {
			line := &settlement.Entries[i]
			inv, ok := itemMap[line.ItemID]
			if !ok {
				return apperror.NewNotFoundError("Producto no encontrado")
			}
			received[line.ItemID] += line.Boxes
			line.Description = inv.Description()
		}

		for id, boxes := range received {
			if err := adjustStock(tx, id, boxes); err != nil {
				return err
			}
		}

		folio, err := allocateFolio(tx, enum.KindSettlement, year)
		if err != nil {
			return err
		}
		settlement.Folio = folio
		settlement.FolioYear = year
		if settlement.RegisteredAt.IsZero() {
			settlement.RegisteredAt = time.Now()
		}

		return tx.Create(settlement).Error
	})

	return translateTxError(err)
}

// allocateFolio issues the next sequential number for a (kind, year)
// counter as an atomic insert-or-increment on the contadores row,
// returning the value it stored. Because it runs inside the enclosing
// transaction, an aborted operation surrenders the number with everything
// else, and a missing row starts the sequence at 1.
func allocateFolio(tx *gorm.DB, kind enum.DocumentKind, year int) (int, error) {
	counter := entity.FolioCounter{Name: kind.CounterName(year), Current: 1}
	err := tx.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "nombre"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"actual": gorm.Expr("contadores.actual + 1")}),
		},
		clause.Returning{Columns: []clause.Column{{Name: "actual"}}},
	).Create(&counter).Error
	if err != nil {
		return 0, err
	}
	return counter.Current, nil
}

// lockInventory reads the given inventory rows FOR UPDATE and returns them
// keyed by ID. Rows that do not exist are simply absent from the map; the
// caller decides whether that is an error.
func lockInventory(tx *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]*entity.InventoryItem, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*entity.InventoryItem{}, nil
	}

	var items []entity.InventoryItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	itemMap := make(map[uuid.UUID]*entity.InventoryItem, len(items))
	for i := range items {
		itemMap[items[i].ID] = &items[i]
	}
	return itemMap, nil
}

func adjustStock(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&entity.InventoryItem{}).
		Where("id = ?", id).
		Update("stock_cajas", gorm.Expr("stock_cajas + ?", delta)).Error
}

func saleItemIDs(items []entity.SaleItem) []uuid.UUID {
	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ItemID
	}
	return ids
}

// translateTxError keeps AppErrors as-is and maps serialization and
// deadlock failures (SQLSTATE 40001 / 40P01) to TransactionConflict so
// callers never have to match on driver messages.
func translateTxError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "40001" || pgErr.Code == "40P01" {
			return apperror.NewTransactionConflictError(err)
		}
	}
	return err
}
