package repository

import (
	"context"

	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/google/uuid"
)

// LedgerRepository is the transactional boundary that keeps inventory
// stock and financial documents consistent. Every method runs as one
// atomic unit of work with a strict read-all, validate, write-all
// discipline: the folio counter and every referenced inventory row are
// read (and locked) before any write is issued, and either every effect
// becomes visible or none does.
//
// Callers pass documents with line items, totals and payment fields
// already computed; the ledger fills in the sequential folio, the folio
// year, and the line-item description snapshots captured from the
// inventory rows as read inside the transaction.
type LedgerRepository interface {
	// CreateSale allocates the next ventas folio for the current year,
	// decrements stock for every line item (failing with NotFound if an
	// item vanished and InsufficientStock if any line exceeds available
	// stock), and inserts the sale note.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// DeleteSale reverses a sale: stock consumed by each line is restored
	// to the referenced inventory item if it still exists (a missing item
	// is tolerated and simply not restored), then the note is removed.
	DeleteSale(ctx context.Context, id uuid.UUID) error

	// CreateSettlement allocates the next liquidaciones folio for the
	// current year, increments stock for every received-goods line
	// (failing with NotFound if an item is missing; stock only grows, so
	// there is no sufficiency check), and inserts the settlement.
	CreateSettlement(ctx context.Context, settlement *entity.Settlement) error
}
