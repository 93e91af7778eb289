package entity

import (
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Sale is an immutable sales note created by the ledger transaction. The
// folio is sequential per calendar year; customer name and line item
// descriptions are snapshots taken at creation time and are never
// recomputed from current records. Only the payment fields change after
// creation (batch mark-paid), and deleting a sale restores the stock it
// consumed.
type Sale struct {
	ID           uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Folio        int                `gorm:"not null;column:folio;index:idx_ventas_folio" json:"folio"`
	FolioYear    int                `gorm:"not null;column:anio_folio;index:idx_ventas_folio" json:"anio_folio"`
	CustomerID   uuid.UUID          `gorm:"type:uuid;not null;column:cliente_id;index" json:"cliente_id"`
	CustomerName string             `gorm:"size:255;not null;column:cliente_nombre" json:"cliente_nombre"`
	Date         time.Time          `gorm:"not null;column:fecha;index" json:"fecha"`
	Total        decimal.Decimal    `gorm:"type:decimal(14,2);not null;column:total" json:"total"`
	Status       enum.PaymentStatus `gorm:"size:50;not null;default:'Pendiente';column:estado_pago;index" json:"estado_pago"`
	Balance      decimal.Decimal    `gorm:"type:decimal(14,2);not null;column:saldo_pendiente" json:"saldo_pendiente"`
	Method       enum.PaymentMethod `gorm:"size:50;not null;column:metodo_pago" json:"metodo_pago"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`

	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"-"`
	Items    []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "ventas"
}

// SaleItem is one line of a sale: a stock decrement against an inventory
// item plus the priced snapshot recorded on the note.
type SaleItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ItemID      uuid.UUID       `gorm:"type:uuid;not null;column:producto_id" json:"producto_id"`
	Description string          `gorm:"size:255;not null;column:descripcion" json:"descripcion"`
	Boxes       int             `gorm:"not null;column:cajas" json:"cajas"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null;column:precio_unitario" json:"precio_unitario"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:subtotal" json:"subtotal"`
	CreatedAt   time.Time       `json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "venta_items"
}
