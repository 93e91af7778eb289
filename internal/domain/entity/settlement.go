package entity

import (
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Settlement (liquidación) records goods received from a supplier, net of
// deductions, as an amount payable to that supplier. Created by the ledger
// transaction (each received line increments stock), then treated as an
// immutable financial record: there is no edit or delete path.
type Settlement struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Folio           int                `gorm:"not null;column:folio;index:idx_liquidaciones_folio" json:"folio"`
	FolioYear       int                `gorm:"not null;column:anio_folio;index:idx_liquidaciones_folio" json:"anio_folio"`
	SupplierID      uuid.UUID          `gorm:"type:uuid;not null;column:proveedor_id;index" json:"proveedor_id"`
	SupplierName    string             `gorm:"size:255;not null;column:proveedor_nombre" json:"proveedor_nombre"`
	RegisteredAt    time.Time          `gorm:"not null;column:fecha_registro;index" json:"fecha_registro"`
	Date            string             `gorm:"size:20;not null;column:fecha_manual" json:"fecha_manual"`
	GoodsTotal      decimal.Decimal    `gorm:"type:decimal(14,2);not null;column:total_mercancia" json:"total_mercancia"`
	DeductionsTotal decimal.Decimal    `gorm:"type:decimal(14,2);not null;column:total_gastos" json:"total_gastos"`
	NetPayable      decimal.Decimal    `gorm:"type:decimal(14,2);not null;column:total_a_pagar" json:"total_a_pagar"`
	Status          enum.PaymentStatus `gorm:"size:50;not null;default:'Pendiente';column:estado" json:"estado"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`

	Supplier   *Supplier             `gorm:"foreignKey:SupplierID" json:"-"`
	Entries    []SettlementEntry     `gorm:"foreignKey:SettlementID;constraint:OnDelete:CASCADE" json:"items_entrada,omitempty"`
	Deductions []SettlementDeduction `gorm:"foreignKey:SettlementID;constraint:OnDelete:CASCADE" json:"items_gastos,omitempty"`
}

// BeforeCreate generates a UUID before creating a new settlement
func (s *Settlement) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settlement model
func (Settlement) TableName() string {
	return "liquidaciones"
}

// SettlementEntry is a received-goods line: it increments the referenced
// inventory item's stock and carries the purchase-priced snapshot.
type SettlementEntry struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SettlementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;column:producto_id" json:"producto_id"`
	Description  string          `gorm:"size:255;not null;column:descripcion" json:"descripcion"`
	Boxes        int             `gorm:"not null;column:cajas" json:"cajas"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(14,2);not null;column:precio_compra" json:"precio_compra"`
	Subtotal     decimal.Decimal `gorm:"type:decimal(14,2);not null;column:subtotal" json:"subtotal"`
	CreatedAt    time.Time       `json:"-"`
}

// BeforeCreate generates a UUID before creating a new settlement entry
func (se *SettlementEntry) BeforeCreate(tx *gorm.DB) error {
	if se.ID == uuid.Nil {
		se.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SettlementEntry model
func (SettlementEntry) TableName() string {
	return "liquidacion_entradas"
}

// SettlementDeduction is a free-text expense subtracted from the payable
// amount (freight, crates, advances). Not tied to inventory.
type SettlementDeduction struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SettlementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"-"`
	Concept      string          `gorm:"size:255;not null;column:concepto" json:"concepto"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null;column:monto" json:"monto"`
	CreatedAt    time.Time       `json:"-"`
}

// BeforeCreate generates a UUID before creating a new settlement deduction
func (sd *SettlementDeduction) BeforeCreate(tx *gorm.DB) error {
	if sd.ID == uuid.Nil {
		sd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SettlementDeduction model
func (SettlementDeduction) TableName() string {
	return "liquidacion_gastos"
}
