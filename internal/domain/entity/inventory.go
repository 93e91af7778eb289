package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/andresproyectosx24/chayotex/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem is a warehouse record: a produce variety (with quality
// grade and origin) or a packing material. Stock is counted in boxes for
// produce and bundles for material, and is the only field mutated by the
// ledger transactions.
type InventoryItem struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Category  enum.ItemCategory `gorm:"size:50;not null;column:categoria;index" json:"categoria"`
	Type      string            `gorm:"size:255;not null;column:tipo" json:"tipo"`
	Quality   *string           `gorm:"size:100;column:calidad" json:"calidad,omitempty"`
	Origin    *string           `gorm:"size:255;column:origen" json:"origen,omitempty"`
	Stock     int               `gorm:"not null;default:0;column:stock_cajas" json:"stock_cajas"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new inventory item
func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InventoryItem model
func (InventoryItem) TableName() string {
	return "inventario"
}

// Description composes the denormalized line-item description captured on
// sale and settlement documents, e.g. "Espinoso Primera (Candelaria)".
// Quality and origin only apply to produce.
func (i *InventoryItem) Description() string {
	parts := []string{i.Type}
	if i.Quality != nil && *i.Quality != "" {
		parts = append(parts, *i.Quality)
	}
	desc := strings.Join(parts, " ")
	if i.Origin != nil && *i.Origin != "" {
		desc = fmt.Sprintf("%s (%s)", desc, *i.Origin)
	}
	return desc
}
