package entity

import "time"

// FolioCounter holds the last issued folio for one (document kind, year)
// pair, e.g. name "ventas_2026". It is only ever read and written inside
// the ledger transaction that consumes the number; folios for a given row
// are strictly increasing integers starting at 1.
type FolioCounter struct {
	Name      string    `gorm:"primaryKey;size:100;column:nombre" json:"nombre"`
	Current   int       `gorm:"not null;default:0;column:actual" json:"actual"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the FolioCounter model
func (FolioCounter) TableName() string {
	return "contadores"
}
