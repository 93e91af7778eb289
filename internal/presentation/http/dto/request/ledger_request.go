package request

import "github.com/shopspring/decimal"

// SaleLineRequest is one product line of a sale note
type SaleLineRequest struct {
	ItemID    string          `json:"producto_id" binding:"required,uuid"`
	Boxes     int             `json:"cajas" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"precio_unitario" binding:"required"`
}

// CreateSaleRequest represents a create sale request
type CreateSaleRequest struct {
	CustomerID string            `json:"cliente_id" binding:"required,uuid"`
	Method     string            `json:"metodo_pago" binding:"required"`
	Lines      []SaleLineRequest `json:"productos" binding:"required,min=1,dive"`
}

// MarkPaidRequest represents a batch mark-as-paid request
type MarkPaidRequest struct {
	SaleIDs []string `json:"venta_ids" binding:"required,min=1,dive,uuid"`
}

// SettlementEntryRequest is one received-goods line of a settlement
type SettlementEntryRequest struct {
	ItemID    string          `json:"producto_id" binding:"required,uuid"`
	Boxes     int             `json:"cajas" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"precio_compra" binding:"required"`
}

// SettlementDeductionRequest is one expense line of a settlement
type SettlementDeductionRequest struct {
	Concept string          `json:"concepto" binding:"required"`
	Amount  decimal.Decimal `json:"monto" binding:"required"`
}

// CreateSettlementRequest represents a create settlement request
type CreateSettlementRequest struct {
	SupplierID string                       `json:"proveedor_id" binding:"required,uuid"`
	Date       string                       `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Entries    []SettlementEntryRequest     `json:"entradas" binding:"required,min=1,dive"`
	Deductions []SettlementDeductionRequest `json:"gastos" binding:"omitempty,dive"`
}
