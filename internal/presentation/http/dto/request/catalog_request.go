package request

// ContactRequest represents a create/update customer or supplier request
type ContactRequest struct {
	Name  string  `json:"nombre" binding:"required,min=1,max=255"`
	Alias *string `json:"alias"`
	Phone *string `json:"telefono"`
}

// InventoryItemRequest represents a create/update inventory item request
type InventoryItemRequest struct {
	Category string  `json:"categoria" binding:"required"`
	Type     string  `json:"tipo" binding:"required"`
	Quality  *string `json:"calidad"`
	Origin   *string `json:"origen"`
	Stock    int     `json:"stock_cajas" binding:"gte=0"`
}
