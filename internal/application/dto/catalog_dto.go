package dto

import "time"

// CreateItemRequest alta de producto en el catálogo.
type CreateItemRequest struct {
	ItemID    string `json:"itemId"`
	NameAlias string `json:"nameAlias"`
	Barcode   string `json:"barcode,omitempty"`
	Active    *bool  `json:"active,omitempty"` // default true
}

// ItemResponse proyección pública de un ítem.
type ItemResponse struct {
	RecID      string    `json:"recId"`
	ItemID     string    `json:"itemId"`
	NameAlias  string    `json:"nameAlias"`
	Barcode    string    `json:"barcode,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// ListItemsQuery parámetros del listado de ítems.
type ListItemsQuery struct {
	Q        string `query:"q"`
	ItemID   string `query:"itemId"`
	Barcode  string `query:"barcode"`
	Active   *bool  `query:"active"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}
