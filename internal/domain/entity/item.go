package entity

import "time"

// Item representa un producto del catálogo (tabla items).
// ItemID es el código de negocio (ej. GR300002), inmutable una vez creado;
// RecID es la identidad interna que usan las demás tablas.
type Item struct {
	RecID      string
	ItemID     string
	NameAlias  string
	Barcode    string // opcional, vacío = sin código de barras
	Active     bool
	CreatedAt  time.Time
	ModifiedAt time.Time
	CreatedBy  string
	ModifiedBy string
}
