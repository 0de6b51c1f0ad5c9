package model

// Product is an equipment or uniform item assigned to one user. NominaID and
// ClientID are denormalized copies of the owning user's chain, kept so the
// cascade deletions can clear products by client without walking the
// hierarchy.
type Product struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	SKU      string `json:"sku" gorm:"type:varchar(100)"`
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Color    string `json:"color" gorm:"type:varchar(100)"`
	Quantity int    `json:"quantity" gorm:"default:0"`
	Size     string `json:"size" gorm:"type:varchar(50)"`
	UserID   uint   `json:"userId" gorm:"index;not null"`
	NominaID uint   `json:"nominaId" gorm:"index;not null"`
	ClientID uint   `json:"clientId" gorm:"index;not null"`
}

// TableName overrides the default pluralized table name
func (Product) TableName() string {
	return "product"
}
