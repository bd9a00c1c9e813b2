package entity

// InventoryItem is a vehicle on the lot. Year and Price are kept as entered.
// VIN is indexed but not unique; lookups take the first item in insertion order.
type InventoryItem struct {
	ID        int    `gorm:"primaryKey"`
	Type      string `gorm:"not null"`
	Make      string `gorm:"not null"`
	Model     string `gorm:"not null"`
	Year      string `gorm:"not null"`
	VIN       string `gorm:"not null;index"`
	Price     string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`

	// Relations
	FinancingOptions []FinancingOption `gorm:"foreignKey:InventoryItemID"`
}

// FinancingOption is one saved payment calculation. Options are append-only
// and ordered by ID.
type FinancingOption struct {
	ID              int    `gorm:"primaryKey"`
	InventoryItemID int    `gorm:"not null;index"` // References: inventory_items(id)
	Description     string `gorm:"not null"`
	CreatedAt       int64  `gorm:"not null"`
}

// OptionDescriptions returns the financing option strings in append order.
func (i *InventoryItem) OptionDescriptions() []string {
	out := make([]string, len(i.FinancingOptions))
	for n, opt := range i.FinancingOptions {
		out[n] = opt.Description
	}
	return out
}
