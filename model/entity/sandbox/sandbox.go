package sandbox

import (
	"time"

	"gorm.io/datatypes"
)

// Variant is a purchasable variant seeded from the catalog, with its stock level.
type Variant struct {
	VariantID           string         `gorm:"column:variant_id;type:varchar(64);primaryKey" json:"variant_id"`
	ProductTitle        string         `gorm:"column:product_title;type:varchar(255)" json:"product_title"`
	VariantTitle        string         `gorm:"column:variant_title;type:varchar(255)" json:"variant_title"`
	Options             datatypes.JSON `gorm:"column:options" json:"options"`
	PriceCents          int64          `gorm:"column:price_cents;not null;default:0" json:"price_cents"`
	Image               string         `gorm:"column:image;type:varchar(1024)" json:"image"`
	Stock               int            `gorm:"column:stock;not null;default:0" json:"stock"`
	InventoryManagement string         `gorm:"column:inventory_management;type:varchar(64)" json:"inventory_management"`
	InventoryPolicy     string         `gorm:"column:inventory_policy;type:varchar(32)" json:"inventory_policy"`
}

func (Variant) TableName() string {
	return "sandbox_variant"
}

// CartLine is one line of a sandbox cart. Position orders lines within a cart.
type CartLine struct {
	LineID    uint      `gorm:"column:line_id;primaryKey;autoIncrement" json:"line_id"`
	CartToken string    `gorm:"column:cart_token;type:varchar(64);index;not null" json:"cart_token"`
	VariantID string    `gorm:"column:variant_id;type:varchar(64);not null" json:"variant_id"`
	Quantity  int       `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Position  int       `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CartLine) TableName() string {
	return "sandbox_cart_line"
}
