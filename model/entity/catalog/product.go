package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is a variant or product identifier in canonical string form. Call sites hand
// ids around as numbers or strings; both decode to the same ID.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id is absent.
func (id ID) IsZero() bool { return strings.TrimSpace(string(id)) == "" }

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("catalog: invalid id %s", b)
	}
	*id = ID(n.String())
	return nil
}

// Wire returns the id as a JSON number when it is purely numeric, the shape the
// cart endpoints expect, and as a string otherwise.
func (id ID) Wire() interface{} {
	s := string(id)
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return json.Number(s)
}

// Product is one catalog entry as embedded in the landing page.
type Product struct {
	ID              ID        `json:"id" mapstructure:"id"`
	Title           string    `json:"title" mapstructure:"title"`
	PriceText       string    `json:"priceText" mapstructure:"priceText"`
	Images          []string  `json:"images" mapstructure:"images"`
	DescriptionHTML string    `json:"descriptionHtml" mapstructure:"descriptionHtml"`
	ModelInfo       string    `json:"modelInfo" mapstructure:"modelInfo"`
	OptionNames     []string  `json:"optionNames" mapstructure:"optionNames"`
	Variants        []Variant `json:"variants" mapstructure:"variants"`
	VariantID       ID        `json:"variantId" mapstructure:"variantId"`
}

// Image returns the first image URL or "".
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Variant is a purchasable configuration of a product. Options are positional and
// aligned with the product's OptionNames.
type Variant struct {
	ID                  ID       `json:"id" mapstructure:"id"`
	Title               string   `json:"title,omitempty" mapstructure:"title"`
	Options             []string `json:"options" mapstructure:"options"`
	Available           bool     `json:"available" mapstructure:"available"`
	PriceText           string   `json:"priceText" mapstructure:"priceText"`
	InventoryManagement string   `json:"inventoryManagement,omitempty" mapstructure:"inventoryManagement"`
	InventoryPolicy     string   `json:"inventoryPolicy" mapstructure:"inventoryPolicy"`
}

// Option returns the option value at column i, or "" when the variant has none.
func (v Variant) Option(i int) string {
	if i < 0 || i >= len(v.Options) {
		return ""
	}
	return v.Options[i]
}

// SizeOption is derived per render from a product's variants; it is never stored.
type SizeOption struct {
	Label     string `json:"label"`
	VariantID ID     `json:"variantId"`
	Available bool   `json:"available"`
	PriceText string `json:"priceText"`
}
