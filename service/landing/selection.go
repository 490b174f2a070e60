package landing

import (
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

// NoProduct is the ProductIndex of a selection over an empty catalog.
const NoProduct = -1

// Selection is the gallery position and the variant a shopper will add. A non-empty
// SelectedVariantID always belongs to the product at ProductIndex.
type Selection struct {
	ProductIndex      int              `json:"productIndex"`
	SelectedVariantID catalogEntity.ID `json:"selectedVariantId,omitempty"`
}

// InitialSelection starts on the first product, or NoProduct when there is none.
func InitialSelection(cat *catalog.Catalog) Selection {
	return Selection{}.SelectProduct(cat, 0)
}

// SelectProduct moves to product i, wrapping in both directions, and resets the
// variant to the product's default.
func (s Selection) SelectProduct(cat *catalog.Catalog, i int) Selection {
	idx := cat.Wrap(i)
	if idx < 0 {
		return Selection{ProductIndex: NoProduct}
	}
	p, _ := cat.Product(idx)
	return Selection{ProductIndex: idx, SelectedVariantID: catalog.DefaultVariant(p)}
}

// SelectSize picks the size option pointing at id. Picks that are not offered for
// the current product or are sold out leave the selection untouched and report false.
func (s Selection) SelectSize(cat *catalog.Catalog, id catalogEntity.ID) (Selection, bool) {
	p, ok := cat.Product(s.ProductIndex)
	if !ok {
		return s, false
	}
	opt, ok := catalog.FindSizeOption(catalog.SizeOptions(p), id)
	if !ok || !opt.Available {
		return s, false
	}
	return Selection{ProductIndex: s.ProductIndex, SelectedVariantID: opt.VariantID}, true
}

// Product returns the current product.
func (s Selection) Product(cat *catalog.Catalog) (catalogEntity.Product, bool) {
	return cat.Product(s.ProductIndex)
}

// Normalize re-establishes the selection invariant against cat, for state that was
// saved before the catalog changed.
func (s Selection) Normalize(cat *catalog.Catalog) Selection {
	p, ok := cat.Product(s.ProductIndex)
	if !ok {
		return InitialSelection(cat)
	}
	if s.SelectedVariantID.IsZero() {
		return s.SelectProduct(cat, s.ProductIndex)
	}
	if _, ok := catalog.FindSizeOption(catalog.SizeOptions(p), s.SelectedVariantID); ok {
		return s
	}
	if s.SelectedVariantID == p.VariantID {
		return s
	}
	return s.SelectProduct(cat, s.ProductIndex)
}
