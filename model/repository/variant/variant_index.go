package variant

import (
	"strings"

	"storefront.GO/model/entity/catalog"
)

// Index maps variant ids to variant metadata. It is built once from the catalog
// and never mutated, so it is safe for concurrent readers.
type Index struct {
	byID      map[string]catalog.Variant
	productOf map[string]int
}

// NewIndex builds the lookup from products in catalog order. When two products
// share a variant id the later one wins.
func NewIndex(products []catalog.Product) *Index {
	idx := &Index{
		byID:      make(map[string]catalog.Variant),
		productOf: make(map[string]int),
	}
	for pi, p := range products {
		for _, v := range p.Variants {
			key := canonical(v.ID)
			if key == "" {
				continue
			}
			idx.byID[key] = v
			idx.productOf[key] = pi
		}
	}
	return idx
}

// Lookup returns the variant for id.
func (i *Index) Lookup(id catalog.ID) (catalog.Variant, bool) {
	if i == nil {
		return catalog.Variant{}, false
	}
	v, ok := i.byID[canonical(id)]
	return v, ok
}

// ProductIndex returns the catalog position of the product owning id.
func (i *Index) ProductIndex(id catalog.ID) (int, bool) {
	if i == nil {
		return 0, false
	}
	pi, ok := i.productOf[canonical(id)]
	return pi, ok
}

// Len returns the number of indexed variants.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.byID)
}

func canonical(id catalog.ID) string {
	return strings.TrimSpace(string(id))
}
