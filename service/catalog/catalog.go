// Package catalog derives shopper-facing data from the static product list:
// size lists, default variants, inventory enforcement and plain-text columns.
package catalog

import (
	catalogEntity "storefront.GO/model/entity/catalog"
	variantRepo "storefront.GO/model/repository/variant"
)

// Catalog bundles the immutable product list with the lookups built from it.
type Catalog struct {
	products []catalogEntity.Product
	index    *variantRepo.Index
	oracle   *Oracle
}

// New indexes products. trackers are the inventory providers treated as tracking
// stock; see NewOracle.
func New(products []catalogEntity.Product, trackers ...string) *Catalog {
	idx := variantRepo.NewIndex(products)
	return &Catalog{
		products: products,
		index:    idx,
		oracle:   NewOracle(idx, trackers...),
	}
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products returns the product list. Callers must not modify it.
func (c *Catalog) Products() []catalogEntity.Product {
	if c == nil {
		return nil
	}
	return c.products
}

// Product returns the product at position i.
func (c *Catalog) Product(i int) (catalogEntity.Product, bool) {
	if c == nil || i < 0 || i >= len(c.products) {
		return catalogEntity.Product{}, false
	}
	return c.products[i], true
}

// Wrap maps any integer onto a valid product position, cycling in both directions.
// It returns -1 for an empty catalog.
func (c *Catalog) Wrap(i int) int {
	n := c.Len()
	if n == 0 {
		return -1
	}
	return ((i % n) + n) % n
}

// Index exposes the variant lookup.
func (c *Catalog) Index() *variantRepo.Index { return c.index }

// Oracle exposes the inventory enforcement heuristic.
func (c *Catalog) Oracle() *Oracle { return c.oracle }

// Variant looks a variant up by id.
func (c *Catalog) Variant(id catalogEntity.ID) (catalogEntity.Variant, bool) {
	if c == nil {
		return catalogEntity.Variant{}, false
	}
	return c.index.Lookup(id)
}
