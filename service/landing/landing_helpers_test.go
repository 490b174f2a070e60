package landing

import (
	"context"
	"sync"
	"time"

	cartEntity "storefront.GO/model/entity/cart"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/cartsync"
	"storefront.GO/service/catalog"
)

// testCatalog has three products: a sized jacket (S sold out, M, L), a tee whose
// stock limits are off, and a bag without sizes.
func testCatalog() *catalog.Catalog {
	return catalog.New([]catalogEntity.Product{
		{
			ID: "1", Title: "Jacket", VariantID: "11", OptionNames: []string{"Size"},
			Variants: []catalogEntity.Variant{
				{ID: "10", Options: []string{"S"}, Available: false, InventoryManagement: "shopify", InventoryPolicy: "deny"},
				{ID: "11", Options: []string{"M"}, Available: true, InventoryManagement: "shopify", InventoryPolicy: "deny"},
				{ID: "12", Options: []string{"L"}, Available: true, InventoryManagement: "shopify", InventoryPolicy: "deny"},
			},
		},
		{
			ID: "2", Title: "Tee", VariantID: "21", OptionNames: []string{"Color", "Size"},
			Variants: []catalogEntity.Variant{
				{ID: "21", Options: []string{"Black", "M"}, Available: true, InventoryPolicy: "continue"},
			},
		},
		{ID: "3", Title: "Bag", VariantID: "31", Variants: []catalogEntity.Variant{{ID: "31", Available: true}}},
	})
}

// fakeCart is an in-memory cart service that clamps to per-variant stock.
type fakeCart struct {
	mu      sync.Mutex
	stock   map[catalogEntity.ID]int
	lines   []cartEntity.LineItem
	addErr  error
	calls   int
	tokens  []string
	blockCh chan struct{}
}

func newFakeCart() *fakeCart {
	return &fakeCart{stock: map[catalogEntity.ID]int{}}
}

func (f *fakeCart) factory(token string) cartsync.Remote {
	f.mu.Lock()
	f.tokens = append(f.tokens, token)
	f.mu.Unlock()
	return f
}

func (f *fakeCart) snapshot() *cartEntity.Snapshot {
	items := make([]cartEntity.LineItem, len(f.lines))
	copy(items, f.lines)
	var total int64
	for _, it := range items {
		total += it.FinalLinePrice
	}
	return &cartEntity.Snapshot{Items: items, TotalPrice: total}
}

func (f *fakeCart) Cart(ctx context.Context) (*cartEntity.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.snapshot(), nil
}

func (f *fakeCart) Add(ctx context.Context, id catalogEntity.ID, quantity int) error {
	if f.blockCh != nil {
		<-f.blockCh
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.addErr != nil {
		return f.addErr
	}
	for i := range f.lines {
		if f.lines[i].VariantID == id {
			f.lines[i].Quantity += quantity
			f.lines[i].FinalLinePrice = int64(f.lines[i].Quantity) * 1000
			return nil
		}
	}
	f.lines = append(f.lines, cartEntity.LineItem{VariantID: id, Quantity: quantity, FinalLinePrice: int64(quantity) * 1000})
	return nil
}

func (f *fakeCart) Change(ctx context.Context, line, quantity int) (*cartEntity.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if line < 1 || line > len(f.lines) {
		return nil, &cartsync.RejectedError{Op: "change line", Status: 400, Message: "bad line"}
	}
	if quantity == 0 {
		f.lines = append(f.lines[:line-1], f.lines[line:]...)
		return f.snapshot(), nil
	}
	it := &f.lines[line-1]
	if limit, ok := f.stock[it.VariantID]; ok && quantity > limit {
		quantity = limit
	}
	it.Quantity = quantity
	it.FinalLinePrice = int64(quantity) * 1000
	return f.snapshot(), nil
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }
