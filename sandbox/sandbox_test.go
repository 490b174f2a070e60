package sandbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	catalogEntity "storefront.GO/model/entity/catalog"
	sandboxRepo "storefront.GO/model/repository/sandbox"
	"storefront.GO/service/cartsync"
)

func seedProducts() []catalogEntity.Product {
	return []catalogEntity.Product{
		{
			ID: "1", Title: "Jacket", PriceText: "$100.00", Images: []string{"j.jpg"}, OptionNames: []string{"Size"},
			Variants: []catalogEntity.Variant{
				{ID: "11", Options: []string{"M"}, Available: true, PriceText: "$100.00", InventoryManagement: "shopify", InventoryPolicy: "deny"},
				{ID: "12", Options: []string{"L"}, Available: false, PriceText: "$100.00", InventoryManagement: "shopify", InventoryPolicy: "deny"},
			},
		},
		{
			ID: "2", Title: "Tee", PriceText: "$25.00",
			Variants: []catalogEntity.Variant{{ID: "21", Available: true, InventoryPolicy: "continue"}},
		},
	}
}

func newTestRepo(t *testing.T) *sandboxRepo.SandboxRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "sandbox.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	repo := sandboxRepo.NewSandboxRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := Seed(repo, seedProducts(), 2); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return repo
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	e := echo.New()
	RegisterRoutes(e, newTestRepo(t))
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestPriceCents(t *testing.T) {
	tests := map[string]int64{
		"$100.00":    10000,
		"$1,234.50":  123450,
		"1.234,50 €": 123450,
		"¥1,200":     120000,
		"$12":        1200,
		"":           0,
	}
	for in, want := range tests {
		if got := PriceCents(in); got != want {
			t.Errorf("PriceCents(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestSeed_StockFollowsAvailability(t *testing.T) {
	repo := newTestRepo(t)
	m, _ := repo.Variant("11")
	l, _ := repo.Variant("12")
	if m == nil || l == nil {
		t.Fatal("seeded variants missing")
	}
	if m.Stock != 2 || l.Stock != 0 {
		t.Errorf("stock M/L = %d/%d, want 2/0", m.Stock, l.Stock)
	}
	if m.VariantTitle != "M" || m.PriceCents != 10000 || m.Image != "j.jpg" {
		t.Errorf("variant = %+v", m)
	}
}

func TestClientAgainstSandbox_ClampAndOversell(t *testing.T) {
	srv := newTestServer(t)
	client := cartsync.NewClient(srv.URL, cartsync.WithHTTPClient(srv.Client())).WithCartToken("shopper-1")
	ctx := context.Background()

	if err := client.Add(ctx, "11", 1); err != nil {
		t.Fatalf("Add(11): %v", err)
	}
	if err := client.Add(ctx, "21", 1); err != nil {
		t.Fatalf("Add(21): %v", err)
	}

	snap, err := client.Change(ctx, 1, 5)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if got := snap.Items[0].Quantity; got != 2 {
		t.Errorf("enforced line quantity = %d, want clamp to 2", got)
	}

	snap, err = client.Change(ctx, 2, 40)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if got := snap.Items[1].Quantity; got != 40 {
		t.Errorf("unenforced line quantity = %d, want 40", got)
	}
	if want := int64(2*10000 + 40*2500); snap.TotalPrice != want {
		t.Errorf("total = %d, want %d", snap.TotalPrice, want)
	}

	snap, err = client.Change(ctx, 1, 0)
	if err != nil {
		t.Fatalf("Change(0): %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].VariantID != "21" {
		t.Errorf("after removal items = %+v", snap.Items)
	}
}

func TestClientAgainstSandbox_SoldOutRejection(t *testing.T) {
	srv := newTestServer(t)
	client := cartsync.NewClient(srv.URL).WithCartToken("shopper-2")

	err := client.Add(context.Background(), "12", 1)
	var rej *cartsync.RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if rej.Status != http.StatusUnprocessableEntity || !strings.Contains(rej.Message, "sold out") {
		t.Errorf("rejection = %+v", rej)
	}
}

func TestClientAgainstSandbox_BadLine(t *testing.T) {
	srv := newTestServer(t)
	client := cartsync.NewClient(srv.URL).WithCartToken("shopper-3")

	_, err := client.Change(context.Background(), 3, 1)
	var rej *cartsync.RejectedError
	if !errors.As(err, &rej) || rej.Status != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 rejection", err)
	}
}

func TestCartsAreKeyedByToken(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	a := cartsync.NewClient(srv.URL).WithCartToken("a")
	b := cartsync.NewClient(srv.URL).WithCartToken("b")

	if err := a.Add(ctx, "21", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	snap, err := b.Cart(ctx)
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Errorf("cart b = %+v, want empty", snap.Items)
	}
}

func TestCart_IssuesTokenCookie(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/cart.js")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	found := false
	for _, c := range resp.Cookies() {
		if c.Name == cartsync.CartCookie && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no cart cookie issued")
	}
}

func TestRepository_SetStock(t *testing.T) {
	repo := newTestRepo(t)
	n, err := repo.SetStock(map[string]int{"12": 3, "missing": 1})
	if err != nil || n != 1 {
		t.Fatalf("SetStock = %d, %v; want 1, nil", n, err)
	}
	ok, err := repo.Add("t", "12", 3)
	if err != nil || !ok {
		t.Errorf("Add after restock = %v, %v; want true", ok, err)
	}
	ok, _ = repo.Add("t", "12", 1)
	if ok {
		t.Error("Add past stock: want refused")
	}
}
