package cartsync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_CartDecodesSnapshotAndForwardsToken(t *testing.T) {
	var gotCookie string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart.js" {
			t.Errorf("path = %s, want /cart.js", r.URL.Path)
		}
		if c, err := r.Cookie(CartCookie); err == nil {
			gotCookie = c.Value
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"product_title":"Jacket","variant_title":"M","variant_id":42,"quantity":2,"final_line_price":5000}],"total_price":5000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", WithHTTPClient(srv.Client())).WithCartToken("tok-1")
	snap, err := c.Cart(context.Background())
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if gotCookie != "tok-1" {
		t.Errorf("cart cookie = %q, want tok-1", gotCookie)
	}
	if len(snap.Items) != 1 || snap.Items[0].VariantID != "42" || snap.TotalPrice != 5000 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestClient_EmptyItemsNeverNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_price":0}`))
	}))
	defer srv.Close()

	snap, err := NewClient(srv.URL).Cart(context.Background())
	if err != nil {
		t.Fatalf("Cart: %v", err)
	}
	if snap.Items == nil {
		t.Error("Items = nil, want empty slice")
	}
}

func TestClient_AddSendsNumericIDAndQuantity(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/cart/add.js" {
			t.Errorf("%s %s, want POST /cart/add.js", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"id":42}`))
	}))
	defer srv.Close()

	if err := NewClient(srv.URL).Add(context.Background(), "42", 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if body["id"] != float64(42) || body["quantity"] != float64(1) {
		t.Errorf("body = %v, want id=42 quantity=1", body)
	}
}

func TestClient_AddRejectionCarriesDescription(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"status":422,"message":"Cart Error","description":"Sold out"}`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Add(context.Background(), "42", 1)
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("err = %v, want *RejectedError", err)
	}
	if rej.Status != 422 || rej.Message != "Sold out" {
		t.Errorf("rejection = %+v", rej)
	}
	if got := Reason(err, NoticeAddFailed); got != "Sold out" {
		t.Errorf("Reason = %q, want Sold out", got)
	}
}

func TestClient_RejectionWithStringStatusAndMessageOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"bad_request","message":"Parameter Missing"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Change(context.Background(), 1, 2)
	if got := Reason(err, NoticeChangeFailed); got != "Parameter Missing" {
		t.Errorf("Reason = %q, want Parameter Missing", got)
	}
}

func TestClient_RejectionWithoutBodyFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}))
	defer srv.Close()

	err := NewClient(srv.URL).Add(context.Background(), "42", 1)
	if got := Reason(err, NoticeAddFailed); got != NoticeAddFailed {
		t.Errorf("Reason = %q, want fallback", got)
	}
}

func TestClient_ChangeReturnsServerCart(t *testing.T) {
	var req map[string]int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cart/change.js" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_, _ = w.Write([]byte(`{"items":[{"variant_id":"7","quantity":2,"final_line_price":4000}],"total_price":4000}`))
	}))
	defer srv.Close()

	snap, err := NewClient(srv.URL).Change(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Change: %v", err)
	}
	if req["line"] != 1 || req["quantity"] != 5 {
		t.Errorf("request = %v", req)
	}
	if item, ok := snap.Line(1); !ok || item.Quantity != 2 {
		t.Errorf("line 1 = %+v, %v", item, ok)
	}
}

func TestClient_MalformedBodyIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Cart(context.Background())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("err = %v, want ErrMalformed in chain", err)
	}
	if got := Reason(err, NoticeLoadFailed); got != NoticeLoadFailed {
		t.Errorf("Reason = %q, want fallback", got)
	}
}

func TestClient_UnreachableIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Cart(context.Background())
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("err = %v, want *TransportError", err)
	}
}

func TestClient_CustomPaths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cart" {
			t.Errorf("path = %s, want /api/cart", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, WithPaths(Paths{Cart: "/api/cart"})).Cart(context.Background()); err != nil {
		t.Fatalf("Cart: %v", err)
	}
}
