package graphql

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

func TestGraphQLRoute(t *testing.T) {
	e := echo.New()
	RegisterGraphQLRoutes(e, catalog.New([]catalogEntity.Product{{ID: "1", Title: "Jacket", VariantID: "11"}}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"{ products { title } }"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data struct {
			Products []struct{ Title string } `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data.Products) != 1 || resp.Data.Products[0].Title != "Jacket" {
		t.Errorf("products = %+v", resp.Data.Products)
	}
}

func TestPlayground(t *testing.T) {
	e := echo.New()
	RegisterGraphQLRoutes(e, catalog.New(nil))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/playground", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "GraphQLPlayground") {
		t.Errorf("playground status = %d", rec.Code)
	}
}
