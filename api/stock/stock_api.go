package stock

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	sandboxRepo "storefront.GO/model/repository/sandbox"
)

func init() {
	api.RegisterModule(RegisterStockRoutes)
}

// StockLevel sets the stock of one sandbox variant.
type StockLevel struct {
	VariantID string `json:"variant_id"`
	Stock     int    `json:"stock"`
}

func RegisterStockRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/stock")
	repo := sandboxRepo.NewSandboxRepository(db)

	// POST /api/stock/import – bulk stock update for sandbox variants (auth required via /api middleware)
	g.POST("/import", func(c echo.Context) error {
		start := time.Now()

		var body struct {
			Items []StockLevel `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if len(body.Items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items array is required and must not be empty"})
		}

		levels := make(map[string]int, len(body.Items))
		var warnings []string
		for _, it := range body.Items {
			if it.VariantID == "" || it.Stock < 0 {
				warnings = append(warnings, "skipped invalid item for variant "+strconv.Quote(it.VariantID))
				continue
			}
			levels[it.VariantID] = it.Stock
		}

		updated, err := repo.SetStock(levels)
		duration := time.Since(start).Milliseconds()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error(), "request_duration_ms": duration})
		}

		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		return c.JSON(http.StatusOK, echo.Map{
			"updated":             updated,
			"skipped":             len(body.Items) - updated,
			"warnings":            warnings,
			"request_duration_ms": duration,
		})
	})
}
