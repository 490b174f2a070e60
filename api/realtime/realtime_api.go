package realtime

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"storefront.GO/api"
	sandboxEntity "storefront.GO/model/entity/sandbox"
	sandboxRepo "storefront.GO/model/repository/sandbox"
)

func init() {
	api.RegisterModule(RegisterRealtimeRoutes)
}

// VariantStockResponse is the live stock picture of one sandbox variant.
type VariantStockResponse struct {
	VariantID string `json:"variant_id"`
	Stock     int    `json:"stock"`
	InCarts   int    `json:"in_carts"`
	Enforced  bool   `json:"enforced"`
	Policy    string `json:"inventory_policy"`
}

// RegisterRealtimeRoutes serves live sandbox stock for debugging clamps.
func RegisterRealtimeRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/realtime")
	repo := sandboxRepo.NewSandboxRepository(db)

	// GET /api/realtime/stock?variant=XXX
	g.GET("/stock", func(c echo.Context) error {
		start := time.Now()

		id := c.QueryParam("variant")
		if id == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "variant required"})
		}

		var variant *sandboxEntity.Variant
		var reserved int

		// Parallel fetch using errgroup
		eg := new(errgroup.Group)
		eg.Go(func() error {
			v, err := repo.Variant(id)
			variant = v
			return err
		})
		eg.Go(func() error {
			n, err := repo.Reserved(id)
			reserved = n
			return err
		})
		err := eg.Wait()

		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":               "variant not found",
				"request_duration_ms": duration,
			})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		return c.JSON(http.StatusOK, VariantStockResponse{
			VariantID: variant.VariantID,
			Stock:     variant.Stock,
			InCarts:   reserved,
			Enforced:  repo.Enforced(*variant),
			Policy:    variant.InventoryPolicy,
		})
	})
}
