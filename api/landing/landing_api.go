package landing

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"storefront.GO/html"
	"storefront.GO/html/view"
)

// RegisterLandingRoutes serves the landing view model as JSON for the caller's
// session. It shares sessions with the HTML pages.
func RegisterLandingRoutes(apiGroup *echo.Group, page *html.LandingPage) {
	// GET /api/landing – current page view for the session cookie
	apiGroup.GET("/landing", func(c echo.Context) error {
		start := time.Now()
		id, st := page.Sessions.Load(c)
		page.Sessions.Save(c, id, st)
		out := page.Page(st)
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, out)
	})

	// GET /api/landing/products/:index – view of one product without touching the session
	apiGroup.GET("/landing/products/:index", func(c echo.Context) error {
		i, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "index must be an integer"})
		}
		ctl := page.Sessions.Ctl
		if ctl.Empty() {
			return c.JSON(http.StatusOK, view.Page{Empty: true})
		}
		st := ctl.NewState("")
		ctl.SelectProduct(&st, i)
		return c.JSON(http.StatusOK, page.Page(st))
	})
}
