package cmd

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/api"
	graphqlApi "storefront.GO/api/graphql"
	landingApi "storefront.GO/api/landing"
	"storefront.GO/config"
	"storefront.GO/core/auth"
	"storefront.GO/core/session"
	"storefront.GO/html"
	"storefront.GO/html/money"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/cartsync"
	"storefront.GO/service/catalog"
	"storefront.GO/service/landing"
)

// durationHeader stamps X-Request-Duration-ms on every response before it is written.
func durationHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		c.Response().Before(func() {
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		})
		err := next(c)
		if cfg := config.AppConfig; cfg != nil && cfg.Debug {
			log.Printf("Request duration: %d ms", time.Since(start).Milliseconds())
		}
		return err
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(durationHeader)
	return e
}

// NewServer wires the landing page, its JSON view and the catalog GraphQL over
// products. Cart calls go to cfg.CartBaseURL; sessions live in store.
func NewServer(cfg *config.Config, products []catalogEntity.Product, store session.Store) (*echo.Echo, error) {
	formatter, err := money.ParseTemplate(cfg.MoneyFormat)
	if err != nil {
		return nil, fmt.Errorf("MONEY_FORMAT: %w", err)
	}
	tmpl, err := html.NewTemplate()
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	cat := catalog.New(products, cfg.InventoryTrackers...)
	client := cartsync.NewClient(cfg.CartBaseURL,
		cartsync.WithHTTPClient(&http.Client{Timeout: cfg.CartTimeout}),
		cartsync.WithPaths(cartsync.Paths{Cart: cfg.CartPathCart, Add: cfg.CartPathAdd, Change: cfg.CartPathChange}),
	)
	ctl := landing.NewController(cat,
		func(token string) cartsync.Remote { return client.WithCartToken(token) },
		landing.WithFeedback(landing.FeedbackDurations{Added: cfg.AddedFeedback, Error: cfg.ErrorFeedback}),
	)
	page := &html.LandingPage{
		Sessions: &html.Sessions{Store: store, Ctl: ctl, Cookie: cfg.SessionCookie, TTL: cfg.SessionTTL},
		Money:    formatter,
	}

	e := newEcho()
	e.Renderer = tmpl

	html.RegisterLandingHTMLRoutes(e, page)
	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	landingApi.RegisterLandingRoutes(apiGroup, page)
	graphqlApi.RegisterGraphQLRoutes(e, cat)
	api.ApplyRoutes(e, nil)
	return e, nil
}
