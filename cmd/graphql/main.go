// Standalone catalog GraphQL server. Run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"storefront.GO/api"
	graphqlApi "storefront.GO/api/graphql"
	"storefront.GO/config"
	"storefront.GO/service/catalog"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	products, err := catalog.LoadFile(config.AppConfig.CatalogPath)
	if err != nil {
		log.Println("catalog:", err)
	}

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, catalog.New(products, config.AppConfig.InventoryTrackers...))
	api.ApplyRoutes(e, nil)

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "doom", "larry3d"}
	fig := figure.NewFigure("Storefront GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone catalog GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
