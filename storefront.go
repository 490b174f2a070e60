package main

import (
	_ "storefront.GO/api/realtime"
	_ "storefront.GO/api/stock"
	_ "storefront.GO/custom"

	"storefront.GO/cmd"
	"storefront.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
