package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"storefront.GO/config"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/service/catalog"
)

var inspectFile string

var catalogInspectCmd = &cobra.Command{
	Use:   "catalog:inspect",
	Short: "Print size lists, default variants and stock enforcement per product",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadAppConfig()
		path := inspectFile
		if path == "" {
			path = config.AppConfig.CatalogPath
		}
		products, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		inspectCatalog(cmd.OutOrStdout(), catalog.New(products, config.AppConfig.InventoryTrackers...))
		return nil
	},
}

func inspectCatalog(w io.Writer, cat *catalog.Catalog) {
	for i, p := range cat.Products() {
		fmt.Fprintf(w, "[%d] %s (id %s)\n", i, p.Title, p.ID)
		opts := catalog.SizeOptions(p)
		if len(opts) == 0 {
			fmt.Fprintln(w, "  sizes: none")
		} else {
			labels := make([]string, len(opts))
			for j, o := range opts {
				labels[j] = o.Label
				if !o.Available {
					labels[j] += " (sold out)"
				}
			}
			fmt.Fprintf(w, "  sizes: %s\n", strings.Join(labels, ", "))
		}
		fmt.Fprintf(w, "  default variant: %s\n", orNone(catalog.DefaultVariant(p)))
		for _, v := range p.Variants {
			fmt.Fprintf(w, "  variant %s: %s\n", v.ID, enforcement(cat, v.ID))
		}
	}
}

func enforcement(cat *catalog.Catalog, id catalogEntity.ID) string {
	enforced, known := cat.Oracle().IsEnforced(id)
	switch {
	case !known:
		return "unknown"
	case enforced:
		return "stock enforced"
	default:
		return "stock not enforced"
	}
}

func orNone(id catalogEntity.ID) string {
	if id.IsZero() {
		return "none"
	}
	return id.String()
}

func init() {
	catalogInspectCmd.Flags().StringVarP(&inspectFile, "file", "f", "", "Catalog JSON file (default CATALOG_PATH)")
	rootCmd.AddCommand(catalogInspectCmd)
}
