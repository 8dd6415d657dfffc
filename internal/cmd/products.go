package cmd

import (
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/session"
	"github.com/matthieukhl/swiftcart/internal/view"
)

var (
	productsCategory string
	productsProduct  string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally filtered by category",
	Long: `Loads the categories, then the products of the requested category
("all" when the category is unknown or not given). With --product the
detail of that product is shown below the grid.`,
	RunE: runProducts,
}

func init() {
	rootCmd.AddCommand(productsCmd)

	productsCmd.Flags().StringVar(&productsCategory, "category", "", "Category to show")
	productsCmd.Flags().StringVar(&productsProduct, "product", "", "Product id to open in detail")
}

func runProducts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	values := url.Values{}
	if productsCategory != "" {
		values.Set("category", productsCategory)
	}
	if id := session.CoerceID(productsProduct); id > 0 {
		values.Set("product", strconv.FormatInt(id, 10))
	}

	// failures are shown in the screen itself
	_ = a.session.LoadProductsPage(ctx, session.LocationFrom(values))

	return view.WriteProducts(cmd.OutOrStdout(), a.session.ProductsScreen(ctx))
}
