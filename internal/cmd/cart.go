package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/models"
	"github.com/matthieukhl/swiftcart/internal/session"
	"github.com/matthieukhl/swiftcart/internal/view"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the cart",
	RunE:  runCart,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add one unit of a product to the cart",
	Long: `Adds a product to the cart. The product is looked up in the full
catalog listing first, then fetched by id, so any product id the catalog
knows can be added.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartAddCmd)
}

func runCart(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	return view.WriteCart(cmd.OutOrStdout(), a.session.CartScreen(ctx))
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id := session.CoerceID(args[0])
	if id == 0 {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	// Same path as a card's add button: the product must be on screen
	// (listed or opened) before it can be added.
	if err := a.session.SetCategory(ctx, models.CategoryAll); err != nil {
		return err
	}
	if a.session.FindProductByID(id) == nil {
		if _, err := a.session.OpenDetail(ctx, id); err != nil {
			return err
		}
	}

	res, err := a.session.Dispatch(ctx, session.Intent{Kind: session.IntentAddToCart, ProductID: id})
	if err != nil {
		return err
	}
	if !res.Handled {
		return fmt.Errorf("product %d not found", id)
	}

	summary, err := a.session.Dispatch(ctx, session.Intent{Kind: session.IntentShowCart})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s. %s\n", res.Message, summary.Message)
	return nil
}
