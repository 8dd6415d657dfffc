package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/session"
	"github.com/matthieukhl/swiftcart/internal/view"
)

var detailCmd = &cobra.Command{
	Use:   "detail <product-id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runDetail,
}

func init() {
	rootCmd.AddCommand(detailCmd)
}

func runDetail(cmd *cobra.Command, args []string) error {
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

	// a failure is rendered inline
	_, _ = a.session.OpenDetail(ctx, id)
	return view.WriteDetail(cmd.OutOrStdout(), a.session.ProductsScreen(ctx).Detail)
}
