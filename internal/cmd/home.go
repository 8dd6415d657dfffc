package cmd

import (
	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/view"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the top rated products",
	RunE:  runHome,
}

func init() {
	rootCmd.AddCommand(homeCmd)
}

func runHome(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	_ = a.session.LoadHomePage(ctx)
	return view.WriteHome(cmd.OutOrStdout(), a.session.HomeScreen(ctx))
}
