package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/database"
)

var dropFirst bool

var setupCmd = &cobra.Command{
	Use:   "setup-storage",
	Short: "Create the MySQL table used by the mysql cart backend",
	Long: `Creates the app_blobs table that stores the cart when cart.backend
is "mysql". The file backend needs no setup.`,
	RunE: setupStorage,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop the existing table (and the stored cart) before creating")
}

func setupStorage(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fmt.Println("🔧 Setting up cart storage...")

	db, err := database.NewConnection(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if dropFirst {
		fmt.Println("🗑️  Dropping existing table...")
		if err := db.DropSchema(ctx); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Println("📋 Creating schema...")
	if err := db.SetupSchema(ctx); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	fmt.Println("✅ Cart storage ready")
	return nil
}
