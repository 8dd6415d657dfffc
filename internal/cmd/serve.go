package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/matthieukhl/swiftcart/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SwiftCart JSON server",
	Long: `Start the SwiftCart server which provides:
- the home, products, detail and cart screens as JSON
- add-to-cart and intent endpoints driving one browsing session
- a health check covering the cart storage`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fmt.Println("🚀 SwiftCart Starting...")

	fmt.Println("🛒 Opening catalog and cart storage...")
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	var health server.HealthChecker
	if hc, ok := a.blobs.(server.HealthChecker); ok {
		health = hc
		fmt.Println("✅ Database connected successfully")
	}

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(a.session, a.source.Name(), health, logger)

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	fmt.Printf("🌐 Starting server on %s (catalog: %s)...\n", addr, a.source.Name())
	if err := srv.Start(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
