package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matthieukhl/swiftcart/internal/cart"
	"github.com/matthieukhl/swiftcart/internal/catalog"
	"github.com/matthieukhl/swiftcart/internal/config"
	"github.com/matthieukhl/swiftcart/internal/logging"
	"github.com/matthieukhl/swiftcart/internal/session"
	"github.com/matthieukhl/swiftcart/internal/storage"
	"github.com/matthieukhl/swiftcart/internal/types"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "swiftcart",
	Short: "SwiftCart - catalog browser and cart",
	Long: `SwiftCart browses a remote product catalog by category, shows product
details and keeps a persisted shopping cart.

Use the subcommands to browse from the terminal, or run "swiftcart serve"
to expose the same screens as JSON over HTTP.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnvironment,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: search ./deploy, ./, $HOME/.swiftcart, /etc/swiftcart)")
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadEnvironment(cmd *cobra.Command, args []string) error {
	// .env is optional
	_ = godotenv.Load()

	var err error
	cfg, err = config.LoadConfigFrom(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err = logging.New(cfg.Log)
	if err != nil {
		return err
	}
	return nil
}

// app is what every browsing command needs
type app struct {
	source  types.CatalogSource
	blobs   types.BlobStore
	session *session.Session
	close   func() error
}

func newApp(ctx context.Context) (*app, error) {
	source, err := catalog.NewSource(&cfg.Catalog, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog source: %w", err)
	}

	blobs, closeFn, err := storage.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open cart storage: %w", err)
	}

	store := cart.NewStore(blobs, cfg.Cart.Key, logger)
	store.OnChange(func(total int) {
		logger.Debug("cart badge refreshed", zap.Int("count", total))
	})
	sess := session.New(source, store, logger)
	logger.Debug("session started",
		zap.String("catalog", source.Name()),
		zap.String("cart_backend", cfg.Cart.Backend),
	)

	return &app{source: source, blobs: blobs, session: sess, close: closeFn}, nil
}
