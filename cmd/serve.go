package cmd

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"ornasync/core/config"
	"ornasync/core/database"
	"ornasync/core/loader"
	"ornasync/core/logger"
	"ornasync/core/middleware/auth"
	"ornasync/core/middleware/rayid"
	"ornasync/feature/catalog"
	"ornasync/feature/report"
	"ornasync/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the serve command
	serveDataDir string
	serveLocale  string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalogue and run history over HTTP",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load the snapshot (Optional)
		var snap *snapshot.Snapshot
		if loaded, err := snapshot.Load(serveDataDir); err != nil {
			logg.Warn("No snapshot available, catalogue disabled", zap.Error(err))
		} else {
			snap = loaded
			logg.Info("Snapshot loaded", zap.String("data", serveDataDir))
		}

		// Locale strings feed the coverage endpoint.
		var strs snapshot.LocaleStrings
		if locales, err := snapshot.LoadLocaleDB(filepath.Join(serveDataDir, "locales")); err != nil {
			logg.Warn("Failed to load locales", zap.Error(err))
		} else {
			strs = locales[serveLocale]
		}

		// 4. Connect to the report database (Optional)
		var store *report.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional report database unavailable", zap.Error(err))
		} else if s, err := report.NewStore(db, logg); err != nil {
			logg.Warn("Failed to prepare report store", zap.Error(err))
		} else {
			store = s
			logg.Info("Report database connected", zap.String("path", cfg.Database.Path))
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		// Register Features
		mgr.Register(catalog.NewFeature(snap, strs, logg))
		mgr.Register(report.NewFeature(store))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. CORS for browser consumers of the catalogue
		app.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(cfg.Server.Origins(), ","),
			AllowMethods: "GET",
		}))

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveDataDir, "data", "data", "Directory holding the snapshot")
	serveCmd.Flags().StringVar(&serveLocale, "locale", "fr", "Locale used by the coverage endpoint")

	RootCmd.AddCommand(serveCmd)
}
