package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"party-ledger/core/bus"
	"party-ledger/core/config"
	"party-ledger/core/database"
	"party-ledger/core/ledger"
	"party-ledger/core/loader"
	"party-ledger/core/logger"
	"party-ledger/core/middleware/auth"
	"party-ledger/core/middleware/rayid"
	"party-ledger/core/storage"

	"party-ledger/feature/accounts"
	"party-ledger/feature/inventory"
	"party-ledger/feature/items"
	"party-ledger/feature/party"
	"party-ledger/feature/quests"
	"party-ledger/feature/realtime"
	"party-ledger/feature/worldmap"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "party-ledger/docs/swagger"
)

// @title Party Ledger API
// @version 1.0
// @description Shared session data for a multiplayer game: catalog, inventories, party stash, quests and map markers.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the party ledger server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if cfg.Server.TokenSecret == "" {
			log.Fatal("SERVER_TOKEN_SECRET must be set")
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}
		if err := db.AutoMigrate(
			&accounts.Account{},
			&items.Item{},
			&quests.Quest{},
			&worldmap.Marker{},
			&ledger.InventoryLine{},
			&ledger.StorageLine{},
		); err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.EnsureBucket(ctx, store, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
			logg.Warn("Bucket check failed, image uploads may not work", zap.Error(err))
		}
		cancel()

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		b := bus.New(logg)
		tokenTTL := time.Duration(cfg.Server.TokenTTLHours) * time.Hour

		// The catalog doubles as the ledger's guard against lines for
		// unknown items.
		itemsFeature := items.NewFeature(db, b, store, cfg.Storage.Bucket, logg)
		ldg := ledger.New(db, itemsFeature.Service())

		accountsHandler := accounts.NewHandler(accounts.NewService(
			db, logg, cfg.Server.TokenSecret, tokenTTL, cfg.Server.GameMaster))

		mgr := loader.NewManager()
		mgr.Register(itemsFeature)
		mgr.Register(inventory.NewFeature(ldg, logg))
		mgr.Register(party.NewFeature(ldg, b, logg))
		mgr.Register(quests.NewFeature(db, b, logg))
		mgr.Register(worldmap.NewFeature(db, b, logg))
		mgr.Register(realtime.NewFeature(b, logg))

		// RayID first so every later log line can carry it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"status": "ok",
				"time":   time.Now().UTC().Format(time.RFC3339),
			})
		})

		accountsHandler.RegisterPublicRoutes(app)

		app.Use(auth.New(auth.Config{Secret: cfg.Server.TokenSecret}))

		accountsHandler.RegisterProtectedRoutes(app)
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
