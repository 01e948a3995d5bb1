package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meeting-sync/core/config"
	"meeting-sync/core/loader"
	"meeting-sync/core/logger"
	"meeting-sync/core/middleware/rayid"
	"meeting-sync/core/scheduler"
	"meeting-sync/feature/calendlysync"
	"meeting-sync/feature/integrity"
	"meeting-sync/feature/meetings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "meeting-sync/docs/swagger"
)

// @title Meeting Sync API
// @version 1.0
// @description Mirrors Calendly scheduled meetings and serves them over HTTP.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the meeting sync server",
	Long:  `Starts the HTTP server and the periodic Calendly sync.`,
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

		// 3. Wire database, Calendly client and the sync slot
		ctx := context.Background()
		rt, err := newRuntime(ctx, cfg, logg)
		if err != nil {
			logg.Fatal("Failed to initialize sync runtime", zap.Error(err))
		}
		defer rt.Close()

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           cfg.Server.ReadTimeout(),
			WriteTimeout:          cfg.Server.WriteTimeout(),
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(meetings.NewFeature(rt.store, cfg.Query, logg))
		mgr.Register(calendlysync.NewFeature(rt.slot, rt.archive, logg))
		mgr.Register(integrity.NewFeature(rt.integrityOptions(cfg.Storage), logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with ray id
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

		// 3. Swagger Documentation
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start the periodic sync
		sched := scheduler.New(cfg.Sync, rt.slot, logg)
		if cfg.Sync.Enabled {
			if err := sched.Start(); err != nil {
				logg.Fatal("Failed to start scheduler", zap.Error(err))
			}
		} else {
			logg.Info("Periodic sync disabled")
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		sched.Stop()
		_ = app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
