package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pokemasdb/core/loader"
	"pokemasdb/core/logger"
	"pokemasdb/core/middleware/auth"
	"pokemasdb/core/middleware/rayid"
	"pokemasdb/feature/cachectl"
	"pokemasdb/feature/dex"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pokemasdb/docs/swagger"
)

// @title PokeMasters Data API
// @version 1.0
// @description Lookups over trainers, pokemon, moves and passive skills.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pokemasdb server",
	Long:  `Builds the caches and starts the HTTP server with every enabled feature.`,
	Run: func(cmd *cobra.Command, args []string) {
		e, err := loadEnv()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := e.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		reg, err := e.newRegistry(cmd.Context())
		if err != nil {
			logg.Fatal("Failed to open trainer source", zap.Error(err))
		}
		logg = logg.With(zap.String("source", e.cfg.Source.Driver))

		if e.cfg.Server.InitializeOnStart {
			if err := reg.Initialize(cmd.Context()); err != nil {
				// The server still starts; POST /cache/reinitialize retries.
				logg.Error("Initial cache build failed", zap.Error(err))
			}
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			JSONEncoder:           json.Marshal,
			JSONDecoder:           json.Unmarshal,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(dex.NewFeature(reg, logg))
		mgr.Register(cachectl.NewFeature(reg, logg))

		// RayID must be first to trace everything
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: e.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", e.cfg.Server.Port))
			if err := app.Listen(e.cfg.Server.Addr()); err != nil {
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
