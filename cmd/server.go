package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Abraxas-365/campus/pkg/config"
	"github.com/Abraxas-365/campus/pkg/errx/errxfiber"
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/Abraxas-365/campus/recruitment/actor/actorapi"
	"github.com/Abraxas-365/campus/recruitment/application/applicationapi"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logx.Configure(cfg.Log.Level, cfg.Log.Format)
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	logx.Infof("Starting %s...", cfg.AppName)

	container, err := NewContainer(ctx, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	app := newApp(container)

	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on port %s", cfg.Server.Port)
		errCh <- app.Listen(":" + cfg.Server.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-errCh:
		return err
	case <-sig:
	}

	logx.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
		return err
	}
	logx.Info("Server exited")
	return nil
}

func newApp(container *Container) *fiber.App {
	cfg := container.Config

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		DisableStartupMessage: true,
		ErrorHandler:          errxfiber.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PATCH, HEAD",
		AllowCredentials: cfg.Server.AllowOrigins != "*",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		redisUp := container.Redis != nil && container.Redis.Ping(c.Context()).Err() == nil
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.PingContext(c.Context()) == nil,
			"redis":  redisUp,
		})
	})

	// Applications: /api/applications
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers,
		auth.OptionalAuth(container.IdentityProvider, cfg.Auth.CookieName),
		actorapi.Middleware(container.ActorResolver),
	)

	return app
}
