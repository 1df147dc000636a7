package server

import (
	"path/filepath"
	"strings"

	"openai-chatbot-be/internal/bootstrap"
	"openai-chatbot-be/internal/config"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app *fiber.App
	cfg *config.Config
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB, payloads are capped at 4000 chars anyway
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (no-op unless a tracer provider is set)
	app.Use(otelfiber.Middleware())

	app.Use(container.ErrorHandler)

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	registerRoutes(app, container)
	registerSpaFallback(app, cfg.App.StaticDir)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.ChatController.RegisterRoutes(api)
	c.ConversationController.RegisterRoutes(api)
}

// registerSpaFallback serves the frontend bundle: real asset paths come from
// the static dir, and any other GET path without a dot falls through to
// index.html for client-side routing.
func registerSpaFallback(app *fiber.App, staticDir string) {
	app.Static("/", staticDir)

	app.Get("/*", func(ctx *fiber.Ctx) error {
		path := ctx.Path()
		if strings.HasPrefix(path, "/api") || path == "/health" || strings.Contains(path, ".") {
			return fiber.ErrNotFound
		}
		return ctx.SendFile(filepath.Join(staticDir, "index.html"))
	})
}
