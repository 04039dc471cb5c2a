package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"promcare/bootstrap"
	"promcare/configs"
	_ "promcare/docs"
	"promcare/internal/keepalive"
	"promcare/internal/mailer"
	"promcare/internal/repository"
	"promcare/internal/routes"
	"promcare/internal/ws"
)

// @title PromCare API
// @version 1.0
// @description Hospital patient-reported-outcome-measures backend: admins, doctors, patients, questionnaires, notifications and a realtime broadcast channel.
// @BasePath /
func main() {
	cfg := configs.Load()
	logger := configs.NewLogger()

	// --- MongoDB Connection ---
	client := configs.ConnectMongo(cfg)
	defer configs.DisconnectMongo(client)

	db := client.Database(cfg.DBName)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}
	repos := repository.NewRegistry(db)

	dispatcher := mailer.NewDispatcher(
		mailer.NewResendSender(cfg.ResendAPIKey, cfg.MailFrom),
		logger,
	)

	// Hosting platform idles out silent processes; keep ticking.
	keepalive.Start(keepalive.DefaultInterval, logger)

	// --- Fiber App Setup ---
	// UnescapePath so percent-encoded emails in path params resolve.
	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Use(recover.New())
	app.Use(cors.New())

	routes.Register(app, routes.Deps{
		Repos:      repos,
		Hub:        ws.NewHub(),
		Dispatcher: dispatcher,
		JWTSecret:  cfg.JWTSecret,
	})

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	log.Fatal(app.Listen(":" + cfg.Port))
}
