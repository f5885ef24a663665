// path: main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"

	"pestreport/config"
	"pestreport/controllers"
	"pestreport/imagehost"
	"pestreport/mailer"
	"pestreport/report"
	"pestreport/routes"
	"pestreport/store"
)

func main() {
	weeklyOnly := flag.Bool("weekly", false, "generate and send the weekly report, then exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	st, reason, err := store.Resolve(context.Background(),
		cfg.StoreMode, cfg.MongoURI, cfg.MongoDB, cfg.SubmissionsFile)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	log.Printf("store: backend ready (%s)", reason)

	mail, err := mailer.NewSMTPSender(cfg.SMTPServer, cfg.SMTPPort,
		cfg.SenderEmail, cfg.SenderPassword, cfg.ReceiverEmail)
	if err != nil {
		log.Fatalf("mailer init failed: %v", err)
	}

	weekly := report.NewBuilder(st, mail, cfg.RetentionDays)

	// External-cron mode: run the report job once and exit.
	if *weeklyOnly {
		log.Println("Starting weekly pest report generation process...")
		if err := weekly.Run(); err != nil {
			log.Fatalf("weekly report failed: %v", err)
		}
		return
	}

	var images imagehost.ImageHost
	if ih, err := imagehost.NewCloudinary(cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.UploadFolder); err != nil {
		log.Printf("image host unavailable, uploads will be marked failed: %v", err)
	} else {
		images = ih
	}

	deps := &controllers.Deps{Store: st, Mail: mail, Images: images}

	app := fiber.New()
	app.Use(recover.New())

	// Log concise request lines
	app.Use(logger.New(logger.Config{
		TimeFormat: "15:04:05",
	}))

	// CORS (the reporting form is served from a separate origin)
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "*",
		MaxAge:       int((12 * time.Hour).Seconds()),
	}))

	// Health
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Pest Reporting Backend is running!")
	})
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })

	// API
	routes.Register(app, deps)

	// Weekly digest, Mondays 08:00 UTC
	cr := cron.New(cron.WithLocation(time.UTC))
	if _, err := cr.AddFunc("0 8 * * 1", func() {
		if err := weekly.Run(); err != nil {
			log.Printf("scheduled weekly report failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("cron setup failed: %v", err)
	}
	cr.Start()

	log.Printf("API listening on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
