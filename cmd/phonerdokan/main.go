package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"phonerdokan/internal/config"
	"phonerdokan/internal/http/handlers"
	applog "phonerdokan/internal/log"
	"phonerdokan/internal/repos"
)

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Store and handler failures surface as a uniform 500 without
			// leaking internals; the request dies, the process does not.
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			applog.Error(c, "server.error", err, nil)
			return c.Status(code).JSON(fiber.Map{"error": "something went wrong, please try again"})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(db, cfg)

	// Registration and token issuance get their own tighter throttle.
	deps.AuthThrottle = limiter.New(limiter.Config{
		Max:        10,
		Expiration: 10 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP() + "|auth"
		},
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.auth.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, retry later"})
		},
	})

	handlers.Register(app, deps)

	log.Fatal(app.Listen(":" + cfg.Port))
}
