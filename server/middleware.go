package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
)

func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())
	s.app.Use(logger.New())

	// CORS for the history API consumers.
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	s.app.Use("/history/*", func(c fiber.Ctx) error {
		c.Set("Content-Type", "application/json")
		return c.Next()
	})
}
