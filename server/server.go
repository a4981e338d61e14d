package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/bot"
	"github.com/studiobeleza/atendbot-go/redis"
)

type Server struct {
	app       *fiber.App
	processor *bot.Processor
	history   *redis.Client
}

func New(processor *bot.Processor, history *redis.Client) *Server {
	app := fiber.New()

	server := &Server{
		app:       app,
		processor: processor,
		history:   history,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) {
	log.Info().Str("port", port).Msg("Starting bot server")

	err := s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
