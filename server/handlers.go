package server

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/bot"
	"github.com/studiobeleza/atendbot-go/telegram"
)

func (s *Server) telegramWebhookHandler(c fiber.Ctx) error {
	var update telegram.Update
	if err := c.Bind().JSON(&update); err != nil {
		log.Error().Err(err).Msg("Error parsing webhook JSON")
		return c.Status(fiber.StatusBadRequest).SendString("Error parsing JSON")
	}

	event, ok := bot.EventFromUpdate(update)
	if !ok {
		// Updates the bot does not handle are acknowledged so
		// Telegram stops redelivering them.
		return c.SendStatus(fiber.StatusOK)
	}

	log.Info().
		Int64("update_id", update.UpdateID).
		Str("user_id", event.UserID).
		Msg("Processing inbound update")

	go s.processor.Process(context.Background(), event)

	return c.SendStatus(fiber.StatusOK)
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"sessions": s.processor.Sessions().Count(),
	})
}

func (s *Server) historyIndexHandler(c fiber.Ctx) error {
	summaries, err := s.history.GetConversationSummaries()
	if err != nil {
		log.Error().Err(err).Msg("Error getting conversation summaries")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve conversation summaries",
		})
	}
	return c.JSON(fiber.Map{"conversations": summaries})
}

func (s *Server) historyMessagesHandler(c fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userId is required",
		})
	}

	messages, err := s.history.GetHistory(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Error getting conversation history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve conversation history",
		})
	}
	return c.JSON(fiber.Map{"user_id": userID, "messages": messages})
}
