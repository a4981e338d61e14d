package server

func (s *Server) setupRoutes() {
	s.app.Post("/webhooks/telegram", s.telegramWebhookHandler)

	s.app.Get("/health", s.healthCheckHandler)

	// History API over the redis conversation log.
	s.app.Get("/history", s.historyIndexHandler)
	s.app.Get("/history/:userId", s.historyMessagesHandler)
}
