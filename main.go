package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/bot"
	"github.com/studiobeleza/atendbot-go/config"
	"github.com/studiobeleza/atendbot-go/export"
	"github.com/studiobeleza/atendbot-go/redis"
	"github.com/studiobeleza/atendbot-go/server"
	"github.com/studiobeleza/atendbot-go/sheets"
	"github.com/studiobeleza/atendbot-go/telegram"
)

func main() {
	cfg := config.Load()

	httpClient := http.Client{}
	ctx := context.Background()

	sheetsClient, err := sheets.NewClient(ctx, cfg.SheetID, cfg.GoogleCredsBase64)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Google Sheets client")
	}

	telegramClient := telegram.NewClient(cfg.BotToken, cfg.TelegramAPIURL, httpClient)

	redisClient := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	var exporter bot.Exporter
	if cfg.S3Bucket != "" {
		exporter = export.NewClient(cfg.S3Region, cfg.S3Bucket)
	} else {
		log.Warn().Msg("S3_BUCKET not set, CSV export disabled")
	}

	if err := telegramClient.SetMyCommands(ctx, map[string]string{
		"menu":     "Exibe o menu principal de ações.",
		"cancelar": "Cancela a operação atual e volta ao menu.",
	}); err != nil {
		log.Error().Err(err).Msg("Failed to register bot commands")
	}

	processor := bot.NewProcessor(sheetsClient, &telegramClient, &redisClient, exporter)

	srv := server.New(processor, &redisClient)
	srv.Start(cfg.Port)
}
