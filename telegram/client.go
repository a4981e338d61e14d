package telegram

import (
	"net/http"
)

type Config struct {
	BotToken string
	APIURL   string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(botToken, apiURL string, httpClient http.Client) Client {
	return Client{
		config: Config{
			BotToken: botToken,
			APIURL:   apiURL,
		},
		httpClient: &httpClient,
	}
}
