package sheets

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	recordsRange = "Atendimentos!A2:E"
	catalogRange = "Procedimentos!A2:B"
)

// Client reads and appends appointment rows on the practice
// spreadsheet. The records tab holds one appointment per row
// (date, time, patient, procedures, price); the catalog tab maps
// procedure codes to display names.
type Client struct {
	service       *sheetsapi.Service
	spreadsheetID string
}

// NewClient authenticates with a base64-encoded service account key
// and binds to the configured spreadsheet.
func NewClient(ctx context.Context, spreadsheetID, credsBase64 string) (*Client, error) {
	credsJSON, err := base64.StdEncoding.DecodeString(credsBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode google credentials: %w", err)
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsJSON(credsJSON),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	log.Info().
		Str("spreadsheet_id", spreadsheetID).
		Msg("Google Sheets client created successfully")

	return &Client{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}
