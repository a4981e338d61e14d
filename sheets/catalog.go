package sheets

import (
	"context"
	"fmt"

	"github.com/studiobeleza/atendbot-go/records"
)

// Catalog reads the procedure reference tab (code, description).
func (c *Client) Catalog(ctx context.Context) ([]records.CatalogEntry, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, catalogRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read procedure catalog: %w", err)
	}

	var catalog []records.CatalogEntry
	for _, row := range resp.Values {
		if len(row) < 2 {
			continue
		}
		code, description := cell(row[0]), cell(row[1])
		if code == "" {
			continue
		}
		catalog = append(catalog, records.CatalogEntry{
			Code:        code,
			Description: description,
		})
	}

	return catalog, nil
}
