package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
)

// Append writes one appointment as a new row at the bottom of the
// records tab.
func (c *Client) Append(ctx context.Context, rec records.Record) error {
	row := []interface{}{
		rec.Date.Format(period.DateFormat),
		rec.Time,
		rec.Patient,
		strings.Join(rec.Procedures, ", "),
		rec.Price.StringFixed(2),
	}

	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, recordsRange, &sheetsapi.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append record: %w", err)
	}

	log.Info().
		Str("patient", rec.Patient).
		Str("date", rec.Date.Format(period.DateFormat)).
		Msg("Record appended to spreadsheet")

	return nil
}

// Query fetches every row of the records tab and returns the ones
// whose date falls inside the range, oldest first. Rows that do not
// parse are skipped with a warning rather than failing the whole read.
func (c *Client) Query(ctx context.Context, r period.DateRange) ([]records.Record, error) {
	resp, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, recordsRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var result []records.Record
	for i, row := range resp.Values {
		rec, err := parseRow(row)
		if err != nil {
			log.Warn().
				Err(err).
				Int("row", i+2).
				Msg("Skipping row with invalid data")
			continue
		}
		if r.Contains(rec.Date) {
			result = append(result, rec)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.Before(result[j].Date)
		}
		return result[i].Time < result[j].Time
	})

	return result, nil
}

func parseRow(row []interface{}) (records.Record, error) {
	if len(row) < 5 {
		return records.Record{}, fmt.Errorf("expected 5 columns, got %d", len(row))
	}

	date, err := period.ParseDate(cell(row[0]))
	if err != nil {
		return records.Record{}, err
	}

	price, err := decimal.NewFromString(strings.ReplaceAll(cell(row[4]), ",", "."))
	if err != nil {
		return records.Record{}, fmt.Errorf("invalid price %q: %w", cell(row[4]), err)
	}

	var procedures []string
	for _, code := range strings.Split(cell(row[3]), ",") {
		if code = strings.TrimSpace(code); code != "" {
			procedures = append(procedures, code)
		}
	}

	return records.Record{
		Date:       date,
		Time:       cell(row[1]),
		Patient:    cell(row[2]),
		Procedures: procedures,
		Price:      price,
	}, nil
}

func cell(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
