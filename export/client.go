package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
)

// Client uploads CSV snapshots of the record set to S3 so the
// practitioner can open them in a spreadsheet application.
type Client struct {
	session  *session.Session
	bucket   string
	region   string
	uploader *s3manager.Uploader
}

func NewClient(region, bucket string) *Client {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create AWS session")
	}

	log.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("AWS session created successfully")

	return &Client{
		session:  sess,
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
	}
}

// ExportCSV renders the records as CSV and uploads them under a fresh
// object key, returning the object URL.
func (c *Client) ExportCSV(ctx context.Context, recs []records.Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Data", "Hora", "Paciente", "Procedimentos", "Valor"}); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, rec := range recs {
		row := []string{
			rec.Date.Format(period.DateFormat),
			rec.Time,
			rec.Patient,
			strings.Join(rec.Procedures, ", "),
			rec.Price.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	key := fmt.Sprintf("exports/atendimentos_%s_%s.csv",
		time.Now().Format("20060102"), uuid.NewString())

	log.Info().
		Str("bucket", c.bucket).
		Str("key", key).
		Int("record_count", len(recs)).
		Msg("Starting S3 export upload")

	_, err := c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("bucket", c.bucket).
			Str("key", key).
			Msg("S3 export upload failed")
		return "", fmt.Errorf("failed to upload export to S3: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)

	log.Info().
		Str("s3_url", objectURL).
		Msg("Export uploaded to S3 successfully")

	return objectURL, nil
}
