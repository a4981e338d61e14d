package records

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiobeleza/atendbot-go/period"
)

// Record is one stored appointment entry. Records are append-only:
// once written to the spreadsheet they are never mutated or deleted.
type Record struct {
	Patient    string
	Date       time.Time
	Time       string
	Procedures []string
	Price      decimal.Decimal
}

// CatalogEntry maps a short procedure code to its display name.
type CatalogEntry struct {
	Code        string
	Description string
}

// Store is the contract the conversation flows use to reach the
// spreadsheet. All calls are I/O that may fail transiently; callers
// surface failures to the user and never advance state on a failed
// append.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, r period.DateRange) ([]Record, error)
	Catalog(ctx context.Context) ([]CatalogEntry, error)
}

// FindEntry resolves a user-supplied code against the catalog,
// tolerating case and accent differences.
func FindEntry(catalog []CatalogEntry, code string) (CatalogEntry, bool) {
	slug := Slugify(code)
	for _, entry := range catalog {
		if Slugify(entry.Code) == slug || Slugify(entry.Description) == slug {
			return entry, true
		}
	}
	return CatalogEntry{}, false
}

// Describe maps a stored code back to its catalog description,
// falling back to the code itself for entries no longer in the catalog.
func Describe(catalog []CatalogEntry, code string) string {
	if entry, ok := FindEntry(catalog, code); ok {
		return entry.Description
	}
	return strings.ToUpper(code)
}
