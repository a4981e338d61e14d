package records

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrMalformedEntry rejects lines that do not follow
// "<paciente> <procedimentos> <valor>".
var ErrMalformedEntry = errors.New("formato inválido, use: <Nome do Paciente> <Procedimentos> <Valor>")

// UnknownProcedureError lists the procedure codes of an entry line
// that are not present in the catalog.
type UnknownProcedureError struct {
	Codes []string
}

func (e *UnknownProcedureError) Error() string {
	return fmt.Sprintf("procedimentos desconhecidos: %s", strings.Join(e.Codes, ", "))
}

// Entry is one parsed registration line, not yet bound to a date.
type Entry struct {
	Patient    string
	Time       string
	Procedures []string
	Price      decimal.Decimal
}

var (
	deaccent    = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	timeOfDayRE = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Slugify lowercases a string and strips accents, spaces and hyphens
// so user input matches catalog entries regardless of typing style
// ("Pós Operatório", "pos-operatorio" and "POSOPERATORIO" all collapse
// to the same slug).
func Slugify(s string) string {
	plain, _, err := transform.String(deaccent, s)
	if err != nil {
		plain = s
	}
	plain = strings.ToLower(plain)
	plain = strings.ReplaceAll(plain, " ", "")
	return strings.ReplaceAll(plain, "-", "")
}

// ParseEntry parses a registration line of the form
//
//	[HH:MM] <nome do paciente> <códigos separados por vírgula> <valor>
//
// The trailing token is the price (comma or dot decimal separator),
// the token before it the comma-delimited procedure codes, and
// everything else the patient name. The optional leading HH:MM token
// records the time of the appointment. Codes are validated against
// the catalog; unknown ones produce an UnknownProcedureError naming
// every bad code. Repeated codes are kept as entered.
func ParseEntry(text string, catalog []CatalogEntry) (Entry, error) {
	fields := strings.Fields(text)

	var timeOfDay string
	if len(fields) > 0 && timeOfDayRE.MatchString(fields[0]) {
		timeOfDay = fields[0]
		fields = fields[1:]
	}

	if len(fields) < 3 {
		return Entry{}, ErrMalformedEntry
	}

	rawPrice := strings.ReplaceAll(fields[len(fields)-1], ",", ".")
	price, err := decimal.NewFromString(rawPrice)
	if err != nil {
		return Entry{}, ErrMalformedEntry
	}

	var procedures, unknown []string
	for _, code := range strings.Split(fields[len(fields)-2], ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		entry, ok := FindEntry(catalog, code)
		if !ok {
			unknown = append(unknown, code)
			continue
		}
		procedures = append(procedures, entry.Code)
	}
	if len(unknown) > 0 {
		return Entry{}, &UnknownProcedureError{Codes: unknown}
	}
	if len(procedures) == 0 {
		return Entry{}, ErrMalformedEntry
	}

	patient := strings.Join(fields[:len(fields)-2], " ")
	if patient == "" {
		return Entry{}, ErrMalformedEntry
	}

	return Entry{
		Patient:    patient,
		Time:       timeOfDay,
		Procedures: procedures,
		Price:      price,
	}, nil
}
