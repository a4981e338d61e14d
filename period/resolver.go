package period

import (
	"errors"
	"fmt"
	"time"
)

// DateFormat is the wire format for dates everywhere in the bot:
// zero-padded day and month, four-digit year.
const DateFormat = "02/01/2006"

// MonthFormat is the reference format for month selection (MM/YYYY).
const MonthFormat = "01/2006"

var (
	ErrInvalidDate  = errors.New("data inválida, use o formato DD/MM/YYYY")
	ErrInvalidRange = errors.New("período inválido, use DD/MM/YYYY DD/MM/YYYY")
)

// DateRange is an inclusive date interval. Start is never after End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t (truncated to its calendar day) falls
// inside the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Day normalizes a time to midnight UTC so dates compare by calendar day.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AllTime is the range used by the analytics reports, which always
// operate on the full record set.
func AllTime() DateRange {
	return DateRange{
		Start: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// ParseDate parses a strict DD/MM/YYYY date. Calendrically impossible
// dates (31/02) and non zero-padded input are rejected.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateFormat) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Resolve turns a mode plus optional arguments into a concrete date
// range. The reference "now" is passed in explicitly so callers stay
// deterministic.
//
// Modes:
//
//	dia       [DD/MM/YYYY]            single day, defaults to today
//	semana    [DD/MM/YYYY]            Monday-to-Sunday week containing the anchor
//	mes       [MM/YYYY]               full calendar month, defaults to today's
//	relatorio [MM/YYYY]               billing cycle: day 7 of the reference
//	                                  month through day 6 of the next
//	periodo   DD/MM/YYYY DD/MM/YYYY   explicit interval, endpoints reordered
func Resolve(mode string, args []string, today time.Time) (DateRange, error) {
	switch mode {
	case "dia":
		day := Day(today)
		if len(args) > 0 {
			parsed, err := ParseDate(args[0])
			if err != nil {
				return DateRange{}, err
			}
			day = parsed
		}
		return DateRange{Start: day, End: day}, nil

	case "semana":
		anchor := Day(today)
		if len(args) > 0 {
			parsed, err := ParseDate(args[0])
			if err != nil {
				return DateRange{}, err
			}
			anchor = parsed
		}
		// time.Weekday counts from Sunday; shift so Monday is day zero.
		offset := (int(anchor.Weekday()) + 6) % 7
		start := anchor.AddDate(0, 0, -offset)
		return DateRange{Start: start, End: start.AddDate(0, 0, 6)}, nil

	case "mes":
		anchor, err := parseMonthAnchor(args, today)
		if err != nil {
			return DateRange{}, err
		}
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0).AddDate(0, 0, -1)
		return DateRange{Start: start, End: end}, nil

	case "relatorio":
		anchor, err := parseMonthAnchor(args, today)
		if err != nil {
			return DateRange{}, err
		}
		start := time.Date(anchor.Year(), anchor.Month(), 7, 0, 0, 0, 0, time.UTC)
		return DateRange{Start: start, End: start.AddDate(0, 1, 0).AddDate(0, 0, -1)}, nil

	case "periodo":
		if len(args) != 2 {
			return DateRange{}, ErrInvalidRange
		}
		first, err := ParseDate(args[0])
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, args[0])
		}
		second, err := ParseDate(args[1])
		if err != nil {
			return DateRange{}, fmt.Errorf("%w: %q", ErrInvalidRange, args[1])
		}
		if second.Before(first) {
			first, second = second, first
		}
		return DateRange{Start: first, End: second}, nil

	default:
		return DateRange{}, fmt.Errorf("modo de cálculo desconhecido: %q", mode)
	}
}

// parseMonthAnchor reads an optional MM/YYYY argument, defaulting to
// today's month.
func parseMonthAnchor(args []string, today time.Time) (time.Time, error) {
	if len(args) == 0 {
		return Day(today), nil
	}
	parsed, err := time.Parse(MonthFormat, args[0])
	if err != nil || len(args[0]) != len(MonthFormat) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, args[0])
	}
	return parsed, nil
}

// Label renders a human description of a resolved range for the
// calculation summaries.
func Label(mode string, r DateRange) string {
	switch mode {
	case "dia":
		return "o dia " + r.Start.Format(DateFormat)
	case "semana":
		return fmt.Sprintf("a semana de %s a %s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
	case "mes":
		return "o mês " + r.Start.Format(MonthFormat)
	default:
		return fmt.Sprintf("o período de %s a %s", r.Start.Format(DateFormat), r.End.Format(DateFormat))
	}
}
