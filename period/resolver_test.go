package period

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate_Valid(t *testing.T) {
	got, err := ParseDate("08/08/2025")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equal(date(2025, time.August, 8)) {
		t.Errorf("Expected 08/08/2025, got %v", got)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cases := []string{
		"",
		"8/8/2025",
		"08/08/25",
		"2025/08/08",
		"08-08-2025",
		"31/02/2025",
		"32/01/2025",
		"01/13/2025",
		"08/08/2025 ",
		"hoje",
	}

	for _, input := range cases {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDate(input); !errors.Is(err, ErrInvalidDate) {
				t.Errorf("Expected ErrInvalidDate for %q, got %v", input, err)
			}
		})
	}
}

func TestResolve_Dia(t *testing.T) {
	today := date(2025, time.August, 8)

	r, err := Resolve("dia", []string{"01/03/2024"}, today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2024, time.March, 1)) || !r.End.Equal(date(2024, time.March, 1)) {
		t.Errorf("Expected [01/03/2024, 01/03/2024], got [%v, %v]", r.Start, r.End)
	}

	r, err = Resolve("dia", nil, today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Start.Equal(today) || !r.End.Equal(today) {
		t.Errorf("Expected today's range, got [%v, %v]", r.Start, r.End)
	}
}

func TestResolve_Semana(t *testing.T) {
	cases := []struct {
		name   string
		anchor string
		start  time.Time
	}{
		{"friday anchor", "08/08/2025", date(2025, time.August, 4)},
		{"monday anchor", "04/08/2025", date(2025, time.August, 4)},
		{"sunday anchor", "10/08/2025", date(2025, time.August, 4)},
		{"across month boundary", "01/08/2025", date(2025, time.July, 28)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve("semana", []string{tc.anchor}, date(2025, time.January, 1))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !r.Start.Equal(tc.start) {
				t.Errorf("Expected week start %v, got %v", tc.start, r.Start)
			}
			if !r.End.Equal(tc.start.AddDate(0, 0, 6)) {
				t.Errorf("Expected week end %v, got %v", tc.start.AddDate(0, 0, 6), r.End)
			}
			if r.Start.Weekday() != time.Monday {
				t.Errorf("Expected week to start on Monday, got %v", r.Start.Weekday())
			}
			anchor, _ := ParseDate(tc.anchor)
			if !r.Contains(anchor) {
				t.Errorf("Expected week to contain anchor %v", anchor)
			}
		})
	}
}

func TestResolve_SemanaDefaultsToToday(t *testing.T) {
	today := date(2025, time.August, 8)
	r, err := Resolve("semana", nil, today)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Contains(today) {
		t.Errorf("Expected week to contain today, got [%v, %v]", r.Start, r.End)
	}
	if days := int(r.End.Sub(r.Start).Hours()/24) + 1; days != 7 {
		t.Errorf("Expected 7-day span, got %d", days)
	}
}

func TestResolve_Mes(t *testing.T) {
	cases := []struct {
		name  string
		month string
		start time.Time
		end   time.Time
	}{
		{"leap february", "02/2024", date(2024, time.February, 1), date(2024, time.February, 29)},
		{"non-leap february", "02/2025", date(2025, time.February, 1), date(2025, time.February, 28)},
		{"thirty days", "04/2025", date(2025, time.April, 1), date(2025, time.April, 30)},
		{"thirty-one days", "08/2025", date(2025, time.August, 1), date(2025, time.August, 31)},
		{"december", "12/2025", date(2025, time.December, 1), date(2025, time.December, 31)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve("mes", []string{tc.month}, date(2025, time.January, 15))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !r.Start.Equal(tc.start) || !r.End.Equal(tc.end) {
				t.Errorf("Expected [%v, %v], got [%v, %v]", tc.start, tc.end, r.Start, r.End)
			}
		})
	}
}

func TestResolve_MesDefaultsToTodaysMonth(t *testing.T) {
	r, err := Resolve("mes", nil, date(2025, time.August, 8))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2025, time.August, 1)) || !r.End.Equal(date(2025, time.August, 31)) {
		t.Errorf("Expected august 2025, got [%v, %v]", r.Start, r.End)
	}
}

func TestResolve_MesInvalid(t *testing.T) {
	for _, input := range []string{"13/2025", "2/2025", "02-2025", "fevereiro"} {
		if _, err := Resolve("mes", []string{input}, date(2025, time.August, 8)); err == nil {
			t.Errorf("Expected error for month %q", input)
		}
	}
}

func TestResolve_Relatorio(t *testing.T) {
	cases := []struct {
		name  string
		month string
		start time.Time
		end   time.Time
	}{
		{"mid-year", "07/2025", date(2025, time.July, 7), date(2025, time.August, 6)},
		{"year rollover", "12/2025", date(2025, time.December, 7), date(2026, time.January, 6)},
		{"leap february", "02/2024", date(2024, time.February, 7), date(2024, time.March, 6)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Resolve("relatorio", []string{tc.month}, date(2025, time.January, 15))
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !r.Start.Equal(tc.start) || !r.End.Equal(tc.end) {
				t.Errorf("Expected [%v, %v], got [%v, %v]", tc.start, tc.end, r.Start, r.End)
			}
		})
	}
}

func TestResolve_RelatorioDefaultsToTodaysMonth(t *testing.T) {
	r, err := Resolve("relatorio", nil, date(2025, time.August, 8))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2025, time.August, 7)) || !r.End.Equal(date(2025, time.September, 6)) {
		t.Errorf("Expected [07/08/2025, 06/09/2025], got [%v, %v]", r.Start, r.End)
	}
}

func TestResolve_RelatorioInvalidMonth(t *testing.T) {
	for _, input := range []string{"13/2025", "7/2025", "07-2025", "julho"} {
		if _, err := Resolve("relatorio", []string{input}, date(2025, time.August, 8)); err == nil {
			t.Errorf("Expected error for month %q", input)
		}
	}
}

func TestResolve_PeriodoReordersEndpoints(t *testing.T) {
	r, err := Resolve("periodo", []string{"10/08/2025", "01/08/2025"}, date(2025, time.August, 8))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !r.Start.Equal(date(2025, time.August, 1)) || !r.End.Equal(date(2025, time.August, 10)) {
		t.Errorf("Expected [01/08/2025, 10/08/2025], got [%v, %v]", r.Start, r.End)
	}
}

func TestResolve_PeriodoInvalid(t *testing.T) {
	cases := [][]string{
		nil,
		{"01/08/2025"},
		{"01/08/2025", "10/08/2025", "20/08/2025"},
		{"99/99/2025", "10/08/2025"},
		{"01/08/2025", "abc"},
	}

	for _, args := range cases {
		if _, err := Resolve("periodo", args, date(2025, time.August, 8)); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Expected ErrInvalidRange for %v, got %v", args, err)
		}
	}
}

func TestResolve_UnknownMode(t *testing.T) {
	// Modes are internal callback-derived tokens, always ASCII.
	for _, mode := range []string{"quinzena", "mês", "período", ""} {
		if _, err := Resolve(mode, nil, date(2025, time.August, 8)); err == nil {
			t.Errorf("Expected error for unknown mode %q", mode)
		}
	}
}

func TestDateRange_ContainsIsInclusive(t *testing.T) {
	r := DateRange{Start: date(2025, time.August, 1), End: date(2025, time.August, 10)}

	for _, d := range []time.Time{r.Start, r.End, date(2025, time.August, 5)} {
		if !r.Contains(d) {
			t.Errorf("Expected range to contain %v", d)
		}
	}
	for _, d := range []time.Time{date(2025, time.July, 31), date(2025, time.August, 11)} {
		if r.Contains(d) {
			t.Errorf("Expected range to exclude %v", d)
		}
	}
}
