package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(patient string, when time.Time, timeOfDay string, codes []string, price string) records.Record {
	return records.Record{
		Patient:    patient,
		Date:       when,
		Time:       timeOfDay,
		Procedures: codes,
		Price:      decimal.RequireFromString(price),
	}
}

func TestAggregate_SingleDayScenario(t *testing.T) {
	day := date(2025, time.August, 8)
	recs := []records.Record{
		rec("Ana", day, "10:00", []string{"RF"}, "100.00"),
		rec("Ana", day, "11:00", []string{"LP"}, "50.50"),
	}
	r := period.DateRange{Start: day, End: day}

	result := Aggregate(recs, r)

	if !result.Total.Equal(decimal.RequireFromString("150.50")) {
		t.Errorf("Expected total 150.50, got %s", result.Total)
	}
	if result.Count != 2 {
		t.Errorf("Expected 2 appointments, got %d", result.Count)
	}
	if len(result.Patients) != 1 || result.Patients[0].Patient != "Ana" || result.Patients[0].Count != 2 {
		t.Errorf("Expected patient ranking [Ana:2], got %v", result.Patients)
	}
	// Tie between LP and RF is broken alphabetically.
	if len(result.Procedures) != 2 || result.Procedures[0].Code != "LP" || result.Procedures[1].Code != "RF" {
		t.Errorf("Expected procedure ranking [LP, RF], got %v", result.Procedures)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	r := period.DateRange{Start: date(2025, time.January, 1), End: date(2025, time.December, 31)}
	result := Aggregate(nil, r)

	if !result.Total.IsZero() {
		t.Errorf("Expected zero total, got %s", result.Total)
	}
	if result.Count != 0 {
		t.Errorf("Expected zero count, got %d", result.Count)
	}
	if len(result.ByMonth) != 0 || len(result.ByDay) != 0 || len(result.Procedures) != 0 || len(result.Patients) != 0 {
		t.Errorf("Expected empty buckets and rankings, got %+v", result)
	}
}

func TestAggregate_FiltersToRangeInclusive(t *testing.T) {
	recs := []records.Record{
		rec("Ana", date(2025, time.July, 31), "09:00", []string{"RF"}, "10.00"),
		rec("Bia", date(2025, time.August, 1), "09:00", []string{"RF"}, "20.00"),
		rec("Carla", date(2025, time.August, 10), "09:00", []string{"RF"}, "30.00"),
		rec("Duda", date(2025, time.August, 11), "09:00", []string{"RF"}, "40.00"),
	}
	r := period.DateRange{Start: date(2025, time.August, 1), End: date(2025, time.August, 10)}

	result := Aggregate(recs, r)

	if result.Count != 2 {
		t.Errorf("Expected 2 records in range, got %d", result.Count)
	}
	if !result.Total.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("Expected total 50.00, got %s", result.Total)
	}
}

func TestAggregate_OrderIndependent(t *testing.T) {
	recs := []records.Record{
		rec("Ana", date(2025, time.August, 8), "10:00", []string{"RF"}, "100.00"),
		rec("Bia", date(2025, time.August, 9), "10:00", []string{"LP", "RF"}, "50.50"),
		rec("Ana", date(2025, time.September, 1), "10:00", []string{"LP"}, "75.25"),
	}
	reversed := []records.Record{recs[2], recs[1], recs[0]}
	r := period.DateRange{Start: date(2025, time.August, 1), End: date(2025, time.September, 30)}

	a := Aggregate(recs, r)
	b := Aggregate(reversed, r)

	if !a.Total.Equal(b.Total) || a.Count != b.Count {
		t.Errorf("Totals differ across orderings: %s/%d vs %s/%d", a.Total, a.Count, b.Total, b.Count)
	}
	for i := range a.Procedures {
		if a.Procedures[i] != b.Procedures[i] {
			t.Errorf("Procedure ranking differs across orderings: %v vs %v", a.Procedures, b.Procedures)
		}
	}
	for i := range a.Patients {
		if a.Patients[i] != b.Patients[i] {
			t.Errorf("Patient ranking differs across orderings: %v vs %v", a.Patients, b.Patients)
		}
	}
}

func TestAggregate_ByMonthChronological(t *testing.T) {
	recs := []records.Record{
		rec("Ana", date(2025, time.March, 5), "10:00", []string{"RF"}, "30.00"),
		rec("Ana", date(2024, time.December, 5), "10:00", []string{"RF"}, "10.00"),
		rec("Ana", date(2025, time.January, 5), "10:00", []string{"RF"}, "20.00"),
		rec("Ana", date(2025, time.January, 20), "10:00", []string{"RF"}, "5.00"),
	}
	result := Aggregate(recs, period.AllTime())

	if len(result.ByMonth) != 3 {
		t.Fatalf("Expected 3 month buckets, got %d", len(result.ByMonth))
	}
	expected := []struct {
		year  int
		month time.Month
		total string
		count int
	}{
		{2024, time.December, "10.00", 1},
		{2025, time.January, "25.00", 2},
		{2025, time.March, "30.00", 1},
	}
	for i, want := range expected {
		got := result.ByMonth[i]
		if got.Year != want.year || got.Month != want.month || got.Count != want.count ||
			!got.Total.Equal(decimal.RequireFromString(want.total)) {
			t.Errorf("Bucket %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestAggregate_ProcedureRankingCountsOccurrences(t *testing.T) {
	recs := []records.Record{
		rec("Ana", date(2025, time.August, 8), "10:00", []string{"RF", "RF"}, "100.00"),
		rec("Bia", date(2025, time.August, 8), "11:00", []string{"LP"}, "50.00"),
	}
	result := Aggregate(recs, period.AllTime())

	if result.Procedures[0].Code != "RF" || result.Procedures[0].Count != 2 {
		t.Errorf("Expected RF counted twice, got %v", result.Procedures)
	}
}

func TestAggregate_PatientNamesAreCaseSensitive(t *testing.T) {
	recs := []records.Record{
		rec("Ana", date(2025, time.August, 8), "10:00", []string{"RF"}, "10.00"),
		rec("ana", date(2025, time.August, 8), "11:00", []string{"RF"}, "10.00"),
	}
	result := Aggregate(recs, period.AllTime())

	if len(result.Patients) != 2 {
		t.Errorf("Expected case-sensitive names to rank separately, got %v", result.Patients)
	}
}

func TestAggregate_PatientTieBrokenByName(t *testing.T) {
	recs := []records.Record{
		rec("Carla", date(2025, time.August, 8), "10:00", []string{"RF"}, "10.00"),
		rec("Bia", date(2025, time.August, 8), "11:00", []string{"RF"}, "10.00"),
		rec("Bia", date(2025, time.August, 9), "10:00", []string{"RF"}, "10.00"),
		rec("Ana", date(2025, time.August, 9), "11:00", []string{"RF"}, "10.00"),
	}
	result := Aggregate(recs, period.AllTime())

	names := make([]string, len(result.Patients))
	for i, p := range result.Patients {
		names[i] = p.Patient
	}
	expected := []string{"Bia", "Ana", "Carla"}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected ranking %v, got %v", expected, names)
			break
		}
	}
}

func TestAggregate_DecimalSumsExact(t *testing.T) {
	// 0.1 + 0.2 style additions must not drift.
	recs := []records.Record{
		rec("Ana", date(2025, time.August, 8), "10:00", []string{"RF"}, "0.10"),
		rec("Ana", date(2025, time.August, 8), "11:00", []string{"RF"}, "0.20"),
	}
	result := Aggregate(recs, period.AllTime())

	if result.Total.String() != "0.3" {
		t.Errorf("Expected exact 0.3, got %s", result.Total)
	}
}
