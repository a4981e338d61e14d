package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/studiobeleza/atendbot-go/period"
	"github.com/studiobeleza/atendbot-go/records"
)

// MonthBucket holds the totals for one calendar month of the
// aggregated period.
type MonthBucket struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
	Count int
}

// DayBucket holds the totals for one calendar day, used by the
// per-day breakdown of calculation summaries.
type DayBucket struct {
	Date  time.Time
	Total decimal.Decimal
	Count int
}

// ProcedureCount is one row of the procedure popularity ranking.
type ProcedureCount struct {
	Code  string
	Count int
}

// PatientCount is one row of the patient ranking.
type PatientCount struct {
	Patient string
	Count   int
}

// Result is the full aggregation over a period. It is derived data,
// recomputed on every query and never persisted.
type Result struct {
	Total      decimal.Decimal
	Count      int
	ByMonth    []MonthBucket
	ByDay      []DayBucket
	Procedures []ProcedureCount
	Patients   []PatientCount
}

type monthKey struct {
	year  int
	month time.Month
}

// Aggregate filters recs to the inclusive range and computes totals,
// counts and rankings. Monetary sums use decimal arithmetic so totals
// match hand-added prices exactly. An empty selection yields zero
// totals and empty rankings, not an error.
func Aggregate(recs []records.Record, r period.DateRange) Result {
	result := Result{Total: decimal.Zero}

	months := make(map[monthKey]*MonthBucket)
	days := make(map[time.Time]*DayBucket)
	procedures := make(map[string]int)
	patients := make(map[string]int)

	for _, rec := range recs {
		if !r.Contains(rec.Date) {
			continue
		}
		result.Total = result.Total.Add(rec.Price)
		result.Count++

		mk := monthKey{year: rec.Date.Year(), month: rec.Date.Month()}
		if months[mk] == nil {
			months[mk] = &MonthBucket{Year: mk.year, Month: mk.month, Total: decimal.Zero}
		}
		months[mk].Total = months[mk].Total.Add(rec.Price)
		months[mk].Count++

		day := period.Day(rec.Date)
		if days[day] == nil {
			days[day] = &DayBucket{Date: day, Total: decimal.Zero}
		}
		days[day].Total = days[day].Total.Add(rec.Price)
		days[day].Count++

		for _, code := range rec.Procedures {
			procedures[code]++
		}
		patients[rec.Patient]++
	}

	for _, bucket := range months {
		result.ByMonth = append(result.ByMonth, *bucket)
	}
	sort.Slice(result.ByMonth, func(i, j int) bool {
		a, b := result.ByMonth[i], result.ByMonth[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})

	for _, bucket := range days {
		result.ByDay = append(result.ByDay, *bucket)
	}
	sort.Slice(result.ByDay, func(i, j int) bool {
		return result.ByDay[i].Date.Before(result.ByDay[j].Date)
	})

	for code, count := range procedures {
		result.Procedures = append(result.Procedures, ProcedureCount{Code: code, Count: count})
	}
	sort.Slice(result.Procedures, func(i, j int) bool {
		a, b := result.Procedures[i], result.Procedures[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Code < b.Code
	})

	for name, count := range patients {
		result.Patients = append(result.Patients, PatientCount{Patient: name, Count: count})
	}
	sort.Slice(result.Patients, func(i, j int) bool {
		a, b := result.Patients[i], result.Patients[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Patient < b.Patient
	})

	return result
}
