// Package fiscal computes Indian financial-year, quarter, and month
// reporting periods and statutory filing deadlines. All functions are pure;
// dates are calendar dates at UTC midnight.
package fiscal

import (
	"fmt"
	"time"

	"taxtally/internal/domain"
)

// Date returns the calendar date y-m-d at UTC midnight.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the time-of-day component of t, keeping the UTC date.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// FYStartYear returns the calendar year in which the financial year
// containing ref begins. The Indian FY runs April 1 through March 31, so
// January–March dates belong to the FY that started the previous April.
func FYStartYear(ref time.Time) int {
	if ref.Month() < time.April {
		return ref.Year() - 1
	}
	return ref.Year()
}

// FYLabel formats a financial-year label, e.g. 2025 -> "2025-26".
func FYLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// FinancialYear returns the FY period containing ref.
func FinancialYear(ref time.Time) domain.Period {
	return FinancialYearOf(FYStartYear(ref))
}

// FinancialYearOf returns the FY period starting April 1 of startYear.
func FinancialYearOf(startYear int) domain.Period {
	return domain.Period{
		Kind:  domain.PeriodKindFY,
		Start: Date(startYear, time.April, 1),
		End:   Date(startYear+1, time.March, 31),
		Label: FYLabel(startYear),
	}
}

// quarterBounds holds the start month and end day of each FY quarter.
// Q4 spills into the next calendar year. Quarter ends never land on
// February 29, so leap years need no special case here.
var quarterBounds = [4]struct {
	startMonth time.Month
	endMonth   time.Month
	endDay     int
}{
	{time.April, time.June, 30},
	{time.July, time.September, 30},
	{time.October, time.December, 31},
	{time.January, time.March, 31},
}

// QuarterOf returns quarter q (1-4) of the FY starting in startYear.
func QuarterOf(startYear, q int) domain.Period {
	b := quarterBounds[q-1]
	y := startYear
	if q == 4 {
		y = startYear + 1
	}
	return domain.Period{
		Kind:  domain.PeriodKindQuarter,
		Start: Date(y, b.startMonth, 1),
		End:   Date(y, b.endMonth, b.endDay),
		Label: fmt.Sprintf("Q%d %s", q, FYLabel(startYear)),
	}
}

// Quarter returns the FY quarter containing ref.
func Quarter(ref time.Time) domain.Period {
	startYear := FYStartYear(ref)
	q := (int(ref.Month()) + 8) % 12 / 3 // Apr=0 ... Mar=11, then /3
	return QuarterOf(startYear, q+1)
}

// Month returns the calendar-month period containing ref.
func Month(ref time.Time) domain.Period {
	y, m := ref.Year(), ref.Month()
	return domain.Period{
		Kind:  domain.PeriodKindMonth,
		Start: Date(y, m, 1),
		End:   Date(y, m, DaysInMonth(y, m)),
		Label: fmt.Sprintf("%s %d", m.String()[:3], y),
	}
}

// DaysInMonth returns the number of days in the given month, accounting
// for leap years.
func DaysInMonth(y int, m time.Month) int {
	return Date(y, m+1, 1).AddDate(0, 0, -1).Day()
}

// FYOptions returns FY periods from yearsBack behind ref through
// yearsForward ahead, most recent first, without gaps.
func FYOptions(ref time.Time, yearsBack, yearsForward int) []domain.Period {
	start := FYStartYear(ref)
	opts := make([]domain.Period, 0, yearsBack+yearsForward+1)
	for y := start + yearsForward; y >= start-yearsBack; y-- {
		opts = append(opts, FinancialYearOf(y))
	}
	return opts
}

// QuarterOptions returns the n quarters ending with the one containing
// ref, most recent first, without gaps.
func QuarterOptions(ref time.Time, n int) []domain.Period {
	opts := make([]domain.Period, 0, n)
	cur := Quarter(ref)
	for i := 0; i < n; i++ {
		opts = append(opts, cur)
		cur = Quarter(cur.Start.AddDate(0, 0, -1))
	}
	return opts
}

// MonthOptions returns the n calendar months ending with the one
// containing ref, most recent first. December to January rolls the year
// via AddDate.
func MonthOptions(ref time.Time, n int) []domain.Period {
	opts := make([]domain.Period, 0, n)
	cur := Month(ref)
	for i := 0; i < n; i++ {
		opts = append(opts, cur)
		cur = Month(cur.Start.AddDate(0, 0, -1))
	}
	return opts
}

// Custom returns an arbitrary inclusive date-range period.
func Custom(start, end time.Time) domain.Period {
	return domain.Period{
		Kind:  domain.PeriodKindCustom,
		Start: Truncate(start),
		End:   Truncate(end),
		Label: fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02")),
	}
}
